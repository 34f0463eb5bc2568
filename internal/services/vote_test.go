package services

import (
	"context"
	"errors"
	"testing"

	"github.com/EsmaelAwad/fastapi-social-media-app/internal/apperr"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/models"
)

const voter = "voter@example.com"

func voteStatus(t *testing.T, engine *VoteEngine, postID uint) int {
	t.Helper()
	var vote models.Vote
	if err := engine.db.Where("post_id = ? AND email = ?", postID, voter).First(&vote).Error; err != nil {
		t.Fatalf("read vote row: %v", err)
	}
	return vote.Status
}

func TestVoteTransitionTable(t *testing.T) {
	tests := []struct {
		name      string
		prior     *int
		direction int
		want      int
	}{
		{"no row, like", nil, 1, 1},
		{"no row, neutral", nil, 0, 1},
		{"no row, dislike", nil, -1, 1},
		{"like, like", ptr(1), 1, 1},
		{"like, neutral", ptr(1), 0, 0},
		{"like, dislike", ptr(1), -1, 0},
		{"neutral, like", ptr(0), 1, 1},
		{"neutral, dislike", ptr(0), -1, -1},
		{"dislike, like", ptr(-1), 1, 1},
		{"dislike, neutral", ptr(-1), 0, 0},
		{"dislike, dislike stays floored", ptr(-1), -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			engine := NewVoteEngine(db)
			post := seedPost(t, db, "owner@example.com")

			if tt.prior != nil {
				row := models.Vote{PostID: post.ID, Email: voter, Status: *tt.prior}
				if err := db.Create(&row).Error; err != nil {
					t.Fatalf("seed vote: %v", err)
				}
			}

			if _, err := engine.Apply(context.Background(), post.ID, voter, tt.direction); err != nil {
				t.Fatalf("apply: %v", err)
			}
			if got := voteStatus(t, engine, post.ID); got != tt.want {
				t.Fatalf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVoteIdempotentNonNegativeDirections(t *testing.T) {
	db := newTestDB(t)
	engine := NewVoteEngine(db)
	post := seedPost(t, db, "owner@example.com")

	for _, direction := range []int{1, 0} {
		first, err := engine.Apply(context.Background(), post.ID, voter, direction)
		if err != nil {
			t.Fatalf("first apply(%d): %v", direction, err)
		}
		second, err := engine.Apply(context.Background(), post.ID, voter, direction)
		if err != nil {
			t.Fatalf("second apply(%d): %v", direction, err)
		}
		if got := voteStatus(t, engine, post.ID); got != direction {
			t.Fatalf("status after repeated apply(%d) = %d", direction, got)
		}
		// The first call of the loop's first pass creates the row, so
		// compare only the repeated applications.
		if first.TotalInteractions != second.TotalInteractions {
			t.Fatalf("interactions drifted: %d vs %d", first.TotalInteractions, second.TotalInteractions)
		}
	}
}

func TestVoteNewInteractionCountsAsLike(t *testing.T) {
	db := newTestDB(t)
	engine := NewVoteEngine(db)
	post := seedPost(t, db, "owner@example.com")

	agg, err := engine.Apply(context.Background(), post.ID, voter, 1)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if agg.TotalLikes != 1 || agg.TotalInteractions != 1 || agg.TotalNegativeVotes != 0 {
		t.Fatalf("unexpected aggregate: %+v", agg)
	}

	var row models.Vote
	if err := db.First(&row, "post_id = ? AND email = ?", post.ID, voter).Error; err != nil {
		t.Fatalf("expected vote row: %v", err)
	}
	if row.Status != 1 {
		t.Fatalf("expected status 1, got %d", row.Status)
	}
}

func TestVoteDislikeDropsLikeCount(t *testing.T) {
	db := newTestDB(t)
	engine := NewVoteEngine(db)
	post := seedPost(t, db, "owner@example.com")

	if _, err := engine.Apply(context.Background(), post.ID, voter, 1); err != nil {
		t.Fatalf("seed like: %v", err)
	}

	agg, err := engine.Apply(context.Background(), post.ID, voter, -1)
	if err != nil {
		t.Fatalf("apply dislike: %v", err)
	}
	if got := voteStatus(t, engine, post.ID); got != 0 {
		t.Fatalf("expected status 0, got %d", got)
	}
	if agg.TotalLikes != 0 {
		t.Fatalf("expected total_likes 0, got %d", agg.TotalLikes)
	}
	if agg.TotalNegativeVotes != 0 {
		t.Fatalf("expected total_negative_votes unchanged at 0, got %d", agg.TotalNegativeVotes)
	}
	if agg.TotalInteractions != 1 {
		t.Fatalf("expected total_interactions 1, got %d", agg.TotalInteractions)
	}
}

func TestVoteAggregateScopedToPost(t *testing.T) {
	db := newTestDB(t)
	engine := NewVoteEngine(db)
	post := seedPost(t, db, "owner@example.com")
	other := seedPost(t, db, "owner@example.com")

	if _, err := engine.Apply(context.Background(), other.ID, "someone@example.com", 1); err != nil {
		t.Fatalf("vote other post: %v", err)
	}

	agg, err := engine.Apply(context.Background(), post.ID, voter, 1)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if agg.TotalInteractions != 1 {
		t.Fatalf("aggregate leaked across posts: %+v", agg)
	}
}

func TestVoteInvalidDirection(t *testing.T) {
	db := newTestDB(t)
	engine := NewVoteEngine(db)
	post := seedPost(t, db, "owner@example.com")

	_, err := engine.Apply(context.Background(), post.ID, voter, 2)
	if !errors.Is(err, apperr.ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Vote{}).Count(&count).Error; err != nil {
		t.Fatalf("count votes: %v", err)
	}
	if count != 0 {
		t.Fatalf("invalid direction mutated the store: %d rows", count)
	}
}

func TestVoteMissingPost(t *testing.T) {
	db := newTestDB(t)
	engine := NewVoteEngine(db)

	_, err := engine.Apply(context.Background(), 4242, voter, 1)
	if !errors.Is(err, apperr.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestDuplicateFirstVoteInsertIsDiscarded(t *testing.T) {
	db := newTestDB(t)
	post := seedPost(t, db, "owner@example.com")

	row := models.Vote{PostID: post.ID, Email: voter, Status: 0}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed vote: %v", err)
	}

	// A writer that missed the read must not fail on the existing row.
	inserted, err := insertFirstVote(db, post.ID, voter)
	if err != nil {
		t.Fatalf("conflicting insert errored: %v", err)
	}
	if inserted {
		t.Fatal("conflicting insert reported as inserted")
	}

	var got models.Vote
	if err := db.First(&got, "post_id = ? AND email = ?", post.ID, voter).Error; err != nil {
		t.Fatalf("read vote: %v", err)
	}
	if got.Status != 0 {
		t.Fatalf("existing row was overwritten: status %d", got.Status)
	}
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		prior, direction, want int
	}{
		{1, 1, 1}, {1, 0, 0}, {1, -1, 0},
		{0, 1, 1}, {0, 0, 0}, {0, -1, -1},
		{-1, 1, 1}, {-1, 0, 0}, {-1, -1, -1},
	}
	for _, tt := range tests {
		if got := nextStatus(tt.prior, tt.direction); got != tt.want {
			t.Fatalf("nextStatus(%d, %d) = %d, want %d", tt.prior, tt.direction, got, tt.want)
		}
	}
}

func ptr(n int) *int { return &n }
