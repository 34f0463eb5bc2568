package services

import (
	"context"
	"errors"

	"github.com/EsmaelAwad/fastapi-social-media-app/internal/apperr"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VoteAggregate summarizes the vote rows of a single post. It is
// derived per request, never stored.
type VoteAggregate struct {
	TotalLikes         int64 `json:"total_likes"`
	TotalNegativeVotes int64 `json:"total_negative_votes"`
	TotalInteractions  int64 `json:"total_interactions"`
}

// VoteEngine runs the per-(post, voter) vote state machine. Each Apply
// call is one transaction: read the prior row, compute the transition,
// write, recompute the aggregate. On postgres/mysql the prior row is
// read under FOR UPDATE so concurrent votes by the same voter
// serialize; sqlite serializes writers on its own.
type VoteEngine struct {
	db *gorm.DB
}

func NewVoteEngine(db *gorm.DB) *VoteEngine {
	return &VoteEngine{db: db}
}

// Apply reconciles the voter's prior status with the requested
// direction and returns the post's fresh aggregate.
//
// Transitions: no prior row inserts status 1 whatever the direction
// (first interaction always lands as a like); direction 0 or 1
// overwrites; direction -1 moves |prior| - 1, floored at -1 so repeated
// dislikes stay a dislike.
func (e *VoteEngine) Apply(ctx context.Context, postID uint, voterEmail string, direction int) (VoteAggregate, error) {
	if direction < -1 || direction > 1 {
		return VoteAggregate{}, apperr.ErrInvalidDirection
	}

	var agg VoteAggregate
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var posts int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&posts).Error; err != nil {
			return &apperr.StoreError{Err: err}
		}
		if posts == 0 {
			return apperr.ErrPostNotFound
		}

		lookup := tx
		if tx.Dialector.Name() != "sqlite" {
			lookup = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var vote models.Vote
		err := lookup.Where("post_id = ? AND email = ?", postID, voterEmail).First(&vote).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			inserted, ierr := insertFirstVote(tx, postID, voterEmail)
			if ierr != nil {
				return &apperr.StoreError{Err: ierr}
			}
			if inserted {
				return aggregate(tx, postID, &agg)
			}
			// Lost a concurrent first-interaction insert: FOR UPDATE
			// cannot lock an absent row, so both writers can miss the
			// read. The winner's row exists now; re-read it and take
			// the update path.
			err = lookup.Where("post_id = ? AND email = ?", postID, voterEmail).First(&vote).Error
		}
		if err != nil {
			return &apperr.StoreError{Err: err}
		}

		if err := tx.Model(&vote).Update("current_status", nextStatus(vote.Status, direction)).Error; err != nil {
			return &apperr.StoreError{Err: err}
		}
		return aggregate(tx, postID, &agg)
	})
	if err != nil {
		return VoteAggregate{}, err
	}
	return agg, nil
}

// insertFirstVote records a first interaction as a like. The conflict
// clause turns a duplicate insert into a no-op so a losing concurrent
// writer degrades to the update path instead of failing the request.
func insertFirstVote(tx *gorm.DB, postID uint, email string) (bool, error) {
	vote := models.Vote{PostID: postID, Email: email, Status: 1}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&vote)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// nextStatus maps a prior status and requested direction to the new
// status. Direction 0 and 1 overwrite; -1 moves |prior| - 1, floored
// at -1 so repeated dislikes stay a dislike.
func nextStatus(prior, direction int) int {
	if direction >= 0 {
		return direction
	}
	if prior == -1 {
		return -1
	}
	return abs(prior) - 1
}

func aggregate(tx *gorm.DB, postID uint, agg *VoteAggregate) error {
	result := tx.Model(&models.Vote{}).
		Select("COALESCE(SUM(CASE WHEN current_status > 0 THEN 1 ELSE 0 END), 0) AS total_likes, " +
			"COALESCE(SUM(CASE WHEN current_status = -1 THEN 1 ELSE 0 END), 0) AS total_negative_votes, " +
			"COUNT(*) AS total_interactions").
		Where("post_id = ?", postID).
		Scan(agg)
	if result.Error != nil {
		return &apperr.StoreError{Err: result.Error}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
