package services

import (
	"context"
	"errors"

	"github.com/EsmaelAwad/fastapi-social-media-app/internal/apperr"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/models"

	"gorm.io/gorm"
)

// OwnershipGuard decides whether a caller may mutate a post. A missing
// post is reported the same way as a denied one, so probing for post
// ids through mutation endpoints tells the caller nothing.
type OwnershipGuard struct {
	db *gorm.DB
}

func NewOwnershipGuard(db *gorm.DB) *OwnershipGuard {
	return &OwnershipGuard{db: db}
}

// Verify returns nil when callerEmail owns the post. The action string
// ("update", "delete") is carried into the error message only.
func (g *OwnershipGuard) Verify(ctx context.Context, postID uint, callerEmail, action string) error {
	var post models.Post
	err := g.db.WithContext(ctx).Select("email").First(&post, postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &apperr.AuthorizationError{Reason: apperr.PostMissing, Caller: callerEmail, Action: action}
	}
	if err != nil {
		return &apperr.StoreError{Err: err}
	}

	if post.Email == nil {
		return &apperr.AuthorizationError{Reason: apperr.NoOwner, Caller: callerEmail, Action: action}
	}
	if *post.Email != callerEmail {
		return &apperr.AuthorizationError{
			Reason: apperr.NotOwner,
			Owner:  *post.Email,
			Caller: callerEmail,
			Action: action,
		}
	}
	return nil
}
