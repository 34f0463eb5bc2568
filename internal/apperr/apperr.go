package apperr

import (
	"errors"
	"fmt"
)

// Credential failures surfaced by the token layer. The middleware maps
// them to 401 responses.
var (
	ErrMissingCredential = errors.New("authorization header missing")
	ErrTokenExpired      = errors.New("token has expired")
	ErrTokenInvalid      = errors.New("invalid token")
)

// Caller errors from the vote engine.
var (
	ErrInvalidDirection = errors.New("vote direction must be -1, 0 or 1")
	ErrPostNotFound     = errors.New("post not found")
)

// ErrEmailTaken signals a duplicate email on user creation.
var ErrEmailTaken = errors.New("email already in use")

type AuthzReason int

const (
	PostMissing AuthzReason = iota
	NoOwner
	NotOwner
)

// AuthorizationError is returned by the ownership guard. All three
// reasons surface as 403 so a caller cannot probe which posts exist.
type AuthorizationError struct {
	Reason AuthzReason
	Owner  string
	Caller string
	Action string
}

func (e *AuthorizationError) Error() string {
	switch e.Reason {
	case PostMissing:
		return fmt.Sprintf("The post you are trying to %s does not exist.", e.Action)
	case NoOwner:
		return fmt.Sprintf("This is a development post, unauthorized users cannot %s it.", e.Action)
	default:
		return fmt.Sprintf("The post is owned by %s, %s is not authorized to %s it.", e.Owner, e.Caller, e.Action)
	}
}

// ValidationError carries a user-facing message for malformed input
// (password format, sort order and the like).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// StoreError wraps an underlying persistence failure. Handlers report
// it as an opaque 500.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return "store failure: " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }
