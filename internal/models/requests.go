package models

// Request payloads, one explicit struct per operation. Binding tags are
// enforced by gin at the boundary.

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateUserRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	City        string `json:"city" binding:"required"`
	Country     string `json:"country" binding:"required"`
}

// PostInput serves both create and update. Published defaults to true
// when omitted, so it has to be a pointer to tell "absent" from "false".
type PostInput struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Published *bool  `json:"published"`
}

// VoteRequest carries the requested direction (-1 dislike, 0 neutral,
// 1 like) and the target post id. Direction is a pointer because 0 is a
// legal value that "required" would otherwise reject.
type VoteRequest struct {
	DirectionOfVote *int `json:"direction_of_vote" binding:"required"`
	PostID          uint `json:"id_" binding:"required"`
}
