package models

import "time"

// User holds the registered account. Password is the bcrypt hash, never
// the raw credential, and is excluded from JSON output.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PhoneNumber string    `gorm:"size:30" json:"phone_number"`
	Email       string    `gorm:"size:255;uniqueIndex" json:"email"`
	Password    string    `gorm:"size:255" json:"-"`
	City        string    `gorm:"size:100" json:"city"`
	Country     string    `gorm:"size:100" json:"country"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Post. Email is the owner's address; NULL marks a development post
// that no caller may update or delete.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Published bool      `gorm:"default:true" json:"published"`
	Email     *string   `gorm:"size:255;index" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Vote records a voter's current stance on a post. The composite key
// guarantees at most one row per (post, voter); the row is created on
// first interaction and mutated in place afterwards.
type Vote struct {
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	Email     string    `gorm:"primaryKey;size:255" json:"email"`
	Status    int       `gorm:"column:current_status" json:"current_status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Vote) TableName() string { return "post_likes" }
