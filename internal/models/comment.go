package models

import "time"

// Comment represents a comment on a blog
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BlogID    uint      `json:"blog_id" gorm:"index;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommentRequest defines the request body for commenting on a blog
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
