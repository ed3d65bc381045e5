package models

import "time"

// BlogStatus is the visibility state of a blog.
type BlogStatus string

const (
	BlogStatusActive BlogStatus = "ACTIVE"
	BlogStatusHidden BlogStatus = "HIDDEN"
)

// Blog represents a published post. LikeCount and CommentCount are
// denormalized and must always equal the number of Like/Comment rows
// referencing the blog; they are mutated only through atomic SQL updates.
type Blog struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"user_id" gorm:"index;not null"`
	Title        string     `json:"title" gorm:"size:255;not null"`
	Content      string     `json:"content" gorm:"type:text;not null"`
	Status       BlogStatus `json:"status" gorm:"size:20;default:'ACTIVE';not null;index"`
	LikeCount    int64      `json:"like_count" gorm:"default:0;not null"`
	CommentCount int64      `json:"comment_count" gorm:"default:0;not null"`
	CreatedAt    time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CreateBlogRequest defines the request body for publishing a blog
type CreateBlogRequest struct {
	Title   string `json:"title" form:"title" validate:"required,min=1,max=255"`
	Content string `json:"content" form:"content" validate:"required,min=1,max=1000"`
	Status  string `json:"status" form:"status" validate:"omitempty,oneof=ACTIVE HIDDEN"`
}

// UpdateBlogRequest defines the request body for editing a blog
type UpdateBlogRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content *string `json:"content" validate:"omitempty,min=1,max=1000"`
	Status  *string `json:"status" validate:"omitempty,oneof=ACTIVE HIDDEN"`
}
