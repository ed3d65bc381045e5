package models

import "time"

// Like represents a like on a blog. The composite unique index enforces at
// most one row per (blog, user) pair at the storage level.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BlogID    uint      `json:"blog_id" gorm:"index;uniqueIndex:idx_blog_user;not null"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_blog_user;not null"`
	CreatedAt time.Time `json:"created_at"`
}
