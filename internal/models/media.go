package models

import "time"

// Media represents an uploaded file attached to a blog. URL points at the
// static upload path; list order is insertion order (ascending id).
type Media struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BlogID    uint      `json:"blog_id" gorm:"index;not null"`
	URL       string    `json:"url" gorm:"size:1024;not null"`
	MediaType string    `json:"media_type" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at"`
}
