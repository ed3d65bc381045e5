package models

import "time"

// NotificationType distinguishes the social event that produced a notification.
type NotificationType string

const (
	NotificationTypeLike    NotificationType = "LIKE"
	NotificationTypeComment NotificationType = "COMMENT"
	NotificationTypeFollow  NotificationType = "FOLLOW"
)

// Notification represents a fan-out record for the recipient of a social
// action. Never created with recipient == actor.
type Notification struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	RecipientID uint             `json:"recipient_id" gorm:"index;not null"`
	ActorID     uint             `json:"actor_id" gorm:"index;not null"`
	BlogID      *uint            `json:"blog_id,omitempty" gorm:"index"`
	Type        NotificationType `json:"type" gorm:"size:20;not null"`
	Message     string           `json:"message" gorm:"size:300;not null"`
	IsRead      bool             `json:"is_read" gorm:"default:false;not null;index"`
	CreatedAt   time.Time        `json:"created_at" gorm:"index"`
}
