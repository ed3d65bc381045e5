package repositories

import (
	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListRecent(recipientID uint, limit int) ([]models.Notification, error)
	UnreadCount(recipientID uint) (int64, error)
	GetByIDAndRecipient(id, recipientID uint) (*models.Notification, error)
	MarkRead(id uint) error
	MarkAllRead(recipientID uint) error
	DeleteByBlog(blogID uint) error
	DeleteByBlogs(blogIDs []uint) error
	DeleteByUser(userID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a notification repository over the given
// connection or transaction handle.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) ListRecent(recipientID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) UnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) GetByIDAndRecipient(id, recipientID uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.Where("id = ? AND recipient_id = ?", id, recipientID).First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) MarkRead(id uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

func (r *notificationRepository) MarkAllRead(recipientID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
}

func (r *notificationRepository) DeleteByBlog(blogID uint) error {
	return r.db.Where("blog_id = ?", blogID).Delete(&models.Notification{}).Error
}

func (r *notificationRepository) DeleteByBlogs(blogIDs []uint) error {
	if len(blogIDs) == 0 {
		return nil
	}
	return r.db.Where("blog_id IN ?", blogIDs).Delete(&models.Notification{}).Error
}

// DeleteByUser removes notifications where the user is recipient or actor.
func (r *notificationRepository) DeleteByUser(userID uint) error {
	return r.db.Where("recipient_id = ? OR actor_id = ?", userID, userID).
		Delete(&models.Notification{}).Error
}
