package services

import (
	"errors"
	"fmt"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/asifnewaz/blogsphere/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	notificationLimitMin = 1
	notificationLimitMax = 50
)

// NotificationService creates fan-out records for social events and serves
// the recipient-facing read/mark operations.
//
// Fan-out runs inside the caller's transaction, so a notification commits
// atomically with the write that triggered it. The insert is fenced behind a
// savepoint: a fan-out failure rolls back only the notification row, is
// logged, and never aborts the primary write.
type NotificationService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(db *gorm.DB, logger *zap.Logger) *NotificationService {
	return &NotificationService{db: db, logger: logger}
}

// NotifyLike records a LIKE notification for the blog owner. No-op when the
// actor owns the blog or a reference is missing.
func (s *NotificationService) NotifyLike(tx *gorm.DB, blog *models.Blog, actor *models.User) {
	if blog == nil || actor == nil || blog.UserID == actor.ID {
		return
	}
	blogID := blog.ID
	s.create(tx, &models.Notification{
		RecipientID: blog.UserID,
		ActorID:     actor.ID,
		BlogID:      &blogID,
		Type:        models.NotificationTypeLike,
		Message:     fmt.Sprintf("%s liked your post.", actor.Username),
	})
}

// NotifyComment records a COMMENT notification for the blog owner. No-op
// when the actor owns the blog or a reference is missing.
func (s *NotificationService) NotifyComment(tx *gorm.DB, blog *models.Blog, actor *models.User) {
	if blog == nil || actor == nil || blog.UserID == actor.ID {
		return
	}
	blogID := blog.ID
	s.create(tx, &models.Notification{
		RecipientID: blog.UserID,
		ActorID:     actor.ID,
		BlogID:      &blogID,
		Type:        models.NotificationTypeComment,
		Message:     fmt.Sprintf("%s commented on your post.", actor.Username),
	})
}

// NotifyFollow records a FOLLOW notification for the followed user. No-op on
// self-follow or missing references.
func (s *NotificationService) NotifyFollow(tx *gorm.DB, follower, followed *models.User) {
	if follower == nil || followed == nil || follower.ID == followed.ID {
		return
	}
	s.create(tx, &models.Notification{
		RecipientID: followed.ID,
		ActorID:     follower.ID,
		Type:        models.NotificationTypeFollow,
		Message:     fmt.Sprintf("%s started following you.", follower.Username),
	})
}

func (s *NotificationService) create(tx *gorm.DB, notification *models.Notification) {
	// An errored statement poisons the enclosing transaction on Postgres, so
	// the insert runs behind a savepoint that a failure rolls back alone.
	if err := tx.SavePoint("notification_fanout").Error; err != nil {
		s.logger.Warn("notification fan-out failed", zap.Error(err))
		return
	}
	if err := repositories.NewNotificationRepository(tx).Create(notification); err != nil {
		tx.RollbackTo("notification_fanout")
		s.logger.Warn("notification fan-out failed",
			zap.Uint("recipient_id", notification.RecipientID),
			zap.Uint("actor_id", notification.ActorID),
			zap.String("type", string(notification.Type)),
			zap.Error(err))
	}
}

// UnreadCount returns the number of unread notifications for the user.
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return repositories.NewNotificationRepository(s.db).UnreadCount(userID)
}

// ListRecent returns the user's notifications newest first. The limit is
// clamped to [1, 50].
func (s *NotificationService) ListRecent(userID uint, limit int) ([]models.Notification, error) {
	if limit < notificationLimitMin {
		limit = notificationLimitMin
	}
	if limit > notificationLimitMax {
		limit = notificationLimitMax
	}
	return repositories.NewNotificationRepository(s.db).ListRecent(userID, limit)
}

// MarkRead marks a single notification read. Fails with NotFound when the
// notification does not exist or belongs to another user.
func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	repo := repositories.NewNotificationRepository(s.db)
	notification, err := repo.GetByIDAndRecipient(notificationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound("Notification not found")
		}
		return err
	}
	return repo.MarkRead(notification.ID)
}

// MarkAllRead marks every unread notification read; a no-op when none are
// unread.
func (s *NotificationService) MarkAllRead(userID uint) error {
	return repositories.NewNotificationRepository(s.db).MarkAllRead(userID)
}
