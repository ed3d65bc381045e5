package services

import (
	"errors"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/asifnewaz/blogsphere/backend/internal/repositories"
	"gorm.io/gorm"
)

// FollowService stores directed follow edges between users and answers
// following/follower queries.
type FollowService struct {
	db            *gorm.DB
	notifications *NotificationService
}

// NewFollowService creates a new FollowService
func NewFollowService(db *gorm.DB, notifications *NotificationService) *FollowService {
	return &FollowService{db: db, notifications: notifications}
}

// Follow creates a follow edge. Fails with BadRequest on self-follow,
// Conflict when the edge exists, NotFound when either user is absent.
func (s *FollowService) Follow(followerID, followingID uint) error {
	if followerID == followingID {
		return ErrBadRequest("You cannot follow yourself")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewFollowRepository(tx)
		exists, err := repo.Exists(followerID, followingID)
		if err != nil {
			return err
		}
		if exists {
			return ErrConflict("Already following")
		}

		users := repositories.NewUserRepository(tx)
		follower, err := users.GetByID(followerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound("User not found")
			}
			return err
		}
		followed, err := users.GetByID(followingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound("User not found")
			}
			return err
		}

		if err := repo.Create(&models.Follow{FollowerID: followerID, FollowingID: followingID}); err != nil {
			// Concurrent identical requests resolve at the unique index.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConflict("Already following")
			}
			return err
		}

		s.notifications.NotifyFollow(tx, follower, followed)
		return nil
	})
}

// Unfollow removes the edge if present; absence is not an error.
func (s *FollowService) Unfollow(followerID, followingID uint) error {
	return repositories.NewFollowRepository(s.db).Delete(followerID, followingID)
}

// FollowingIDs returns the IDs the user follows, stable within a call.
func (s *FollowService) FollowingIDs(userID uint) ([]uint, error) {
	return repositories.NewFollowRepository(s.db).FollowingIDs(userID)
}

// Counts returns the user's follower and following totals.
func (s *FollowService) Counts(userID uint) (followers, following int64, err error) {
	repo := repositories.NewFollowRepository(s.db)
	followers, err = repo.FollowersCount(userID)
	if err != nil {
		return 0, 0, err
	}
	following, err = repo.FollowingCount(userID)
	if err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}
