package repositories

import (
	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	Create(follow *models.Follow) error
	Delete(followerID, followingID uint) error
	Exists(followerID, followingID uint) (bool, error)
	FollowingIDs(userID uint) ([]uint, error)
	FollowersCount(userID uint) (int64, error)
	FollowingCount(userID uint) (int64, error)
	DeleteByUser(userID uint) error
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a follow repository over the given connection
// or transaction handle.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

// Delete removes the edge if present; a missing edge is not an error.
func (r *followRepository) Delete(followerID, followingID uint) error {
	return r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error
}

func (r *followRepository) Exists(followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) FollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).
		Order("following_id ASC").Pluck("following_id", &ids).Error
	return ids, err
}

func (r *followRepository) FollowersCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *followRepository) FollowingCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

// DeleteByUser removes every edge the user participates in, either side.
func (r *followRepository) DeleteByUser(userID uint) error {
	return r.db.Where("follower_id = ? OR following_id = ?", userID, userID).
		Delete(&models.Follow{}).Error
}
