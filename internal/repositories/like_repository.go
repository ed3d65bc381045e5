package repositories

import (
	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	Create(like *models.Like) error
	Delete(blogID, userID uint) (int64, error)
	Exists(blogID, userID uint) (bool, error)
	CountByBlog(blogID uint) (int64, error)
	DeleteByBlog(blogID uint) error
	DeleteByBlogs(blogIDs []uint) error
	DeleteByUser(userID uint) error
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a like repository over the given connection or
// transaction handle.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

// Delete returns the number of rows removed so callers can distinguish a
// missing like from a successful delete.
func (r *likeRepository) Delete(blogID, userID uint) (int64, error) {
	res := r.db.Where("blog_id = ? AND user_id = ?", blogID, userID).Delete(&models.Like{})
	return res.RowsAffected, res.Error
}

func (r *likeRepository) Exists(blogID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("blog_id = ? AND user_id = ?", blogID, userID).Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) CountByBlog(blogID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("blog_id = ?", blogID).Count(&count).Error
	return count, err
}

func (r *likeRepository) DeleteByBlog(blogID uint) error {
	return r.db.Where("blog_id = ?", blogID).Delete(&models.Like{}).Error
}

func (r *likeRepository) DeleteByBlogs(blogIDs []uint) error {
	if len(blogIDs) == 0 {
		return nil
	}
	return r.db.Where("blog_id IN ?", blogIDs).Delete(&models.Like{}).Error
}

func (r *likeRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Like{}).Error
}
