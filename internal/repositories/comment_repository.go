package repositories

import (
	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	ListByBlog(blogID uint) ([]models.Comment, error)
	Delete(id uint) error
	DeleteByBlog(blogID uint) error
	DeleteByBlogs(blogIDs []uint) error
	DeleteByUser(userID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a comment repository over the given connection
// or transaction handle.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByBlog(blogID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("blog_id = ?", blogID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}

func (r *commentRepository) DeleteByBlog(blogID uint) error {
	return r.db.Where("blog_id = ?", blogID).Delete(&models.Comment{}).Error
}

func (r *commentRepository) DeleteByBlogs(blogIDs []uint) error {
	if len(blogIDs) == 0 {
		return nil
	}
	return r.db.Where("blog_id IN ?", blogIDs).Delete(&models.Comment{}).Error
}

func (r *commentRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Comment{}).Error
}
