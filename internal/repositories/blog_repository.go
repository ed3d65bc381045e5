package repositories

import (
	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"gorm.io/gorm"
)

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	Create(blog *models.Blog) error
	GetByID(id uint) (*models.Blog, error)
	Save(blog *models.Blog) error
	ListByAuthors(authorIDs []uint, status models.BlogStatus, offset, limit int) ([]models.Blog, int64, error)
	ListByStatus(status models.BlogStatus, offset, limit int) ([]models.Blog, int64, error)
	CountByUserAndStatus(userID uint, status models.BlogStatus) (int64, error)
	IDsByUser(userID uint) ([]uint, error)
	IncrementLikeCount(id uint) error
	DecrementLikeCount(id uint) error
	IncrementCommentCount(id uint) error
	DecrementCommentCount(id uint) error
	Delete(id uint) error
	DeleteByUser(userID uint) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a blog repository over the given connection or
// transaction handle.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

func (r *blogRepository) GetByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.First(&blog, id).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) Save(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

// ListByAuthors runs a single filter pass over the whole author set so feed
// cost is proportional to result size, not follow-count x blog-count.
func (r *blogRepository) ListByAuthors(authorIDs []uint, status models.BlogStatus, offset, limit int) ([]models.Blog, int64, error) {
	var blogs []models.Blog
	var total int64

	query := r.db.Model(&models.Blog{}).Where("user_id IN ? AND status = ?", authorIDs, status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&blogs).Error
	return blogs, total, err
}

func (r *blogRepository) ListByStatus(status models.BlogStatus, offset, limit int) ([]models.Blog, int64, error) {
	var blogs []models.Blog
	var total int64

	query := r.db.Model(&models.Blog{}).Where("status = ?", status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&blogs).Error
	return blogs, total, err
}

func (r *blogRepository) CountByUserAndStatus(userID uint, status models.BlogStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Blog{}).Where("user_id = ? AND status = ?", userID, status).Count(&count).Error
	return count, err
}

func (r *blogRepository) IDsByUser(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Blog{}).Where("user_id = ?", userID).Pluck("id", &ids).Error
	return ids, err
}

// IncrementLikeCount bumps the denormalized counter with an atomic SQL
// update; a read-modify-write in application memory would lose updates under
// concurrent likes on the same blog.
func (r *blogRepository) IncrementLikeCount(id uint) error {
	return r.db.Model(&models.Blog{}).Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
}

// DecrementLikeCount clamps at zero; the guard also makes it a no-op when
// the blog row no longer exists.
func (r *blogRepository) DecrementLikeCount(id uint) error {
	return r.db.Model(&models.Blog{}).Where("id = ? AND like_count > 0", id).
		UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
}

func (r *blogRepository) IncrementCommentCount(id uint) error {
	return r.db.Model(&models.Blog{}).Where("id = ?", id).
		UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
}

func (r *blogRepository) DecrementCommentCount(id uint) error {
	return r.db.Model(&models.Blog{}).Where("id = ? AND comment_count > 0", id).
		UpdateColumn("comment_count", gorm.Expr("comment_count - 1")).Error
}

func (r *blogRepository) Delete(id uint) error {
	return r.db.Delete(&models.Blog{}, id).Error
}

func (r *blogRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Blog{}).Error
}
