package repositories

import (
	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"gorm.io/gorm"
)

// MediaRepository defines the interface for media metadata operations
type MediaRepository interface {
	Create(media *models.Media) error
	GetByID(id uint) (*models.Media, error)
	ListByBlog(blogID uint) ([]models.Media, error)
	ListByBlogs(blogIDs []uint) ([]models.Media, error)
	FirstByBlog(blogID uint) (*models.Media, error)
	Delete(id uint) error
	DeleteByBlog(blogID uint) error
	DeleteByBlogs(blogIDs []uint) error
}

type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a media repository over the given connection or
// transaction handle.
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(media *models.Media) error {
	return r.db.Create(media).Error
}

func (r *mediaRepository) GetByID(id uint) (*models.Media, error) {
	var media models.Media
	if err := r.db.First(&media, id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) ListByBlog(blogID uint) ([]models.Media, error) {
	var media []models.Media
	err := r.db.Where("blog_id = ?", blogID).Order("id ASC").Find(&media).Error
	return media, err
}

func (r *mediaRepository) ListByBlogs(blogIDs []uint) ([]models.Media, error) {
	if len(blogIDs) == 0 {
		return nil, nil
	}
	var media []models.Media
	err := r.db.Where("blog_id IN ?", blogIDs).Order("id ASC").Find(&media).Error
	return media, err
}

func (r *mediaRepository) FirstByBlog(blogID uint) (*models.Media, error) {
	var media models.Media
	if err := r.db.Where("blog_id = ?", blogID).Order("id ASC").First(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) Delete(id uint) error {
	return r.db.Delete(&models.Media{}, id).Error
}

func (r *mediaRepository) DeleteByBlog(blogID uint) error {
	return r.db.Where("blog_id = ?", blogID).Delete(&models.Media{}).Error
}

func (r *mediaRepository) DeleteByBlogs(blogIDs []uint) error {
	if len(blogIDs) == 0 {
		return nil
	}
	return r.db.Where("blog_id IN ?", blogIDs).Delete(&models.Media{}).Error
}
