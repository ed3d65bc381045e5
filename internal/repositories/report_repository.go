package repositories

import (
	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"gorm.io/gorm"
)

// ReportRepository defines the interface for report data operations
type ReportRepository interface {
	Create(report *models.Report) error
	DeleteByBlog(blogID uint) error
	DeleteByBlogs(blogIDs []uint) error
	DeleteByUser(userID uint) error
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a report repository over the given connection
// or transaction handle.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *reportRepository) DeleteByBlog(blogID uint) error {
	return r.db.Where("blog_id = ?", blogID).Delete(&models.Report{}).Error
}

func (r *reportRepository) DeleteByBlogs(blogIDs []uint) error {
	if len(blogIDs) == 0 {
		return nil
	}
	return r.db.Where("blog_id IN ?", blogIDs).Delete(&models.Report{}).Error
}

// DeleteByUser removes reports the user filed and reports targeting the user.
func (r *reportRepository) DeleteByUser(userID uint) error {
	return r.db.Where("reporter_id = ? OR reported_user_id = ?", userID, userID).
		Delete(&models.Report{}).Error
}
