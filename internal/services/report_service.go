package services

import (
	"errors"
	"strings"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/asifnewaz/blogsphere/backend/internal/repositories"
	"gorm.io/gorm"
)

const maxReportDetailsLength = 500

// ReportService files reports against exactly one target: a blog or a user.
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportService
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Create files a report. The request must name a blog or a reported user,
// never both and never neither; reporting your own blog or yourself is a
// BadRequest.
func (s *ReportService) Create(reporterID uint, req *models.CreateReportRequest) (*models.Report, error) {
	if (req.BlogID == nil) == (req.ReportedUserID == nil) {
		return nil, ErrBadRequest("Report must target exactly one of a blog or a user")
	}

	details := strings.TrimSpace(req.Details)
	if len(details) > maxReportDetailsLength {
		return nil, ErrBadRequest("Additional details cannot exceed 500 characters")
	}

	report := &models.Report{
		ReporterID: reporterID,
		Reason:     models.ReportReason(req.Reason),
		Details:    details,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repositories.NewUserRepository(tx).GetByID(reporterID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound("User not found")
			}
			return err
		}

		if req.BlogID != nil {
			blog, err := repositories.NewBlogRepository(tx).GetByID(*req.BlogID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound("Blog not found")
				}
				return err
			}
			if blog.UserID == reporterID {
				return ErrBadRequest("You cannot report your own post")
			}
			report.BlogID = &blog.ID
		} else {
			if *req.ReportedUserID == reporterID {
				return ErrBadRequest("You cannot report yourself")
			}
			target, err := repositories.NewUserRepository(tx).GetByID(*req.ReportedUserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound("User not found")
				}
				return err
			}
			report.ReportedUserID = &target.ID
		}

		return repositories.NewReportRepository(tx).Create(report)
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
