package services

import (
	"errors"
	"strings"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/asifnewaz/blogsphere/backend/internal/repositories"
	"gorm.io/gorm"
)

const maxBlogContentLength = 1000

// BlogService handles blog publishing and editing. Counter mutation belongs
// to InteractionService, deletion to CascadeService.
type BlogService struct {
	db    *gorm.DB
	media *MediaService
	feed  *FeedService
}

// NewBlogService creates a new BlogService
func NewBlogService(db *gorm.DB, media *MediaService, feed *FeedService) *BlogService {
	return &BlogService{db: db, media: media, feed: feed}
}

// Create publishes a blog without media.
func (s *BlogService) Create(userID uint, req *models.CreateBlogRequest) (*models.Blog, error) {
	return s.CreateWithMedia(userID, req, nil)
}

// CreateWithMedia publishes a blog with an optional media batch in the same
// transaction. Media validation failures leave no blog row behind.
func (s *BlogService) CreateWithMedia(userID uint, req *models.CreateBlogRequest, files []UploadFile) (*models.Blog, error) {
	title := strings.TrimSpace(req.Title)
	content := sanitize(strings.TrimSpace(req.Content))
	if title == "" || content == "" {
		return nil, ErrBadRequest("Blog content cannot be empty")
	}
	if len(content) > maxBlogContentLength {
		return nil, ErrBadRequest("Blog content cannot exceed 1000 characters")
	}

	status := models.BlogStatusActive
	if req.Status != "" {
		status = models.BlogStatus(req.Status)
	}

	// Bounds are checked before the blog row is created so an invalid batch
	// performs zero writes.
	files, err := normalizeFiles(files, false)
	if err != nil {
		return nil, err
	}

	var blog *models.Blog
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repositories.NewUserRepository(tx).GetByID(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound("User not found")
			}
			return err
		}

		blog = &models.Blog{
			UserID:  userID,
			Title:   title,
			Content: content,
			Status:  status,
		}
		if err := repositories.NewBlogRepository(tx).Create(blog); err != nil {
			return err
		}

		if len(files) > 0 {
			txMedia := NewMediaService(tx, s.media.uploadDir, s.media.baseURL, s.media.logger)
			if _, err := txMedia.UploadToBlog(blog, files, false); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.feed.InvalidateExplore()
	return blog, nil
}

// Update applies a partial edit to a blog.
func (s *BlogService) Update(blogID uint, req *models.UpdateBlogRequest) (*models.Blog, error) {
	repo := repositories.NewBlogRepository(s.db)
	blog, err := repo.GetByID(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("Blog not found")
		}
		return nil, err
	}

	if req.Title != nil {
		blog.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		content := sanitize(strings.TrimSpace(*req.Content))
		if len(content) > maxBlogContentLength {
			return nil, ErrBadRequest("Blog content cannot exceed 1000 characters")
		}
		blog.Content = content
	}
	if req.Status != nil {
		blog.Status = models.BlogStatus(*req.Status)
	}

	if err := repo.Save(blog); err != nil {
		return nil, err
	}
	s.feed.InvalidateExplore()
	return blog, nil
}

// GetByID returns a blog for public reading; HIDDEN blogs read as NotFound.
func (s *BlogService) GetByID(blogID uint) (*models.Blog, error) {
	blog, err := repositories.NewBlogRepository(s.db).GetByID(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("Blog not found")
		}
		return nil, err
	}
	if blog.Status == models.BlogStatusHidden {
		return nil, ErrNotFound("Blog not found")
	}
	return blog, nil
}

// GetForOwner returns a blog regardless of visibility, for flows that go on
// to check ownership. A HIDDEN blog stays reachable to its owner.
func (s *BlogService) GetForOwner(blogID uint) (*models.Blog, error) {
	blog, err := repositories.NewBlogRepository(s.db).GetByID(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("Blog not found")
		}
		return nil, err
	}
	return blog, nil
}

// UpdateStatus sets a blog's visibility.
func (s *BlogService) UpdateStatus(blogID uint, status models.BlogStatus) (*models.Blog, error) {
	repo := repositories.NewBlogRepository(s.db)
	blog, err := repo.GetByID(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("Blog not found")
		}
		return nil, err
	}
	blog.Status = status
	if err := repo.Save(blog); err != nil {
		return nil, err
	}
	s.feed.InvalidateExplore()
	return blog, nil
}
