package services

import (
	"errors"

	"github.com/asifnewaz/blogsphere/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CascadeService orchestrates deletion of a blog or a user across every
// dependent table and the media files on disk. Row deletion for one target
// runs as a single transaction; file removal happens after commit, since a
// rolled-back transaction must not have destroyed files. An orphan file is
// the accepted failure mode, a dangling row is not.
type CascadeService struct {
	db     *gorm.DB
	media  *MediaService
	logger *zap.Logger
}

// NewCascadeService creates a new CascadeService
func NewCascadeService(db *gorm.DB, media *MediaService, logger *zap.Logger) *CascadeService {
	return &CascadeService{db: db, media: media, logger: logger}
}

// DeleteBlog removes a blog and everything referencing it: reports, likes,
// comments, notifications, media rows, then the blog row itself, in that
// order, atomically. Fails with NotFound when the blog is absent.
func (s *CascadeService) DeleteBlog(blogID uint) error {
	var fileURLs []string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repositories.NewBlogRepository(tx).GetByID(blogID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound("Blog not found")
			}
			return err
		}

		urls, err := s.deleteBlogDependents(tx, blogID)
		if err != nil {
			return err
		}
		fileURLs = urls

		return repositories.NewBlogRepository(tx).Delete(blogID)
	})
	if err != nil {
		return err
	}

	s.removeFiles(fileURLs)
	s.logger.Info("blog cascade completed", zap.Uint("blog_id", blogID))
	return nil
}

// DeleteUser removes a user, every blog the user owns (with the full
// per-blog cascade), and every like, comment, follow edge, notification and
// report the user participates in, in one transaction. Tolerates zero owned
// blogs and empty dependent tables.
func (s *CascadeService) DeleteUser(userID uint) error {
	var fileURLs []string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := repositories.NewUserRepository(tx)
		if _, err := users.GetByID(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound("User not found")
			}
			return err
		}

		blogIDs, err := repositories.NewBlogRepository(tx).IDsByUser(userID)
		if err != nil {
			return err
		}

		// Dependents of every owned blog first, so nothing references the
		// blog rows when they go.
		if err := repositories.NewReportRepository(tx).DeleteByBlogs(blogIDs); err != nil {
			return err
		}
		if err := repositories.NewLikeRepository(tx).DeleteByBlogs(blogIDs); err != nil {
			return err
		}
		if err := repositories.NewCommentRepository(tx).DeleteByBlogs(blogIDs); err != nil {
			return err
		}
		if err := repositories.NewNotificationRepository(tx).DeleteByBlogs(blogIDs); err != nil {
			return err
		}
		mediaList, err := repositories.NewMediaRepository(tx).ListByBlogs(blogIDs)
		if err != nil {
			return err
		}
		for _, media := range mediaList {
			fileURLs = append(fileURLs, media.URL)
		}
		if err := repositories.NewMediaRepository(tx).DeleteByBlogs(blogIDs); err != nil {
			return err
		}

		// The user's own participation, independent of blog ownership.
		if err := repositories.NewLikeRepository(tx).DeleteByUser(userID); err != nil {
			return err
		}
		if err := repositories.NewCommentRepository(tx).DeleteByUser(userID); err != nil {
			return err
		}
		if err := repositories.NewFollowRepository(tx).DeleteByUser(userID); err != nil {
			return err
		}
		if err := repositories.NewNotificationRepository(tx).DeleteByUser(userID); err != nil {
			return err
		}
		if err := repositories.NewReportRepository(tx).DeleteByUser(userID); err != nil {
			return err
		}

		if err := repositories.NewBlogRepository(tx).DeleteByUser(userID); err != nil {
			return err
		}
		return users.Delete(userID)
	})
	if err != nil {
		return err
	}

	s.removeFiles(fileURLs)
	s.logger.Info("user cascade completed", zap.Uint("user_id", userID))
	return nil
}

// deleteBlogDependents removes every row referencing the blog and returns
// the stored-file URLs of the removed media rows.
func (s *CascadeService) deleteBlogDependents(tx *gorm.DB, blogID uint) ([]string, error) {
	if err := repositories.NewReportRepository(tx).DeleteByBlog(blogID); err != nil {
		return nil, err
	}
	if err := repositories.NewLikeRepository(tx).DeleteByBlog(blogID); err != nil {
		return nil, err
	}
	if err := repositories.NewCommentRepository(tx).DeleteByBlog(blogID); err != nil {
		return nil, err
	}
	if err := repositories.NewNotificationRepository(tx).DeleteByBlog(blogID); err != nil {
		return nil, err
	}

	mediaList, err := repositories.NewMediaRepository(tx).ListByBlog(blogID)
	if err != nil {
		return nil, err
	}
	var urls []string
	for _, media := range mediaList {
		urls = append(urls, media.URL)
	}
	if err := repositories.NewMediaRepository(tx).DeleteByBlog(blogID); err != nil {
		return nil, err
	}
	return urls, nil
}

func (s *CascadeService) removeFiles(urls []string) {
	for _, u := range urls {
		s.media.RemoveStoredFile(u)
	}
}
