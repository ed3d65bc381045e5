package services

import (
	"errors"
	"strings"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/asifnewaz/blogsphere/backend/internal/repositories"
	"gorm.io/gorm"
)

const maxCommentLength = 500

// InteractionService records like and comment facts and keeps the
// denormalized counters on the owning blog in sync. Every write pairs the
// row mutation and the counter update in a single transaction.
type InteractionService struct {
	db            *gorm.DB
	notifications *NotificationService
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(db *gorm.DB, notifications *NotificationService) *InteractionService {
	return &InteractionService{db: db, notifications: notifications}
}

// AddLike likes a blog on behalf of a user. Fails with NotFound when the
// blog or user is absent and with Conflict when the pair already liked.
func (s *InteractionService) AddLike(blogID, userID uint) (*models.Like, error) {
	var like *models.Like
	err := s.db.Transaction(func(tx *gorm.DB) error {
		blog, user, err := findBlogAndUser(tx, blogID, userID)
		if err != nil {
			return err
		}

		exists, err := repositories.NewLikeRepository(tx).Exists(blogID, userID)
		if err != nil {
			return err
		}
		if exists {
			return ErrConflict("Already liked")
		}

		like = &models.Like{BlogID: blogID, UserID: userID}
		if err := repositories.NewLikeRepository(tx).Create(like); err != nil {
			// Two identical requests can race past the existence check; the
			// unique index on (blog_id, user_id) is the authority.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConflict("Already liked")
			}
			return err
		}

		if err := repositories.NewBlogRepository(tx).IncrementLikeCount(blogID); err != nil {
			return err
		}

		s.notifications.NotifyLike(tx, blog, user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return like, nil
}

// RemoveLike removes a user's like from a blog. Fails with NotFound when no
// like exists for the pair.
func (s *InteractionService) RemoveLike(blogID, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		affected, err := repositories.NewLikeRepository(tx).Delete(blogID, userID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound("Like not found")
		}
		return repositories.NewBlogRepository(tx).DecrementLikeCount(blogID)
	})
}

// AddComment comments on a blog on behalf of a user.
func (s *InteractionService) AddComment(blogID, userID uint, content string) (*models.Comment, error) {
	content = sanitize(strings.TrimSpace(content))
	if content == "" {
		return nil, ErrBadRequest("Comment content cannot be empty")
	}
	if len(content) > maxCommentLength {
		return nil, ErrBadRequest("Comment content cannot exceed 500 characters")
	}

	var comment *models.Comment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		blog, user, err := findBlogAndUser(tx, blogID, userID)
		if err != nil {
			return err
		}

		comment = &models.Comment{BlogID: blogID, UserID: userID, Content: content}
		if err := repositories.NewCommentRepository(tx).Create(comment); err != nil {
			return err
		}

		if err := repositories.NewBlogRepository(tx).IncrementCommentCount(blogID); err != nil {
			return err
		}

		s.notifications.NotifyComment(tx, blog, user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// RemoveComment deletes a comment and decrements the parent blog's counter.
// Allowed for the comment's author, the owner of the parent blog, and admins.
// The decrement no-ops when the parent blog was already removed by a cascade.
func (s *InteractionService) RemoveComment(commentID, actorID uint, isAdmin bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewCommentRepository(tx)
		comment, err := repo.GetByID(commentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound("Comment not found")
			}
			return err
		}

		if !isAdmin && comment.UserID != actorID {
			blog, err := repositories.NewBlogRepository(tx).GetByID(comment.BlogID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrForbidden("You cannot delete this comment")
				}
				return err
			}
			if blog.UserID != actorID {
				return ErrForbidden("You cannot delete this comment")
			}
		}

		if err := repo.Delete(comment.ID); err != nil {
			return err
		}
		return repositories.NewBlogRepository(tx).DecrementCommentCount(comment.BlogID)
	})
}

// LikeStatus reports whether the user liked the blog and the blog's current
// like count. Pure read, no side effects.
func (s *InteractionService) LikeStatus(blogID, userID uint) (bool, int64, error) {
	blog, err := repositories.NewBlogRepository(s.db).GetByID(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrNotFound("Blog not found")
		}
		return false, 0, err
	}
	liked, err := repositories.NewLikeRepository(s.db).Exists(blogID, userID)
	if err != nil {
		return false, 0, err
	}
	return liked, blog.LikeCount, nil
}

// CommentsByBlog lists a blog's comments oldest first.
func (s *InteractionService) CommentsByBlog(blogID uint) ([]models.Comment, error) {
	if _, err := repositories.NewBlogRepository(s.db).GetByID(blogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("Blog not found")
		}
		return nil, err
	}
	return repositories.NewCommentRepository(s.db).ListByBlog(blogID)
}

func findBlogAndUser(tx *gorm.DB, blogID, userID uint) (*models.Blog, *models.User, error) {
	blog, err := repositories.NewBlogRepository(tx).GetByID(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound("Blog not found")
		}
		return nil, nil, err
	}
	user, err := repositories.NewUserRepository(tx).GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound("User not found")
		}
		return nil, nil, err
	}
	return blog, user, nil
}
