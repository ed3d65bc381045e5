package services

import (
	"fmt"
	"time"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/asifnewaz/blogsphere/backend/internal/repositories"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50

	exploreCachePrefix = "explore:"
)

// FeedService computes the paginated, time-ordered set of visible blogs for
// a viewer from the follow graph and blog status. Read-only.
type FeedService struct {
	db      *gorm.DB
	follows *FollowService
	cache   *gocache.Cache
}

type explorePage struct {
	Blogs []models.Blog
	Total int64
}

// NewFeedService creates a new FeedService
func NewFeedService(db *gorm.DB, follows *FollowService) *FeedService {
	return &FeedService{
		db:      db,
		follows: follows,
		cache:   gocache.New(30*time.Second, 5*time.Minute),
	}
}

// Feed returns ACTIVE blogs authored by the viewer or anyone the viewer
// follows, newest first, with offset/limit pagination.
func (s *FeedService) Feed(viewerID uint, page, pageSize int) ([]models.Blog, int64, error) {
	page, pageSize = clampPagination(page, pageSize)

	authorIDs, err := s.follows.FollowingIDs(viewerID)
	if err != nil {
		return nil, 0, err
	}
	authorIDs = append(authorIDs, viewerID)

	return repositories.NewBlogRepository(s.db).
		ListByAuthors(authorIDs, models.BlogStatusActive, (page-1)*pageSize, pageSize)
}

// MyBlogs returns the viewer's own ACTIVE blogs, newest first.
func (s *FeedService) MyBlogs(viewerID uint, page, pageSize int) ([]models.Blog, int64, error) {
	page, pageSize = clampPagination(page, pageSize)
	return repositories.NewBlogRepository(s.db).
		ListByAuthors([]uint{viewerID}, models.BlogStatusActive, (page-1)*pageSize, pageSize)
}

// MyBlogCount returns how many ACTIVE blogs the viewer has authored.
func (s *FeedService) MyBlogCount(viewerID uint) (int64, error) {
	return repositories.NewBlogRepository(s.db).CountByUserAndStatus(viewerID, models.BlogStatusActive)
}

// Explore returns the public ACTIVE listing, newest first. Pages are served
// from a short-TTL cache that mutations invalidate via InvalidateExplore.
func (s *FeedService) Explore(page, pageSize int) ([]models.Blog, int64, error) {
	page, pageSize = clampPagination(page, pageSize)

	key := fmt.Sprintf("%spage=%d:size=%d", exploreCachePrefix, page, pageSize)
	if cached, ok := s.cache.Get(key); ok {
		entry := cached.(explorePage)
		return entry.Blogs, entry.Total, nil
	}

	blogs, total, err := repositories.NewBlogRepository(s.db).
		ListByStatus(models.BlogStatusActive, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	s.cache.SetDefault(key, explorePage{Blogs: blogs, Total: total})
	return blogs, total, nil
}

// InvalidateExplore drops all cached explore pages. Called after blog
// create/update/delete.
func (s *FeedService) InvalidateExplore() {
	s.cache.Flush()
}

func clampPagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
