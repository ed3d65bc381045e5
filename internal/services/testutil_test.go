package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh in-memory database and migrates the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the shared in-memory database alive and
	// serializes concurrent statements.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Media{},
		&models.Notification{},
		&models.Report{},
	))
	return db
}

// testEnv wires the full service graph over one test database, with media
// storage rooted in a per-test temp dir.
type testEnv struct {
	db            *gorm.DB
	uploadDir     string
	notifications *NotificationService
	interactions  *InteractionService
	follows       *FollowService
	feed          *FeedService
	media         *MediaService
	blogs         *BlogService
	cascade       *CascadeService
	reports       *ReportService
	users         *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	log := zap.NewNop()
	uploadDir := t.TempDir()

	notifications := NewNotificationService(db, log)
	follows := NewFollowService(db, notifications)
	feed := NewFeedService(db, follows)
	media := NewMediaService(db, uploadDir, "http://localhost:8080", log)

	return &testEnv{
		db:            db,
		uploadDir:     uploadDir,
		notifications: notifications,
		interactions:  NewInteractionService(db, notifications),
		follows:       follows,
		feed:          feed,
		media:         media,
		blogs:         NewBlogService(db, media, feed),
		cascade:       NewCascadeService(db, media, log),
		reports:       NewReportService(db),
		users:         NewUserService(db, "test-secret"),
	}
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     username + "@example.com",
		Password:  "not-a-real-hash",
		Status:    models.UserStatusActive,
		Role:      models.UserRoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestBlog(t *testing.T, db *gorm.DB, userID uint, title string) *models.Blog {
	t.Helper()
	return createTestBlogAt(t, db, userID, title, time.Now())
}

// createTestBlogAt pins CreatedAt so feed-ordering assertions are not at the
// mercy of sub-millisecond insert timing.
func createTestBlogAt(t *testing.T, db *gorm.DB, userID uint, title string, createdAt time.Time) *models.Blog {
	t.Helper()

	blog := &models.Blog{
		UserID:    userID,
		Title:     title,
		Content:   "content of " + title,
		Status:    models.BlogStatusActive,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(blog).Error)
	return blog
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var count int64
	tx := db.Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	require.NoError(t, tx.Count(&count).Error)
	return count
}
