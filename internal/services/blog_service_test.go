package services

import (
	"strings"
	"testing"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBlog(t *testing.T) {
	env := newTestEnv(t)
	alice := createTestUser(t, env.db, "alice")

	blog, err := env.blogs.Create(alice.ID, &models.CreateBlogRequest{
		Title:   "hello",
		Content: "first post",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BlogStatusActive, blog.Status)
	assert.Equal(t, int64(0), blog.LikeCount)
	assert.Equal(t, int64(0), blog.CommentCount)
}

func TestCreateBlogValidation(t *testing.T) {
	env := newTestEnv(t)
	alice := createTestUser(t, env.db, "alice")

	_, err := env.blogs.Create(alice.ID, &models.CreateBlogRequest{Title: "t", Content: "  "})
	assert.Equal(t, KindBadRequest, KindOf(err))

	_, err = env.blogs.Create(alice.ID, &models.CreateBlogRequest{
		Title:   "t",
		Content: strings.Repeat("x", 1001),
	})
	assert.Equal(t, KindBadRequest, KindOf(err))

	_, err = env.blogs.Create(9999, &models.CreateBlogRequest{Title: "t", Content: "c"})
	assert.Equal(t, KindNotFound, KindOf(err))

	assert.Equal(t, int64(0), countRows(t, env.db, &models.Blog{}, ""))
}

func TestCreateBlogSanitizesContent(t *testing.T) {
	env := newTestEnv(t)
	alice := createTestUser(t, env.db, "alice")

	blog, err := env.blogs.Create(alice.ID, &models.CreateBlogRequest{
		Title:   "t",
		Content: `safe <script>alert(1)</script> text`,
	})
	require.NoError(t, err)
	assert.NotContains(t, blog.Content, "<script>")
}

func TestCreateWithMediaRejectedBatchLeavesNoBlog(t *testing.T) {
	env := newTestEnv(t)
	alice := createTestUser(t, env.db, "alice")

	_, err := env.blogs.CreateWithMedia(alice.ID,
		&models.CreateBlogRequest{Title: "t", Content: "c"},
		[]UploadFile{uploadFileOf("bad.exe", 10)})
	assert.Equal(t, KindBadRequest, KindOf(err))

	assert.Equal(t, int64(0), countRows(t, env.db, &models.Blog{}, ""))
	assert.Equal(t, int64(0), countRows(t, env.db, &models.Media{}, ""))
	assert.Empty(t, listUploadDir(t, env.uploadDir))
}

func TestCreateWithMedia(t *testing.T) {
	env := newTestEnv(t)
	alice := createTestUser(t, env.db, "alice")

	blog, err := env.blogs.CreateWithMedia(alice.ID,
		&models.CreateBlogRequest{Title: "t", Content: "c"},
		[]UploadFile{uploadFileOf("pic.jpg", 10)})
	require.NoError(t, err)

	media, err := env.media.ByBlog(blog.ID)
	require.NoError(t, err)
	assert.Len(t, media, 1)
	assert.Len(t, listUploadDir(t, env.uploadDir), 1)
}

func TestUpdateBlog(t *testing.T) {
	env := newTestEnv(t)
	alice := createTestUser(t, env.db, "alice")
	blog := createTestBlog(t, env.db, alice.ID, "original")

	newTitle := "updated"
	updated, err := env.blogs.Update(blog.ID, &models.UpdateBlogRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Title)
	assert.Equal(t, blog.Content, updated.Content)

	_, err = env.blogs.Update(9999, &models.UpdateBlogRequest{Title: &newTitle})
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestGetByIDHiddenReadsAsNotFound(t *testing.T) {
	env := newTestEnv(t)
	alice := createTestUser(t, env.db, "alice")
	blog := createTestBlog(t, env.db, alice.ID, "post")

	_, err := env.blogs.GetByID(blog.ID)
	require.NoError(t, err)

	_, err = env.blogs.UpdateStatus(blog.ID, models.BlogStatusHidden)
	require.NoError(t, err)

	_, err = env.blogs.GetByID(blog.ID)
	assert.Equal(t, KindNotFound, KindOf(err))

	// Owner-facing flows still reach the hidden blog, so it can be edited,
	// deleted, or have media attached.
	fetched, err := env.blogs.GetForOwner(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BlogStatusHidden, fetched.Status)

	_, err = env.blogs.GetForOwner(9999)
	assert.Equal(t, KindNotFound, KindOf(err))
}
