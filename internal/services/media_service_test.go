package services

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadFileOf(name string, size int) UploadFile {
	content := bytes.Repeat([]byte("a"), size)
	return UploadFile{
		Filename:    name,
		Size:        int64(size),
		ContentType: "application/octet-stream",
		Reader:      bytes.NewReader(content),
	}
}

func listUploadDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

func TestUploadToBlog(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	blog := createTestBlog(t, env.db, owner.ID, "first post")

	saved, err := env.media.UploadToBlog(blog, []UploadFile{
		uploadFileOf("one.jpg", 100),
		uploadFileOf("two.png", 200),
	}, true)
	require.NoError(t, err)
	require.Len(t, saved, 2)

	// Stored names are generated, but the original extension survives.
	assert.True(t, strings.HasSuffix(saved[0].URL, ".jpg"))
	assert.True(t, strings.HasSuffix(saved[1].URL, ".png"))
	for _, m := range saved {
		assert.Equal(t, blog.ID, m.BlogID)
		assert.True(t, strings.HasPrefix(m.URL, "http://localhost:8080/uploads/"))
	}

	assert.Len(t, listUploadDir(t, env.uploadDir), 2)
	assert.Equal(t, int64(2), countRows(t, env.db, &models.Media{}, "blog_id = ?", blog.ID))
}

func TestUploadRejectsTooManyFiles(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	blog := createTestBlog(t, env.db, owner.ID, "first post")

	files := make([]UploadFile, 6)
	for i := range files {
		files[i] = uploadFileOf("f.jpg", 10)
	}

	_, err := env.media.UploadToBlog(blog, files, true)
	assert.Equal(t, KindBadRequest, KindOf(err))

	// Rejection happens before any write.
	assert.Empty(t, listUploadDir(t, env.uploadDir))
	assert.Equal(t, int64(0), countRows(t, env.db, &models.Media{}, ""))
}

func TestUploadAggregateSizeBound(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	blog := createTestBlog(t, env.db, owner.ID, "first post")

	_, err := env.media.UploadToBlog(blog, []UploadFile{
		uploadFileOf("big.mp4", 6<<20),
		uploadFileOf("bigger.mp4", 6<<20),
	}, true)
	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Empty(t, listUploadDir(t, env.uploadDir))

	saved, err := env.media.UploadToBlog(blog, []UploadFile{
		uploadFileOf("fits.mp4", 9<<20),
	}, true)
	require.NoError(t, err)
	assert.Len(t, saved, 1)
	assert.Len(t, listUploadDir(t, env.uploadDir), 1)
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	blog := createTestBlog(t, env.db, owner.ID, "first post")

	_, err := env.media.UploadToBlog(blog, []UploadFile{uploadFileOf("script.exe", 10)}, true)
	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Empty(t, listUploadDir(t, env.uploadDir))
}

func TestUploadDiscardsEmptyFiles(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	blog := createTestBlog(t, env.db, owner.ID, "first post")

	saved, err := env.media.UploadToBlog(blog, []UploadFile{
		uploadFileOf("empty.jpg", 0),
		uploadFileOf("real.jpg", 50),
	}, true)
	require.NoError(t, err)
	assert.Len(t, saved, 1)

	// All entries empty: BadRequest when required, no-op otherwise.
	_, err = env.media.UploadToBlog(blog, []UploadFile{uploadFileOf("empty.jpg", 0)}, true)
	assert.Equal(t, KindBadRequest, KindOf(err))

	saved, err = env.media.UploadToBlog(blog, []UploadFile{uploadFileOf("empty.jpg", 0)}, false)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestByBlogAndFirstByBlog(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	blog := createTestBlog(t, env.db, owner.ID, "first post")

	_, err := env.media.FirstByBlog(blog.ID)
	assert.Equal(t, KindNotFound, KindOf(err))

	saved, err := env.media.UploadToBlog(blog, []UploadFile{
		uploadFileOf("one.jpg", 10),
		uploadFileOf("two.jpg", 10),
	}, true)
	require.NoError(t, err)

	first, err := env.media.FirstByBlog(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, saved[0].ID, first.ID)

	all, err := env.media.ByBlog(blog.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, saved[0].ID, all[0].ID)
	assert.Equal(t, saved[1].ID, all[1].ID)
}

func TestDeleteMediaRemovesRowAndFile(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	blog := createTestBlog(t, env.db, owner.ID, "first post")

	saved, err := env.media.UploadToBlog(blog, []UploadFile{uploadFileOf("one.jpg", 10)}, true)
	require.NoError(t, err)

	require.NoError(t, env.media.DeleteMedia(saved[0].ID))
	assert.Empty(t, listUploadDir(t, env.uploadDir))
	assert.Equal(t, int64(0), countRows(t, env.db, &models.Media{}, ""))

	err = env.media.DeleteMedia(saved[0].ID)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestRemoveStoredFileStaysUnderUploadRoot(t *testing.T) {
	env := newTestEnv(t)

	// A file that lives next to the upload root must be unreachable no
	// matter what the URL path says.
	outside := filepath.Join(filepath.Dir(env.uploadDir), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	env.media.RemoveStoredFile("http://localhost:8080/uploads/../outside.txt")
	env.media.RemoveStoredFile("http://localhost:8080/../outside.txt")

	_, err := os.Stat(outside)
	assert.NoError(t, err)
}
