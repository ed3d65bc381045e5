package services

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/asifnewaz/blogsphere/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	maxFilesPerUpload = 5
	maxTotalBytes     = 10 << 20 // 10MB aggregate per upload call
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".mp4":  true,
}

// UploadFile is one file of an upload batch, decoupled from the transport's
// multipart types.
type UploadFile struct {
	Filename    string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// MediaService persists uploaded files under the configured upload root and
// records one metadata row per file. Uploads are all-or-nothing per call:
// a failure part-way deletes every file already written in the call and
// rolls back the call's rows.
type MediaService struct {
	db        *gorm.DB
	uploadDir string
	baseURL   string
	logger    *zap.Logger
}

// NewMediaService creates a new MediaService
func NewMediaService(db *gorm.DB, uploadDir, baseURL string, logger *zap.Logger) *MediaService {
	return &MediaService{
		db:        db,
		uploadDir: uploadDir,
		baseURL:   strings.TrimRight(baseURL, "/"),
		logger:    logger,
	}
}

// UploadToBlog validates and stores a batch of files for a blog, returning
// the created media rows in input order. All bounds are checked before any
// write: at most 5 files, 10MB aggregate, extensions jpg/jpeg/png/mp4.
// Zero-byte entries are discarded; required+empty is a BadRequest.
func (s *MediaService) UploadToBlog(blog *models.Blog, files []UploadFile, required bool) ([]models.Media, error) {
	normalized, err := normalizeFiles(files, required)
	if err != nil {
		return nil, err
	}
	if len(normalized) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload folder: %w", err)
	}

	var storedPaths []string
	var saved []models.Media
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewMediaRepository(tx)
		for _, file := range normalized {
			name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
			target := filepath.Join(s.uploadDir, name)
			if err := writeFile(target, file.Reader); err != nil {
				return fmt.Errorf("save file: %w", err)
			}
			// The row is inserted only after the file is durably written, so
			// a committed row always has a backing file.
			storedPaths = append(storedPaths, target)

			media := models.Media{
				BlogID:    blog.ID,
				URL:       s.baseURL + "/uploads/" + name,
				MediaType: file.ContentType,
			}
			if err := repo.Create(&media); err != nil {
				return err
			}
			saved = append(saved, media)
		}
		return nil
	})
	if err != nil {
		s.cleanupFiles(storedPaths)
		return nil, err
	}
	return saved, nil
}

// ByBlog lists a blog's media in insertion order.
func (s *MediaService) ByBlog(blogID uint) ([]models.Media, error) {
	return repositories.NewMediaRepository(s.db).ListByBlog(blogID)
}

// FirstByBlog returns the blog's oldest media item, NotFound when none.
func (s *MediaService) FirstByBlog(blogID uint) (*models.Media, error) {
	media, err := repositories.NewMediaRepository(s.db).FirstByBlog(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("Media not found")
		}
		return nil, err
	}
	return media, nil
}

// DeleteMedia deletes the row, then best-effort deletes the stored file. A
// file that cannot be removed is a tolerated storage leak, not an error.
func (s *MediaService) DeleteMedia(mediaID uint) error {
	repo := repositories.NewMediaRepository(s.db)
	media, err := repo.GetByID(mediaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound("Media not found")
		}
		return err
	}
	if err := repo.Delete(media.ID); err != nil {
		return err
	}
	s.RemoveStoredFile(media.URL)
	return nil
}

// DeleteByBlog removes all media rows for a blog, then best-effort deletes
// each stored file. Used by the deletion cascade.
func (s *MediaService) DeleteByBlog(blogID uint) error {
	repo := repositories.NewMediaRepository(s.db)
	mediaList, err := repo.ListByBlog(blogID)
	if err != nil {
		return err
	}
	if len(mediaList) == 0 {
		return nil
	}
	if err := repo.DeleteByBlog(blogID); err != nil {
		return err
	}
	for _, media := range mediaList {
		s.RemoveStoredFile(media.URL)
	}
	return nil
}

// RemoveStoredFile best-effort deletes the file a stored URL points at.
// Only the final path element is used, and the resolved path must stay
// under the upload root; anything else is ignored.
func (s *MediaService) RemoveStoredFile(rawURL string) {
	target, ok := s.storedFilePath(rawURL)
	if !ok {
		return
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("stored file removal failed", zap.String("path", target), zap.Error(err))
	}
}

func (s *MediaService) storedFilePath(rawURL string) (string, bool) {
	if rawURL == "" {
		return "", false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	name := path.Base(parsed.Path)
	if name == "." || name == "/" || name == "" {
		return "", false
	}

	root, err := filepath.Abs(s.uploadDir)
	if err != nil {
		return "", false
	}
	target := filepath.Join(root, name)
	if !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return "", false
	}
	return target, true
}

func (s *MediaService) cleanupFiles(paths []string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("upload rollback cleanup failed", zap.String("path", p), zap.Error(err))
		}
	}
}

func normalizeFiles(files []UploadFile, required bool) ([]UploadFile, error) {
	var nonEmpty []UploadFile
	for _, file := range files {
		if file.Size > 0 {
			nonEmpty = append(nonEmpty, file)
		}
	}

	if len(nonEmpty) == 0 {
		if required {
			return nil, ErrBadRequest("No files uploaded")
		}
		return nil, nil
	}

	if len(nonEmpty) > maxFilesPerUpload {
		return nil, ErrBadRequest("Maximum 5 files allowed")
	}

	var totalSize int64
	for _, file := range nonEmpty {
		totalSize += file.Size
	}
	if totalSize > maxTotalBytes {
		return nil, ErrBadRequest("Total media size exceeds 10MB")
	}

	for _, file := range nonEmpty {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedExtensions[ext] {
			return nil, ErrBadRequest("Only jpg, jpeg, png and mp4 files are allowed")
		}
	}

	return nonEmpty, nil
}

func writeFile(target string, src io.Reader) error {
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		_ = os.Remove(target)
		return err
	}
	return out.Close()
}
