package handlers

import (
	"net/http"

	"github.com/asifnewaz/blogsphere/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// MediaHandler handles HTTP requests related to blog media
type MediaHandler struct {
	mediaService *services.MediaService
	blogService  *services.BlogService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaService *services.MediaService, blogService *services.BlogService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, blogService: blogService}
}

// RegisterMediaRoutes registers media-related routes
func (h *MediaHandler) RegisterMediaRoutes(g *echo.Group) {
	g.POST("/blogs/:id/media", h.UploadMedia)
	g.GET("/blogs/:id/media", h.GetMediaByBlog)
	g.DELETE("/media/:id", h.DeleteMedia)
}

// UploadMedia stores a multipart batch ("files" field) for a blog
func (h *MediaHandler) UploadMedia(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	blogID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	// Owner-facing fetch: attaching media to a HIDDEN blog is allowed.
	blog, err := h.blogService.GetForOwner(blogID)
	if err != nil {
		return toHTTPError(err)
	}
	if blog.UserID != currentUserID && !isAdmin(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You do not own this blog")
	}

	files, closeFiles, err := formFiles(c, "files")
	if err != nil {
		return err
	}
	defer closeFiles()

	media, err := h.mediaService.UploadToBlog(blog, files, true)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, media)
}

// GetMediaByBlog lists a blog's media in insertion order
func (h *MediaHandler) GetMediaByBlog(c echo.Context) error {
	blogID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	media, err := h.mediaService.ByBlog(blogID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, media)
}

// DeleteMedia deletes a media row and best-effort removes the stored file
func (h *MediaHandler) DeleteMedia(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	mediaID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.mediaService.DeleteMedia(mediaID); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
