package handlers

import (
	"net/http"
	"strconv"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/asifnewaz/blogsphere/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// BlogHandler handles HTTP requests related to blogs
type BlogHandler struct {
	blogService    *services.BlogService
	feedService    *services.FeedService
	cascadeService *services.CascadeService
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(blogService *services.BlogService, feedService *services.FeedService, cascadeService *services.CascadeService) *BlogHandler {
	return &BlogHandler{
		blogService:    blogService,
		feedService:    feedService,
		cascadeService: cascadeService,
	}
}

// RegisterBlogRoutes registers blog-related routes
func (h *BlogHandler) RegisterBlogRoutes(g *echo.Group) {
	g.POST("/blogs", h.CreateBlog)
	g.GET("/blogs/feed", h.GetFeed)
	g.GET("/blogs/explore", h.GetExplore)
	g.GET("/blogs/me", h.GetMyBlogs)
	g.GET("/blogs/me/count", h.GetMyBlogCount)
	g.GET("/blogs/:id", h.GetBlog)
	g.PUT("/blogs/:id", h.UpdateBlog)
	g.DELETE("/blogs/:id", h.DeleteBlog)
}

// CreateBlog publishes a new blog, with an optional multipart media batch
// under the "files" field
func (h *BlogHandler) CreateBlog(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	files, closeFiles, err := formFiles(c, "files")
	if err != nil {
		return err
	}
	defer closeFiles()

	blog, err := h.blogService.CreateWithMedia(currentUserID, &req, files)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, blog)
}

// GetBlog returns a single blog; HIDDEN blogs read as not found
func (h *BlogHandler) GetBlog(c echo.Context) error {
	blogID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	blog, err := h.blogService.GetByID(blogID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, blog)
}

// UpdateBlog applies a partial edit; only the owner or an admin may edit
func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	blogID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	// Owner-facing fetch: a HIDDEN blog must stay editable by its owner.
	existing, err := h.blogService.GetForOwner(blogID)
	if err != nil {
		return toHTTPError(err)
	}
	if existing.UserID != currentUserID && !isAdmin(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You do not own this blog")
	}

	var req models.UpdateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blog, err := h.blogService.Update(blogID, &req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, blog)
}

// DeleteBlog runs the full deletion cascade; only the owner or an admin
func (h *BlogHandler) DeleteBlog(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	blogID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	existing, err := h.blogService.GetForOwner(blogID)
	if err != nil {
		return toHTTPError(err)
	}
	if existing.UserID != currentUserID && !isAdmin(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You do not own this blog")
	}

	if err := h.cascadeService.DeleteBlog(blogID); err != nil {
		return toHTTPError(err)
	}
	h.feedService.InvalidateExplore()
	return c.NoContent(http.StatusNoContent)
}

// GetFeed returns the viewer's paginated feed
func (h *BlogHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, pageSize := parsePagination(c)
	blogs, total, err := h.feedService.Feed(currentUserID, page, pageSize)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"blogs": blogs, "total": total, "page": page, "page_size": pageSize})
}

// GetExplore returns the public ACTIVE listing
func (h *BlogHandler) GetExplore(c echo.Context) error {
	page, pageSize := parsePagination(c)
	blogs, total, err := h.feedService.Explore(page, pageSize)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"blogs": blogs, "total": total, "page": page, "page_size": pageSize})
}

// GetMyBlogs returns the viewer's own ACTIVE blogs
func (h *BlogHandler) GetMyBlogs(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, pageSize := parsePagination(c)
	blogs, total, err := h.feedService.MyBlogs(currentUserID, page, pageSize)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"blogs": blogs, "total": total, "page": page, "page_size": pageSize})
}

// GetMyBlogCount returns how many ACTIVE blogs the viewer has authored
func (h *BlogHandler) GetMyBlogCount(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	count, err := h.feedService.MyBlogCount(currentUserID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

func parseID(c echo.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID")
	}
	return uint(id), nil
}

func parsePagination(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}
	return page, pageSize
}
