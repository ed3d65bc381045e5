package handlers

import (
	"net/http"

	"github.com/asifnewaz/blogsphere/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	interactionService *services.InteractionService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(interactionService *services.InteractionService) *LikeHandler {
	return &LikeHandler{interactionService: interactionService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/blogs/:id/likes", h.LikeBlog)
	g.DELETE("/blogs/:id/likes", h.UnlikeBlog)
	g.GET("/blogs/:id/likes/status", h.GetLikeStatus)
}

// LikeBlog likes a blog on behalf of the authenticated user
func (h *LikeHandler) LikeBlog(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	blogID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	like, err := h.interactionService.AddLike(blogID, currentUserID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, like)
}

// UnlikeBlog removes the authenticated user's like from a blog
func (h *LikeHandler) UnlikeBlog(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	blogID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.interactionService.RemoveLike(blogID, currentUserID); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetLikeStatus reports whether the user liked the blog and its like count
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	blogID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	liked, likeCount, err := h.interactionService.LikeStatus(blogID, currentUserID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": liked, "like_count": likeCount})
}
