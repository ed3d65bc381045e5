package handlers

import (
	"net/http"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/asifnewaz/blogsphere/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	interactionService *services.InteractionService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(interactionService *services.InteractionService) *CommentHandler {
	return &CommentHandler{interactionService: interactionService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/blogs/:id/comments", h.CreateComment)
	g.GET("/blogs/:id/comments", h.GetCommentsByBlog)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreateComment creates a new comment on a blog
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	blogID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.interactionService.AddComment(blogID, currentUserID, req.Content)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByBlog retrieves all comments for a specific blog
func (h *CommentHandler) GetCommentsByBlog(c echo.Context) error {
	blogID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	comments, err := h.interactionService.CommentsByBlog(blogID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// DeleteComment deletes a comment and fixes up the parent blog's counter;
// allowed for the comment author, the blog owner, and admins
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	commentID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.interactionService.RemoveComment(commentID, currentUserID, isAdmin(c)); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
