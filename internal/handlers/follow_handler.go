package handlers

import (
	"net/http"

	"github.com/asifnewaz/blogsphere/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followService *services.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService *services.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
	g.GET("/users/:id/follow/counts", h.GetFollowCounts)
}

// FollowUser follows a user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	targetID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.followService.Follow(currentUserID, targetID); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"following": true})
}

// UnfollowUser unfollows a user; not following is a silent no-op
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	targetID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.followService.Unfollow(currentUserID, targetID); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"following": false})
}

// GetFollowCounts returns follower and following totals for a user
func (h *FollowHandler) GetFollowCounts(c echo.Context) error {
	targetID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	followers, following, err := h.followService.Counts(targetID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"followers": followers, "following": following})
}
