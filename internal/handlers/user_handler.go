package handlers

import (
	"net/http"

	"github.com/asifnewaz/blogsphere/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// UserHandler handles user profile and account deletion requests
type UserHandler struct {
	userService    *services.UserService
	cascadeService *services.CascadeService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService, cascadeService *services.CascadeService) *UserHandler {
	return &UserHandler{userService: userService, cascadeService: cascadeService}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/me", h.GetMe)
	g.GET("/users/:id", h.GetUser)
	g.DELETE("/users/:id", h.DeleteUser)
}

// GetMe returns the authenticated user's profile
func (h *UserHandler) GetMe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	user, err := h.userService.GetByID(currentUserID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetUser returns a user profile by ID
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userService.GetByID(userID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser removes an account and everything it owns or participates in;
// only the account holder or an admin may delete
func (h *UserHandler) DeleteUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if userID != currentUserID && !isAdmin(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You cannot delete another account")
	}

	if err := h.cascadeService.DeleteUser(userID); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
