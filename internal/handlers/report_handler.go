package handlers

import (
	"net/http"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/asifnewaz/blogsphere/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// ReportHandler handles HTTP requests related to reports
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterReportRoutes registers report-related routes
func (h *ReportHandler) RegisterReportRoutes(g *echo.Group) {
	g.POST("/reports", h.CreateReport)
}

// CreateReport files a report against a blog or a user
func (h *ReportHandler) CreateReport(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	report, err := h.reportService.Create(currentUserID, &req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": report.ID})
}
