package handlers

import (
	"errors"
	"net/http"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/asifnewaz/blogsphere/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext extracts the authenticated user ID placed in the
// context by the JWT middleware, zero when absent.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserID
}

func isAdmin(c echo.Context) bool {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	return ok && claims != nil && claims.Role == string(models.UserRoleAdmin)
}

// toHTTPError maps a structured service error to the transport status code.
func toHTTPError(err error) error {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case services.KindNotFound:
			return echo.NewHTTPError(http.StatusNotFound, svcErr.Message)
		case services.KindConflict:
			return echo.NewHTTPError(http.StatusConflict, svcErr.Message)
		case services.KindBadRequest:
			return echo.NewHTTPError(http.StatusBadRequest, svcErr.Message)
		case services.KindForbidden:
			return echo.NewHTTPError(http.StatusForbidden, svcErr.Message)
		}
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// formFiles converts the multipart form files under the given field into the
// service-level upload batch. The returned closer releases every opened file.
func formFiles(c echo.Context, field string) ([]services.UploadFile, func(), error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, func() {}, nil
	}

	headers := form.File[field]
	files := make([]services.UploadFile, 0, len(headers))
	var closers []func()
	closeAll := func() {
		for _, close := range closers {
			close()
		}
	}

	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, echo.NewHTTPError(http.StatusBadRequest, "Invalid file upload")
		}
		closers = append(closers, func() { _ = src.Close() })
		files = append(files, services.UploadFile{
			Filename:    header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Reader:      src,
		})
	}
	return files, closeAll, nil
}
