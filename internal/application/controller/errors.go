package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"skydry-api/internal/domain/usecase/forecast"
	"skydry-api/internal/domain/usecase/settings"
	"skydry-api/pkg/log"
)

// errorResponse writes err as {"error": ...} with the status matching its kind
func errorResponse(c echo.Context, err error) error {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.Errorf("Request %s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, settings.ErrInvalidPreferences),
		errors.Is(err, settings.ErrInvalidLocation),
		errors.Is(err, forecast.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, forecast.ErrNothingToExport):
		return http.StatusNotFound
	case errors.Is(err, forecast.ErrRefreshUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
