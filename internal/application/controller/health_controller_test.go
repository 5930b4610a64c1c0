package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"skydry-api/internal/domain/model"
)

type fakeHealthUseCase model.HealthStatus

func (f fakeHealthUseCase) CheckHealth(context.Context) model.HealthResponse {
	return model.HealthResponse{Status: model.HealthStatus(f)}
}

func TestCheckHealth(t *testing.T) {
	for status, code := range map[model.HealthStatus]int{
		model.StatusUp:   http.StatusOK,
		model.StatusDown: http.StatusServiceUnavailable,
	} {
		e := echo.New()
		NewHealthController(e.Group("/skydry"), fakeHealthUseCase(status)).InitHealthRoutes()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/skydry/health", nil))

		assert.Equal(t, code, rec.Code)
		assert.Contains(t, rec.Body.String(), string(status))
	}
}
