package controller

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"skydry-api/internal/application/middleware"
	"skydry-api/internal/domain/usecase/forecast"
	"skydry-api/internal/domain/usecase/settings"
	"skydry-api/pkg/util/numberutils"
)

type ForecastController struct {
	api     *echo.Group
	useCase forecast.UseCase
}

func NewForecastController(api *echo.Group, useCase forecast.UseCase) *ForecastController {
	return &ForecastController{api: api, useCase: useCase}
}

// InitForecastRoutes initializes forecast routes
func (controller *ForecastController) InitForecastRoutes() {
	controller.api.GET("/forecast", controller.GetForecast)
	controller.api.GET("/forecast/report", controller.GetReport)
	controller.api.GET("/forecast/history", controller.GetHistory)
	controller.api.POST("/forecast/refresh", controller.RefreshAll)
}

// GetForecast godoc
// @Summary Drying forecast
// @Description Five-day drying forecast for the profile. Query values override the stored settings for this request.
// @Tags forecast
// @Produce json
// @Param X-Profile-ID header string false "Profile id"
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Param workStart query string false "Work window start (HH:MM)"
// @Param workEnd query string false "Work window end (HH:MM)"
// @Param preference query number false "0 favours safety, 1 favours speed"
// @Success 200 {object} model.ForecastResponse "Forecast per day"
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /forecast [get]
func (controller *ForecastController) GetForecast(c echo.Context) error {
	query, err := forecastQuery(c)
	if err != nil {
		return errorResponse(c, err)
	}

	response, err := controller.useCase.GetForecast(c.Request().Context(), query)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// GetReport godoc
// @Summary Plain-text forecast report
// @Description Forecast summary ready to copy or share
// @Tags forecast
// @Produce plain
// @Param X-Profile-ID header string false "Profile id"
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Success 200 {string} string "Report"
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 404 {object} map[string]string "No forecast data to export"
// @Router /forecast/report [get]
func (controller *ForecastController) GetReport(c echo.Context) error {
	query, err := forecastQuery(c)
	if err != nil {
		return errorResponse(c, err)
	}

	report, err := controller.useCase.Report(c.Request().Context(), query)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.String(http.StatusOK, report)
}

// GetHistory godoc
// @Summary Stored forecast history
// @Description Daily summaries recorded for the profile, oldest first
// @Tags forecast
// @Produce json
// @Param X-Profile-ID header string false "Profile id"
// @Param fromDate query string false "Date to filter from (YYYY-MM-DD)"
// @Success 200 {array} entity.ForecastRecord "Stored summaries"
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /forecast/history [get]
func (controller *ForecastController) GetHistory(c echo.Context) error {
	records, err := controller.useCase.History(c.Request().Context(), middleware.ProfileID(c), c.QueryParam("fromDate"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// RefreshAll godoc
// @Summary Enqueue refresh of every profile
// @Description Send one refresh message per profile to the refresh queue
// @Tags forecast
// @Produce json
// @Success 202 {object} map[string]string "Request id"
// @Failure 503 {object} map[string]string "Refresh queue not configured"
// @Router /forecast/refresh [post]
func (controller *ForecastController) RefreshAll(c echo.Context) error {
	requestID := uuid.New().String()
	if err := controller.useCase.EnqueueRefreshAll(c.Request().Context(), requestID); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"requestId": requestID})
}

// forecastQuery reads the profile and the optional overrides of the request
func forecastQuery(c echo.Context) (forecast.Query, error) {
	query := forecast.Query{ProfileID: middleware.ProfileID(c)}

	var err error
	if query.Lat, err = numberutils.ParseOptionalFloat(c.QueryParam("lat")); err != nil {
		return query, fmt.Errorf("%w: lat %q", settings.ErrInvalidLocation, c.QueryParam("lat"))
	}
	if query.Lon, err = numberutils.ParseOptionalFloat(c.QueryParam("lon")); err != nil {
		return query, fmt.Errorf("%w: lon %q", settings.ErrInvalidLocation, c.QueryParam("lon"))
	}
	if query.Preference, err = numberutils.ParseOptionalFloat(c.QueryParam("preference")); err != nil {
		return query, fmt.Errorf("%w: preference %q", settings.ErrInvalidPreferences, c.QueryParam("preference"))
	}
	if workStart := c.QueryParam("workStart"); workStart != "" {
		query.WorkStart = &workStart
	}
	if workEnd := c.QueryParam("workEnd"); workEnd != "" {
		query.WorkEnd = &workEnd
	}
	return query, nil
}
