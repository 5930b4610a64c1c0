package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skydry-api/internal/application/middleware"
	"skydry-api/internal/domain/entity"
	"skydry-api/internal/domain/model"
	"skydry-api/internal/domain/usecase/settings"
)

type SettingsController struct {
	api     *echo.Group
	useCase settings.UseCase
}

func NewSettingsController(api *echo.Group, useCase settings.UseCase) *SettingsController {
	return &SettingsController{api: api, useCase: useCase}
}

// InitSettingsRoutes initializes settings routes
func (controller *SettingsController) InitSettingsRoutes() {
	controller.api.GET("/settings/preferences", controller.GetPreferences)
	controller.api.PUT("/settings/preferences", controller.SavePreferences)
	controller.api.DELETE("/settings/preferences", controller.ResetPreferences)
	controller.api.GET("/settings/location", controller.GetLocation)
	controller.api.PUT("/settings/location", controller.SaveLocation)
}

// GetPreferences godoc
// @Summary Get preferences
// @Description Stored work window and drying bias of the profile, or the defaults
// @Tags settings
// @Produce json
// @Param X-Profile-ID header string false "Profile id"
// @Success 200 {object} model.PreferencesResponse "Preferences"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/preferences [get]
func (controller *SettingsController) GetPreferences(c echo.Context) error {
	preferences, err := controller.useCase.GetPreferences(c.Request().Context(), middleware.ProfileID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, preferencesResponse(preferences))
}

// SavePreferences godoc
// @Summary Save preferences
// @Description Update the work window and drying bias. Omitted fields keep their stored value.
// @Tags settings
// @Accept json
// @Produce json
// @Param X-Profile-ID header string false "Profile id"
// @Param preferences body model.PreferencesRequest true "Preferences"
// @Success 200 {object} model.PreferencesResponse "Saved preferences"
// @Failure 400 {object} map[string]string "Invalid preferences"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/preferences [put]
func (controller *SettingsController) SavePreferences(c echo.Context) error {
	var request model.PreferencesRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	ctx := c.Request().Context()
	profileID := middleware.ProfileID(c)

	current, err := controller.useCase.GetPreferences(ctx, profileID)
	if err != nil {
		return errorResponse(c, err)
	}

	saved, err := controller.useCase.SavePreferences(ctx, profileID, request.Apply(current))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, preferencesResponse(saved))
}

// ResetPreferences godoc
// @Summary Reset preferences
// @Description Restore the default work window and drying bias
// @Tags settings
// @Produce json
// @Param X-Profile-ID header string false "Profile id"
// @Success 200 {object} model.PreferencesResponse "Default preferences"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/preferences [delete]
func (controller *SettingsController) ResetPreferences(c echo.Context) error {
	preferences, err := controller.useCase.ResetPreferences(c.Request().Context(), middleware.ProfileID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, preferencesResponse(preferences))
}

// GetLocation godoc
// @Summary Get location
// @Description Stored location of the profile, or the default location
// @Tags settings
// @Produce json
// @Param X-Profile-ID header string false "Profile id"
// @Success 200 {object} entity.Location "Location"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/location [get]
func (controller *SettingsController) GetLocation(c echo.Context) error {
	location, err := controller.useCase.GetLocation(c.Request().Context(), middleware.ProfileID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, location)
}

// SaveLocation godoc
// @Summary Resolve and save location
// @Description Reverse geocode the coordinates and store them. Without coordinates the default location is returned and nothing is stored.
// @Tags settings
// @Accept json
// @Produce json
// @Param X-Profile-ID header string false "Profile id"
// @Param location body model.LocationRequest true "Coordinates"
// @Success 200 {object} entity.Location "Resolved location"
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/location [put]
func (controller *SettingsController) SaveLocation(c echo.Context) error {
	var request model.LocationRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	location, err := controller.useCase.ResolveLocation(c.Request().Context(), middleware.ProfileID(c), request.Lat, request.Lon)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, location)
}

func preferencesResponse(preferences entity.Preferences) model.PreferencesResponse {
	return model.PreferencesResponse{
		Preferences: preferences,
		Mode:        settings.DescribePreference(preferences.Preference),
	}
}
