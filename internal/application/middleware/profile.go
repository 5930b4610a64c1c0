package middleware

import (
	"regexp"

	"github.com/labstack/echo/v4"
)

const (
	ProfileHeader  = "X-Profile-ID"
	ProfileQuery   = "profile"
	DefaultProfile = "default"

	profileContextKey = "profileID"
)

var profilePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

// ProfileResolver stores the caller profile id in the echo context. The header wins
// over the query parameter; missing or malformed ids resolve to DefaultProfile.
func ProfileResolver() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profileID := c.Request().Header.Get(ProfileHeader)
			if profileID == "" {
				profileID = c.QueryParam(ProfileQuery)
			}
			if !profilePattern.MatchString(profileID) {
				profileID = DefaultProfile
			}
			c.Set(profileContextKey, profileID)
			return next(c)
		}
	}
}

// ProfileID returns the profile resolved by ProfileResolver
func ProfileID(c echo.Context) string {
	if profileID, ok := c.Get(profileContextKey).(string); ok && profileID != "" {
		return profileID
	}
	return DefaultProfile
}
