package settings

import (
	"errors"
	"fmt"
	"regexp"

	"skydry-api/internal/domain/entity"
	"skydry-api/pkg/util/numberutils"
)

var (
	ErrInvalidPreferences = errors.New("invalid preferences")
	ErrInvalidLocation    = errors.New("invalid location")

	clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// ValidatePreferences checks the work window and the preference bias.
// The window is compared as "HH:MM" strings, so it cannot wrap past midnight.
func ValidatePreferences(preferences entity.Preferences) error {
	if !clockPattern.MatchString(preferences.WorkStart) {
		return fmt.Errorf("%w: workStart %q is not a HH:MM time", ErrInvalidPreferences, preferences.WorkStart)
	}
	if !clockPattern.MatchString(preferences.WorkEnd) {
		return fmt.Errorf("%w: workEnd %q is not a HH:MM time", ErrInvalidPreferences, preferences.WorkEnd)
	}
	if preferences.WorkStart > preferences.WorkEnd {
		return fmt.Errorf("%w: workStart %s is after workEnd %s", ErrInvalidPreferences, preferences.WorkStart, preferences.WorkEnd)
	}
	if !numberutils.IsFinite(preferences.Preference) || preferences.Preference < 0 || preferences.Preference > 1 {
		return fmt.Errorf("%w: preference %v is outside [0,1]", ErrInvalidPreferences, preferences.Preference)
	}
	return nil
}

// ValidateCoordinates rejects latitudes and longitudes outside the globe
func ValidateCoordinates(lat, lon float64) error {
	if !numberutils.IsFinite(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidLocation, lat)
	}
	if !numberutils.IsFinite(lon) || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidLocation, lon)
	}
	return nil
}

// DescribePreference names the drying mode selected by the preference slider
func DescribePreference(preference float64) string {
	switch {
	case preference < 0.3:
		return "Safety mode: prefers lower humidity and less cloud cover"
	case preference > 0.7:
		return "Speed mode: prefers higher temperature and stronger wind"
	default:
		return "Balanced mode: weighs safety and speed equally"
	}
}
