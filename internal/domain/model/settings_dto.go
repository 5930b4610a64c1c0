package model

import "skydry-api/internal/domain/entity"

// PreferencesRequest updates the preferences. Omitted fields keep their stored value.
type PreferencesRequest struct {
	WorkStart  *string  `json:"workStart" example:"08:00"`
	WorkEnd    *string  `json:"workEnd" example:"19:00"`
	Preference *float64 `json:"preference" example:"0.5"`
}

// Apply returns current with the fields present in the request replaced
func (r PreferencesRequest) Apply(current entity.Preferences) entity.Preferences {
	if r.WorkStart != nil {
		current.WorkStart = *r.WorkStart
	}
	if r.WorkEnd != nil {
		current.WorkEnd = *r.WorkEnd
	}
	if r.Preference != nil {
		current.Preference = *r.Preference
	}
	return current
}

type PreferencesResponse struct {
	entity.Preferences
	Mode string `json:"mode"`
}

// LocationRequest carries the device coordinates. Omitting both selects the default location.
type LocationRequest struct {
	Lat *float64 `json:"lat" example:"22.5431"`
	Lon *float64 `json:"lon" example:"114.0579"`
}
