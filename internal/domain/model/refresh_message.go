package model

// RefreshMessage asks the worker to recompute and store the forecast of a profile
type RefreshMessage struct {
	ProfileID string `json:"profileId"`
	RequestID string `json:"requestId"`
}
