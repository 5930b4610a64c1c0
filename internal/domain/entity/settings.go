package entity

const (
	DefaultWorkStart  = "08:00"
	DefaultWorkEnd    = "19:00"
	DefaultPreference = 0.5

	DefaultLatitude  = 22.5229
	DefaultLongitude = 114.0545
	DefaultAddress   = "Hong Kong (default)"
)

// Preferences bias the drying index. Preference 0 favours safety, 1 favours speed.
type Preferences struct {
	WorkStart  string  `json:"workStart"`
	WorkEnd    string  `json:"workEnd"`
	Preference float64 `json:"preference"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		WorkStart:  DefaultWorkStart,
		WorkEnd:    DefaultWorkEnd,
		Preference: DefaultPreference,
	}
}

type Location struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Address   string  `json:"address"`
	IsDefault bool    `json:"isDefault"`
}

func DefaultLocation() Location {
	return Location{
		Lat:       DefaultLatitude,
		Lon:       DefaultLongitude,
		Address:   DefaultAddress,
		IsDefault: true,
	}
}
