package entity

// WeatherSource tells whether a payload came from the provider or was synthesized.
type WeatherSource string

const (
	SourceLive WeatherSource = "live"
	SourceMock WeatherSource = "mock"
)

// HourlySeries holds parallel hourly arrays aligned by index. Time entries are
// "YYYY-MM-DDTHH:MM" in the location's timezone; missing samples are nil.
type HourlySeries struct {
	Time                     []string   `json:"time"`
	Temperature              []*float64 `json:"temperature_2m"`
	RelativeHumidity         []*float64 `json:"relative_humidity_2m"`
	WindSpeed                []*float64 `json:"wind_speed_10m"`
	CloudCover               []*float64 `json:"cloud_cover"`
	Precipitation            []*float64 `json:"precipitation"`
	VapourPressureDeficit    []*float64 `json:"vapour_pressure_deficit"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
}

// DailySeries holds parallel daily arrays aligned by index with Time ("YYYY-MM-DD").
type DailySeries struct {
	Time             []string   `json:"time"`
	TemperatureMax   []*float64 `json:"temperature_2m_max"`
	TemperatureMin   []*float64 `json:"temperature_2m_min"`
	WindSpeedMax     []*float64 `json:"wind_speed_10m_max"`
	WindSpeedMin     []*float64 `json:"wind_speed_10m_min"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
}

type WeatherPayload struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Timezone  string        `json:"timezone"`
	Source    WeatherSource `json:"source"`
	Hourly    HourlySeries  `json:"hourly"`
	Daily     DailySeries   `json:"daily"`
}
