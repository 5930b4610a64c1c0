package entity

type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorGreen  Color = "green"
)

const (
	RecommendationRain       = "not recommended – rain"
	RecommendationFast       = "suitable – dries fast"
	RecommendationSlow       = "use caution – dries slowly"
	RecommendationUnsuitable = "unsuitable – dry indoors"
)

// HourlySample is one hour of the payload, copied out of the parallel arrays.
type HourlySample struct {
	Time                     string   `json:"time"`
	Temperature              *float64 `json:"temperature"`
	RelativeHumidity         *float64 `json:"humidity"`
	WindSpeed                *float64 `json:"windSpeed"`
	CloudCover               *float64 `json:"cloudCover"`
	Precipitation            *float64 `json:"precipitation"`
	VapourPressureDeficit    *float64 `json:"vpd"`
	PrecipitationProbability *float64 `json:"precipitationProbability"`
}

// ForecastDisplay carries the pre-formatted strings shown to users.
type ForecastDisplay struct {
	MaxTemp            string `json:"maxTemp"`
	MinTemp            string `json:"minTemp"`
	AvgTemp            string `json:"avgTemp"`
	AvgHumidity        string `json:"avgHumidity"`
	AvgWind            string `json:"avgWind"`
	AvgCloud           string `json:"avgCloud"`
	AvgVpd             string `json:"avgVpd"`
	MaxRainProb        string `json:"maxRainProb"`
	TotalPrecipitation string `json:"totalPrecipitation"`
	DryingIndex        string `json:"dryingIndex"`
	WorkHoursTemp      string `json:"workHoursTemp"`
	WorkHoursHumidity  string `json:"workHoursHumidity"`
}

// DayForecast is the aggregated view of a single forecast day.
type DayForecast struct {
	Date               string          `json:"date"`
	MaxTemp            float64         `json:"maxTemp"`
	MinTemp            float64         `json:"minTemp"`
	AvgTemp            float64         `json:"avgTemp"`
	AvgHumidity        float64         `json:"avgHumidity"`
	AvgWind            float64         `json:"avgWind"`
	AvgCloud           float64         `json:"avgCloud"`
	AvgVpd             float64         `json:"avgVpd"`
	MaxRainProb        float64         `json:"maxRainProb"`
	TotalPrecipitation float64         `json:"totalPrecipitation"`
	DryingIndex        float64         `json:"dryingIndex"`
	Recommendation     string          `json:"recommendation"`
	Color              Color           `json:"color"`
	RainAlert          bool            `json:"rainAlert"`
	HourlyData         []HourlySample  `json:"hourlyData"`
	WorkHoursData      []HourlySample  `json:"workHoursData"`
	Display            ForecastDisplay `json:"display"`
}
