package weather

import (
	"time"
)

// Location identifies the place a report was produced for.
// Values are copied verbatim from the provider response.
type Location struct {
	Name      string `json:"name"`
	Country   string `json:"country"`
	LocalTime string `json:"localtime"`
}

// AirQuality holds the current-moment pollutant readings.
type AirQuality struct {
	PM25 float64 `json:"pm2_5"`
	CO   float64 `json:"co"`
	O3   float64 `json:"o3"`
}

// CurrentConditions is the snapshot of the weather at fetch time.
// Temperatures are always Celsius.
type CurrentConditions struct {
	Condition string  `json:"condition"`
	IconURL   string  `json:"iconUrl"`
	TempC     float64 `json:"tempC"`
	Humidity  float64 `json:"humidity"`
	WindKph   float64 `json:"windKph"`

	// AirQuality is nil when the provider omitted the block.
	AirQuality *AirQuality `json:"airQuality,omitempty"`
}

// ForecastDay is a single day of the forecast. Temperatures are always Celsius.
type ForecastDay struct {
	Date         string  `json:"date"` // YYYY-MM-DD
	MaxTempC     float64 `json:"maxTempC"`
	MinTempC     float64 `json:"minTempC"`
	AvgTempC     float64 `json:"avgTempC"`
	Condition    string  `json:"condition"`
	ChanceOfRain int     `json:"chanceOfRain"`
}

// Report is the unit-agnostic payload returned by a provider for one city.
// Forecast entries are in provider order, which is chronological.
type Report struct {
	Location  Location          `json:"location"`
	Current   CurrentConditions `json:"current"`
	Forecast  []ForecastDay     `json:"forecast"`
	FetchedAt time.Time         `json:"fetchedAt"`
}
