package weather

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a forecast day carries a date that is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid forecast date")

const forecastDateLayout = "2006-01-02"

// DayCard holds the display fields for one forecast day, already converted
// to the selected unit.
type DayCard struct {
	Date         string  `json:"date"`
	Weekday      string  `json:"weekday"`
	Icon         string  `json:"icon"`
	Avg          float64 `json:"avg"`
	Max          float64 `json:"max"`
	Min          float64 `json:"min"`
	ChanceOfRain int     `json:"chanceOfRain"`
}

// ChartSeries are the parallel, index-aligned sequences used to plot the
// temperature trend. All three slices share the length and order of the
// forecast they were built from.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Max    []float64 `json:"max"`
	Min    []float64 `json:"min"`
}

// Len returns the number of points in the series.
func (s ChartSeries) Len() int {
	return len(s.Labels)
}

// Summary is the result of summarizing a forecast for display.
type Summary struct {
	Unit  DisplayUnit `json:"unit"`
	Cards []DayCard   `json:"cards"`
	Chart ChartSeries `json:"chart"`
}

// WeekdayLabel parses an ISO date and returns the full weekday name.
func WeekdayLabel(date string) (string, error) {
	t, err := time.Parse(forecastDateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t.Weekday().String(), nil
}

// SummarizeDay converts a single forecast day into its display card.
func SummarizeDay(day ForecastDay, unit DisplayUnit) (DayCard, error) {
	weekday, err := WeekdayLabel(day.Date)
	if err != nil {
		return DayCard{}, err
	}

	return DayCard{
		Date:         day.Date,
		Weekday:      weekday,
		Icon:         IconFor(day.Condition),
		Avg:          Convert(day.AvgTempC, unit),
		Max:          Convert(day.MaxTempC, unit),
		Min:          Convert(day.MinTempC, unit),
		ChanceOfRain: day.ChanceOfRain,
	}, nil
}

// Summarize builds the day cards and chart series for a forecast, preserving
// input order.
func Summarize(days []ForecastDay, unit DisplayUnit) (Summary, error) {
	summary := Summary{
		Unit:  unit,
		Cards: make([]DayCard, 0, len(days)),
		Chart: ChartSeries{
			Labels: make([]string, 0, len(days)),
			Max:    make([]float64, 0, len(days)),
			Min:    make([]float64, 0, len(days)),
		},
	}

	for _, day := range days {
		card, err := SummarizeDay(day, unit)
		if err != nil {
			return Summary{}, err
		}

		summary.Cards = append(summary.Cards, card)
		summary.Chart.Labels = append(summary.Chart.Labels, card.Weekday)
		summary.Chart.Max = append(summary.Chart.Max, card.Max)
		summary.Chart.Min = append(summary.Chart.Min, card.Min)
	}

	return summary, nil
}
