package weather

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeDays() []ForecastDay {
	return []ForecastDay{
		{Date: "2024-06-03", MaxTempC: 34, MinTempC: 27, AvgTempC: 30.2, Condition: "Sunny", ChanceOfRain: 0},
		{Date: "2024-06-04", MaxTempC: 28, MinTempC: 20, AvgTempC: 24, Condition: "Patchy rain possible", ChanceOfRain: 71},
		{Date: "2024-06-05", MaxTempC: 30.5, MinTempC: 22.1, AvgTempC: 26, Condition: "Heavy rain", ChanceOfRain: 89},
	}
}

func TestWeekdayLabel(t *testing.T) {
	got, err := WeekdayLabel("2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, "Monday", got)

	_, err = WeekdayLabel("03/06/2024")
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func TestSummarize_SeriesAreAlignedAndChronological(t *testing.T) {
	summary, err := Summarize(threeDays(), Celsius)
	require.NoError(t, err)

	require.Len(t, summary.Cards, 3)
	assert.Equal(t, 3, summary.Chart.Len())
	assert.Len(t, summary.Chart.Max, 3)
	assert.Len(t, summary.Chart.Min, 3)

	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday"}, summary.Chart.Labels)
	assert.Equal(t, []float64{34, 28, 30.5}, summary.Chart.Max)
	assert.Equal(t, []float64{27, 20, 22.1}, summary.Chart.Min)
}

func TestSummarize_ConvertsAndMapsEachDay(t *testing.T) {
	summary, err := Summarize(threeDays(), Fahrenheit)
	require.NoError(t, err)

	card := summary.Cards[1]
	assert.Equal(t, "Tuesday", card.Weekday)
	assert.Equal(t, "🌦️", card.Icon)
	assert.Equal(t, 82.4, card.Max)
	assert.Equal(t, 68.0, card.Min)
	assert.Equal(t, 75.2, card.Avg)
	assert.Equal(t, 71, card.ChanceOfRain)

	assert.Equal(t, FallbackIcon, summary.Cards[2].Icon)
	assert.Equal(t, []float64{93.2, 82.4, 86.9}, summary.Chart.Max)
}

func TestSummarize_InvalidDate(t *testing.T) {
	days := threeDays()
	days[2].Date = "not-a-date"

	_, err := Summarize(days, Celsius)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func TestSummarize_Empty(t *testing.T) {
	summary, err := Summarize(nil, Celsius)
	require.NoError(t, err)
	assert.Empty(t, summary.Cards)
	assert.Equal(t, 0, summary.Chart.Len())
}
