package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-dashboard/internal/dashboard"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

type stubFetcher struct {
	report *weather.Report
	calls  int
}

func (s *stubFetcher) Fetch(_ context.Context, _ string) (*weather.Report, bool) {
	s.calls++
	if s.report == nil {
		return nil, false
	}
	return s.report, true
}

func delhiReport() *weather.Report {
	return &weather.Report{
		Location: weather.Location{Name: "Delhi", Country: "India", LocalTime: "2024-06-03 14:05"},
		Current: weather.CurrentConditions{
			Condition: "Sunny",
			IconURL:   "https://cdn.weatherapi.com/weather/64x64/day/113.png",
			TempC:     31.5,
			Humidity:  40,
			WindKph:   13,
		},
		Forecast: []weather.ForecastDay{
			{Date: "2024-06-03", MaxTempC: 34, MinTempC: 27, AvgTempC: 30.2, Condition: "Sunny"},
			{Date: "2024-06-04", MaxTempC: 28, MinTempC: 20, AvgTempC: 24, Condition: "Patchy rain possible", ChanceOfRain: 71},
			{Date: "2024-06-05", MaxTempC: 30.5, MinTempC: 22.1, AvgTempC: 26, Condition: "Heavy rain", ChanceOfRain: 89},
		},
	}
}

func newTestApp(fetcher dashboard.Fetcher) *fiber.App {
	return NewApp(dashboard.NewController(dashboard.DefaultCatalog(), fetcher))
}

func doGet(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func TestIndex_IdleNarrowsCities(t *testing.T) {
	fetcher := &stubFetcher{report: delhiReport()}
	app := newTestApp(fetcher)

	resp, body := doGet(t, app, "/?country=India")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, body, "Global Weather Dashboard")
	assert.Contains(t, body, `<option value="Delhi" selected>`)
	assert.Contains(t, body, `<option value="Bangalore">`)
	assert.NotContains(t, body, `value="London"`)
	assert.NotContains(t, body, "Current Weather in")
	assert.Equal(t, 0, fetcher.calls)
}

func TestIndex_CountryChangeWithoutScript(t *testing.T) {
	fetcher := &stubFetcher{report: delhiReport()}
	app := newTestApp(fetcher)

	_, body := doGet(t, app, "/")
	assert.Contains(t, body, `formaction="/"`)

	// the form resubmitted to / with a city left over from the previous country
	resp, body := doGet(t, app, "/?country=India&city=New+York&unit=Fahrenheit")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<option value="India" selected>`)
	assert.Contains(t, body, `<option value="Delhi" selected>`)
	assert.Contains(t, body, `value="Fahrenheit" checked`)
	assert.NotContains(t, body, `value="New York"`)
	assert.Equal(t, 0, fetcher.calls)
}

func TestWeatherPage_Rendered(t *testing.T) {
	app := newTestApp(&stubFetcher{report: delhiReport()})

	resp, body := doGet(t, app, "/weather?country=India&city=Delhi&unit=Celsius")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, body, "Current Weather in Delhi, India")
	assert.Contains(t, body, "31.5°C")
	assert.Contains(t, body, "<details>")
	assert.Contains(t, body, "🌦️ Tuesday")
	assert.Contains(t, body, "Max: 28° | Min: 20°")
	assert.Contains(t, body, "/chart?country=India&city=Delhi&unit=Celsius")
	assert.NotContains(t, body, "Air Quality Index")
}

func TestWeatherPage_Fahrenheit(t *testing.T) {
	app := newTestApp(&stubFetcher{report: delhiReport()})

	_, body := doGet(t, app, "/weather?country=India&city=Delhi&unit=Fahrenheit")
	assert.Contains(t, body, "88.7°F")
}

func TestWeatherPage_Failed(t *testing.T) {
	app := newTestApp(&stubFetcher{})

	resp, body := doGet(t, app, "/weather?country=India&city=Delhi&unit=Celsius")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Could not retrieve data. Try again later.")
	assert.NotContains(t, body, "3-Day Forecast")
}

func TestWeatherPage_InvalidSelection(t *testing.T) {
	fetcher := &stubFetcher{report: delhiReport()}
	app := newTestApp(fetcher)

	for _, target := range []string{
		"/weather?country=India&city=London",
		"/weather?country=India&city=Delhi&unit=Kelvin",
		"/weather",
	} {
		resp, _ := doGet(t, app, target)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)
	}
	assert.Equal(t, 0, fetcher.calls)
}

func TestChart(t *testing.T) {
	app := newTestApp(&stubFetcher{report: delhiReport()})

	resp, body := doGet(t, app, "/chart?country=India&city=Delhi&unit=Celsius")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Max Temp")
	assert.Contains(t, body, "Min Temp")
}

func TestChart_NoData(t *testing.T) {
	app := newTestApp(&stubFetcher{})

	resp, _ := doGet(t, app, "/chart?country=India&city=Delhi")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestAPIWeather(t *testing.T) {
	app := newTestApp(&stubFetcher{report: delhiReport()})

	resp, body := doGet(t, app, "/api/v1/weather?country=India&city=Delhi&unit=fahrenheit")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view struct {
		State     string `json:"state"`
		Selection struct {
			City string `json:"city"`
			Unit string `json:"unit"`
		} `json:"selection"`
		Current struct {
			Temperature string `json:"temperature"`
		} `json:"current"`
		Cards []json.RawMessage `json:"cards"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &view))
	assert.Equal(t, "rendered", view.State)
	assert.Equal(t, "Delhi", view.Selection.City)
	assert.Equal(t, "Fahrenheit", view.Selection.Unit)
	assert.Equal(t, "88.7°F", view.Current.Temperature)
	assert.Len(t, view.Cards, 3)
}

func TestAPIWeather_Failed(t *testing.T) {
	app := newTestApp(&stubFetcher{})

	resp, body := doGet(t, app, "/api/v1/weather?country=UK&city=London")
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var view map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &view))
	assert.Equal(t, "failed", view["state"])
	assert.Equal(t, dashboard.FailureNotice, view["notice"])
}

func TestAPICatalog(t *testing.T) {
	app := newTestApp(&stubFetcher{})

	resp, body := doGet(t, app, "/api/v1/catalog")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var countries []dashboard.Country
	require.NoError(t, json.Unmarshal([]byte(body), &countries))
	require.Len(t, countries, 4)
	assert.Equal(t, "USA", countries[0].Name)
}

func TestHealth(t *testing.T) {
	app := newTestApp(&stubFetcher{})

	resp, body := doGet(t, app, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"status":"ok"`)
}
