package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"

	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

const (
	headerAPIKey = "x-rapidapi-key"
	headerHost   = "x-rapidapi-host"
)

// WeatherAPIProvider implements the weather.Provider interface for WeatherAPI.com
// served through RapidAPI.
type WeatherAPIProvider struct {
	name    string
	cfg     config.ProviderConfig
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(client *http.Client, cfg config.ProviderConfig) *WeatherAPIProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		// Client errors such as an unknown city do not mean the upstream is unhealthy.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errUnexpected)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), burst)
	}

	return &WeatherAPIProvider{
		name: "weatherapi",
		cfg:  cfg,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Limiter: limiter,
		},
		circuit: cb,
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

// forecastURL builds the forecast endpoint URL with the fixed query parameters.
func (p *WeatherAPIProvider) forecastURL(city string) string {
	values := url.Values{}
	values.Set("q", city)
	values.Set("days", strconv.Itoa(weather.ForecastDays))
	values.Set("aqi", "yes")
	values.Set("alerts", "no")

	return fmt.Sprintf("%s/forecast.json?%s", strings.TrimRight(p.cfg.BaseURL, "/"), values.Encode())
}

func (p *WeatherAPIProvider) Forecast(ctx context.Context, city string) (weather.Report, error) {
	ctx, span := otel.Tracer("weather-dashboard/providers").Start(ctx, "weatherapi.forecast")
	defer span.End()
	span.SetAttributes(attribute.String("city", city))

	buildRequest := func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodGet, p.forecastURL(city), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set(headerAPIKey, p.cfg.APIKey)
		req.Header.Set(headerHost, p.cfg.Host)
		return req, nil
	}

	resp, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "weatherapi request failed")
		return weather.Report{}, err
	}
	defer resp.Body.Close()

	var payload forecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode response")
		return weather.Report{}, fmt.Errorf("failed to parse weatherapi response: %w", err)
	}

	return payload.toReport(time.Now().UTC()), nil
}

// forecastPayload mirrors the subset of the forecast.json response we use.
type forecastPayload struct {
	Location struct {
		Name      string `json:"name"`
		Country   string `json:"country"`
		Localtime string `json:"localtime"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		Humidity  float64 `json:"humidity"`
		WindKph   float64 `json:"wind_kph"`
		Condition struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"condition"`
		AirQuality *struct {
			PM25 float64 `json:"pm2_5"`
			CO   float64 `json:"co"`
			O3   float64 `json:"o3"`
		} `json:"air_quality"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC          float64 `json:"maxtemp_c"`
				MinTempC          float64 `json:"mintemp_c"`
				AvgTempC          float64 `json:"avgtemp_c"`
				DailyChanceOfRain int     `json:"daily_chance_of_rain"`
				Condition         struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

func (f forecastPayload) toReport(fetchedAt time.Time) weather.Report {
	report := weather.Report{
		Location: weather.Location{
			Name:      f.Location.Name,
			Country:   f.Location.Country,
			LocalTime: f.Location.Localtime,
		},
		Current: weather.CurrentConditions{
			Condition: f.Current.Condition.Text,
			IconURL:   iconURL(f.Current.Condition.Icon),
			TempC:     f.Current.TempC,
			Humidity:  f.Current.Humidity,
			WindKph:   f.Current.WindKph,
		},
		Forecast:  make([]weather.ForecastDay, 0, len(f.Forecast.ForecastDay)),
		FetchedAt: fetchedAt,
	}

	// Per-day air quality is ignored; only the current reading is shown.
	if aq := f.Current.AirQuality; aq != nil {
		report.Current.AirQuality = &weather.AirQuality{
			PM25: aq.PM25,
			CO:   aq.CO,
			O3:   aq.O3,
		}
	}

	for _, fd := range f.Forecast.ForecastDay {
		report.Forecast = append(report.Forecast, weather.ForecastDay{
			Date:         fd.Date,
			MaxTempC:     fd.Day.MaxTempC,
			MinTempC:     fd.Day.MinTempC,
			AvgTempC:     fd.Day.AvgTempC,
			Condition:    fd.Day.Condition.Text,
			ChanceOfRain: fd.Day.DailyChanceOfRain,
		})
	}

	return report
}

// iconURL turns the protocol-relative icon path into an absolute URL.
func iconURL(icon string) string {
	if icon == "" || strings.HasPrefix(icon, "http") {
		return icon
	}
	return "https:" + icon
}
