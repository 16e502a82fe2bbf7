package weather

import (
	"context"
)

// ForecastDays is the fixed forecast horizon requested from providers.
const ForecastDays = 3

// Provider abstracts the upstream weather source.
// A provider makes exactly one attempt per call; it does not retry.
type Provider interface {
	Name() string
	Forecast(ctx context.Context, city string) (Report, error)
}

// Cache is the contract for the time-boxed per-city report cache.
// Get only returns entries that are still inside the freshness window.
type Cache interface {
	Get(city string) (Report, bool)
	Set(city string, report Report)
}
