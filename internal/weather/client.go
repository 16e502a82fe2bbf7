package weather

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "weather-dashboard/weather"

// Client fetches reports for a city, serving repeated requests from the cache
// while they are fresh.
type Client struct {
	provider Provider
	cache    Cache
}

// NewClient creates a new Client.
func NewClient(provider Provider, cache Cache) *Client {
	return &Client{
		provider: provider,
		cache:    cache,
	}
}

// Fetch returns the report for city. The boolean is false when no data could
// be retrieved; the failure has already been logged and is never cached.
func (c *Client) Fetch(ctx context.Context, city string) (*Report, bool) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "weather.Client.Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("city", city))

	if c.cache != nil {
		if report, ok := c.cache.Get(city); ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			log.Printf("DEBUG: cache hit for %s (fetched at %s)", city, report.FetchedAt.Format("15:04:05"))
			return &report, true
		}
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	if c.provider == nil {
		log.Printf("ERROR: no weather provider configured; cannot fetch %s", city)
		span.SetStatus(codes.Error, "no provider configured")
		return nil, false
	}

	report, err := c.provider.Forecast(ctx, city)
	if err != nil {
		log.Printf("provider %s forecast failed for %s: %v", c.provider.Name(), city, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider fetch failed")
		return nil, false
	}

	if c.cache != nil {
		c.cache.Set(city, report)
	}
	return &report, true
}
