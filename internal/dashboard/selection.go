package dashboard

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// ErrInvalidSelection is returned when a selection cannot be used for a fetch.
var ErrInvalidSelection = errors.New("invalid selection")

// Selection is the user's current choice of country, city and display unit.
// City must belong to Country's city set.
type Selection struct {
	Country string              `json:"country" validate:"required"`
	City    string              `json:"city" validate:"required"`
	Unit    weather.DisplayUnit `json:"unit"`
}

// newValidator builds a validator that also enforces the city/country
// invariant against catalog.
func newValidator(catalog *Catalog) *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		sel := sl.Current().Interface().(Selection)
		if sel.Country == "" || sel.City == "" {
			return
		}
		if !catalog.HasCity(sel.Country, sel.City) {
			sl.ReportError(sel.City, "City", "City", "incountry", sel.Country)
		}
	}, Selection{})
	return v
}

// parseUnit treats an empty unit as Celsius, the default radio choice.
func parseUnit(raw string) (weather.DisplayUnit, error) {
	if raw == "" {
		return weather.Celsius, nil
	}
	return weather.ParseDisplayUnit(raw)
}

func invalidSelection(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
}
