package dashboard

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

const (
	chartTitle    = "Daily Max & Min Temperatures"
	maxSeriesName = "Max Temp"
	minSeriesName = "Min Temp"
	maxColor      = "tomato"
	minColor      = "dodgerblue"
)

// Fetcher returns the report for a city, or false when no data is available.
type Fetcher interface {
	Fetch(ctx context.Context, city string) (*weather.Report, bool)
}

// Controller turns selections and fetch results into views. It keeps no
// state between requests; every view is derived from the selection and the
// fetch result alone.
type Controller struct {
	catalog  *Catalog
	fetcher  Fetcher
	validate *validator.Validate
}

// NewController creates a new Controller.
func NewController(catalog *Catalog, fetcher Fetcher) *Controller {
	return &Controller{
		catalog:  catalog,
		fetcher:  fetcher,
		validate: newValidator(catalog),
	}
}

// Catalog returns the catalog backing the selection controls.
func (c *Controller) Catalog() *Catalog {
	return c.catalog
}

// ParseSelection validates raw inputs for a fetch. The city must belong to
// the country.
func (c *Controller) ParseSelection(country, city, unit string) (Selection, error) {
	u, err := parseUnit(unit)
	if err != nil {
		return Selection{}, invalidSelection(err)
	}

	sel := Selection{Country: country, City: city, Unit: u}
	if err := c.validate.Struct(sel); err != nil {
		return Selection{}, invalidSelection(err)
	}
	return sel, nil
}

// SelectionFor narrows raw inputs into a usable selection without failing:
// an unknown country falls back to the first catalog country, a city outside
// the country falls back to that country's first city and an unknown unit
// falls back to Celsius.
func (c *Controller) SelectionFor(country, city, unit string) Selection {
	cities, ok := c.catalog.Cities(country)
	if !ok {
		country, _ = c.catalog.first()
		cities, _ = c.catalog.Cities(country)
	}
	if !c.catalog.HasCity(country, city) {
		city = ""
		if len(cities) > 0 {
			city = cities[0]
		}
	}

	u, err := parseUnit(unit)
	if err != nil {
		u = weather.Celsius
	}
	return Selection{Country: country, City: city, Unit: u}
}

// Idle returns the initial view: selection controls only.
func (c *Controller) Idle(sel Selection) View {
	return View{
		ID:        uuid.NewString(),
		State:     Idle,
		Selection: sel,
		Controls:  c.controls(sel),
	}
}

// HandleFetch is the handler for the user-triggered fetch. It performs one
// fetch and moves the view to Rendered or Failed.
func (c *Controller) HandleFetch(ctx context.Context, sel Selection) View {
	view := c.Idle(sel)

	report, ok := c.fetcher.Fetch(ctx, sel.City)
	if !ok || report == nil {
		log.Printf("INFO: view %s: no data for %s", view.ID, sel.City)
		return c.fail(view)
	}

	if err := c.render(&view, *report, sel.Unit); err != nil {
		log.Printf("ERROR: view %s: cannot render report for %s: %v", view.ID, sel.City, err)
		return c.fail(view)
	}

	log.Printf("DEBUG: view %s rendered for %s in %s", view.ID, sel.City, sel.Unit)
	return view
}

func (c *Controller) fail(view View) View {
	view.State = Failed
	view.Notice = FailureNotice
	view.Current = nil
	view.Cards = nil
	view.Chart = nil
	return view
}

func (c *Controller) render(view *View, report weather.Report, unit weather.DisplayUnit) error {
	summary, err := weather.Summarize(report.Forecast, unit)
	if err != nil {
		return err
	}

	view.State = Rendered
	view.Current = currentPanel(report, unit)

	view.Cards = make([]Card, 0, len(summary.Cards))
	for _, dc := range summary.Cards {
		view.Cards = append(view.Cards, dayCard(dc, unit))
	}

	view.Chart = &Chart{
		Title:  chartTitle,
		YAxis:  fmt.Sprintf("Temp (°%s)", unit.Symbol()),
		Labels: summary.Chart.Labels,
		Series: []Series{
			{Name: maxSeriesName, Color: maxColor, Values: summary.Chart.Max},
			{Name: minSeriesName, Color: minColor, Values: summary.Chart.Min},
		},
	}
	return nil
}

func currentPanel(report weather.Report, unit weather.DisplayUnit) *CurrentPanel {
	cur := report.Current
	panel := &CurrentPanel{
		Header: fmt.Sprintf("%s Current Weather in %s, %s",
			weather.IconFor(cur.Condition), report.Location.Name, report.Location.Country),
		IconURL:     cur.IconURL,
		Condition:   cur.Condition,
		Temperature: formatTemp(weather.Convert(cur.TempC, unit), unit),
		Humidity:    formatNumber(cur.Humidity) + "%",
		Wind:        formatNumber(cur.WindKph) + " km/h",
		LocalTime:   report.Location.LocalTime,
	}
	if aq := cur.AirQuality; aq != nil {
		panel.AirQuality = fmt.Sprintf("PM2.5: %.2f | CO: %.2f | O3: %.2f", aq.PM25, aq.CO, aq.O3)
	}
	return panel
}

func dayCard(dc weather.DayCard, unit weather.DisplayUnit) Card {
	return Card{
		Title:        dc.Icon + " " + dc.Weekday,
		Avg:          formatTemp(dc.Avg, unit),
		MaxMin:       fmt.Sprintf("Max: %s° | Min: %s°", formatNumber(dc.Max), formatNumber(dc.Min)),
		ChanceOfRain: strconv.Itoa(dc.ChanceOfRain) + "%",
	}
}

func (c *Controller) controls(sel Selection) Controls {
	var ctl Controls
	for _, ct := range c.catalog.Countries() {
		ctl.Countries = append(ctl.Countries, Option{Value: ct.Name, Label: ct.Name, Selected: ct.Name == sel.Country})
	}
	cities, _ := c.catalog.Cities(sel.Country)
	for _, city := range cities {
		ctl.Cities = append(ctl.Cities, Option{Value: city, Label: city, Selected: city == sel.City})
	}
	for _, u := range weather.Units {
		ctl.Units = append(ctl.Units, Option{Value: u.String(), Label: u.String(), Selected: u == sel.Unit})
	}
	return ctl
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTemp(v float64, unit weather.DisplayUnit) string {
	return formatNumber(v) + "°" + unit.Symbol()
}
