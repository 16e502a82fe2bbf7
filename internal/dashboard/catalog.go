package dashboard

// Country is a selectable country and the cities offered for it.
type Country struct {
	Name   string   `json:"name"`
	Cities []string `json:"cities"`
}

// Catalog is the fixed, ordered set of countries and their cities.
type Catalog struct {
	countries []Country
}

// NewCatalog creates a catalog from the given countries, keeping their order.
func NewCatalog(countries ...Country) *Catalog {
	return &Catalog{countries: countries}
}

// DefaultCatalog returns the countries and cities offered by the dashboard.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Country{Name: "USA", Cities: []string{"New York", "Los Angeles", "Chicago"}},
		Country{Name: "India", Cities: []string{"Delhi", "Mumbai", "Bangalore"}},
		Country{Name: "UK", Cities: []string{"London", "Manchester", "Birmingham"}},
		Country{Name: "Australia", Cities: []string{"Sydney", "Melbourne", "Brisbane"}},
	)
}

// Countries returns the full catalog in display order.
func (c *Catalog) Countries() []Country {
	out := make([]Country, len(c.countries))
	copy(out, c.countries)
	return out
}

// Cities returns the cities of country, or false if the country is unknown.
func (c *Catalog) Cities(country string) ([]string, bool) {
	for _, ct := range c.countries {
		if ct.Name == country {
			return ct.Cities, true
		}
	}
	return nil, false
}

// HasCity reports whether city belongs to country.
func (c *Catalog) HasCity(country, city string) bool {
	cities, ok := c.Cities(country)
	if !ok {
		return false
	}
	for _, name := range cities {
		if name == city {
			return true
		}
	}
	return false
}

// first returns the first country and its first city, or empty strings for
// an empty catalog.
func (c *Catalog) first() (string, string) {
	if len(c.countries) == 0 {
		return "", ""
	}
	ct := c.countries[0]
	if len(ct.Cities) == 0 {
		return ct.Name, ""
	}
	return ct.Name, ct.Cities[0]
}
