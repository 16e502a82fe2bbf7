package weather

// FallbackIcon is shown for any condition label missing from the table.
const FallbackIcon = "🌡️"

var conditionIcons = map[string]string{
	"Sunny":                "☀️",
	"Clear":                "🌙",
	"Partly cloudy":        "⛅",
	"Cloudy":               "☁️",
	"Rain":                 "🌧️",
	"Patchy rain possible": "🌦️",
	"Snow":                 "❄️",
	"Mist":                 "🌫️",
	"Thunder":              "⛈️",
	"Overcast":             "☁️",
}

// IconFor returns the glyph for an exact provider condition label.
func IconFor(label string) string {
	if icon, ok := conditionIcons[label]; ok {
		return icon
	}
	return FallbackIcon
}
