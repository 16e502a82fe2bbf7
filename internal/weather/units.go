package weather

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownUnit is returned when a display unit cannot be parsed.
var ErrUnknownUnit = errors.New("unknown display unit")

// DisplayUnit selects how temperatures are shown. Storage is always Celsius.
type DisplayUnit int

const (
	Celsius DisplayUnit = iota
	Fahrenheit
)

// Units lists the selectable display units in presentation order.
var Units = []DisplayUnit{Celsius, Fahrenheit}

func (u DisplayUnit) String() string {
	if u == Fahrenheit {
		return "Fahrenheit"
	}
	return "Celsius"
}

// Symbol returns the single-letter suffix used after the degree sign.
func (u DisplayUnit) Symbol() string {
	return u.String()[:1]
}

// MarshalText lets DisplayUnit travel as "Celsius"/"Fahrenheit" in JSON.
func (u DisplayUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (u *DisplayUnit) UnmarshalText(b []byte) error {
	parsed, err := ParseDisplayUnit(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseDisplayUnit accepts "celsius", "fahrenheit", "c" or "f" in any case.
func ParseDisplayUnit(s string) (DisplayUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "celsius", "c":
		return Celsius, nil
	case "fahrenheit", "f":
		return Fahrenheit, nil
	default:
		return Celsius, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// Convert maps a Celsius value to the selected unit. Celsius is returned
// unchanged; Fahrenheit is rounded to one decimal place from its exact binary
// value, with exact ties going to the even digit.
func Convert(c float64, u DisplayUnit) float64 {
	if u != Fahrenheit {
		return c
	}
	f, _ := strconv.ParseFloat(strconv.FormatFloat(c*9/5+32, 'f', 1, 64), 64)
	return f
}
