// Package units converts between the canonical pound representation used by
// the API and the unit the user chose for display.
package units

import (
	"fmt"
	"math"
	"strings"
)

// PoundsPerKilogram is the conversion factor used everywhere in the client.
const PoundsPerKilogram = 2.20462

// Unit is a display unit for weights
type Unit string

const (
	Pounds    Unit = "lbs"
	Kilograms Unit = "kg"
)

// ParseUnit parses a unit name. Accepts common spellings case-insensitively.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lbs", "lb", "pound", "pounds":
		return Pounds, nil
	case "kg", "kgs", "kilo", "kilos", "kilogram", "kilograms":
		return Kilograms, nil
	default:
		return "", fmt.Errorf("unknown unit '%s' (use lbs or kg)", s)
	}
}

// ToPounds converts a value entered in unit to pounds.
func ToPounds(value float64, unit Unit) float64 {
	if unit == Kilograms {
		return value * PoundsPerKilogram
	}
	return value
}

// ToDisplay converts a canonical pound value to unit.
func ToDisplay(valueLbs float64, unit Unit) float64 {
	if unit == Kilograms {
		return valueLbs / PoundsPerKilogram
	}
	return valueLbs
}

// Round2 rounds to 2 decimal places. Applied to every weight sent to the API.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WirePounds converts a user value to the rounded pound value sent over the wire.
func WirePounds(value float64, unit Unit) float64 {
	return Round2(ToPounds(value, unit))
}

// Format renders a canonical pound value in unit with one decimal, e.g. "102.1 kg".
func Format(valueLbs float64, unit Unit) string {
	return fmt.Sprintf("%.1f %s", ToDisplay(valueLbs, unit), unit)
}

// FormatValue renders a canonical pound value in unit with one decimal and no suffix.
func FormatValue(valueLbs float64, unit Unit) string {
	return fmt.Sprintf("%.1f", ToDisplay(valueLbs, unit))
}
