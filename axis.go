package unitrates

import (
	"math"
	"strconv"
	"strings"
)

const valuePlaceholder = "{{value}}"

// Axis describes one dimension of a double number line: its units label,
// how many digits and decimals an entry may have, and how values render.
// Axis values are immutable once constructed and may be shared between the
// number line, its markers, and its marker editor.
type Axis struct {
	UnitsLabel  string
	MaxDigits   int
	MaxDecimals int
	TrimZeros   bool
	ValueFormat string // must contain {{value}}; "" means "{{value}}"
}

// DefaultAxis returns an axis with 4 digits, 2 decimals, zeros kept.
func DefaultAxis(unitsLabel string) Axis {
	return Axis{
		UnitsLabel:  unitsLabel,
		MaxDigits:   4,
		MaxDecimals: 2,
		ValueFormat: valuePlaceholder,
	}
}

// Round rounds v to the axis's decimal precision.
func (a Axis) Round(v float64) float64 {
	return roundTo(v, a.MaxDecimals)
}

// Format renders v at the axis's precision through ValueFormat.
func (a Axis) Format(v float64) string {
	s := strconv.FormatFloat(a.Round(v), 'f', a.MaxDecimals, 64)
	if a.TrimZeros && strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	format := a.ValueFormat
	if format == "" {
		format = valuePlaceholder
	}
	return strings.ReplaceAll(format, valuePlaceholder, s)
}

// Fits reports whether v can be entered on this axis: at most MaxDigits
// integer digits and no more than MaxDecimals decimal places.
func (a Axis) Fits(v float64) bool {
	if v < 0 {
		return false
	}
	if a.Round(v) != v {
		return false
	}
	digits := 0
	for w := math.Floor(v); w >= 1; w = math.Floor(w / 10) {
		digits++
	}
	return digits <= a.MaxDigits
}
