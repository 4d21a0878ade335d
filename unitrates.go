package unitrates

import "math"

// Vec2 is a 2D vector used for positions, destinations, and offsets
// throughout the model. The coordinate system has its origin at the top-left,
// with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Distance returns the straight-line distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Polar returns a vector of the given magnitude pointing at angle radians.
func Polar(magnitude, angle float64) Vec2 {
	return Vec2{magnitude * math.Cos(angle), magnitude * math.Sin(angle)}
}

// Range is a closed min/max interval.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies inside the range. Endpoints are inside.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Length returns Max - Min.
func (r Range) Length() float64 {
	return r.Max - r.Min
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Default marker colors.
var (
	ColorBlack         = Color{0, 0, 0, 1}
	ColorMajorMarker   = Color{0, 0, 0, 1}
	ColorMinorMarker   = Color{0.5, 0.5, 0.5, 1}
	ColorQuestionMark  = Color{0.13, 0.55, 0.13, 1}
	ColorRaceMarker    = Color{0.85, 0.2, 0.2, 1}
	ColorEditorPending = Color{0.2, 0.4, 0.9, 1}
)

// Creator identifies the subsystem that produced a Marker. Creators are
// totally ordered by precedence: CreatorEditor < CreatorScale <
// CreatorQuestion < CreatorRace.
type Creator uint8

const (
	CreatorEditor   Creator = iota // entered with the marker editor
	CreatorScale                   // placed by a quantity change on the scale
	CreatorQuestion                // produced by a correctly answered question
	CreatorRace                    // produced when a race car finishes
)

// String returns the lowercase creator name.
func (c Creator) String() string {
	switch c {
	case CreatorEditor:
		return "editor"
	case CreatorScale:
		return "scale"
	case CreatorQuestion:
		return "question"
	case CreatorRace:
		return "race"
	default:
		return "unknown"
	}
}

// FixedAxis selects which axis of a DoubleNumberLine has a constant range.
// The other axis's range follows the unit rate.
type FixedAxis uint8

const (
	FixedDenominator FixedAxis = iota // denominator range fixed, numerator scales
	FixedNumerator                    // numerator range fixed, denominator scales
)

// String returns "numerator" or "denominator".
func (a FixedAxis) String() string {
	if a == FixedNumerator {
		return "numerator"
	}
	return "denominator"
}

// linear maps x from [a1, a2] onto [b1, b2].
func linear(a1, a2, b1, b2, x float64) float64 {
	if a2 == a1 {
		return b1
	}
	return b1 + (x-a1)*(b2-b1)/(a2-a1)
}

// roundTo rounds v to the given number of decimal places, half away from zero.
func roundTo(v float64, decimals int) float64 {
	if decimals < 0 {
		return v
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
