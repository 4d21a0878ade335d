package unitrates

// Marker is one (numerator, denominator) point on a double number line.
// The creator is fixed at construction; numerator and denominator are
// observable so the owning line can reflow them in place when the unit rate
// changes.
type Marker struct {
	Numerator   *Property[float64]
	Denominator *Property[float64]

	creator  Creator
	isMajor  bool
	color    Color
	erasable bool
}

// MarkerOptions holds optional Marker settings.
type MarkerOptions struct {
	IsMajor  bool
	Color    *Color // nil selects the default for the creator and IsMajor
	Erasable bool
}

// NewMarker creates a marker. See MarkerOptions for defaults.
func NewMarker(numerator, denominator float64, creator Creator, opts MarkerOptions) *Marker {
	c := defaultMarkerColor(creator, opts.IsMajor)
	if opts.Color != nil {
		c = *opts.Color
	}
	return &Marker{
		Numerator:   NewProperty(numerator),
		Denominator: NewProperty(denominator),
		creator:     creator,
		isMajor:     opts.IsMajor,
		color:       c,
		erasable:    opts.Erasable,
	}
}

func defaultMarkerColor(creator Creator, major bool) Color {
	switch creator {
	case CreatorQuestion:
		return ColorQuestionMark
	case CreatorRace:
		return ColorRaceMarker
	}
	if major {
		return ColorMajorMarker
	}
	return ColorMinorMarker
}

// Creator returns the subsystem that produced the marker.
func (m *Marker) Creator() Creator { return m.creator }

// IsMajor reports whether the marker is drawn as a major tick.
func (m *Marker) IsMajor() bool { return m.isMajor }

// Color returns the marker's color.
func (m *Marker) Color() Color { return m.color }

// Erasable reports whether Erase removes the marker.
func (m *Marker) Erasable() bool { return m.erasable }

// ConflictsWith reports whether m and other share a numerator or a
// denominator. Values are compared exactly: both sides are produced with the
// same rounding, so visually coincident markers are numerically equal.
func (m *Marker) ConflictsWith(other *Marker) bool {
	return m.Numerator.Value() == other.Numerator.Value() ||
		m.Denominator.Value() == other.Denominator.Value()
}

// PrecedenceOf compares m's creator against other's. It returns 1 if m has
// higher precedence, -1 if lower, and 0 if equal.
func (m *Marker) PrecedenceOf(other *Marker) int {
	switch {
	case m.creator > other.creator:
		return 1
	case m.creator < other.creator:
		return -1
	default:
		return 0
	}
}
