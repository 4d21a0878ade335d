package unitrates

import (
	"slices"

	"github.com/rs/zerolog"
)

// DoubleNumberLineOptions configures a DoubleNumberLine.
type DoubleNumberLineOptions struct {
	Numerator      Axis
	Denominator    Axis
	FixedAxis      FixedAxis
	FixedAxisRange Range // defaults to [0, 10]

	// IsMajorMarker decides whether a (numerator, denominator) pair is drawn
	// as a major tick. Nil means every marker is major.
	IsMajorMarker func(numerator, denominator float64) bool

	Logger *zerolog.Logger
}

// DoubleNumberLine owns the markers for one rate context. No two markers
// share a numerator or a denominator; conflicts are resolved at insertion
// by creator precedence. The non-fixed axis's range is the fixed axis's
// range scaled by the unit rate.
type DoubleNumberLine struct {
	NumeratorAxis   Axis
	DenominatorAxis Axis

	// NumeratorRange and DenominatorRange are the current axis ranges.
	// Exactly one of them changes with the unit rate.
	NumeratorRange   *Property[Range]
	DenominatorRange *Property[Range]

	// UndoMarker is the marker that Undo removes, or nil.
	UndoMarker *Property[*Marker]

	// MarkerAdded and MarkerRemoved fire after the collection changes.
	MarkerAdded   Emitter[*Marker]
	MarkerRemoved Emitter[*Marker]

	unitRate       *Property[float64]
	fixedAxis      FixedAxis
	fixedAxisRange Range
	isMajorMarker  func(numerator, denominator float64) bool
	markers        []*Marker
	log            zerolog.Logger
	rateHandle     CallbackHandle
}

// NewDoubleNumberLine creates a number line that follows unitRate.
func NewDoubleNumberLine(unitRate *Property[float64], opts DoubleNumberLineOptions) *DoubleNumberLine {
	mustf(unitRate != nil, "unit rate property is required")
	fixedRange := opts.FixedAxisRange
	if fixedRange == (Range{}) {
		fixedRange = Range{0, 10}
	}
	isMajor := opts.IsMajorMarker
	if isMajor == nil {
		isMajor = func(float64, float64) bool { return true }
	}
	l := &DoubleNumberLine{
		NumeratorAxis:   opts.Numerator,
		DenominatorAxis: opts.Denominator,
		UndoMarker:      NewProperty[*Marker](nil),
		unitRate:        unitRate,
		fixedAxis:       opts.FixedAxis,
		fixedAxisRange:  fixedRange,
		isMajorMarker:   isMajor,
		log:             loggerOr(opts.Logger).With().Str("component", "doublenumberline").Logger(),
	}
	num, den := l.rangesFor(unitRate.Value())
	l.NumeratorRange = NewProperty(num)
	l.DenominatorRange = NewProperty(den)
	l.rateHandle = unitRate.LazyLink(func(rate, _ float64) { l.reflow(rate) })
	return l
}

// rangesFor computes both axis ranges for the given unit rate.
func (l *DoubleNumberLine) rangesFor(rate float64) (numerator, denominator Range) {
	r := l.fixedAxisRange
	if l.fixedAxis == FixedNumerator {
		return r, Range{r.Min / rate, r.Max / rate}
	}
	return Range{r.Min * rate, r.Max * rate}, r
}

// reflow recomputes the non-fixed axis range and every marker's non-fixed
// value for a new unit rate. This is not an insertion: no conflict or
// precedence rules run.
func (l *DoubleNumberLine) reflow(rate float64) {
	num, den := l.rangesFor(rate)
	l.NumeratorRange.Set(num)
	l.DenominatorRange.Set(den)
	for _, m := range l.markers {
		if l.fixedAxis == FixedDenominator {
			m.Numerator.Set(m.Denominator.Value() * rate)
		} else {
			m.Denominator.Set(m.Numerator.Value() / rate)
		}
	}
	l.log.Debug().Float64("unitRate", rate).Int("markers", len(l.markers)).Msg("reflow")
}

// Dispose detaches the line from its unit rate property.
func (l *DoubleNumberLine) Dispose() {
	l.rateHandle.Remove()
}

// UnitRate returns the current unit rate.
func (l *DoubleNumberLine) UnitRate() float64 {
	return l.unitRate.Value()
}

// FixedAxis returns which axis has a constant range.
func (l *DoubleNumberLine) FixedAxis() FixedAxis {
	return l.fixedAxis
}

// Markers returns the current markers in insertion order.
// The returned slice MUST NOT be mutated by the caller.
func (l *DoubleNumberLine) Markers() []*Marker {
	return l.markers
}

// NumMarkers returns the number of markers.
func (l *DoubleNumberLine) NumMarkers() int {
	return len(l.markers)
}

// HasMarker reports whether m is on the line.
func (l *DoubleNumberLine) HasMarker(m *Marker) bool {
	return slices.Contains(l.markers, m)
}

// IsMajorMarker applies the line's major-marker rule.
func (l *DoubleNumberLine) IsMajorMarker(numerator, denominator float64) bool {
	return l.isMajorMarker(numerator, denominator)
}

// ConflictingMarker returns the first marker that conflicts with m, or nil.
func (l *DoubleNumberLine) ConflictingMarker(m *Marker) *Marker {
	for _, existing := range l.markers {
		if existing.ConflictsWith(m) {
			return existing
		}
	}
	return nil
}

// AddMarker inserts m unless it conflicts with a marker of strictly higher
// precedence. A conflicting marker of lower or equal precedence is replaced.
// Returns true if m was added.
func (l *DoubleNumberLine) AddMarker(m *Marker) bool {
	mustf(!l.HasMarker(m), "marker is already on the line")
	conflicting := l.ConflictingMarker(m)
	if conflicting != nil {
		if m.PrecedenceOf(conflicting) < 0 {
			markerEvent(l.log.Debug(), m).Stringer("kept", conflicting.creator).Msg("marker rejected")
			return false
		}
		if l.UndoMarker.Value() == conflicting {
			l.UndoMarker.Set(nil)
		}
		l.RemoveMarker(conflicting)
	}
	l.markers = append(l.markers, m)
	markerEvent(l.log.Debug(), m).Msg("marker added")
	l.MarkerAdded.Emit(m)
	return true
}

// RemoveMarker removes m. Panics if m is not on the line.
func (l *DoubleNumberLine) RemoveMarker(m *Marker) {
	i := slices.Index(l.markers, m)
	mustf(i >= 0, "marker is not on the line")
	l.markers = slices.Delete(l.markers, i, i+1)
	l.MarkerRemoved.Emit(m)
}

// SetUndoMarker designates m as the single marker Undo removes. Any previous
// pending undo is discarded.
func (l *DoubleNumberLine) SetUndoMarker(m *Marker) {
	mustf(m == nil || l.HasMarker(m), "undo marker is not on the line")
	l.UndoMarker.Set(m)
}

// Undo removes the undo marker, if any.
func (l *DoubleNumberLine) Undo() {
	m := l.UndoMarker.Value()
	if m == nil {
		return
	}
	l.UndoMarker.Set(nil)
	l.RemoveMarker(m)
}

// Erase removes every erasable marker. The undo marker is cleared first.
func (l *DoubleNumberLine) Erase() {
	l.UndoMarker.Set(nil)
	for _, m := range slices.Clone(l.markers) {
		if m.erasable {
			l.RemoveMarker(m)
		}
	}
}

// Reset removes all markers and clears the undo marker. Axes are kept.
func (l *DoubleNumberLine) Reset() {
	l.UndoMarker.Set(nil)
	for len(l.markers) > 0 {
		l.RemoveMarker(l.markers[len(l.markers)-1])
	}
}

// MarkerIsInRange reports whether both of m's values lie inside the
// current axis ranges.
func (l *DoubleNumberLine) MarkerIsInRange(m *Marker) bool {
	return l.NumeratorRange.Value().Contains(m.Numerator.Value()) &&
		l.DenominatorRange.Value().Contains(m.Denominator.Value())
}

// ModelToViewNumerator maps a numerator onto [0, viewLength].
func (l *DoubleNumberLine) ModelToViewNumerator(numerator, viewLength float64) float64 {
	r := l.NumeratorRange.Value()
	return linear(r.Min, r.Max, 0, viewLength, numerator)
}

// ModelToViewDenominator maps a denominator onto [0, viewLength].
func (l *DoubleNumberLine) ModelToViewDenominator(denominator, viewLength float64) float64 {
	r := l.DenominatorRange.Value()
	return linear(r.Min, r.Max, 0, viewLength, denominator)
}

// CreateMarker builds a marker whose IsMajor flag follows the line's rule.
func (l *DoubleNumberLine) CreateMarker(numerator, denominator float64, creator Creator, erasable bool) *Marker {
	return NewMarker(numerator, denominator, creator, MarkerOptions{
		IsMajor:  l.isMajorMarker(numerator, denominator),
		Erasable: erasable,
	})
}
