package unitrates

// MarkerEditor holds at most one pending numerator and one pending
// denominator. Setting one field to a value inconsistent with the other
// under the current unit rate clears the other. Changing the unit rate
// discards any pending entry.
//
// The editor never creates markers; see EditorBinding.
type MarkerEditor struct {
	Numerator   *Property[NullFloat]
	Denominator *Property[NullFloat]

	unitRate            *Property[float64]
	numeratorDecimals   int
	denominatorDecimals int
	handles             []CallbackHandle
}

// NewMarkerEditor creates an empty editor. Consistency checks round to the
// given axes' decimal precision.
func NewMarkerEditor(unitRate *Property[float64], numerator, denominator Axis) *MarkerEditor {
	mustf(unitRate != nil, "unit rate property is required")
	e := &MarkerEditor{
		Numerator:           NewProperty(Null),
		Denominator:         NewProperty(Null),
		unitRate:            unitRate,
		numeratorDecimals:   numerator.MaxDecimals,
		denominatorDecimals: denominator.MaxDecimals,
	}

	// An entry that can't be derived from the other field orphans it.
	e.handles = append(e.handles,
		e.Numerator.LazyLink(func(n, _ NullFloat) {
			d := e.Denominator.Value()
			if n.Valid && d.Valid && n.Float64 != roundTo(d.Float64*e.unitRate.Value(), e.numeratorDecimals) {
				e.Denominator.Set(Null)
			}
		}),
		e.Denominator.LazyLink(func(d, _ NullFloat) {
			n := e.Numerator.Value()
			if d.Valid && n.Valid && d.Float64 != roundTo(n.Float64/e.unitRate.Value(), e.denominatorDecimals) {
				e.Numerator.Set(Null)
			}
		}),
		unitRate.LazyLink(func(float64, float64) { e.Reset() }),
	)
	return e
}

// SetNumerator enters a numerator.
func (e *MarkerEditor) SetNumerator(v float64) { e.Numerator.Set(Float(v)) }

// SetDenominator enters a denominator.
func (e *MarkerEditor) SetDenominator(v float64) { e.Denominator.Set(Float(v)) }

// IsEmpty reports whether neither field holds a value.
func (e *MarkerEditor) IsEmpty() bool {
	return !e.Numerator.Value().Valid && !e.Denominator.Value().Valid
}

// IsComplete reports whether both fields hold a value.
func (e *MarkerEditor) IsComplete() bool {
	return e.Numerator.Value().Valid && e.Denominator.Value().Valid
}

// Reset clears both fields.
func (e *MarkerEditor) Reset() {
	e.Numerator.Reset()
	e.Denominator.Reset()
}

// Dispose detaches the editor from its unit rate property.
func (e *MarkerEditor) Dispose() {
	for _, h := range e.handles {
		h.Remove()
	}
	e.handles = nil
}
