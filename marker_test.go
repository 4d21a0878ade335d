package unitrates

import "testing"

func TestMarkerConflictsWith(t *testing.T) {
	a := NewMarker(4, 2, CreatorEditor, MarkerOptions{})
	tests := []struct {
		name string
		b    *Marker
		want bool
	}{
		{"same numerator", NewMarker(4, 3, CreatorEditor, MarkerOptions{}), true},
		{"same denominator", NewMarker(5, 2, CreatorEditor, MarkerOptions{}), true},
		{"both differ", NewMarker(6, 3, CreatorEditor, MarkerOptions{}), false},
		// Exact comparison: values that differ only by float error do not conflict.
		{"float error", NewMarker(0.1+0.2, 7, CreatorEditor, MarkerOptions{}), false},
	}
	for _, tt := range tests {
		if got := a.ConflictsWith(tt.b); got != tt.want {
			t.Errorf("%s: ConflictsWith = %v, want %v", tt.name, got, tt.want)
		}
	}

	c := NewMarker(0.3, 9, CreatorEditor, MarkerOptions{})
	d := NewMarker(roundTo(0.1+0.2, 2), 8, CreatorEditor, MarkerOptions{})
	if !c.ConflictsWith(d) {
		t.Error("values rounded to the same precision should conflict")
	}
}

func TestMarkerPrecedenceOf(t *testing.T) {
	creators := []Creator{CreatorEditor, CreatorScale, CreatorQuestion, CreatorRace}
	for i, ci := range creators {
		for j, cj := range creators {
			a := NewMarker(1, 1, ci, MarkerOptions{})
			b := NewMarker(1, 1, cj, MarkerOptions{})
			want := 0
			if i > j {
				want = 1
			} else if i < j {
				want = -1
			}
			if got := a.PrecedenceOf(b); got != want {
				t.Errorf("%v.PrecedenceOf(%v) = %d, want %d", ci, cj, got, want)
			}
		}
	}
}

func TestMarkerDefaults(t *testing.T) {
	m := NewMarker(1, 2, CreatorQuestion, MarkerOptions{IsMajor: true})
	if m.Creator() != CreatorQuestion {
		t.Errorf("Creator = %v, want question", m.Creator())
	}
	if m.Color() != ColorQuestionMark {
		t.Errorf("Color = %v, want question color", m.Color())
	}
	if m.Erasable() {
		t.Error("Erasable should default to false")
	}

	minor := NewMarker(1, 2, CreatorEditor, MarkerOptions{})
	if minor.Color() != ColorMinorMarker {
		t.Errorf("minor Color = %v, want %v", minor.Color(), ColorMinorMarker)
	}

	custom := Color{1, 0, 1, 1}
	if got := NewMarker(1, 2, CreatorEditor, MarkerOptions{Color: &custom}).Color(); got != custom {
		t.Errorf("custom Color = %v, want %v", got, custom)
	}
}

func TestCreatorString(t *testing.T) {
	want := map[Creator]string{
		CreatorEditor:   "editor",
		CreatorScale:    "scale",
		CreatorQuestion: "question",
		CreatorRace:     "race",
		Creator(99):     "unknown",
	}
	for c, s := range want {
		if c.String() != s {
			t.Errorf("Creator(%d).String() = %q, want %q", c, c.String(), s)
		}
	}
}
