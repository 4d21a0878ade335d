package unitrates

import "testing"

func TestAxisFormat(t *testing.T) {
	cost := Axis{MaxDigits: 4, MaxDecimals: 2, ValueFormat: "${{value}}"}
	quantity := Axis{MaxDigits: 4, MaxDecimals: 1, TrimZeros: true}

	tests := []struct {
		axis Axis
		v    float64
		want string
	}{
		{cost, 2.5, "$2.50"},
		{cost, 0.125, "$0.13"},
		{cost, 10, "$10.00"},
		{quantity, 3, "3"},
		{quantity, 1.25, "1.3"},
		{quantity, 0.4, "0.4"},
		{DefaultAxis("miles"), 7, "7.00"},
	}
	for _, tt := range tests {
		if got := tt.axis.Format(tt.v); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestAxisRound(t *testing.T) {
	a := Axis{MaxDecimals: 2}
	if got := a.Round(0.1 + 0.2); got != 0.3 {
		t.Errorf("Round(0.1+0.2) = %v, want 0.3", got)
	}
	if got := a.Round(2.499); got != 2.5 {
		t.Errorf("Round(2.499) = %v, want 2.5", got)
	}
}

func TestAxisFits(t *testing.T) {
	a := Axis{MaxDigits: 2, MaxDecimals: 1}
	tests := []struct {
		v    float64
		want bool
	}{
		{0, true},
		{0.5, true},
		{99.9, true},
		{100, false},
		{1.25, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := a.Fits(tt.v); got != tt.want {
			t.Errorf("Fits(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
