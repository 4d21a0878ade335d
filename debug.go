package unitrates

import (
	"fmt"

	"github.com/rs/zerolog"
)

// loggerOr returns *l, or a disabled logger when l is nil. Diagnostics are
// always injected through options; there is no package-level logger.
func loggerOr(l *zerolog.Logger) zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return *l
}

// mustf panics with a "unitrates:" prefixed message when cond is false.
// Used for caller contract violations that have no recovery path.
func mustf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("unitrates: "+format, args...))
	}
}

// markerEvent attaches a marker's fields to a log event.
func markerEvent(e *zerolog.Event, m *Marker) *zerolog.Event {
	return e.
		Float64("numerator", m.Numerator.Value()).
		Float64("denominator", m.Denominator.Value()).
		Stringer("creator", m.creator)
}
