package unitrates

import "github.com/rs/zerolog"

// RaceCar drives at Miles per Hours along a track. Each car has its own
// double number line (miles over hours, miles fixed) and marker editor.
type RaceCar struct {
	Name string

	Miles       *Property[float64]
	Hours       *Property[float64]
	UnitRate    *Property[float64] // miles per hour, derived
	TrackLength *Property[float64]
	Distance    *Property[float64]
	Finished    *Property[bool]

	Line    *DoubleNumberLine
	Editor  *MarkerEditor
	Binding *EditorBinding
}

// RaceCarOptions configures a RaceCar.
type RaceCarOptions struct {
	Miles          float64 // default 50
	Hours          float64 // default 1
	TrackLength    float64 // default 150
	MaxTrackLength float64 // fixed miles range, default 200
	Logger         *zerolog.Logger
}

// NewRaceCar creates a car at the start line.
func NewRaceCar(name string, opts RaceCarOptions) *RaceCar {
	if opts.Miles == 0 {
		opts.Miles = 50
	}
	if opts.Hours == 0 {
		opts.Hours = 1
	}
	if opts.TrackLength == 0 {
		opts.TrackLength = 150
	}
	if opts.MaxTrackLength == 0 {
		opts.MaxTrackLength = 200
	}
	mustf(opts.Hours > 0, "car %q: hours must be positive", name)
	mustf(opts.TrackLength <= opts.MaxTrackLength, "car %q: track longer than the number line", name)

	c := &RaceCar{
		Name:        name,
		Miles:       NewProperty(opts.Miles),
		Hours:       NewProperty(opts.Hours),
		UnitRate:    NewProperty(opts.Miles / opts.Hours),
		TrackLength: NewProperty(opts.TrackLength),
		Distance:    NewProperty(0.0),
		Finished:    NewProperty(false),
	}
	updateRate := func(float64, float64) {
		c.UnitRate.Set(c.Miles.Value() / c.Hours.Value())
	}
	c.Miles.LazyLink(updateRate)
	c.Hours.LazyLink(updateRate)

	milesAxis := Axis{UnitsLabel: "Miles", MaxDigits: 3, MaxDecimals: 1, TrimZeros: true, ValueFormat: valuePlaceholder}
	hoursAxis := Axis{UnitsLabel: "Hours", MaxDigits: 2, MaxDecimals: 2, TrimZeros: true, ValueFormat: valuePlaceholder}
	c.Line = NewDoubleNumberLine(c.UnitRate, DoubleNumberLineOptions{
		Numerator:      milesAxis,
		Denominator:    hoursAxis,
		FixedAxis:      FixedNumerator,
		FixedAxisRange: Range{0, opts.MaxTrackLength},
		IsMajorMarker: func(numerator, denominator float64) bool {
			return isMultiple(denominator, 0.5)
		},
		Logger: opts.Logger,
	})
	c.Editor = NewMarkerEditor(c.UnitRate, milesAxis, hoursAxis)
	c.Binding = BindEditor(c.Editor, c.Line, opts.Logger)

	// A new rate or track sends the car back to the start.
	c.UnitRate.LazyLink(func(float64, float64) { c.ReturnToStart() })
	c.TrackLength.LazyLink(func(float64, float64) { c.ReturnToStart() })
	return c
}

// ReturnToStart puts the car at distance 0, not finished.
func (c *RaceCar) ReturnToStart() {
	c.Distance.Set(0)
	c.Finished.Set(false)
}

// FinishTime is the time in hours the car needs to cover its track.
func (c *RaceCar) FinishTime() float64 {
	return c.TrackLength.Value() / c.UnitRate.Value()
}

// Reset restores rate, track, position, and clears the number line.
func (c *RaceCar) Reset() {
	c.Miles.Reset()
	c.Hours.Reset()
	c.TrackLength.Reset()
	c.ReturnToStart()
	c.Line.Reset()
	c.Editor.Reset()
}

// RaceScene runs one or more cars against a shared clock.
type RaceScene struct {
	Cars []*RaceCar

	// Running is true while the clock advances.
	Running *Property[bool]
	// ElapsedTime is race time in hours.
	ElapsedTime *Property[float64]

	// TimeScale converts real seconds into race hours.
	TimeScale float64

	log zerolog.Logger
}

// NewRaceScene creates a stopped race.
func NewRaceScene(logger *zerolog.Logger, cars ...*RaceCar) *RaceScene {
	mustf(len(cars) > 0, "a race needs at least one car")
	s := &RaceScene{
		Cars:        cars,
		Running:     NewProperty(false),
		ElapsedTime: NewProperty(0.0),
		TimeScale:   0.5,
		log:         loggerOr(logger).With().Str("scene", "race").Logger(),
	}
	restart := func(float64, float64) { s.Restart() }
	for _, c := range cars {
		c.UnitRate.LazyLink(restart)
		c.TrackLength.LazyLink(restart)
	}
	return s
}

// Start runs the clock. A race whose cars have all finished is restarted.
func (s *RaceScene) Start() {
	if s.allFinished() {
		s.Restart()
	}
	s.Running.Set(true)
}

// Pause stops the clock.
func (s *RaceScene) Pause() {
	s.Running.Set(false)
}

// Restart stops the clock and returns every car to the start line.
func (s *RaceScene) Restart() {
	s.Running.Set(false)
	for _, c := range s.Cars {
		c.ReturnToStart()
	}
	s.ElapsedTime.Set(0)
}

func (s *RaceScene) allFinished() bool {
	for _, c := range s.Cars {
		if !c.Finished.Value() {
			return false
		}
	}
	return true
}

// Step advances the race clock by dt real seconds. A car reaching its track
// end finishes and adds a race marker (track length, finish time) to its
// number line.
func (s *RaceScene) Step(dt float64) {
	if !s.Running.Value() {
		return
	}
	t := s.ElapsedTime.Value() + dt*s.TimeScale
	s.ElapsedTime.Set(t)
	for _, c := range s.Cars {
		if c.Finished.Value() {
			continue
		}
		track := c.TrackLength.Value()
		if c.UnitRate.Value()*t < track {
			c.Distance.Set(c.UnitRate.Value() * t)
			continue
		}
		c.Distance.Set(track)
		c.Finished.Set(true)
		m := c.Line.CreateMarker(
			c.Line.NumeratorAxis.Round(track),
			c.Line.DenominatorAxis.Round(c.FinishTime()),
			CreatorRace, false)
		c.Line.AddMarker(m)
		s.log.Debug().Str("car", c.Name).Float64("hours", c.FinishTime()).Msg("finished")
	}
	if s.allFinished() {
		s.Running.Set(false)
	}
}

// Reset resets every car and the clock.
func (s *RaceScene) Reset() {
	s.Running.Set(false)
	for _, c := range s.Cars {
		c.Reset()
	}
	s.ElapsedTime.Set(0)
}
