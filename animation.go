package unitrates

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Slide eases a position between two points, used by views for motion that
// is not model-driven (the marker editor sliding to a new marker, or to its
// out-of-range spot). Movables never use it; they travel at constant speed.
//
// Call Update(dt) each frame and read Position.
type Slide struct {
	Position Vec2
	Done     bool

	tweens [2]*gween.Tween
}

// NewSlide creates a slide from from to to over duration seconds.
func NewSlide(from, to Vec2, duration float32, fn ease.TweenFunc) *Slide {
	if fn == nil {
		fn = ease.OutQuad
	}
	s := &Slide{Position: from}
	s.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	s.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	return s
}

// Update advances the slide by dt seconds and returns the new position.
func (s *Slide) Update(dt float32) Vec2 {
	if s.Done {
		return s.Position
	}
	x, doneX := s.tweens[0].Update(dt)
	y, doneY := s.tweens[1].Update(dt)
	s.Position = Vec2{float64(x), float64(y)}
	s.Done = doneX && doneY
	return s.Position
}
