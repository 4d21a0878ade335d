package unitrates

import "math"

// DefaultAnimationSpeed is the movable speed in distance units per second.
const DefaultAnimationSpeed = 400

// AnimationCallbacks are optional hooks for Movable.AnimateTo.
type AnimationCallbacks struct {
	// OnStep is called after each partial step toward the destination.
	OnStep func()
	// OnComplete is called once when the destination is reached.
	OnComplete func()
}

// Movable holds a position that either snaps (MoveTo) or travels at constant
// speed toward a destination across Step calls (AnimateTo). While Dragging is
// true, Step does nothing.
type Movable struct {
	Position *Property[Vec2]

	// Dragging is set by drag listeners while a pointer owns the movable.
	Dragging bool

	// AnimationSpeed is in distance units per second.
	AnimationSpeed float64

	destination Vec2
	onStep      func()
	onComplete  func()
}

// NewMovable creates a movable at position with the default speed.
func NewMovable(position Vec2) *Movable {
	return &Movable{
		Position:       NewProperty(position),
		AnimationSpeed: DefaultAnimationSpeed,
		destination:    position,
	}
}

// Destination returns the current animation target.
func (m *Movable) Destination() Vec2 {
	return m.destination
}

// IsAnimating reports whether Step would move the movable or complete an
// animation.
func (m *Movable) IsAnimating() bool {
	return m.Position.Value() != m.destination || m.onComplete != nil
}

// MoveTo cancels any animation and sets the position immediately.
func (m *Movable) MoveTo(p Vec2) {
	m.onStep = nil
	m.onComplete = nil
	m.destination = p
	m.Position.Set(p)
}

// AnimateTo sets a new destination. The movable travels there on later
// Step calls; callbacks replace any previously registered ones.
func (m *Movable) AnimateTo(destination Vec2, cb AnimationCallbacks) {
	m.destination = destination
	m.onStep = cb.OnStep
	m.onComplete = cb.OnComplete
}

// Step advances the animation by dt seconds.
func (m *Movable) Step(dt float64) {
	if m.Dragging || !m.IsAnimating() {
		return
	}
	pos := m.Position.Value()
	total := pos.Distance(m.destination)
	stepDistance := m.AnimationSpeed * dt
	if total <= stepDistance {
		// Clear callbacks before calling so onComplete can start a new
		// animation without it being overwritten.
		done := m.onComplete
		m.onComplete = nil
		m.onStep = nil
		m.Position.Set(m.destination)
		if done != nil {
			done()
		}
		return
	}
	angle := math.Atan2(m.destination.Y-pos.Y, m.destination.X-pos.X)
	m.Position.Set(pos.Add(Polar(stepDistance, angle)))
	if m.onStep != nil {
		m.onStep()
	}
}
