package unitrates

// --- Listener registry ---

type listener[T any] struct {
	id uint32
	fn func(newValue, oldValue T)
}

type registry[T any] struct {
	listeners []listener[T]
	nextID    uint32
}

func (r *registry[T]) add(fn func(newValue, oldValue T)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, listener[T]{id: id, fn: fn})
	return CallbackHandle{remove: func() { r.remove(id) }}
}

// remove deletes the listener with the given id.
// Uses copy+zero to avoid retaining the closure in the backing array.
func (r *registry[T]) remove(id uint32) {
	for i := range r.listeners {
		if r.listeners[i].id == id {
			copy(r.listeners[i:], r.listeners[i+1:])
			r.listeners[len(r.listeners)-1] = listener[T]{}
			r.listeners = r.listeners[:len(r.listeners)-1]
			return
		}
	}
}

// notify calls every listener in registration order. The slice is snapshotted
// so listeners may remove themselves (or others) while being notified.
func (r *registry[T]) notify(newValue, oldValue T) {
	if len(r.listeners) == 0 {
		return
	}
	snapshot := make([]listener[T], len(r.listeners))
	copy(snapshot, r.listeners)
	for _, l := range snapshot {
		l.fn(newValue, oldValue)
	}
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the listener so it no longer fires.
// Safe to call more than once and on a zero handle.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove()
}

// --- Property ---

// Property is an observable value. Listeners are notified synchronously,
// in registration order, before Set returns. Setting a value equal to the
// current one does not notify.
type Property[T comparable] struct {
	value   T
	initial T
	reg     registry[T]
}

// NewProperty creates a property holding initial.
func NewProperty[T comparable](initial T) *Property[T] {
	return &Property[T]{value: initial, initial: initial}
}

// Value returns the current value.
func (p *Property[T]) Value() T {
	return p.value
}

// Set changes the value and notifies listeners if it differs.
func (p *Property[T]) Set(v T) {
	if v == p.value {
		return
	}
	old := p.value
	p.value = v
	p.reg.notify(v, old)
}

// Reset restores the initial value.
func (p *Property[T]) Reset() {
	p.Set(p.initial)
}

// Link registers fn and immediately calls it with the current value.
func (p *Property[T]) Link(fn func(newValue, oldValue T)) CallbackHandle {
	h := p.reg.add(fn)
	fn(p.value, p.value)
	return h
}

// LazyLink registers fn without calling it.
func (p *Property[T]) LazyLink(fn func(newValue, oldValue T)) CallbackHandle {
	return p.reg.add(fn)
}

// --- Emitter ---

// Emitter broadcasts values to listeners without retaining state.
type Emitter[T any] struct {
	reg registry[T]
}

// On registers fn for every future Emit.
func (e *Emitter[T]) On(fn func(T)) CallbackHandle {
	return e.reg.add(func(v, _ T) { fn(v) })
}

// Emit calls every listener with v.
func (e *Emitter[T]) Emit(v T) {
	var zero T
	e.reg.notify(v, zero)
}

// --- NullFloat ---

// NullFloat is a number that may be absent. The zero value is absent.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Float returns a present NullFloat holding v.
func Float(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// Null is the absent NullFloat.
var Null = NullFloat{}
