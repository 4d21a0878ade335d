package unitrates

// dragPhase is the kind of a queued synthetic drag event.
type dragPhase uint8

const (
	phaseStart dragPhase = iota
	phaseMove
	phaseEnd
)

// syntheticDragEvent is one queued pointer event for a draggable.
type syntheticDragEvent struct {
	target Draggable
	phase  dragPhase
	x, y   float64
}

// InputQueue feeds synthetic drag gestures to drag listeners, one event per
// frame, the same way pointer input arrives from a view.
type InputQueue struct {
	events []syntheticDragEvent
}

// Len returns the number of queued events.
func (q *InputQueue) Len() int {
	return len(q.events)
}

// InjectDrag queues a full drag of target: start at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and end at
// (toX, toY). The sequence consumes frames frames; the minimum is 2.
func (q *InputQueue) InjectDrag(target Draggable, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	q.events = append(q.events, syntheticDragEvent{target: target, phase: phaseStart, x: fromX, y: fromY})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		q.events = append(q.events, syntheticDragEvent{
			target: target,
			phase:  phaseMove,
			x:      fromX + (toX-fromX)*t,
			y:      fromY + (toY-fromY)*t,
		})
	}
	// The end event moves to the release point first so the drop position
	// is exact.
	q.events = append(q.events, syntheticDragEvent{target: target, phase: phaseEnd, x: toX, y: toY})
}

// Process pops one event and dispatches it. Returns true if an event was
// consumed.
func (q *InputQueue) Process() bool {
	if len(q.events) == 0 {
		return false
	}
	evt := q.events[0]
	copy(q.events, q.events[1:])
	q.events[len(q.events)-1] = syntheticDragEvent{}
	q.events = q.events[:len(q.events)-1]

	ctx := DragContext{GlobalX: evt.x, GlobalY: evt.y}
	switch evt.phase {
	case phaseStart:
		evt.target.Start(ctx)
	case phaseMove:
		evt.target.Drag(ctx)
	case phaseEnd:
		evt.target.Drag(ctx)
		evt.target.End(ctx)
	}
	return true
}

// Clear drops every queued event.
func (q *InputQueue) Clear() {
	clear(q.events)
	q.events = q.events[:0]
}
