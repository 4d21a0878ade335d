package unitrates

import "testing"

type fixedHit struct {
	d Draggable
}

func (h fixedHit) DraggableAt(Vec2) (Draggable, *Movable) {
	return h.d, nil
}

func TestPointerInputDeadZone(t *testing.T) {
	d := &recordingDraggable{}
	in := NewPointerInput(fixedHit{d})

	in.Pointer(0, 100, 100, true)
	in.Pointer(0, 102, 101, true)
	in.Pointer(0, 102, 101, false)
	if len(d.events) != 0 {
		t.Errorf("click inside dead zone produced events %v", d.events)
	}
}

func TestPointerInputDrag(t *testing.T) {
	d := &recordingDraggable{}
	in := NewPointerInput(fixedHit{d})

	in.Pointer(0, 100, 100, true)
	in.Pointer(0, 110, 100, true)
	in.Pointer(0, 120, 130, true)
	in.Pointer(0, 125, 130, false)

	want := []recordedEvent{
		{"start", 100, 100},
		{"drag", 110, 100},
		{"drag", 120, 130},
		{"end", 125, 130},
	}
	if len(d.events) != len(want) {
		t.Fatalf("events = %v, want %v", d.events, want)
	}
	for i := range want {
		if d.events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, d.events[i], want[i])
		}
	}
}

func TestPointerInputMissDoesNothing(t *testing.T) {
	in := NewPointerInput(fixedHit{})
	in.Pointer(0, 0, 0, true)
	in.Pointer(0, 50, 50, true)
	in.Pointer(0, 50, 50, false)
}

func TestPointerInputSingleOwner(t *testing.T) {
	d := &recordingDraggable{}
	in := NewPointerInput(fixedHit{d})

	in.Pointer(0, 0, 0, true)
	in.Pointer(1, 0, 0, true)
	in.Pointer(1, 50, 0, true)
	if len(d.events) != 0 {
		t.Errorf("second pointer should not drag an owned draggable, got %v", d.events)
	}
	in.Pointer(0, 50, 0, true)
	if len(d.events) != 2 {
		t.Errorf("events = %d, want 2", len(d.events))
	}
}

func TestPointerInputCancel(t *testing.T) {
	shelf := NewShelf(DefaultContainerOptions(Vec2{500, 600}))
	scale := NewScale(DefaultContainerOptions(Vec2{500, 300}), NewProperty(1.0), 1, 100)
	bag := NewBag("bag", Vec2{}, nil)
	m := bag.Movable
	l := NewBagDragListener(bag, shelf, scale, nil)

	in := NewPointerInput(fixedHit{l})
	in.Pointer(0, 0, 0, true)
	in.Pointer(0, 20, 0, true)
	if l.State() != DragDragging {
		t.Fatalf("state = %v, want dragging", l.State())
	}

	in.Cancel()
	if l.State() != DragIdle || m.Dragging {
		t.Error("Cancel should interrupt the drag")
	}
	in.Pointer(0, 30, 0, false)
	if m.IsAnimating() {
		t.Error("release after Cancel should not drop the bag")
	}
}

func TestPointerInputSceneDrag(t *testing.T) {
	s := newTestScene(t, "apples")
	in := NewPointerInput(s)
	home := s.Bags[0].Position.Value()

	in.Pointer(0, home.X, home.Y-10, true)
	for i := 1; i <= 10; i++ {
		y := home.Y - 10 - float64(i)*25
		in.Pointer(0, home.X+float64(i)*8, y, true)
	}
	in.Pointer(0, home.X+80, home.Y-260, false)
	for range 600 {
		if !s.IsAnimating() {
			break
		}
		s.Step(1.0 / 60)
	}
	if s.Scale.Quantity.Value() != 5 {
		t.Errorf("Quantity = %v, want 5", s.Scale.Quantity.Value())
	}
}
