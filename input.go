package unitrates

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// HitTester finds the draggable under a point. ShoppingScene implements it.
type HitTester interface {
	DraggableAt(p Vec2) (Draggable, *Movable)
}

type pointerState struct {
	down     bool
	dragging bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	target   Draggable
}

// PointerInput turns raw pointer samples into Start/Drag/End calls on
// draggables. A press selects the draggable under the pointer; the drag
// starts once the pointer leaves the dead zone, so a click never moves a
// bag. Each draggable is owned by at most one pointer at a time.
type PointerInput struct {
	// DragDeadZone is the distance in pixels a press must travel before a
	// drag starts.
	DragDeadZone float64

	hit          HitTester
	pointers     [maxPointers]pointerState
	touchUsed    [maxPointers]bool
	touchMap     [maxPointers]ebiten.TouchID
	prevTouchIDs []ebiten.TouchID
}

// NewPointerInput creates pointer input that hit-tests against hit.
func NewPointerInput(hit HitTester) *PointerInput {
	return &PointerInput{DragDeadZone: defaultDragDeadZone, hit: hit}
}

// Poll reads the mouse (pointer 0) and active touches (pointers 1-9) from
// Ebitengine. Call it once per Update.
func (in *PointerInput) Poll() {
	mx, my := ebiten.CursorPosition()
	in.Pointer(0, float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		in.Pointer(slot, float64(tx), float64(ty), true)
	}

	// Release touch slots whose finger lifted.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			ps := &in.pointers[i]
			if ps.down {
				in.Pointer(i, ps.lastX, ps.lastY, false)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *PointerInput) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// owned reports whether a pointer other than pointerID holds d.
func (in *PointerInput) owned(d Draggable, pointerID int) bool {
	for i := range in.pointers {
		if i != pointerID && in.pointers[i].down && in.pointers[i].target == d {
			return true
		}
	}
	return false
}

// Pointer runs the pointer state machine for one sample of pointerID.
func (in *PointerInput) Pointer(pointerID int, x, y float64, pressed bool) {
	mustf(pointerID >= 0 && pointerID < maxPointers, "pointer id %d out of range", pointerID)
	ps := &in.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.dragging = false
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.target = nil
		if d, _ := in.hit.DraggableAt(Vec2{x, y}); d != nil && !in.owned(d, pointerID) {
			ps.target = d
		}

	case !pressed && ps.down:
		if ps.dragging {
			ps.target.End(DragContext{GlobalX: x, GlobalY: y, PointerID: pointerID})
		}
		ps.down = false
		ps.dragging = false
		ps.target = nil

	case pressed && ps.down:
		if ps.target == nil || (x == ps.lastX && y == ps.lastY) {
			break
		}
		if !ps.dragging {
			dx := x - ps.startX
			dy := y - ps.startY
			if math.Sqrt(dx*dx+dy*dy) <= in.DragDeadZone {
				break
			}
			ps.dragging = true
			ps.target.Start(DragContext{GlobalX: ps.startX, GlobalY: ps.startY, PointerID: pointerID})
		}
		ps.target.Drag(DragContext{GlobalX: x, GlobalY: y, PointerID: pointerID})
		ps.lastX, ps.lastY = x, y
	}
}

// Cancel interrupts every drag in progress and forgets all pointers.
func (in *PointerInput) Cancel() {
	for i := range in.pointers {
		ps := &in.pointers[i]
		if ps.dragging {
			ps.target.Interrupt()
		}
		in.pointers[i] = pointerState{}
	}
}
