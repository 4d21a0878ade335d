package unitrates

import "testing"

func TestRowLayout(t *testing.T) {
	r := NewRowOfMovables(RowOptions{
		Position:      Vec2{100, 50},
		NumberOfCells: 3,
		CellSize:      Vec2{20, 20},
		CellSpacing:   10,
	})
	want := []float64{70, 100, 130}
	for i, x := range want {
		if got := r.CellPosition(i); got != (Vec2{x, 50}) {
			t.Errorf("CellPosition(%d) = %v, want (%v, 50)", i, got, x)
		}
	}
}

func TestRowEmptyLayout(t *testing.T) {
	r := NewRowOfMovables(RowOptions{NumberOfCells: 0, CellSize: Vec2{20, 20}})
	if r.NumberOfCells() != 0 {
		t.Errorf("NumberOfCells = %d, want 0", r.NumberOfCells())
	}
	if r.FirstUnoccupiedCell() != -1 || r.ClosestUnoccupiedCell(Vec2{}) != -1 {
		t.Error("empty row should have no unoccupied cell")
	}
}

// Cells at x = 0, 10, 20. A is put at the closest cell to x = 12, and the
// next query from the same point skips A's cell.
func TestRowClosestUnoccupiedCell(t *testing.T) {
	r := NewRowAt(Vec2{0, 0}, Vec2{10, 0}, Vec2{20, 0})
	p := Vec2{12, 0}

	if got := r.ClosestUnoccupiedCell(p); got != 1 {
		t.Fatalf("ClosestUnoccupiedCell = %d, want 1", got)
	}
	a := NewMovable(Vec2{})
	r.Put(a, 1)
	if a.Position.Value() != (Vec2{10, 0}) {
		t.Errorf("Put should snap to cell, got %v", a.Position.Value())
	}

	if got := r.ClosestUnoccupiedCell(p); got != 2 {
		t.Errorf("ClosestUnoccupiedCell = %d, want 2", got)
	}
}

func TestRowClosestStopsAtFirstFartherCell(t *testing.T) {
	r := NewRowAt(Vec2{0, 0}, Vec2{10, 0}, Vec2{20, 0}, Vec2{30, 0})
	if got := r.ClosestUnoccupiedCell(Vec2{-5, 0}); got != 0 {
		t.Errorf("ClosestUnoccupiedCell(-5) = %d, want 0", got)
	}
	if got := r.ClosestUnoccupiedCell(Vec2{100, 0}); got != 3 {
		t.Errorf("ClosestUnoccupiedCell(100) = %d, want 3", got)
	}

	for i := range 4 {
		r.Put(NewMovable(Vec2{}), i)
	}
	if got := r.ClosestUnoccupiedCell(Vec2{}); got != -1 {
		t.Errorf("full row ClosestUnoccupiedCell = %d, want -1", got)
	}
}

func TestRowOccupancyBijection(t *testing.T) {
	r := NewRowAt(Vec2{0, 0}, Vec2{10, 0}, Vec2{20, 0})
	a, b := NewMovable(Vec2{}), NewMovable(Vec2{})

	r.Put(a, 0)
	r.Put(b, 2)
	if r.NumberOfMovables.Value() != 2 {
		t.Errorf("NumberOfMovables = %d, want 2", r.NumberOfMovables.Value())
	}
	if r.IndexOf(a) != 0 || r.IndexOf(b) != 2 || r.Occupant(2) != b {
		t.Error("occupancy lookup mismatch")
	}
	if r.FirstUnoccupiedCell() != 1 {
		t.Errorf("FirstUnoccupiedCell = %d, want 1", r.FirstUnoccupiedCell())
	}

	r.Remove(a)
	if r.Contains(a) || !r.IsEmptyCell(0) {
		t.Error("a should be removed")
	}
	if r.NumberOfMovables.Value() != 1 {
		t.Errorf("NumberOfMovables = %d, want 1", r.NumberOfMovables.Value())
	}

	r.Clear()
	if r.NumberOfMovables.Value() != 0 || r.Contains(b) {
		t.Error("Clear should empty the row")
	}
}

func TestRowPutPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(r *RowOfMovables, a *Movable)
	}{
		{"occupied cell", func(r *RowOfMovables, a *Movable) { r.Put(NewMovable(Vec2{}), 0) }},
		{"already in row", func(r *RowOfMovables, a *Movable) { r.Put(a, 1) }},
		{"index out of range", func(r *RowOfMovables, a *Movable) { r.Put(NewMovable(Vec2{}), 5) }},
		{"remove absent", func(r *RowOfMovables, a *Movable) { r.Remove(NewMovable(Vec2{})) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRowAt(Vec2{0, 0}, Vec2{10, 0})
			a := NewMovable(Vec2{})
			r.Put(a, 0)
			defer func() {
				if rec := recover(); rec == nil {
					t.Error("expected panic, got none")
				}
			}()
			tt.fn(r, a)
		})
	}
}
