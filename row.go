package unitrates

// RowOptions lays out a RowOfMovables.
type RowOptions struct {
	Position      Vec2 // bottom center of the row
	NumberOfCells int
	CellSize      Vec2
	CellSpacing   float64
}

type cell struct {
	position Vec2
	occupant *Movable
}

// RowOfMovables is a fixed number of cells laid out left to right. A cell
// holds at most one movable and a movable occupies at most one cell.
type RowOfMovables struct {
	// NumberOfMovables is the count of occupied cells.
	NumberOfMovables *Property[int]

	cells []cell
}

// NewRowOfMovables creates an empty row. Cell positions are the bottom
// center of each cell and never change.
func NewRowOfMovables(opts RowOptions) *RowOfMovables {
	mustf(opts.NumberOfCells >= 0, "invalid number of cells %d", opts.NumberOfCells)
	n := opts.NumberOfCells
	width := float64(n)*opts.CellSize.X + float64(max(n-1, 0))*opts.CellSpacing
	left := opts.Position.X - width/2 + opts.CellSize.X/2
	cells := make([]cell, n)
	for i := range cells {
		cells[i].position = Vec2{
			X: left + float64(i)*(opts.CellSize.X+opts.CellSpacing),
			Y: opts.Position.Y,
		}
	}
	return &RowOfMovables{NumberOfMovables: NewProperty(0), cells: cells}
}

// NewRowAt creates a row with explicit cell positions.
func NewRowAt(positions ...Vec2) *RowOfMovables {
	cells := make([]cell, len(positions))
	for i, p := range positions {
		cells[i].position = p
	}
	return &RowOfMovables{NumberOfMovables: NewProperty(0), cells: cells}
}

// NumberOfCells returns the row's fixed length.
func (r *RowOfMovables) NumberOfCells() int {
	return len(r.cells)
}

func (r *RowOfMovables) checkIndex(index int) {
	mustf(index >= 0 && index < len(r.cells), "cell index %d out of range [0, %d)", index, len(r.cells))
}

// CellPosition returns the position of the cell at index.
func (r *RowOfMovables) CellPosition(index int) Vec2 {
	r.checkIndex(index)
	return r.cells[index].position
}

// IsEmptyCell reports whether the cell at index has no occupant.
func (r *RowOfMovables) IsEmptyCell(index int) bool {
	r.checkIndex(index)
	return r.cells[index].occupant == nil
}

// Occupant returns the movable in the cell at index, or nil.
func (r *RowOfMovables) Occupant(index int) *Movable {
	r.checkIndex(index)
	return r.cells[index].occupant
}

// IndexOf returns the cell index holding m, or -1.
func (r *RowOfMovables) IndexOf(m *Movable) int {
	for i := range r.cells {
		if r.cells[i].occupant == m {
			return i
		}
	}
	return -1
}

// Contains reports whether m occupies a cell in the row.
func (r *RowOfMovables) Contains(m *Movable) bool {
	return r.IndexOf(m) != -1
}

// FirstUnoccupiedCell returns the leftmost empty cell, or -1 if full.
func (r *RowOfMovables) FirstUnoccupiedCell() int {
	for i := range r.cells {
		if r.cells[i].occupant == nil {
			return i
		}
	}
	return -1
}

// ClosestUnoccupiedCell returns an empty cell near p, or -1 if full.
//
// The scan starts at the first empty cell and moves right over empty cells
// while the distance to p keeps decreasing, stopping at the first empty cell
// that is not closer. This is not a global minimum search.
func (r *RowOfMovables) ClosestUnoccupiedCell(p Vec2) int {
	index := r.FirstUnoccupiedCell()
	if index == -1 {
		return -1
	}
	best := r.cells[index].position.Distance(p)
	for i := index + 1; i < len(r.cells); i++ {
		if r.cells[i].occupant != nil {
			continue
		}
		d := r.cells[i].position.Distance(p)
		if d >= best {
			break
		}
		index, best = i, d
	}
	return index
}

// Put places m in the empty cell at index and snaps it to the cell position.
// Panics if m is already in the row or the cell is occupied.
func (r *RowOfMovables) Put(m *Movable, index int) {
	r.checkIndex(index)
	mustf(!r.Contains(m), "movable is already in the row")
	mustf(r.cells[index].occupant == nil, "cell %d is occupied", index)
	r.cells[index].occupant = m
	m.MoveTo(r.cells[index].position)
	r.NumberOfMovables.Set(r.NumberOfMovables.Value() + 1)
}

// Remove clears the cell holding m. Panics if m is not in the row.
func (r *RowOfMovables) Remove(m *Movable) {
	index := r.IndexOf(m)
	mustf(index != -1, "movable is not in the row")
	r.cells[index].occupant = nil
	r.NumberOfMovables.Set(r.NumberOfMovables.Value() - 1)
}

// Clear empties every cell.
func (r *RowOfMovables) Clear() {
	for i := range r.cells {
		r.cells[i].occupant = nil
	}
	r.NumberOfMovables.Set(0)
}
