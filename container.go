package unitrates

// ItemRow selects one of a container's two item rows.
type ItemRow uint8

const (
	FrontRow ItemRow = iota
	BackRow
)

// ContainerOptions lays out a ShoppingContainer.
type ContainerOptions struct {
	Position Vec2 // center of the container's top surface

	NumberOfBags  int
	BagSize       Vec2
	BagSpacing    float64
	BagRowYOffset float64

	NumberOfItems   int
	ItemSize        Vec2
	ItemSpacing     float64
	BackRowYOffset  float64
	FrontRowYOffset float64
}

// DefaultContainerOptions returns a layout for 4 bags and 15 items.
func DefaultContainerOptions(position Vec2) ContainerOptions {
	return ContainerOptions{
		Position:        position,
		NumberOfBags:    4,
		BagSize:         Vec2{70, 70},
		BagSpacing:      8,
		NumberOfItems:   15,
		ItemSize:        Vec2{25, 25},
		ItemSpacing:     8,
		BackRowYOffset:  0,
		FrontRowYOffset: 15,
	}
}

// ShoppingContainer is a surface with one row of bags and two rows of items
// (front and back). Counts are derived from row occupancy.
type ShoppingContainer struct {
	Position Vec2

	BagRow       *RowOfMovables
	FrontItemRow *RowOfMovables
	BackItemRow  *RowOfMovables

	NumberOfBags  *Property[int]
	NumberOfItems *Property[int]
}

// NewShoppingContainer creates an empty container. The back item row has
// floor(n/2)+1 cells and the front row the remainder.
func NewShoppingContainer(opts ContainerOptions) *ShoppingContainer {
	backCells := opts.NumberOfItems/2 + 1
	if opts.NumberOfItems == 0 {
		backCells = 0
	}
	frontCells := opts.NumberOfItems - backCells

	c := &ShoppingContainer{
		Position: opts.Position,
		BagRow: NewRowOfMovables(RowOptions{
			Position:      Vec2{opts.Position.X, opts.Position.Y + opts.BagRowYOffset},
			NumberOfCells: opts.NumberOfBags,
			CellSize:      opts.BagSize,
			CellSpacing:   opts.BagSpacing,
		}),
		BackItemRow: NewRowOfMovables(RowOptions{
			Position:      Vec2{opts.Position.X, opts.Position.Y + opts.BackRowYOffset},
			NumberOfCells: backCells,
			CellSize:      opts.ItemSize,
			CellSpacing:   opts.ItemSpacing,
		}),
		FrontItemRow: NewRowOfMovables(RowOptions{
			Position:      Vec2{opts.Position.X, opts.Position.Y + opts.FrontRowYOffset},
			NumberOfCells: frontCells,
			CellSize:      opts.ItemSize,
			CellSpacing:   opts.ItemSpacing,
		}),
		NumberOfBags:  NewProperty(0),
		NumberOfItems: NewProperty(0),
	}
	c.BagRow.NumberOfMovables.LazyLink(func(n, _ int) { c.NumberOfBags.Set(n) })
	updateItems := func(int, int) {
		c.NumberOfItems.Set(c.FrontItemRow.NumberOfMovables.Value() + c.BackItemRow.NumberOfMovables.Value())
	}
	c.FrontItemRow.NumberOfMovables.LazyLink(updateItems)
	c.BackItemRow.NumberOfMovables.LazyLink(updateItems)
	return c
}

// ItemRow returns the front or back item row.
func (c *ShoppingContainer) ItemRow(which ItemRow) *RowOfMovables {
	if which == BackRow {
		return c.BackItemRow
	}
	return c.FrontItemRow
}

// ContainsBag reports whether bag is in the bag row.
func (c *ShoppingContainer) ContainsBag(bag *Bag) bool {
	return c.BagRow.Contains(bag.Movable)
}

// AddBag puts bag in the bag cell at index.
func (c *ShoppingContainer) AddBag(bag *Bag, index int) {
	c.BagRow.Put(bag.Movable, index)
}

// RemoveBag removes bag from the bag row.
func (c *ShoppingContainer) RemoveBag(bag *Bag) {
	c.BagRow.Remove(bag.Movable)
}

// ContainsItem reports whether item is in either item row.
func (c *ShoppingContainer) ContainsItem(item *ShoppingItem) bool {
	return c.FrontItemRow.Contains(item.Movable) || c.BackItemRow.Contains(item.Movable)
}

// AddItem puts item in the given row's cell at index.
func (c *ShoppingContainer) AddItem(item *ShoppingItem, which ItemRow, index int) {
	mustf(!c.ContainsItem(item), "item %q is already in the container", item.Name)
	c.ItemRow(which).Put(item.Movable, index)
}

// RemoveItem removes item from whichever row holds it.
func (c *ShoppingContainer) RemoveItem(item *ShoppingItem) {
	if c.FrontItemRow.Contains(item.Movable) {
		c.FrontItemRow.Remove(item.Movable)
		return
	}
	c.BackItemRow.Remove(item.Movable)
}

// ClosestItemCell picks the closest empty cell to p across both item rows.
// If one row is full the other is used. Returns index -1 if both are full.
func (c *ShoppingContainer) ClosestItemCell(p Vec2) (ItemRow, int) {
	front := c.FrontItemRow.ClosestUnoccupiedCell(p)
	back := c.BackItemRow.ClosestUnoccupiedCell(p)
	switch {
	case front == -1:
		return BackRow, back
	case back == -1:
		return FrontRow, front
	}
	if c.BackItemRow.CellPosition(back).Distance(p) < c.FrontItemRow.CellPosition(front).Distance(p) {
		return BackRow, back
	}
	return FrontRow, front
}

// Reset empties all rows.
func (c *ShoppingContainer) Reset() {
	c.BagRow.Clear()
	c.FrontItemRow.Clear()
	c.BackItemRow.Clear()
}

// Shelf is where bags start.
type Shelf struct {
	*ShoppingContainer
}

// NewShelf creates an empty shelf.
func NewShelf(opts ContainerOptions) *Shelf {
	return &Shelf{NewShoppingContainer(opts)}
}

// Scale weighs what is placed on it. Quantity is bags times QuantityPerBag
// plus loose items; Cost is Quantity times the unit rate.
type Scale struct {
	*ShoppingContainer

	Quantity *Property[float64]
	Cost     *Property[float64]

	// YAboveScale is the y coordinate above which a drop targets the scale.
	YAboveScale float64

	QuantityPerBag float64

	unitRate              *Property[float64]
	quantityUpdateEnabled bool
}

// NewScale creates an empty scale. Drops above opts.Position.Y+yAboveOffset
// target the scale.
func NewScale(opts ContainerOptions, unitRate *Property[float64], quantityPerBag, yAboveOffset float64) *Scale {
	s := &Scale{
		ShoppingContainer:     NewShoppingContainer(opts),
		Quantity:              NewProperty(0.0),
		Cost:                  NewProperty(0.0),
		YAboveScale:           opts.Position.Y + yAboveOffset,
		QuantityPerBag:        quantityPerBag,
		unitRate:              unitRate,
		quantityUpdateEnabled: true,
	}
	update := func(int, int) {
		if s.quantityUpdateEnabled {
			s.updateQuantity()
		}
	}
	s.NumberOfBags.LazyLink(update)
	s.NumberOfItems.LazyLink(update)
	s.Quantity.LazyLink(func(float64, float64) { s.updateCost() })
	unitRate.LazyLink(func(float64, float64) { s.updateCost() })
	return s
}

func (s *Scale) updateQuantity() {
	s.Quantity.Set(float64(s.NumberOfBags.Value())*s.QuantityPerBag + float64(s.NumberOfItems.Value()))
}

func (s *Scale) updateCost() {
	s.Cost.Set(s.Quantity.Value() * s.unitRate.Value())
}

// QuantityUpdateEnabled reports whether row changes recompute Quantity.
func (s *Scale) QuantityUpdateEnabled() bool {
	return s.quantityUpdateEnabled
}

// SetQuantityUpdateEnabled latches quantity recomputation. While disabled,
// items can be added without Quantity changing; the next row change after
// re-enabling computes the full quantity at once.
func (s *Scale) SetQuantityUpdateEnabled(enabled bool) {
	s.quantityUpdateEnabled = enabled
}

// Reset empties the scale and zeroes Quantity.
func (s *Scale) Reset() {
	s.quantityUpdateEnabled = true
	s.ShoppingContainer.Reset()
	s.updateQuantity()
}
