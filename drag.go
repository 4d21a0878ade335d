package unitrates

import "github.com/rs/zerolog"

// DragContext carries pointer data for one drag event, in model coordinates.
type DragContext struct {
	GlobalX   float64
	GlobalY   float64
	PointerID int
}

func (c DragContext) point() Vec2 { return Vec2{c.GlobalX, c.GlobalY} }

// DragState is the phase of a drag gesture.
type DragState uint8

const (
	DragIdle      DragState = iota // no gesture yet
	DragDragging                   // pointer attached
	DragAnimating                  // released, travelling to a cell
	DragSettled                    // placed in a container
)

// String returns the lowercase state name.
func (s DragState) String() string {
	switch s {
	case DragDragging:
		return "dragging"
	case DragAnimating:
		return "animating"
	case DragSettled:
		return "settled"
	default:
		return "idle"
	}
}

// dragGesture holds the state shared by bag and item drag listeners.
type dragGesture struct {
	movable *Movable
	offset  Vec2
	state   DragState
	log     zerolog.Logger
}

func (g *dragGesture) start(ctx DragContext) {
	g.movable.Dragging = true
	// Clear any pending cell animation; the pointer owns the position now.
	g.movable.MoveTo(g.movable.Position.Value())
	g.offset = ctx.point().Sub(g.movable.Position.Value())
	g.state = DragDragging
}

func (g *dragGesture) drag(ctx DragContext) {
	if g.state != DragDragging {
		return
	}
	g.movable.MoveTo(ctx.point().Sub(g.offset))
}

func (g *dragGesture) end() bool {
	if g.state != DragDragging {
		return false
	}
	g.movable.Dragging = false
	return true
}

func (g *dragGesture) interrupt() {
	if g.state == DragDragging {
		g.movable.Dragging = false
		g.state = DragIdle
	}
}

// --- Bags ---

// BagDragListener moves a bag between a shelf and a scale. On release the
// bag animates to the closest empty bag cell of the container it was dropped
// on. If that cell is taken before the bag arrives, a new cell is chosen.
// A bag with items dropped on the scale opens: it hides and its items are
// put in the scale's item rows.
type BagDragListener struct {
	dragGesture
	bag   *Bag
	shelf *Shelf
	scale *Scale
}

// NewBagDragListener creates a listener for bag.
func NewBagDragListener(bag *Bag, shelf *Shelf, scale *Scale, logger *zerolog.Logger) *BagDragListener {
	return &BagDragListener{
		dragGesture: dragGesture{
			movable: bag.Movable,
			log:     loggerOr(logger).With().Str("component", "bagdrag").Str("bag", bag.Name).Logger(),
		},
		bag:   bag,
		shelf: shelf,
		scale: scale,
	}
}

// State returns the gesture phase.
func (l *BagDragListener) State() DragState { return l.state }

// Start removes the bag from whichever container holds it and attaches it
// to the pointer. An opened bag cannot be dragged.
func (l *BagDragListener) Start(ctx DragContext) {
	if l.bag.IsOpened() {
		return
	}
	if l.shelf.ContainsBag(l.bag) {
		l.shelf.RemoveBag(l.bag)
	} else if l.scale.ContainsBag(l.bag) {
		l.scale.RemoveBag(l.bag)
	}
	l.start(ctx)
}

// Drag moves the bag with the pointer.
func (l *BagDragListener) Drag(ctx DragContext) { l.drag(ctx) }

// End releases the bag over the shelf or the scale.
func (l *BagDragListener) End(ctx DragContext) {
	if !l.end() {
		return
	}
	if l.bag.Position.Value().Y < l.scale.YAboveScale {
		l.animateTo(l.scale.ShoppingContainer)
	} else {
		l.animateTo(l.shelf.ShoppingContainer)
	}
}

// Interrupt abandons an in-progress drag without placing the bag.
func (l *BagDragListener) Interrupt() { l.interrupt() }

func (l *BagDragListener) other(c *ShoppingContainer) *ShoppingContainer {
	if c == l.scale.ShoppingContainer {
		return l.shelf.ShoppingContainer
	}
	return l.scale.ShoppingContainer
}

func (l *BagDragListener) animateTo(c *ShoppingContainer) {
	index := c.BagRow.ClosestUnoccupiedCell(l.bag.Position.Value())
	if index == -1 {
		c = l.other(c)
		index = c.BagRow.ClosestUnoccupiedCell(l.bag.Position.Value())
	}
	if index == -1 {
		l.log.Warn().Msg("no empty bag cell")
		l.movable.MoveTo(l.movable.Position.Value())
		l.state = DragIdle
		return
	}
	row := c.BagRow
	l.state = DragAnimating
	l.bag.AnimateTo(row.CellPosition(index), AnimationCallbacks{
		OnStep: func() {
			if !row.IsEmptyCell(index) {
				l.log.Debug().Int("cell", index).Msg("cell taken, changing course")
				l.animateTo(c)
			}
		},
		OnComplete: func() {
			if !row.IsEmptyCell(index) {
				l.animateTo(c)
				return
			}
			if c == l.scale.ShoppingContainer && l.bag.Items != nil {
				l.openOnScale()
			} else {
				c.AddBag(l.bag, index)
			}
			l.state = DragSettled
		},
	})
}

// openOnScale hides the bag and puts its items on the scale. Quantity is
// recomputed once, when the last item is placed.
func (l *BagDragListener) openOnScale() {
	items := l.bag.Items
	l.bag.Items = nil
	l.bag.Visible.Set(false)
	origin := l.bag.Position.Value()

	l.scale.SetQuantityUpdateEnabled(false)
	for i, item := range items {
		if i == len(items)-1 {
			l.scale.SetQuantityUpdateEnabled(true)
		}
		row, index := l.scale.ClosestItemCell(origin)
		mustf(index != -1, "scale has no room for item %q", item.Name)
		item.Visible.Set(true)
		l.scale.AddItem(item, row, index)
	}
	l.scale.SetQuantityUpdateEnabled(true)
	l.log.Debug().Int("items", len(items)).Msg("bag opened on scale")
}

// --- Items ---

// ItemDragListener moves a loose item between a shelf and a scale, using
// whichever of the container's front or back rows has the nearer empty cell.
type ItemDragListener struct {
	dragGesture
	item  *ShoppingItem
	shelf *Shelf
	scale *Scale
}

// NewItemDragListener creates a listener for item.
func NewItemDragListener(item *ShoppingItem, shelf *Shelf, scale *Scale, logger *zerolog.Logger) *ItemDragListener {
	return &ItemDragListener{
		dragGesture: dragGesture{
			movable: item.Movable,
			log:     loggerOr(logger).With().Str("component", "itemdrag").Str("item", item.Name).Logger(),
		},
		item:  item,
		shelf: shelf,
		scale: scale,
	}
}

// State returns the gesture phase.
func (l *ItemDragListener) State() DragState { return l.state }

// Start removes the item from whichever container holds it.
func (l *ItemDragListener) Start(ctx DragContext) {
	if l.shelf.ContainsItem(l.item) {
		l.shelf.RemoveItem(l.item)
	} else if l.scale.ContainsItem(l.item) {
		l.scale.RemoveItem(l.item)
	}
	l.start(ctx)
}

// Drag moves the item with the pointer.
func (l *ItemDragListener) Drag(ctx DragContext) { l.drag(ctx) }

// End releases the item over the shelf or the scale.
func (l *ItemDragListener) End(ctx DragContext) {
	if !l.end() {
		return
	}
	if l.item.Position.Value().Y < l.scale.YAboveScale {
		l.animateTo(l.scale.ShoppingContainer)
	} else {
		l.animateTo(l.shelf.ShoppingContainer)
	}
}

// Interrupt abandons an in-progress drag without placing the item.
func (l *ItemDragListener) Interrupt() { l.interrupt() }

func (l *ItemDragListener) animateTo(c *ShoppingContainer) {
	which, index := c.ClosestItemCell(l.item.Position.Value())
	if index == -1 {
		if c == l.scale.ShoppingContainer {
			c = l.shelf.ShoppingContainer
		} else {
			c = l.scale.ShoppingContainer
		}
		which, index = c.ClosestItemCell(l.item.Position.Value())
	}
	if index == -1 {
		l.log.Warn().Msg("no empty item cell")
		l.movable.MoveTo(l.movable.Position.Value())
		l.state = DragIdle
		return
	}
	row := c.ItemRow(which)
	l.state = DragAnimating
	l.item.AnimateTo(row.CellPosition(index), AnimationCallbacks{
		OnStep: func() {
			if !row.IsEmptyCell(index) {
				l.log.Debug().Int("cell", index).Msg("cell taken, changing course")
				l.animateTo(c)
			}
		},
		OnComplete: func() {
			if !row.IsEmptyCell(index) {
				l.animateTo(c)
				return
			}
			c.AddItem(l.item, which, index)
			l.state = DragSettled
		},
	})
}

// Draggable is implemented by BagDragListener and ItemDragListener.
type Draggable interface {
	Start(ctx DragContext)
	Drag(ctx DragContext)
	End(ctx DragContext)
	Interrupt()
	State() DragState
}

var (
	_ Draggable = (*BagDragListener)(nil)
	_ Draggable = (*ItemDragListener)(nil)
)
