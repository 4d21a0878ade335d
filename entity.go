package unitrates

// entityIDCounter is a plain counter (no atomic; the model is single-threaded).
var entityIDCounter uint32

func nextEntityID() uint32 {
	entityIDCounter++
	return entityIDCounter
}

// ShoppingItem is one countable item (an apple, a carrot).
type ShoppingItem struct {
	*Movable

	ID      uint32
	Name    string
	Visible *Property[bool]

	home Vec2
}

// NewShoppingItem creates an item at position.
func NewShoppingItem(name string, position Vec2, visible bool) *ShoppingItem {
	return &ShoppingItem{
		Movable: NewMovable(position),
		ID:      nextEntityID(),
		Name:    name,
		Visible: NewProperty(visible),
		home:    position,
	}
}

// Reset cancels any animation and returns the item to its initial position
// and visibility.
func (it *ShoppingItem) Reset() {
	it.Dragging = false
	it.MoveTo(it.home)
	it.Visible.Reset()
}

// Bag holds a fixed quantity. When Items is non-nil, the bag opens into its
// items when placed on a scale.
type Bag struct {
	*Movable

	ID      uint32
	Name    string
	Visible *Property[bool]

	// Items is nil for bags that are never opened.
	Items []*ShoppingItem

	initialItems []*ShoppingItem
	home         Vec2
}

// NewBag creates a visible bag at position owning items (which may be nil).
func NewBag(name string, position Vec2, items []*ShoppingItem) *Bag {
	return &Bag{
		Movable:      NewMovable(position),
		ID:           nextEntityID(),
		Name:         name,
		Visible:      NewProperty(true),
		Items:        items,
		initialItems: items,
		home:         position,
	}
}

// IsOpened reports whether the bag has released its items.
func (b *Bag) IsOpened() bool {
	return b.initialItems != nil && b.Items == nil
}

// Reset cancels any animation, makes the bag visible again, and restores its
// items (which are reset too).
func (b *Bag) Reset() {
	b.Dragging = false
	b.MoveTo(b.home)
	b.Visible.Reset()
	b.Items = b.initialItems
	for _, it := range b.initialItems {
		it.Reset()
	}
}
