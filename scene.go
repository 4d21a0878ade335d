package unitrates

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Layout positions the shelf and scale of a shopping scene.
type Layout struct {
	ShelfPosition Vec2
	ScalePosition Vec2
	// ScaleDropOffset is added to ScalePosition.Y to get the y coordinate
	// above which drops target the scale.
	ScaleDropOffset float64
	BagSize         Vec2
	ItemSize        Vec2
}

// DefaultLayout fits a 1024x768 view.
var DefaultLayout = Layout{
	ShelfPosition:   Vec2{512, 620},
	ScalePosition:   Vec2{512, 400},
	ScaleDropOffset: 110,
	BagSize:         Vec2{70, 70},
	ItemSize:        Vec2{25, 25},
}

// ShoppingSceneOptions configures a ShoppingScene.
type ShoppingSceneOptions struct {
	Layout *Layout // nil means DefaultLayout
	Logger *zerolog.Logger
}

// ShoppingScene is one shopping scene: bags and items on a shelf and scale,
// a double number line of cost over quantity, its marker editor, and a set
// of questions. Step advances animations; the scene turns scale quantity
// changes and correct answers into markers.
type ShoppingScene struct {
	Def      SceneDef
	Layout   Layout
	UnitRate *Property[float64]

	Shelf *Shelf
	Scale *Scale
	Bags  []*Bag
	Items []*ShoppingItem

	Line    *DoubleNumberLine
	Editor  *MarkerEditor
	Binding *EditorBinding

	UnitRateQuestion *ShoppingQuestion
	QuestionSets     [][]*ShoppingQuestion
	QuestionSetIndex *Property[int]

	bagListeners  []*BagDragListener
	itemListeners []*ItemDragListener
	log           zerolog.Logger
}

// NewShoppingScene builds a scene from def with every bag on the shelf.
// Unset def fields get the same defaults LoadCatalog applies.
func NewShoppingScene(def SceneDef, opts ShoppingSceneOptions) (*ShoppingScene, error) {
	def.applyDefaults()
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", def.Name, err)
	}
	layout := DefaultLayout
	if opts.Layout != nil {
		layout = *opts.Layout
	}
	s := &ShoppingScene{
		Def:              def,
		Layout:           layout,
		UnitRate:         NewProperty(def.UnitRate),
		QuestionSetIndex: NewProperty(0),
		log:              loggerOr(opts.Logger).With().Str("scene", def.Name).Logger(),
	}
	numAxis, denAxis := def.NumeratorAxis(), def.DenominatorAxis()

	itemsPerBag := def.ItemsPerBag()
	totalItems := def.NumberOfBags * itemsPerBag
	shelfOpts := containerOptions(layout, layout.ShelfPosition, def.NumberOfBags, totalItems)
	scaleOpts := containerOptions(layout, layout.ScalePosition, def.NumberOfBags, totalItems)
	s.Shelf = NewShelf(shelfOpts)
	s.Scale = NewScale(scaleOpts, s.UnitRate, def.QuantityPerBag, layout.ScaleDropOffset)

	for i := range def.NumberOfBags {
		home := s.Shelf.BagRow.CellPosition(i)
		var items []*ShoppingItem
		if itemsPerBag > 0 {
			items = make([]*ShoppingItem, itemsPerBag)
			for j := range items {
				items[j] = NewShoppingItem(fmt.Sprintf("%s-%d", def.Singular, i*itemsPerBag+j), home, false)
			}
			s.Items = append(s.Items, items...)
		}
		bag := NewBag(fmt.Sprintf("bag-%d", i), home, items)
		s.Bags = append(s.Bags, bag)
		s.Shelf.AddBag(bag, i)
		s.bagListeners = append(s.bagListeners, NewBagDragListener(bag, s.Shelf, s.Scale, opts.Logger))
	}
	for _, item := range s.Items {
		s.itemListeners = append(s.itemListeners, NewItemDragListener(item, s.Shelf, s.Scale, opts.Logger))
	}

	s.Line = NewDoubleNumberLine(s.UnitRate, DoubleNumberLineOptions{
		Numerator:      numAxis,
		Denominator:    denAxis,
		FixedAxis:      FixedDenominator,
		FixedAxisRange: Range{0, def.FixedAxisMax},
		IsMajorMarker: func(_, denominator float64) bool {
			// Whole quantities (or whole bags for fractional bag sizes) are major.
			return isMultiple(denominator, min(def.QuantityPerBag, 1))
		},
		Logger: opts.Logger,
	})
	s.Editor = NewMarkerEditor(s.UnitRate, numAxis, denAxis)
	s.Binding = BindEditor(s.Editor, s.Line, opts.Logger)

	s.Scale.Quantity.LazyLink(func(quantity, _ float64) {
		if quantity > 0 {
			s.addScaleMarker(quantity)
		}
	})

	factory := QuestionFactory{
		UnitRate:    def.UnitRate,
		Singular:    def.Singular,
		Plural:      def.Plural,
		Numerator:   numAxis,
		Denominator: denAxis,
	}
	s.UnitRateQuestion = factory.UnitRateQuestion()
	s.UnitRateQuestion.Correct.On(s.addQuestionMarker)
	for _, quantities := range def.QuestionQuantities {
		set := factory.QuestionSet(quantities)
		for _, q := range set {
			q.Correct.On(s.addQuestionMarker)
		}
		s.QuestionSets = append(s.QuestionSets, set)
	}

	s.log.Debug().Int("bags", len(s.Bags)).Int("items", len(s.Items)).Msg("scene created")
	return s, nil
}

func containerOptions(layout Layout, position Vec2, bags, items int) ContainerOptions {
	opts := DefaultContainerOptions(position)
	opts.NumberOfBags = bags
	opts.BagSize = layout.BagSize
	opts.NumberOfItems = items
	opts.ItemSize = layout.ItemSize
	opts.BackRowYOffset = -layout.ItemSize.Y * 0.6
	return opts
}

// isMultiple reports whether v is a whole multiple of unit, tolerating
// float error from repeated addition.
func isMultiple(v, unit float64) bool {
	n := v / unit
	return roundTo(n, 6) == roundTo(n, 0)
}

func (s *ShoppingScene) addScaleMarker(quantity float64) {
	den := s.Line.DenominatorAxis.Round(quantity)
	num := s.Line.NumeratorAxis.Round(den * s.UnitRate.Value())
	m := s.Line.CreateMarker(num, den, CreatorScale, true)
	if s.Line.AddMarker(m) {
		s.Line.SetUndoMarker(m)
	}
}

func (s *ShoppingScene) addQuestionMarker(q *ShoppingQuestion) {
	m := s.Line.CreateMarker(q.Numerator, q.Denominator, CreatorQuestion, false)
	s.Line.AddMarker(m)
	s.log.Debug().Str("question", q.Text).Msg("answered")
}

// QuestionSet returns the current question set, or nil if there is none.
func (s *ShoppingScene) QuestionSet() []*ShoppingQuestion {
	if len(s.QuestionSets) == 0 {
		return nil
	}
	return s.QuestionSets[s.QuestionSetIndex.Value()]
}

// NextQuestionSet advances to the next question set, wrapping around.
func (s *ShoppingScene) NextQuestionSet() {
	if len(s.QuestionSets) == 0 {
		return
	}
	s.QuestionSetIndex.Set((s.QuestionSetIndex.Value() + 1) % len(s.QuestionSets))
}

// BagListener returns the drag listener for bag, or nil.
func (s *ShoppingScene) BagListener(bag *Bag) *BagDragListener {
	for _, l := range s.bagListeners {
		if l.bag == bag {
			return l
		}
	}
	return nil
}

// ItemListener returns the drag listener for item, or nil.
func (s *ShoppingScene) ItemListener(item *ShoppingItem) *ItemDragListener {
	for _, l := range s.itemListeners {
		if l.item == item {
			return l
		}
	}
	return nil
}

// DraggableByName returns the listener for the visible bag or item named
// name. Opened bags and items still inside a bag are hidden and not found.
func (s *ShoppingScene) DraggableByName(name string) (Draggable, *Movable) {
	for _, l := range s.bagListeners {
		if l.bag.Name == name && l.bag.Visible.Value() {
			return l, l.bag.Movable
		}
	}
	for _, l := range s.itemListeners {
		if l.item.Name == name && l.item.Visible.Value() {
			return l, l.item.Movable
		}
	}
	return nil, nil
}

// DraggableAt hit-tests visible items then visible bags at p. Cell positions
// are the bottom center of each entity's bounds.
func (s *ShoppingScene) DraggableAt(p Vec2) (Draggable, *Movable) {
	for i := len(s.itemListeners) - 1; i >= 0; i-- {
		l := s.itemListeners[i]
		if l.item.Visible.Value() && hitBottomCenter(l.item.Position.Value(), s.Layout.ItemSize, p) {
			return l, l.item.Movable
		}
	}
	for i := len(s.bagListeners) - 1; i >= 0; i-- {
		l := s.bagListeners[i]
		if l.bag.Visible.Value() && hitBottomCenter(l.bag.Position.Value(), s.Layout.BagSize, p) {
			return l, l.bag.Movable
		}
	}
	return nil, nil
}

func hitBottomCenter(anchor, size, p Vec2) bool {
	return p.X >= anchor.X-size.X/2 && p.X <= anchor.X+size.X/2 &&
		p.Y >= anchor.Y-size.Y && p.Y <= anchor.Y
}

// IsAnimating reports whether any bag or item is still travelling.
func (s *ShoppingScene) IsAnimating() bool {
	for _, b := range s.Bags {
		if b.IsAnimating() {
			return true
		}
	}
	for _, it := range s.Items {
		if it.IsAnimating() {
			return true
		}
	}
	return false
}

// Step advances bags, then items, by dt seconds in creation order.
func (s *ShoppingScene) Step(dt float64) {
	for _, b := range s.Bags {
		b.Step(dt)
	}
	for _, it := range s.Items {
		it.Step(dt)
	}
}

// Reset interrupts drags, returns every bag to the shelf with its items,
// empties the scale, and resets the number line, editor, and questions.
func (s *ShoppingScene) Reset() {
	for _, l := range s.bagListeners {
		l.Interrupt()
		l.state = DragIdle
	}
	for _, l := range s.itemListeners {
		l.Interrupt()
		l.state = DragIdle
	}
	s.Scale.Reset()
	s.Shelf.Reset()
	for i, b := range s.Bags {
		b.Reset()
		s.Shelf.AddBag(b, i)
	}
	s.Line.Reset()
	s.Editor.Reset()
	s.UnitRateQuestion.Reset()
	for _, set := range s.QuestionSets {
		for _, q := range set {
			q.Reset()
		}
	}
	s.QuestionSetIndex.Reset()
	s.log.Debug().Msg("reset")
}
