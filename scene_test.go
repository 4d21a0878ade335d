package unitrates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(t *testing.T, name string) *ShoppingScene {
	t.Helper()
	def, ok := DefaultCatalog().Scene(name)
	require.True(t, ok, "scene %q not found", name)
	s, err := NewShoppingScene(def, ShoppingSceneOptions{})
	require.NoError(t, err)
	return s
}

func dropNamed(t *testing.T, s *ShoppingScene, name string, to Vec2) {
	t.Helper()
	d, m := s.DraggableByName(name)
	require.NotNil(t, d, "no draggable %q", name)
	from := m.Position.Value()
	dragTo(d, from, to)
	for range 600 {
		if !s.IsAnimating() {
			return
		}
		s.Step(1.0 / 60)
	}
	t.Fatalf("%s still animating", name)
}

func TestShoppingSceneInitialState(t *testing.T) {
	s := newTestScene(t, "apples")

	assert.Len(t, s.Bags, 3)
	assert.Len(t, s.Items, 15)
	assert.Equal(t, 3, s.Shelf.NumberOfBags.Value())
	assert.Equal(t, 0.0, s.Scale.Quantity.Value())
	assert.Equal(t, Range{0, 15}, s.Line.DenominatorRange.Value())
	assert.Equal(t, Range{0, 7.5}, s.Line.NumeratorRange.Value())
	assert.Equal(t, 0, s.Line.NumMarkers())
	for _, it := range s.Items {
		assert.False(t, it.Visible.Value(), "item %s", it.Name)
	}
	assert.Equal(t, "apple-0", s.Items[0].Name)
}

func TestShoppingSceneBagOnScaleAddsMarker(t *testing.T) {
	s := newTestScene(t, "apples")

	dropNamed(t, s, "bag-0", Vec2{512, 380})

	require.Equal(t, 5.0, s.Scale.Quantity.Value())
	assert.Equal(t, 2.5, s.Scale.Cost.Value())
	require.Equal(t, 1, s.Line.NumMarkers())
	m := s.Line.Markers()[0]
	assert.Equal(t, CreatorScale, m.Creator())
	assert.Equal(t, 5.0, m.Denominator.Value())
	assert.Equal(t, 2.5, m.Numerator.Value())
	assert.True(t, m.Erasable())
	assert.Same(t, m, s.Line.UndoMarker.Value())

	s.Line.Undo()
	assert.Equal(t, 0, s.Line.NumMarkers())
}

func TestShoppingSceneSecondBagMovesUndo(t *testing.T) {
	s := newTestScene(t, "apples")

	dropNamed(t, s, "bag-0", Vec2{512, 380})
	dropNamed(t, s, "bag-1", Vec2{512, 380})

	require.Equal(t, 10.0, s.Scale.Quantity.Value())
	require.Equal(t, 2, s.Line.NumMarkers())
	last := s.Line.Markers()[1]
	assert.Equal(t, 10.0, last.Denominator.Value())
	assert.Equal(t, 5.0, last.Numerator.Value())
	assert.Same(t, last, s.Line.UndoMarker.Value())

	// The first question in the first set is the cost of 10 apples.
	q := s.QuestionSet()[0]
	require.Equal(t, QuestionCost, q.Kind)
	require.True(t, q.Submit(5))

	require.Equal(t, 2, s.Line.NumMarkers())
	replaced := s.Line.Markers()[1]
	assert.Equal(t, CreatorQuestion, replaced.Creator())
	assert.Nil(t, s.Line.UndoMarker.Value(), "replacing the undo marker clears it")

	s.Line.Erase()
	require.Equal(t, 1, s.Line.NumMarkers())
	assert.Same(t, replaced, s.Line.Markers()[0])
}

func TestShoppingSceneUnitRateQuestion(t *testing.T) {
	s := newTestScene(t, "apples")
	q := s.UnitRateQuestion

	assert.Equal(t, "Cost of 1 apple?", q.Text)
	assert.False(t, q.Submit(0.55))
	assert.Equal(t, 0, s.Line.NumMarkers())
	assert.True(t, q.Submit(0.5))
	assert.True(t, q.Submit(0.5))

	require.Equal(t, 1, s.Line.NumMarkers())
	m := s.Line.Markers()[0]
	assert.Equal(t, 0.5, m.Numerator.Value())
	assert.Equal(t, 1.0, m.Denominator.Value())
	assert.True(t, m.IsMajor())
}

func TestShoppingSceneCandyBags(t *testing.T) {
	s := newTestScene(t, "purple candy")
	assert.Empty(t, s.Items)

	dropNamed(t, s, "bag-2", Vec2{512, 380})

	require.True(t, s.Scale.ContainsBag(s.Bags[2]))
	require.Equal(t, 1, s.Line.NumMarkers())
	m := s.Line.Markers()[0]
	assert.Equal(t, 0.4, m.Denominator.Value())
	assert.Equal(t, 2.16, m.Numerator.Value())
	assert.Equal(t, "0.4", s.Line.DenominatorAxis.Format(m.Denominator.Value()))
	assert.Equal(t, "$2.16", s.Line.NumeratorAxis.Format(m.Numerator.Value()))
}

func TestShoppingSceneDropOnShelfKeepsScaleEmpty(t *testing.T) {
	s := newTestScene(t, "carrots")
	dropNamed(t, s, "bag-0", Vec2{300, 600})

	assert.Equal(t, 4, s.Shelf.NumberOfBags.Value())
	assert.Equal(t, 0.0, s.Scale.Quantity.Value())
	assert.Equal(t, 0, s.Line.NumMarkers())
}

func TestShoppingSceneDraggableAt(t *testing.T) {
	s := newTestScene(t, "apples")
	home := s.Bags[1].Position.Value()

	d, m := s.DraggableAt(Vec2{home.X, home.Y - 10})
	require.NotNil(t, d)
	assert.Same(t, s.Bags[1].Movable, m)

	d, _ = s.DraggableAt(Vec2{home.X, home.Y + 10})
	assert.Nil(t, d, "below the bottom edge is a miss")

	// Once opened, the bag is hidden and its items are hit instead.
	dropNamed(t, s, "bag-1", Vec2{512, 380})
	at := s.Bags[1].Position.Value()
	_, m = s.DraggableAt(Vec2{at.X, at.Y - 5})
	assert.NotSame(t, s.Bags[1].Movable, m, "hidden bag must not be hit")
	p := s.Items[5].Position.Value()
	d, m = s.DraggableAt(Vec2{p.X, p.Y - 5})
	require.NotNil(t, d)
	assert.Same(t, s.Items[5].Movable, m)
}

func TestShoppingSceneReset(t *testing.T) {
	s := newTestScene(t, "apples")
	dropNamed(t, s, "bag-0", Vec2{512, 380})
	s.UnitRateQuestion.Submit(0.5)
	s.Editor.SetNumerator(1)
	s.NextQuestionSet()

	s.Reset()

	assert.Equal(t, 3, s.Shelf.NumberOfBags.Value())
	assert.Equal(t, 0, s.Scale.NumberOfItems.Value())
	assert.Equal(t, 0.0, s.Scale.Quantity.Value())
	assert.Equal(t, 0, s.Line.NumMarkers())
	assert.True(t, s.Editor.IsEmpty())
	assert.False(t, s.UnitRateQuestion.IsAnswered())
	assert.Equal(t, 0, s.QuestionSetIndex.Value())
	for i, b := range s.Bags {
		assert.False(t, b.IsOpened(), "bag %d", i)
		assert.True(t, b.Visible.Value(), "bag %d", i)
		assert.Equal(t, s.Shelf.BagRow.CellPosition(i), b.Position.Value())
	}

	// The scene still works after a reset.
	dropNamed(t, s, "bag-2", Vec2{512, 380})
	assert.Equal(t, 5.0, s.Scale.Quantity.Value())
	assert.Equal(t, 1, s.Line.NumMarkers())
}

func TestNewShoppingSceneInvalid(t *testing.T) {
	_, err := NewShoppingScene(SceneDef{Name: "broken", UnitRate: 1}, ShoppingSceneOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numberOfBags")
}

func TestNewShoppingSceneAppliesDefaults(t *testing.T) {
	s, err := NewShoppingScene(SceneDef{Name: "pears", UnitRate: 2, NumberOfBags: 3, QuantityPerBag: 4}, ShoppingSceneOptions{})
	require.NoError(t, err)

	assert.Equal(t, 12.0, s.Def.FixedAxisMax)
	assert.Equal(t, Range{0, 12}, s.Line.DenominatorRange.Value())
	assert.Equal(t, "pears", s.Def.DenominatorUnits)
}

func TestShoppingSceneRateChangeReflows(t *testing.T) {
	s := newTestScene(t, "apples")
	dropNamed(t, s, "bag-0", Vec2{512, 380})
	s.Editor.SetDenominator(3)

	s.UnitRate.Set(0.6)

	require.Equal(t, 1, s.Line.NumMarkers())
	assert.InDelta(t, 3.0, s.Line.Markers()[0].Numerator.Value(), 1e-9)
	assert.InDelta(t, 3.0, s.Scale.Cost.Value(), 1e-9)
	assert.True(t, s.Editor.IsEmpty())
}
