package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/unitrates"
	"github.com/rs/zerolog"
)

// focus is what typed input goes to.
type focus int

const (
	focusNumerator focus = iota
	focusDenominator
	focusUnitRateQuestion
	focusQuestion // + index into the current question set
)

const editorSlideSeconds = 0.4

// shoppingGame is the interactive view of one ShoppingScene.
type shoppingGame struct {
	scene       *unitrates.ShoppingScene
	input       *unitrates.PointerInput
	width       int
	height      int
	showAnswers bool
	log         zerolog.Logger

	lineView lineView
	focus    focus
	typed    []rune
	chars    []rune

	editorPos   unitrates.Vec2
	editorSlide *unitrates.Slide

	overlay *overlay
}

func newShoppingGame(scene *unitrates.ShoppingScene, width, height int, showAnswers bool, ov *overlay, logger zerolog.Logger) *shoppingGame {
	g := &shoppingGame{
		overlay:     ov,
		scene:       scene,
		input:       unitrates.NewPointerInput(scene),
		width:       width,
		height:      height,
		showAnswers: showAnswers,
		log:         logger,
		lineView:    lineView{X: 80, Y: 90, Length: float64(width) - 220, Gap: 60},
	}
	g.editorPos = g.editorHome()

	// The editor panel slides under each committed marker, or off to the
	// right while its entry is out of range.
	scene.Binding.Committed.On(func(m *unitrates.Marker) {
		x := g.lineView.X + scene.Line.ModelToViewDenominator(m.Denominator.Value(), g.lineView.Length)
		g.slideEditor(unitrates.Vec2{X: x, Y: g.editorHome().Y})
	})
	scene.Binding.OutOfRange.LazyLink(func(out, _ bool) {
		if out {
			g.slideEditor(unitrates.Vec2{X: g.lineView.X + g.lineView.Length + 30, Y: g.editorHome().Y})
		}
	})
	return g
}

func (g *shoppingGame) editorHome() unitrates.Vec2 {
	return unitrates.Vec2{X: g.lineView.X, Y: g.lineView.Y + g.lineView.Gap + 40}
}

func (g *shoppingGame) slideEditor(to unitrates.Vec2) {
	g.editorSlide = unitrates.NewSlide(g.editorPos, to, editorSlideSeconds, nil)
}

// Update implements ebiten.Game.
func (g *shoppingGame) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	g.input.Poll()
	g.handleKeys()
	g.overlay.update()
	g.scene.Step(dt)

	if g.editorSlide != nil {
		g.editorPos = g.editorSlide.Update(float32(dt))
		if g.editorSlide.Done {
			g.editorSlide = nil
		}
	}
	return nil
}

func (g *shoppingGame) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.scene.Line.Undo()
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.scene.Line.Erase()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.input.Cancel()
		g.scene.Reset()
		g.typed = g.typed[:0]
		g.slideEditor(g.editorHome())
		g.log.Info().Msg("scene reset")
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.scene.NextQuestionSet()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.focus = (g.focus + 1) % (focusQuestion + focus(len(g.scene.QuestionSet())))
		g.typed = g.typed[:0]
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		if len(g.typed) > 0 {
			g.typed = g.typed[:len(g.typed)-1]
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.submit()
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		if unicode.IsDigit(r) || (r == '.' && !strings.ContainsRune(string(g.typed), '.')) {
			g.typed = append(g.typed, r)
		}
	}
}

// submit applies the typed value to the focused field or question.
func (g *shoppingGame) submit() {
	v, err := strconv.ParseFloat(string(g.typed), 64)
	g.typed = g.typed[:0]
	if err != nil {
		return
	}
	switch g.focus {
	case focusNumerator:
		if g.scene.Line.NumeratorAxis.Fits(v) {
			g.scene.Editor.SetNumerator(v)
		}
	case focusDenominator:
		if g.scene.Line.DenominatorAxis.Fits(v) {
			g.scene.Editor.SetDenominator(v)
		}
	case focusUnitRateQuestion:
		g.scene.UnitRateQuestion.Submit(v)
	default:
		set := g.scene.QuestionSet()
		if i := int(g.focus - focusQuestion); i < len(set) {
			set[i].Submit(v)
		}
	}
}

// Draw implements ebiten.Game.
func (g *shoppingGame) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s := g.scene

	drawNumberLine(screen, s.Line, g.lineView)
	g.drawEditor(screen)
	g.drawQuestions(screen)

	layout := s.Layout
	scaleLabel := fmt.Sprintf("scale: %s %s  %s",
		s.Line.DenominatorAxis.Format(s.Scale.Quantity.Value()), s.Def.DenominatorUnits,
		s.Line.NumeratorAxis.Format(s.Scale.Cost.Value()))
	drawSurface(screen, layout.ShelfPosition, colorShelf, "shelf")
	drawSurface(screen, layout.ScalePosition, colorScale, scaleLabel)

	for _, b := range s.Bags {
		if b.Visible.Value() {
			fillBottomCenter(screen, b.Position.Value(), layout.BagSize, colorBag)
		}
	}
	for _, it := range s.Items {
		if it.Visible.Value() {
			fillBottomCenter(screen, it.Position.Value(), layout.ItemSize, colorItem)
		}
	}

	ebitenutil.DebugPrintAt(screen,
		"drag bags to the scale | Tab: focus  Enter: submit  U: undo  E: erase  N: next questions  R: reset  P: screenshot",
		10, g.height-20)
	g.overlay.draw(screen)
}

func (g *shoppingGame) drawEditor(screen *ebiten.Image) {
	e := g.scene.Editor
	field := func(f focus, v unitrates.NullFloat, axis unitrates.Axis) string {
		s := "?"
		if v.Valid {
			s = axis.Format(v.Float64)
		}
		if g.focus == f {
			s = "[" + string(g.typed) + "_]"
		}
		return s
	}
	text := field(focusNumerator, e.Numerator.Value(), g.scene.Line.NumeratorAxis) + "\n" +
		field(focusDenominator, e.Denominator.Value(), g.scene.Line.DenominatorAxis)
	if g.scene.Binding.OutOfRange.Value() {
		text += "\nout of range"
	}
	ebitenutil.DebugPrintAt(screen, text, int(g.editorPos.X), int(g.editorPos.Y))
}

func (g *shoppingGame) drawQuestions(screen *ebiten.Image) {
	var sb strings.Builder
	writeQuestion := func(f focus, q *unitrates.ShoppingQuestion) {
		prefix := "  "
		if g.focus == f {
			prefix = "> "
		}
		sb.WriteString(prefix + q.Text + " ")
		switch {
		case q.IsAnswered():
			sb.WriteString(q.FormattedAnswer() + " ok")
		case g.focus == f:
			sb.WriteString(string(g.typed) + "_")
		case g.showAnswers:
			sb.WriteString("(" + q.FormattedAnswer() + ")")
		}
		sb.WriteByte('\n')
	}
	writeQuestion(focusUnitRateQuestion, g.scene.UnitRateQuestion)
	for i, q := range g.scene.QuestionSet() {
		writeQuestion(focusQuestion+focus(i), q)
	}
	ebitenutil.DebugPrintAt(screen, sb.String(), g.width-300, int(g.lineView.Y+g.lineView.Gap)+50)
}

// drawSurface draws a shelf or scale top whose surface is at pos.
func drawSurface(screen *ebiten.Image, pos unitrates.Vec2, clr color.Color, label string) {
	fillBottomCenter(screen, unitrates.Vec2{X: pos.X, Y: pos.Y + 12}, unitrates.Vec2{X: 420, Y: 12}, clr)
	ebitenutil.DebugPrintAt(screen, label, int(pos.X)-200, int(pos.Y)+16)
}

// Layout implements ebiten.Game.
func (g *shoppingGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
