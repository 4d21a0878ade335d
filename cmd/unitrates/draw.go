package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/unitrates"
)

var (
	colorBackground = color.RGBA{0xf4, 0xf1, 0xe8, 0xff}
	colorShelf      = color.RGBA{0x9c, 0x6b, 0x3f, 0xff}
	colorScale      = color.RGBA{0x8a, 0x8f, 0x99, 0xff}
	colorBag        = color.RGBA{0xd9, 0xc2, 0x8c, 0xff}
	colorItem       = color.RGBA{0xd6, 0x3a, 0x2f, 0xff}
	colorAxis       = color.RGBA{0x20, 0x20, 0x20, 0xff}
	colorTrack      = color.RGBA{0x55, 0x55, 0x55, 0xff}
)

// toRGBA converts a model color with [0, 1] components.
func toRGBA(c unitrates.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// fillBottomCenter fills a rectangle whose bottom center is at p.
func fillBottomCenter(dst *ebiten.Image, p, size unitrates.Vec2, clr color.Color) {
	vector.DrawFilledRect(dst,
		float32(p.X-size.X/2), float32(p.Y-size.Y),
		float32(size.X), float32(size.Y), clr, false)
}

// lineView is where a double number line is drawn.
type lineView struct {
	X, Y   float64 // left end of the axis pair
	Length float64
	Gap    float64 // vertical distance between the two axes
}

// drawNumberLine draws both axes, every marker as a tick pair joined by a
// connector, and the axis labels.
func drawNumberLine(dst *ebiten.Image, line *unitrates.DoubleNumberLine, v lineView) {
	top := float32(v.Y)
	bottom := float32(v.Y + v.Gap)
	left := float32(v.X)
	right := float32(v.X + v.Length)
	vector.StrokeLine(dst, left, top, right, top, 2, colorAxis, true)
	vector.StrokeLine(dst, left, bottom, right, bottom, 2, colorAxis, true)
	ebitenutil.DebugPrintAt(dst, line.NumeratorAxis.UnitsLabel, int(right)+10, int(top)-8)
	ebitenutil.DebugPrintAt(dst, line.DenominatorAxis.UnitsLabel, int(right)+10, int(bottom)-8)

	for _, m := range line.Markers() {
		if !line.MarkerIsInRange(m) {
			continue
		}
		nx := float32(v.X + line.ModelToViewNumerator(m.Numerator.Value(), v.Length))
		dx := float32(v.X + line.ModelToViewDenominator(m.Denominator.Value(), v.Length))
		clr := toRGBA(m.Color())
		tick := float32(6)
		width := float32(1)
		if m.IsMajor() {
			tick, width = 10, 2
		}
		vector.StrokeLine(dst, nx, top-tick, nx, top+tick, width, clr, true)
		vector.StrokeLine(dst, dx, bottom-tick, dx, bottom+tick, width, clr, true)
		if m.IsMajor() {
			ebitenutil.DebugPrintAt(dst, line.NumeratorAxis.Format(m.Numerator.Value()), int(nx)-12, int(top)-28)
			ebitenutil.DebugPrintAt(dst, line.DenominatorAxis.Format(m.Denominator.Value()), int(dx)-4, int(bottom)+12)
		}
	}
}
