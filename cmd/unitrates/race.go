package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/unitrates"
	"github.com/rs/zerolog"
)

// raceGame is the interactive view of a RaceScene with one lane per car.
type raceGame struct {
	race     *unitrates.RaceScene
	width    int
	height   int
	selected int
	overlay  *overlay
	log      zerolog.Logger
}

func newRaceGame(logger zerolog.Logger, width, height int, ov *overlay) *raceGame {
	red := unitrates.NewRaceCar("red", unitrates.RaceCarOptions{Miles: 50, Logger: &logger})
	blue := unitrates.NewRaceCar("blue", unitrates.RaceCarOptions{Miles: 75, Logger: &logger})
	return &raceGame{
		race:    unitrates.NewRaceScene(&logger, red, blue),
		width:   width,
		height:  height,
		overlay: ov,
		log:     logger,
	}
}

// Update implements ebiten.Game.
func (g *raceGame) Update() error {
	car := g.race.Cars[g.selected]
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if g.race.Running.Value() {
			g.race.Pause()
		} else {
			g.race.Start()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.race.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.selected = (g.selected + 1) % len(g.race.Cars)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		car.Miles.Set(min(car.Miles.Value()+5, 200))
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		car.Miles.Set(max(car.Miles.Value()-5, 5))
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		car.Hours.Set(min(car.Hours.Value()+0.5, 4))
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		car.Hours.Set(max(car.Hours.Value()-0.5, 0.5))
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		car.Line.Undo()
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		car.Line.Erase()
	}
	g.overlay.update()
	g.race.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw implements ebiten.Game.
func (g *raceGame) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	laneHeight := float64(g.height-40) / float64(len(g.race.Cars))
	for i, car := range g.race.Cars {
		top := 20 + float64(i)*laneHeight
		view := lineView{X: 80, Y: top + 40, Length: float64(g.width) - 220, Gap: 50}
		drawNumberLine(screen, car.Line, view)

		trackY := float32(top + laneHeight - 40)
		trackEnd := view.X + car.Line.ModelToViewNumerator(car.TrackLength.Value(), view.Length)
		vector.StrokeLine(screen, float32(view.X), trackY, float32(trackEnd), trackY, 3, colorTrack, true)
		carX := view.X + car.Line.ModelToViewNumerator(car.Distance.Value(), view.Length)
		fillBottomCenter(screen, unitrates.Vec2{X: carX, Y: float64(trackY)}, unitrates.Vec2{X: 30, Y: 14}, colorItem)

		prefix := "  "
		if i == g.selected {
			prefix = "> "
		}
		status := fmt.Sprintf("%s%s: %s miles in %s hours (%.1f mph)",
			prefix, car.Name,
			car.Line.NumeratorAxis.Format(car.Miles.Value()),
			car.Line.DenominatorAxis.Format(car.Hours.Value()),
			car.UnitRate.Value())
		if car.Finished.Value() {
			status += fmt.Sprintf("  finished in %s hours", car.Line.DenominatorAxis.Format(car.FinishTime()))
		}
		ebitenutil.DebugPrintAt(screen, status, int(view.X), int(top))
	}
	ebitenutil.DebugPrintAt(screen,
		"Space: start/pause  Tab: car  Up/Down: miles  Left/Right: hours  U: undo  E: erase  R: reset  P: screenshot",
		10, g.height-20)
	g.overlay.draw(screen)
}

// Layout implements ebiten.Game.
func (g *raceGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
