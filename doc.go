// Package unitrates models unit rates on a double number line, for
// [Ebitengine] views.
//
// A [DoubleNumberLine] shows a rate as two parallel axes: a numerator (cost,
// miles) above a denominator (quantity, hours). One axis has a fixed range;
// the other follows the unit rate. Markers are (numerator, denominator) pairs.
// No two markers on a line share a numerator or a denominator: a new marker
// that conflicts replaces the existing one only when its [Creator] has equal
// or higher precedence (editor < scale < question < race).
//
// # Quick start
//
//	def, _ := unitrates.DefaultCatalog().Scene("apples")
//	scene, err := unitrates.NewShoppingScene(def, unitrates.ShoppingSceneOptions{})
//	if err != nil {
//		return err
//	}
//	for range 60 {
//		scene.Step(1.0 / 60)
//	}
//
// A view implements [ebiten.Game], feeds pointer samples through
// [PointerInput], calls [ShoppingScene.Step] from Update, and draws bags,
// items, and [DoubleNumberLine.Markers] from Draw.
//
// # Observable values
//
// Model state is held in [Property] values. Link fires immediately with the
// current value; LazyLink waits for the next change. Listeners run
// synchronously inside Set, and a [CallbackHandle] unregisters them.
//
//	line.UndoMarker.LazyLink(func(m, _ *unitrates.Marker) {
//		undoButton.Enabled = m != nil
//	})
//
// # Movables
//
// Bags and items compose a [Movable]. MoveTo snaps; AnimateTo travels at
// constant speed across Step calls. Drag listeners ([BagDragListener],
// [ItemDragListener]) drop them into the closest empty cell of a shelf or
// scale row, choosing a new cell if the target is taken while in flight.
//
// # Scripts
//
// [LoadScript] parses YAML steps (drag, wait, editor, answer, undo, erase,
// reset) that [ScriptRunner] feeds to a scene frame by frame, for tests and
// headless runs.
//
// # Logging
//
// Constructors take an optional *zerolog.Logger in their options. Nil
// disables logging.
//
// [Ebitengine]: https://ebitengine.org
package unitrates
