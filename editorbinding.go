package unitrates

import "github.com/rs/zerolog"

// EditorBinding is the consumer of a MarkerEditor. When both editor fields
// are set it creates an erasable editor marker on the number line, makes it
// the undo marker, and resets the editor. Entries outside the line's current
// range are held in the editor and flagged with OutOfRange instead.
type EditorBinding struct {
	// OutOfRange is true while the editor holds a complete entry that lies
	// outside the number line's range.
	OutOfRange *Property[bool]

	// Committed fires with every marker built from the editor, whether or
	// not the line accepted it.
	Committed Emitter[*Marker]

	editor  *MarkerEditor
	line    *DoubleNumberLine
	log     zerolog.Logger
	handles []CallbackHandle
}

// BindEditor connects editor to line.
func BindEditor(editor *MarkerEditor, line *DoubleNumberLine, logger *zerolog.Logger) *EditorBinding {
	b := &EditorBinding{
		OutOfRange: NewProperty(false),
		editor:     editor,
		line:       line,
		log:        loggerOr(logger).With().Str("component", "editor").Logger(),
	}
	onChange := func(NullFloat, NullFloat) { b.update() }
	b.handles = append(b.handles,
		editor.Numerator.LazyLink(onChange),
		editor.Denominator.LazyLink(onChange),
	)
	return b
}

func (b *EditorBinding) update() {
	if !b.editor.IsComplete() {
		b.OutOfRange.Set(false)
		return
	}
	n := b.editor.Numerator.Value().Float64
	d := b.editor.Denominator.Value().Float64
	m := b.line.CreateMarker(n, d, CreatorEditor, true)
	if !b.line.MarkerIsInRange(m) {
		b.log.Debug().Float64("numerator", n).Float64("denominator", d).Msg("entry out of range")
		b.OutOfRange.Set(true)
		return
	}
	b.OutOfRange.Set(false)
	if b.line.AddMarker(m) {
		b.line.SetUndoMarker(m)
	}
	b.Committed.Emit(m)
	b.editor.Reset()
}

// Dispose detaches the binding from the editor.
func (b *EditorBinding) Dispose() {
	for _, h := range b.handles {
		h.Remove()
	}
	b.handles = nil
}
