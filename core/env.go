package core

import (
	"image/color"

	"github.com/automoto/overlaymenu/config"
)

// Display answers questions about the host screen.
type Display interface {
	// Resolution is the current screen size in pixels.
	Resolution() Size
	// SafeZone is the host safe-zone scalar, usually in [0.9, 1].
	SafeZone() float64
}

// TextMetrics measures text in reference units.
type TextMetrics interface {
	TextWidth(text string, font Font, scale float64) float64
	LineCount(text string, font Font, scale, wrap float64) int
}

// Controls exposes the per-tick input state.
type Controls interface {
	JustPressed(action config.ActionID) bool
	UsingGamepad() bool
	// Cursor returns the mouse position in reference units.
	Cursor() Point
	InBounds(p, pos Point, size Size) bool
	// ShowCursor keeps the host cursor visible for the current tick.
	ShowCursor()
}

// Audio plays feedback cues. It never blocks and never fails.
type Audio interface {
	Play(sound config.SoundID)
}

// ButtonHint is one entry of the instructional buttons bar.
type ButtonHint struct {
	Label  string
	Action config.ActionID
}

// Canvas receives draw calls in pixels.
type Canvas interface {
	FillRect(pos Point, size Size, c color.RGBA)
	DrawSprite(dictionary, texture string, pos Point, size Size, c color.RGBA)
	DrawText(text string, pos Point, font Font, size float64, c color.RGBA, align Alignment, wrap float64)
	DrawButtons(hints []ButtonHint)
}

// Environment is everything an overlay object needs from its host.
type Environment interface {
	Display
	TextMetrics
	Controls
	Audio
	Canvas
}

// Drawable is a visual element positioned in reference units.
type Drawable interface {
	Position() Point
	SetPosition(p Point)
	Size() Size
	SetSize(s Size)
	Alignment() Alignment
	SetAlignment(a Alignment)
	Draw(c Canvas)
}

// Recalculable objects recompute their geometry on demand.
type Recalculable interface {
	Recalculate()
}

// Processable objects are ticked once per frame.
type Processable interface {
	Process()
}

// Visibility is implemented by objects that can be shown and hidden.
type Visibility interface {
	Visible() bool
	SetVisible(visible bool)
}
