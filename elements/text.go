package elements

import (
	"image/color"
	"strings"

	"github.com/automoto/overlaymenu/core"
)

// TextHost is what a Text needs from the host: the resolution to scale with
// and the metrics to measure with.
type TextHost interface {
	core.Display
	core.TextMetrics
}

// Text is a single string drawn at a position. Its size is measured, so
// SetSize is ignored.
type Text struct {
	host TextHost

	literalPosition core.Point
	absolutePos     core.Point
	pixelScale      float64

	Text      string
	Font      core.Font
	Scale     float64
	Color     color.RGBA
	alignment core.Alignment
	// WordWrap is the wrap width in reference units; zero disables wrapping.
	WordWrap float64
}

// NewText creates a white, left aligned text.
func NewText(host TextHost, pos core.Point, text string, scale float64, font core.Font) *Text {
	t := &Text{
		host:            host,
		literalPosition: pos,
		Text:            text,
		Font:            font,
		Scale:           scale,
		Color:           color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
	t.Recalculate()
	return t
}

func (t *Text) Position() core.Point { return t.literalPosition }

func (t *Text) SetPosition(p core.Point) {
	t.literalPosition = p
	t.Recalculate()
}

// Size returns the measured width and the height of every wrapped line.
func (t *Text) Size() core.Size {
	return core.Size{W: t.Width(), H: float64(t.LineCount()) * t.Scale * core.TextUnit}
}

func (t *Text) SetSize(core.Size) {}

func (t *Text) Alignment() core.Alignment { return t.alignment }

func (t *Text) SetAlignment(a core.Alignment) { t.alignment = a }

// Width measures the text on a single line, in reference units.
func (t *Text) Width() float64 {
	if t.host == nil || t.Text == "" {
		return 0
	}
	return t.host.TextWidth(t.Text, t.Font, t.Scale)
}

// LineCount returns the number of lines once wrapped at WordWrap.
func (t *Text) LineCount() int {
	if IsBlank(t.Text) {
		return 0
	}
	if t.host == nil {
		return 1
	}
	return t.host.LineCount(t.Text, t.Font, t.Scale, t.WordWrap)
}

// Recalculate converts the literal position into pixels.
func (t *Text) Recalculate() {
	t.pixelScale = 1
	if t.host != nil {
		t.pixelScale = core.PixelScale(t.host.Resolution())
	}
	t.absolutePos = core.Point{X: t.literalPosition.X * t.pixelScale, Y: t.literalPosition.Y * t.pixelScale}
}

// Draw renders the text unless it is blank.
func (t *Text) Draw(c core.Canvas) {
	if IsBlank(t.Text) {
		return
	}
	c.DrawText(t.Text, t.absolutePos, t.Font, t.Scale*core.TextUnit*t.pixelScale, t.Color, t.alignment, t.WordWrap*t.pixelScale)
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
