// Package elements provides the drawables a menu is built from. Positions and
// sizes are set in reference units; Recalculate converts them to pixels for
// the current resolution.
package elements

import "github.com/automoto/overlaymenu/core"

// element holds the geometry shared by every drawable.
type element struct {
	display core.Display

	literalPosition core.Point
	literalSize     core.Size
	absolutePos     core.Point
	absoluteSize    core.Size
	alignment       core.Alignment
}

func newElement(display core.Display, pos core.Point, size core.Size) element {
	e := element{
		display:         display,
		literalPosition: pos,
		literalSize:     size,
	}
	e.Recalculate()
	return e
}

func (e *element) Position() core.Point { return e.literalPosition }

func (e *element) SetPosition(p core.Point) {
	e.literalPosition = p
	e.Recalculate()
}

func (e *element) Size() core.Size { return e.literalSize }

func (e *element) SetSize(s core.Size) {
	e.literalSize = s
	e.Recalculate()
}

func (e *element) Alignment() core.Alignment { return e.alignment }

func (e *element) SetAlignment(a core.Alignment) {
	e.alignment = a
	e.Recalculate()
}

// Recalculate converts the literal geometry into pixels.
func (e *element) Recalculate() {
	scale := 1.0
	if e.display != nil {
		scale = core.PixelScale(e.display.Resolution())
	}
	e.absolutePos = core.Point{X: e.literalPosition.X * scale, Y: e.literalPosition.Y * scale}
	e.absoluteSize = core.Size{W: e.literalSize.W * scale, H: e.literalSize.H * scale}
}

// Absolute returns the pixel geometry computed by the last Recalculate.
func (e *element) Absolute() (core.Point, core.Size) {
	return e.absolutePos, e.absoluteSize
}
