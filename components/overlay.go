package components

import (
	"image/color"

	"github.com/automoto/overlaymenu/core"
	"github.com/automoto/overlaymenu/pool"
	"github.com/yohamta/donburi"
)

// DrawKind identifies a queued draw command
type DrawKind int

const (
	DrawRect DrawKind = iota
	DrawSprite
	DrawText
	DrawButtons
)

// DrawCommand is one canvas call recorded during the update tick, in pixels
type DrawCommand struct {
	Kind  DrawKind
	Pos   core.Point
	Size  core.Size
	Color color.RGBA

	// Sprites
	Dictionary string
	Texture    string

	// Text
	Text     string
	Font     core.Font
	TextSize float64
	Align    core.Alignment
	Wrap     float64

	// Instructional buttons
	Hints []core.ButtonHint
}

// OverlayData is the singleton holding the menu pool and the draw list the
// menus produced this tick.
type OverlayData struct {
	Pool       *pool.Pool
	Resolution core.Size
	SafeZone   float64

	Commands     []DrawCommand
	CursorWanted bool // A menu asked for the mouse cursor this tick
}

var Overlay = donburi.NewComponentType[OverlayData]()
