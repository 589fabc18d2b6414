// Package coretest provides a scriptable core.Environment for tests.
package coretest

import (
	"image/color"
	"math"
	"strings"

	"github.com/automoto/overlaymenu/config"
	"github.com/automoto/overlaymenu/core"
)

// CharWidth is the width of one character at scale 1 in the fake metrics.
const CharWidth = 20.0

// DrawCall is one recorded canvas operation.
type DrawCall struct {
	Kind    string // "rect", "sprite", "text" or "buttons"
	Texture string
	Text    string
	Pos     core.Point
	Size    core.Size
	Color   color.RGBA
}

// Env is a fake host. Text is measured as CharWidth*scale per character,
// wrapped on whole characters.
type Env struct {
	Res       core.Size
	Zone      float64
	Gamepad   bool
	CursorPos core.Point

	pressed map[config.ActionID]bool

	Draws        []DrawCall
	Sounds       []config.SoundID
	CursorShown  int
	ButtonsDrawn [][]core.ButtonHint
}

// NewEnv returns a 1920x1080 host with no safe-zone margin.
func NewEnv() *Env {
	return &Env{
		Res:     core.Size{W: 1920, H: 1080},
		Zone:    1,
		pressed: map[config.ActionID]bool{},
	}
}

// Press marks actions as just pressed for the next tick.
func (e *Env) Press(actions ...config.ActionID) {
	for _, a := range actions {
		e.pressed[a] = true
	}
}

// EndTick clears pressed actions and recorded output.
func (e *Env) EndTick() {
	e.pressed = map[config.ActionID]bool{}
	e.Draws = nil
	e.ButtonsDrawn = nil
}

// Reset also forgets played sounds.
func (e *Env) Reset() {
	e.EndTick()
	e.Sounds = nil
	e.CursorShown = 0
}

// LastSound returns the most recent sound, or SoundNone.
func (e *Env) LastSound() config.SoundID {
	if len(e.Sounds) == 0 {
		return config.SoundNone
	}
	return e.Sounds[len(e.Sounds)-1]
}

// Kinds lists the recorded draw kinds with their texture or text, in order.
func (e *Env) Kinds() []string {
	out := make([]string, 0, len(e.Draws))
	for _, d := range e.Draws {
		switch d.Kind {
		case "sprite":
			out = append(out, "sprite:"+d.Texture)
		case "text":
			out = append(out, "text:"+d.Text)
		default:
			out = append(out, d.Kind)
		}
	}
	return out
}

func (e *Env) Resolution() core.Size { return e.Res }

func (e *Env) SafeZone() float64 { return e.Zone }

func (e *Env) TextWidth(text string, _ core.Font, scale float64) float64 {
	return float64(len([]rune(text))) * CharWidth * scale
}

func (e *Env) LineCount(text string, font core.Font, scale, wrap float64) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	if wrap <= 0 {
		return 1
	}
	w := e.TextWidth(text, font, scale)
	return int(math.Max(1, math.Ceil(w/wrap)))
}

func (e *Env) JustPressed(a config.ActionID) bool { return e.pressed[a] }

func (e *Env) UsingGamepad() bool { return e.Gamepad }

func (e *Env) Cursor() core.Point { return e.CursorPos }

func (e *Env) InBounds(p, pos core.Point, size core.Size) bool {
	return core.Contains(p, pos, size)
}

func (e *Env) ShowCursor() { e.CursorShown++ }

func (e *Env) Play(s config.SoundID) { e.Sounds = append(e.Sounds, s) }

func (e *Env) FillRect(pos core.Point, size core.Size, c color.RGBA) {
	e.Draws = append(e.Draws, DrawCall{Kind: "rect", Pos: pos, Size: size, Color: c})
}

func (e *Env) DrawSprite(_, texture string, pos core.Point, size core.Size, c color.RGBA) {
	e.Draws = append(e.Draws, DrawCall{Kind: "sprite", Texture: texture, Pos: pos, Size: size, Color: c})
}

func (e *Env) DrawText(text string, pos core.Point, _ core.Font, _ float64, c color.RGBA, _ core.Alignment, _ float64) {
	e.Draws = append(e.Draws, DrawCall{Kind: "text", Text: text, Pos: pos, Color: c})
}

func (e *Env) DrawButtons(hints []core.ButtonHint) {
	e.Draws = append(e.Draws, DrawCall{Kind: "buttons"})
	e.ButtonsDrawn = append(e.ButtonsDrawn, hints)
}

var _ core.Environment = (*Env)(nil)
