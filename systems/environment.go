package systems

import (
	"image/color"

	"github.com/automoto/overlaymenu/components"
	cfg "github.com/automoto/overlaymenu/config"
	"github.com/automoto/overlaymenu/core"
	"github.com/yohamta/donburi/ecs"
)

// Environment connects menus to an ECS world. Draw calls are queued on the
// Overlay component and replayed by DrawOverlay; sounds go through PlaySFX.
type Environment struct {
	ecs *ecs.ECS
}

var _ core.Environment = (*Environment)(nil)

// NewEnvironment returns the host for menus living in e.
func NewEnvironment(e *ecs.ECS) *Environment {
	return &Environment{ecs: e}
}

func (env *Environment) overlay() *components.OverlayData {
	return GetOrCreateOverlay(env.ecs)
}

func (env *Environment) Resolution() core.Size { return env.overlay().Resolution }

func (env *Environment) SafeZone() float64 { return env.overlay().SafeZone }

func (env *Environment) TextWidth(s string, font core.Font, scale float64) float64 {
	return textWidth(s, font, scale)
}

func (env *Environment) LineCount(s string, font core.Font, scale, wrap float64) int {
	return lineCount(s, font, scale, wrap)
}

func (env *Environment) JustPressed(action cfg.ActionID) bool {
	return GetAction(getOrCreateInput(env.ecs), action).JustPressed
}

func (env *Environment) UsingGamepad() bool {
	return getOrCreateInput(env.ecs).LastInputMethod.IsGamepad()
}

// Cursor converts the mouse position from pixels to reference units.
func (env *Environment) Cursor() core.Point {
	input := getOrCreateInput(env.ecs)
	scale := core.PixelScale(env.Resolution())
	return core.Point{X: float64(input.CursorX) / scale, Y: float64(input.CursorY) / scale}
}

func (env *Environment) InBounds(p, pos core.Point, size core.Size) bool {
	return pointInRect(p, pos, size)
}

func (env *Environment) ShowCursor() { env.overlay().CursorWanted = true }

func (env *Environment) Play(sound cfg.SoundID) { PlaySFX(env.ecs, sound) }

func (env *Environment) FillRect(pos core.Point, size core.Size, c color.RGBA) {
	env.queue(components.DrawCommand{Kind: components.DrawRect, Pos: pos, Size: size, Color: c})
}

func (env *Environment) DrawSprite(dictionary, texture string, pos core.Point, size core.Size, c color.RGBA) {
	env.queue(components.DrawCommand{
		Kind:       components.DrawSprite,
		Pos:        pos,
		Size:       size,
		Color:      c,
		Dictionary: dictionary,
		Texture:    texture,
	})
}

func (env *Environment) DrawText(s string, pos core.Point, font core.Font, size float64, c color.RGBA, align core.Alignment, wrap float64) {
	env.queue(components.DrawCommand{
		Kind:     components.DrawText,
		Pos:      pos,
		Color:    c,
		Text:     s,
		Font:     font,
		TextSize: size,
		Align:    align,
		Wrap:     wrap,
	})
}

func (env *Environment) DrawButtons(hints []core.ButtonHint) {
	env.queue(components.DrawCommand{Kind: components.DrawButtons, Hints: hints})
}

func (env *Environment) queue(cmd components.DrawCommand) {
	o := env.overlay()
	o.Commands = append(o.Commands, cmd)
}
