package systems

import (
	"image/color"
	"strings"

	"github.com/automoto/overlaymenu/components"
	cfg "github.com/automoto/overlaymenu/config"
	"github.com/automoto/overlaymenu/core"
	"github.com/automoto/overlaymenu/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// lineSpacing is the distance between wrapped lines relative to the font size
const lineSpacing = 1.25

func drawCommand(screen *ebiten.Image, cmd *components.DrawCommand) {
	switch cmd.Kind {
	case components.DrawRect:
		vector.FillRect(screen, f32(cmd.Pos.X), f32(cmd.Pos.Y), f32(cmd.Size.W), f32(cmd.Size.H), cmd.Color, false)
	case components.DrawSprite:
		drawTexture(screen, cmd)
	case components.DrawText:
		drawText(screen, cmd)
	case components.DrawButtons:
		// Rendered by the scene hint bar
		return
	}

	if cfg.Debug.ShowBounds && cmd.Kind != components.DrawText {
		vector.StrokeRect(screen, f32(cmd.Pos.X), f32(cmd.Pos.Y), f32(cmd.Size.W), f32(cmd.Size.H), 1, cfg.DebugPink, false)
	}
}

// drawTexture renders the textures menus ask for procedurally, tinted by the
// command color. Unknown names draw an outline so missing art is visible.
func drawTexture(screen *ebiten.Image, cmd *components.DrawCommand) {
	x, y, w, h := f32(cmd.Pos.X), f32(cmd.Pos.Y), f32(cmd.Size.W), f32(cmd.Size.H)
	tint := cmd.Color

	switch {
	case cmd.Texture == "interaction_bgd" || strings.HasPrefix(cmd.Texture, "shopui_title"):
		vector.FillRect(screen, x, y, w, h, multiply(color.RGBA{R: 32, G: 96, B: 176, A: 255}, tint), false)
		vector.FillRect(screen, x, y+h-h/6, w, h/6, multiply(color.RGBA{R: 20, G: 60, B: 120, A: 255}, tint), false)
	case cmd.Texture == "gradient_bgd":
		vector.FillRect(screen, x, y, w, h, multiply(color.RGBA{A: 190}, tint), false)
	case cmd.Texture == "gradient_nav":
		vector.FillRect(screen, x, y, w, h, multiply(color.RGBA{R: 240, G: 240, B: 240, A: 255}, tint), false)
	case cmd.Texture == "arrowleft":
		drawChevron(screen, x, y, w, h, -1, tint)
	case cmd.Texture == "arrowright":
		drawChevron(screen, x, y, w, h, 1, tint)
	case strings.HasPrefix(cmd.Texture, "shop_box_"):
		drawCheckbox(screen, x, y, w, h, cmd.Texture, tint)
	default:
		vector.StrokeRect(screen, x, y, w, h, 1, cfg.DebugPink, false)
	}
}

func drawChevron(screen *ebiten.Image, x, y, w, h float32, dir float32, tint color.RGBA) {
	c := multiply(color.RGBA{A: 255}, tint)
	cx, cy := x+w/2, y+h/2
	tip := cx + dir*w/6
	back := cx - dir*w/6
	stroke := h / 10
	vector.StrokeLine(screen, back, cy-h/4, tip, cy, stroke, c, true)
	vector.StrokeLine(screen, tip, cy, back, cy+h/4, stroke, c, true)
}

// drawCheckbox draws the four glyph states. The selected variants end in "b"
// and are dark to stay readable on the highlight.
func drawCheckbox(screen *ebiten.Image, x, y, w, h float32, name string, tint color.RGBA) {
	c := color.RGBA{R: 245, G: 245, B: 245, A: 255}
	if strings.HasSuffix(name, "b") {
		c = color.RGBA{A: 255}
	}
	c = multiply(c, tint)

	inset := w / 4
	stroke := w / 20
	vector.StrokeRect(screen, x+inset, y+inset, w-2*inset, h-2*inset, stroke, c, false)
	if strings.Contains(name, "tick") {
		vector.StrokeLine(screen, x+inset*1.4, y+h/2, x+w*0.45, y+h-inset*1.4, stroke*1.5, c, true)
		vector.StrokeLine(screen, x+w*0.45, y+h-inset*1.4, x+w-inset*1.2, y+inset*1.2, stroke*1.5, c, true)
	}
}

func drawText(screen *ebiten.Image, cmd *components.DrawCommand) {
	face := fonts.Face(cmd.Font, cmd.TextSize)
	ascent := face.Metrics().Ascent.Round()
	step := int(cmd.TextSize * lineSpacing)

	for i, line := range fonts.Wrap(face, cmd.Text, cmd.Wrap) {
		x := int(cmd.Pos.X)
		switch cmd.Align {
		case core.AlignCenter:
			x -= int(fonts.Measure(face, line) / 2)
		case core.AlignRight:
			x -= int(fonts.Measure(face, line))
		}
		text.Draw(screen, line, face, x, int(cmd.Pos.Y)+ascent+i*step, cmd.Color)
	}
}

func multiply(c, tint color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(tint.R) / 255),
		G: uint8(uint16(c.G) * uint16(tint.G) / 255),
		B: uint8(uint16(c.B) * uint16(tint.B) / 255),
		A: uint8(uint16(c.A) * uint16(tint.A) / 255),
	}
}

func f32(v float64) float32 { return float32(v) }
