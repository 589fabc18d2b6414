package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"slices"

	"github.com/automoto/overlaymenu/components"
	cfg "github.com/automoto/overlaymenu/config"
	"github.com/automoto/overlaymenu/core"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ButtonsUI is the instructional buttons bar shown in the bottom right corner
type ButtonsUI struct {
	UI *ebitenui.UI

	row  *widget.Container
	face text.Face

	// Last rendered state, to rebuild only on change
	hints  []core.ButtonHint
	method components.InputMethod
}

// NewButtonsUI creates an empty hint bar
func NewButtonsUI() *ButtonsUI {
	bui := &ButtonsUI{}
	bui.loadFonts()
	bui.buildUI()
	return bui
}

func (bui *ButtonsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bui.face = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (bui *ButtonsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	bui.row = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 180})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	rootContainer.AddChild(bui.row)
	bui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update rebuilds the bar when the hints or the input device changed, then
// updates the ebitenui tree.
func (bui *ButtonsUI) Update(hints []core.ButtonHint, method components.InputMethod) {
	if !slices.Equal(hints, bui.hints) || method != bui.method {
		bui.hints = slices.Clone(hints)
		bui.method = method
		bui.rebuild()
	}
	bui.UI.Update()
}

func (bui *ButtonsUI) rebuild() {
	bui.row.RemoveChildren()

	for _, h := range bui.hints {
		label := widget.NewLabel(
			widget.LabelOpts.Text(HintText(h, bui.method), &bui.face, &widget.LabelColor{
				Idle: cfg.WhiteSmoke,
			}),
		)
		bui.row.AddChild(label)
	}
}

// Draw renders the bar while there are hints to show
func (bui *ButtonsUI) Draw(screen *ebiten.Image) {
	if len(bui.hints) == 0 {
		return
	}
	bui.UI.Draw(screen)
}

// HintText formats one hint as "[glyph] label" for the current device
func HintText(h core.ButtonHint, method components.InputMethod) string {
	return fmt.Sprintf("[%s] %s", Glyph(h.Action, method), h.Label)
}

// Glyph names the physical control bound to an action
func Glyph(action cfg.ActionID, method components.InputMethod) string {
	switch method {
	case components.InputXbox:
		if g, ok := xboxGlyphs[action]; ok {
			return g
		}
	case components.InputPlayStation:
		if g, ok := playStationGlyphs[action]; ok {
			return g
		}
	}
	if g, ok := keyboardGlyphs[action]; ok {
		return g
	}
	return action.String()
}

var keyboardGlyphs = map[cfg.ActionID]string{
	cfg.ActionMenuUp:     "Up",
	cfg.ActionMenuDown:   "Down",
	cfg.ActionMenuLeft:   "Left",
	cfg.ActionMenuRight:  "Right",
	cfg.ActionMenuSelect: "Enter",
	cfg.ActionMenuBack:   "Esc",
	cfg.ActionMenuClick:  "LMB",
	cfg.ActionMenuToggle: "M",
}

var xboxGlyphs = map[cfg.ActionID]string{
	cfg.ActionMenuSelect: "A",
	cfg.ActionMenuBack:   "B",
	cfg.ActionMenuToggle: "Menu",
}

var playStationGlyphs = map[cfg.ActionID]string{
	cfg.ActionMenuSelect: "Cross",
	cfg.ActionMenuBack:   "Circle",
	cfg.ActionMenuToggle: "Options",
}
