package menu

import (
	"github.com/automoto/overlaymenu/core"
	"github.com/automoto/overlaymenu/elements"
)

// Entry is anything that can be placed in a menu: a plain *Item or one of the
// typed kinds that embed it.
type Entry interface {
	item() *Item
}

// Item is a row of a menu. Items compare by identity and belong to at most one
// menu at a time.
type Item struct {
	title       string
	description string
	enabled     bool

	// Activated fires when the item is accepted while selected.
	Activated core.Event[core.Empty]
	// Selected fires when the item becomes the selection of a visible menu.
	Selected core.Event[core.SelectedArgs]

	// Optional capabilities, set by the kind constructors and queried by the
	// layout and input passes.
	caps     capabilities
	checked  func() bool
	goLeft   func()
	goRight  func()
	value    func() string
	fraction func() float64
	onActive func()

	owner *Menu

	// Drawables, created when the item is added to a menu.
	titleText  *elements.Text
	glyph      *elements.Sprite
	arrowLeft  *elements.Sprite
	arrowRight *elements.Sprite
	valueText  *elements.Text
	barBack    *elements.Rectangle
	barFill    *elements.Rectangle
}

type capabilities struct {
	checkbox  bool
	slidable  bool
	inlineVal bool
	bar       bool
}

// NewItem creates an enabled plain item.
func NewItem(title, description string) *Item {
	return &Item{
		title:       title,
		description: description,
		enabled:     true,
	}
}

func (i *Item) item() *Item { return i }

func (i *Item) Title() string { return i.title }

func (i *Item) SetTitle(title string) {
	i.title = title
	if i.titleText != nil {
		i.titleText.Text = title
	}
}

func (i *Item) Description() string { return i.description }

// SetDescription changes the description; the menu box follows when the item
// is selected.
func (i *Item) SetDescription(description string) {
	i.description = description
	if i.owner != nil && i.owner.SelectedItem() == i {
		i.owner.syncDescription()
		i.owner.Recalculate()
	}
}

func (i *Item) Enabled() bool { return i.enabled }

func (i *Item) SetEnabled(enabled bool) {
	i.enabled = enabled
	if i.owner != nil {
		i.owner.updateItems()
	}
}

// Menu returns the menu holding the item, or nil.
func (i *Item) Menu() *Menu { return i.owner }

// Slidable reports whether the item reacts to left and right.
func (i *Item) Slidable() bool { return i.caps.slidable }

// HasCheckbox reports whether the item draws a checkbox glyph.
func (i *Item) HasCheckbox() bool { return i.caps.checkbox }

// activate runs the kind behaviour, then notifies subscribers.
func (i *Item) activate(sender any) {
	if i.onActive != nil {
		i.onActive()
	}
	i.Activated.Emit(sender, core.Empty{})
}

func (i *Item) slideLeft() {
	if i.goLeft != nil {
		i.goLeft()
	}
}

func (i *Item) slideRight() {
	if i.goRight != nil {
		i.goRight()
	}
}

// attach builds the drawables of the item for m.
func (i *Item) attach(m *Menu) {
	i.owner = m
	th := &m.theme
	i.titleText = elements.NewText(m.env, core.Point{}, i.title, th.ItemScale, core.FontChaletLondon)
	i.titleText.Color = th.ItemColor
	if i.caps.checkbox {
		i.glyph = elements.NewSprite(m.env, core.Point{}, core.Size{}, th.Dictionary, th.Checkbox.Blank)
	}
	if i.caps.slidable {
		i.arrowLeft = elements.NewSprite(m.env, core.Point{}, core.Size{}, th.Dictionary, th.ArrowLeftTexture)
		i.arrowRight = elements.NewSprite(m.env, core.Point{}, core.Size{}, th.Dictionary, th.ArrowRightTexture)
	}
	if i.caps.inlineVal {
		i.valueText = elements.NewText(m.env, core.Point{}, "", th.ItemScale, core.FontChaletLondon)
	}
	if i.caps.bar {
		i.barBack = elements.NewRectangle(m.env, core.Point{}, core.Size{}, th.SliderBackColor)
		i.barFill = elements.NewRectangle(m.env, core.Point{}, core.Size{}, th.SliderFillColor)
	}
}

func (i *Item) detach() {
	i.owner = nil
	i.titleText = nil
	i.glyph = nil
	i.arrowLeft = nil
	i.arrowRight = nil
	i.valueText = nil
	i.barBack = nil
	i.barFill = nil
}

// currentValue is the text drawn between the arrows.
func (i *Item) currentValue() string {
	if i.value == nil {
		return ""
	}
	return i.value()
}

func (i *Item) isChecked() bool {
	return i.checked != nil && i.checked()
}

// draw renders the row. The selected row's overlay is drawn separately on top
// of the highlight.
func (i *Item) draw(c core.Canvas) {
	if i.titleText == nil {
		return
	}
	i.titleText.Draw(c)
	if i.barBack != nil {
		i.barBack.Draw(c)
		i.barFill.Draw(c)
	}
	i.drawOverlay(c)
}

func (i *Item) drawOverlay(c core.Canvas) {
	if i.glyph != nil {
		i.glyph.Draw(c)
	}
	if i.arrowLeft != nil {
		i.arrowLeft.Draw(c)
		i.arrowRight.Draw(c)
	}
	if i.valueText != nil {
		i.valueText.Draw(c)
	}
}
