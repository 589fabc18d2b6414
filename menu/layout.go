package menu

import (
	"image/color"

	"github.com/automoto/overlaymenu/config"
	"github.com/automoto/overlaymenu/core"
	"github.com/automoto/overlaymenu/elements"
)

// Rect is a box in reference units.
type Rect struct {
	Pos  core.Point
	Size core.Size
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Pos.X + r.Size.W }

// Row is the geometry of one visible item.
type Row struct {
	Index      int
	Bounds     Rect
	Title      core.Point
	TitleColor color.RGBA

	Checkbox        Rect
	CheckboxTexture string

	LeftArrow  Rect
	RightArrow Rect

	Value      core.Point
	ValueColor color.RGBA

	BarBack Rect
	BarFill Rect
}

// Geometry is the full layout of a menu for its current state.
type Geometry struct {
	Origin core.Point

	HasBanner  bool
	Banner     Rect
	BannerText core.Point

	HasSubtitle  bool
	Subtitle     Rect
	SubtitleText core.Point

	Background Rect
	Highlight  Rect

	Description      Rect
	DescriptionText  core.Point
	DescriptionWrap  float64
	DescriptionLines int

	Rows []Row
}

// Layout computes the geometry of every element from the current state. It
// reads but never changes the menu.
func (m *Menu) Layout() Geometry {
	l := &config.Layout
	res := m.env.Resolution()
	refWidth := core.ReferenceWidth(res)

	var marginX, marginY float64
	if m.SafeZoneAware {
		if sz := m.env.SafeZone(); sz > 0 && sz < 1 {
			marginX = (1 - sz) / 2 * refWidth
			marginY = (1 - sz) / 2 * core.ReferenceHeight
		}
	}

	x0 := marginX
	if m.alignment == core.AlignRight {
		x0 = refWidth - m.width - marginX
	}
	y0 := marginY

	g := Geometry{Origin: core.Point{X: x0, Y: y0}}
	y := y0

	if m.banner != nil {
		g.HasBanner = true
		g.Banner = Rect{Pos: core.Point{X: x0, Y: y}, Size: core.Size{W: m.width, H: l.BannerHeight}}
		g.BannerText = core.Point{X: x0 + m.width/2, Y: y0 + l.BannerTextY}
		y += l.BannerHeight
	}

	if !elements.IsBlank(m.subtitleText.Text) {
		g.HasSubtitle = true
		g.Subtitle = Rect{Pos: core.Point{X: x0, Y: y}, Size: core.Size{W: m.width, H: l.SubtitleHeight}}
		g.SubtitleText = core.Point{X: x0 + l.SubtitleTextX, Y: y + l.SubtitleTextY}
		y += l.SubtitleHeight
	}

	shown := len(m.items)
	if shown > m.maxItems {
		shown = m.maxItems
	}
	g.Background = Rect{Pos: core.Point{X: x0, Y: y}, Size: core.Size{W: m.width, H: l.ItemHeight * float64(shown)}}

	if len(m.items) > 0 {
		g.Highlight = Rect{
			Pos:  core.Point{X: x0, Y: y + float64(m.index-m.firstItem)*l.ItemHeight},
			Size: core.Size{W: m.width, H: l.ItemHeight},
		}
	}

	descY := y + float64(shown)*l.ItemHeight + l.DescriptionGap
	g.DescriptionWrap = m.width - l.DescriptionTextX
	if desc := m.descriptionText.Text; !elements.IsBlank(desc) {
		g.DescriptionLines = m.env.LineCount(desc, m.descriptionText.Font, m.descriptionText.Scale, g.DescriptionWrap)
	}
	g.Description = Rect{
		Pos:  core.Point{X: x0, Y: descY},
		Size: core.Size{W: m.width, H: float64(g.DescriptionLines) * l.DescriptionLineHeight},
	}
	g.DescriptionText = core.Point{X: x0 + l.DescriptionTextX, Y: descY + l.DescriptionTextOffset}

	right := x0 + m.width
	for k, it := range m.VisibleItems() {
		index := m.firstItem + k
		rowY := y + float64(k)*l.ItemHeight
		selected := index == m.index
		g.Rows = append(g.Rows, m.layoutRow(it, index, selected, x0, rowY, right))
	}
	return g
}

func (m *Menu) layoutRow(it *Item, index int, selected bool, x0, rowY, right float64) Row {
	l := &config.Layout
	th := &m.theme

	r := Row{
		Index:  index,
		Bounds: Rect{Pos: core.Point{X: x0, Y: rowY}, Size: core.Size{W: m.width, H: l.ItemHeight}},
		Title:  core.Point{X: x0 + l.ItemOffsetX, Y: rowY + l.ItemOffsetY},
	}
	switch {
	case selected:
		r.TitleColor = th.ItemSelectedColor
	case !it.enabled:
		r.TitleColor = th.ItemDisabledColor
	default:
		r.TitleColor = th.ItemColor
	}
	r.ValueColor = r.TitleColor

	if it.caps.checkbox {
		r.Checkbox = Rect{
			Pos:  core.Point{X: right - l.CheckboxSize, Y: rowY + l.CheckboxOffsetY},
			Size: core.Size{W: l.CheckboxSize, H: l.CheckboxSize},
		}
		r.CheckboxTexture = th.Checkbox.Pick(it.isChecked(), selected)
	}

	if !it.caps.slidable {
		return r
	}
	var arrow core.Size
	if selected {
		arrow = core.Size{W: l.ArrowSize, H: l.ArrowSize}
	}
	r.RightArrow = Rect{Pos: core.Point{X: right - l.ArrowOffsetX, Y: rowY + l.ArrowOffsetY}, Size: arrow}

	// Everything else hangs off the left side of the right arrow.
	anchor := right - arrow.W - 1
	switch {
	case it.caps.inlineVal:
		width := m.env.TextWidth(it.currentValue(), core.FontChaletLondon, th.ItemScale)
		r.Value = core.Point{X: anchor - width, Y: rowY + l.ValueOffsetY}
		r.LeftArrow = Rect{Pos: core.Point{X: r.Value.X - arrow.W, Y: rowY + l.ArrowOffsetY}, Size: arrow}
	case it.caps.bar:
		barX := anchor - l.SliderBarWidth
		r.BarBack = Rect{Pos: core.Point{X: barX, Y: rowY + l.SliderBarY}, Size: core.Size{W: l.SliderBarWidth, H: l.SliderBarHeight}}
		fill := 0.0
		if it.fraction != nil {
			fill = it.fraction()
		}
		r.BarFill = Rect{Pos: r.BarBack.Pos, Size: core.Size{W: l.SliderBarWidth * fill, H: l.SliderBarHeight}}
		r.LeftArrow = Rect{Pos: core.Point{X: barX - arrow.W, Y: rowY + l.ArrowOffsetY}, Size: arrow}
	default:
		r.LeftArrow = Rect{Pos: core.Point{X: anchor - arrow.W, Y: rowY + l.ArrowOffsetY}, Size: arrow}
	}
	return r
}

// Recalculate recomputes the geometry of every element and converts it to
// pixels for the current resolution.
func (m *Menu) Recalculate() {
	g := m.Layout()

	if m.banner != nil {
		place(m.banner, g.Banner)
		m.bannerText.SetPosition(g.BannerText)
	}
	m.subtitleText.SetPosition(g.SubtitleText)
	if g.HasSubtitle {
		place(m.subtitleBar, g.Subtitle)
	} else {
		place(m.subtitleBar, Rect{Pos: g.Subtitle.Pos})
	}

	m.applyItems(g)
}

// updateItems reruns the layout and applies the parts that depend on the item
// list and the selection.
func (m *Menu) updateItems() {
	m.applyItems(m.Layout())
}

func (m *Menu) applyItems(g Geometry) {
	place(m.background, g.Background)
	place(m.highlight, g.Highlight)
	place(m.descriptionBox, g.Description)
	m.descriptionText.WordWrap = g.DescriptionWrap
	m.descriptionText.SetPosition(g.DescriptionText)

	for _, r := range g.Rows {
		it := m.items[r.Index]
		if it.titleText == nil {
			continue
		}
		it.titleText.SetPosition(r.Title)
		it.titleText.Color = r.TitleColor
		if it.glyph != nil {
			place(it.glyph, r.Checkbox)
			it.glyph.Texture = r.CheckboxTexture
		}
		if it.arrowLeft != nil {
			place(it.arrowLeft, r.LeftArrow)
			place(it.arrowRight, r.RightArrow)
		}
		if it.valueText != nil {
			it.valueText.Text = it.currentValue()
			it.valueText.Color = r.ValueColor
			it.valueText.SetPosition(r.Value)
		}
		if it.barBack != nil {
			place(it.barBack, r.BarBack)
			place(it.barFill, r.BarFill)
		}
	}
	m.geometry = g
}

func place(d core.Drawable, r Rect) {
	d.SetPosition(r.Pos)
	d.SetSize(r.Size)
}
