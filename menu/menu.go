// Package menu implements scrollable overlay menus: the selection window over
// the item list, the layout of every element, the per-tick input resolver and
// the show/close lifecycle with parent and submenu links.
package menu

import (
	"fmt"

	"github.com/automoto/overlaymenu/config"
	"github.com/automoto/overlaymenu/core"
	"github.com/automoto/overlaymenu/elements"
)

// Menu is a titled list of items drawn on top of the host.
type Menu struct {
	env   core.Environment
	theme config.Theme

	items     []*Item
	index     int
	firstItem int
	maxItems  int

	visible   bool
	width     float64
	alignment core.Alignment

	// UseMouse enables the cursor and click hit-testing.
	UseMouse bool
	// SafeZoneAware insets the menu by the host safe-zone margin.
	SafeZoneAware bool
	// Parent is shown again when this menu goes back.
	Parent *Menu

	// Set by a submenu item, consumed on the next Process.
	pendingOpen *Menu

	banner          *elements.Sprite
	bannerText      *elements.Text
	subtitleBar     *elements.Rectangle
	subtitleText    *elements.Text
	background      *elements.Sprite
	highlight       *elements.Sprite
	descriptionBox  *elements.Sprite
	descriptionText *elements.Text
	Buttons         *elements.InstructionalButtons

	geometry Geometry

	Shown                core.Event[core.Empty]
	Closing              core.Event[*core.CancelArgs]
	Closed               core.Event[core.Empty]
	SelectedIndexChanged core.Event[core.SelectedArgs]
	ItemActivated        core.Event[*Item]
}

// Option configures a menu on creation.
type Option func(m *Menu)

// WithTheme replaces the default theme.
func WithTheme(th config.Theme) Option {
	return func(m *Menu) { m.theme = th }
}

// WithWidth sets the width in reference units.
func WithWidth(width float64) Option {
	return func(m *Menu) { m.width = width }
}

// WithAlignment anchors the menu to the left or right of the screen.
func WithAlignment(a core.Alignment) Option {
	return func(m *Menu) { m.alignment = a }
}

// WithMaxItems sets how many rows are shown at once. Values below one are
// ignored.
func WithMaxItems(n int) Option {
	return func(m *Menu) {
		if n >= 1 {
			m.maxItems = n
		}
	}
}

// New creates a hidden, empty menu.
func New(env core.Environment, title, subtitle string, opts ...Option) *Menu {
	m := &Menu{
		env:           env,
		theme:         config.DefaultTheme(),
		index:         -1,
		maxItems:      config.Layout.DefaultMaxItems,
		width:         config.Layout.DefaultWidth,
		UseMouse:      true,
		SafeZoneAware: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.width < 0 {
		m.width = 0
	}

	th := &m.theme
	m.banner = elements.NewSprite(env, core.Point{}, core.Size{}, th.Dictionary, th.BannerTexture)
	m.bannerText = elements.NewText(env, core.Point{}, title, th.TitleScale, core.FontHouseScript)
	m.bannerText.Color = th.TitleColor
	m.bannerText.SetAlignment(core.AlignCenter)
	m.subtitleBar = elements.NewRectangle(env, core.Point{}, core.Size{}, th.SubtitleBarColor)
	m.subtitleText = elements.NewText(env, core.Point{}, subtitle, th.SubtitleScale, core.FontChaletLondon)
	m.subtitleText.Color = th.SubtitleColor
	m.background = elements.NewSprite(env, core.Point{}, core.Size{}, th.Dictionary, th.BackgroundTexture)
	m.highlight = elements.NewSprite(env, core.Point{}, core.Size{}, th.Dictionary, th.HighlightTexture)
	m.descriptionBox = elements.NewSprite(env, core.Point{}, core.Size{}, th.Dictionary, th.DescriptionTexture)
	m.descriptionText = elements.NewText(env, core.Point{}, th.NoItemsText, th.DescriptionScale, core.FontChaletLondon)
	m.descriptionText.Color = th.DescriptionColor
	m.Buttons = elements.NewInstructionalButtons(
		core.ButtonHint{Label: th.SelectLabel, Action: config.ActionMenuSelect},
		core.ButtonHint{Label: th.BackLabel, Action: config.ActionMenuBack},
	)

	m.Recalculate()
	return m
}

// Theme returns a copy of the theme the menu was built with.
func (m *Menu) Theme() config.Theme { return m.theme }

func (m *Menu) Title() string { return m.bannerText.Text }

func (m *Menu) SetTitle(title string) { m.bannerText.Text = title }

func (m *Menu) Subtitle() string { return m.subtitleText.Text }

// SetSubtitle changes the subtitle. A blank subtitle removes the bar.
func (m *Menu) SetSubtitle(subtitle string) {
	m.subtitleText.Text = subtitle
	m.Recalculate()
}

// SetBanner changes the banner texture. An empty texture removes the banner.
func (m *Menu) SetBanner(dictionary, texture string) {
	if texture == "" {
		m.banner = nil
	} else {
		m.banner = elements.NewSprite(m.env, core.Point{}, core.Size{}, dictionary, texture)
	}
	m.Recalculate()
}

func (m *Menu) Width() float64 { return m.width }

// SetWidth changes the width and recomputes the layout.
func (m *Menu) SetWidth(width float64) {
	if width < 0 {
		width = 0
	}
	m.width = width
	m.Recalculate()
}

func (m *Menu) Alignment() core.Alignment { return m.alignment }

// SetAlignment moves the menu to the left or right of the screen.
func (m *Menu) SetAlignment(a core.Alignment) {
	m.alignment = a
	m.Recalculate()
}

// Items returns a copy of the item list.
func (m *Menu) Items() []*Item {
	return append([]*Item(nil), m.items...)
}

// Len returns the number of items.
func (m *Menu) Len() int { return len(m.items) }

// Description returns the text of the description box.
func (m *Menu) Description() string { return m.descriptionText.Text }

func itemOf(e Entry) *Item {
	if e == nil {
		return nil
	}
	return e.item()
}

// Contains reports whether e is in the menu.
func (m *Menu) Contains(e Entry) bool {
	it := itemOf(e)
	return it != nil && m.indexOf(it) >= 0
}

func (m *Menu) indexOf(it *Item) int {
	for i, x := range m.items {
		if x == it {
			return i
		}
	}
	return -1
}

// Add appends an item. The first item added becomes the selection.
func (m *Menu) Add(e Entry) error {
	it := itemOf(e)
	if it == nil {
		return fmt.Errorf("menu %q: add: nil item: %w", m.Title(), core.ErrInvalidArgument)
	}
	if m.indexOf(it) >= 0 {
		return fmt.Errorf("menu %q: add %q: %w", m.Title(), it.title, core.ErrDuplicateItem)
	}
	if it.owner != nil {
		return fmt.Errorf("menu %q: add %q: item belongs to menu %q: %w", m.Title(), it.title, it.owner.Title(), core.ErrDuplicateItem)
	}

	it.attach(m)
	m.items = append(m.items, it)
	if len(m.items) == 1 {
		m.index = 0
		m.firstItem = 0
		m.syncDescription()
		m.Recalculate()
		m.triggerSelected()
		return nil
	}
	m.Recalculate()
	return nil
}

// AddSubMenu adds an item titled with the subtitle of sub. Activating it opens
// sub on the next tick and hides this menu.
func (m *Menu) AddSubMenu(sub *Menu) (*Item, error) {
	if sub == nil {
		return nil, fmt.Errorf("menu %q: add submenu: nil menu: %w", m.Title(), core.ErrInvalidArgument)
	}
	if sub == m {
		return nil, fmt.Errorf("menu %q: add submenu: menu cannot open itself: %w", m.Title(), core.ErrInvalidArgument)
	}
	it := NewItem(sub.Subtitle(), "")
	it.onActive = func() { m.pendingOpen = sub }
	if err := m.Add(it); err != nil {
		return nil, err
	}
	sub.Parent = m
	return it, nil
}

// Remove takes e out of the menu. Removing an absent item does nothing.
func (m *Menu) Remove(e Entry) {
	it := itemOf(e)
	if it == nil {
		return
	}
	m.RemoveFunc(func(x *Item) bool { return x == it })
}

// RemoveFunc removes every item pred matches and returns how many went.
func (m *Menu) RemoveFunc(pred func(*Item) bool) int {
	prevIndex, prevItem := m.index, m.SelectedItem()
	kept := m.items[:0]
	removed, before := 0, 0
	for i, it := range m.items {
		if !pred(it) {
			kept = append(kept, it)
			continue
		}
		removed++
		if i < m.index {
			before++
		}
		it.detach()
	}
	if removed == 0 {
		return 0
	}
	m.index -= before
	for i := len(kept); i < len(m.items); i++ {
		m.items[i] = nil
	}
	m.items = kept
	m.clampSelection(prevIndex, prevItem)
	return removed
}

// Clear removes every item.
func (m *Menu) Clear() {
	m.RemoveFunc(func(*Item) bool { return true })
}

// syncDescription points the description box at the selection.
func (m *Menu) syncDescription() {
	if it := m.SelectedItem(); it != nil {
		m.descriptionText.Text = it.description
		return
	}
	m.descriptionText.Text = m.theme.NoItemsText
}

func (m *Menu) Visible() bool { return m.visible }

// SetVisible shows the menu, or closes it when visible is false.
func (m *Menu) SetVisible(visible bool) {
	if !visible {
		m.Close()
		return
	}
	if m.visible {
		return
	}
	m.visible = true
	m.env.Play(config.SoundSelect)
	m.Shown.Emit(m, core.Empty{})
	m.triggerSelected()
}

// Close hides the menu unless a Closing handler cancels it. It reports whether
// the menu is hidden afterwards.
func (m *Menu) Close() bool {
	if !m.visible {
		return true
	}
	args := &core.CancelArgs{}
	m.Closing.Emit(m, args)
	if args.Cancel {
		return false
	}
	m.pendingOpen = nil
	m.visible = false
	m.Closed.Emit(m, core.Empty{})
	m.env.Play(config.SoundBack)
	return true
}

// Back closes the menu and shows the parent, if any.
func (m *Menu) Back() {
	if !m.Close() {
		return
	}
	if m.Parent != nil {
		m.Parent.SetVisible(true)
	}
}

// Process draws the menu and handles this tick's input.
func (m *Menu) Process() {
	if !m.visible {
		return
	}
	if sub := m.pendingOpen; sub != nil {
		m.pendingOpen = nil
		if m.Close() {
			sub.SetVisible(true)
			return
		}
	}

	m.draw(m.env)
	m.applyIntent(m.resolveIntent(m.env))
	m.Buttons.Draw(m.env)
}

func (m *Menu) draw(c core.Canvas) {
	if m.banner != nil {
		m.banner.Draw(c)
		m.bannerText.Draw(c)
	}
	if m.geometry.HasSubtitle {
		m.subtitleBar.Draw(c)
		m.subtitleText.Draw(c)
	}
	m.background.Draw(c)
	for _, it := range m.VisibleItems() {
		it.draw(c)
	}
	if sel := m.SelectedItem(); sel != nil {
		m.highlight.Draw(c)
		sel.drawOverlay(c)
	}
	if !elements.IsBlank(m.descriptionText.Text) {
		m.descriptionBox.Draw(c)
		m.descriptionText.Draw(c)
	}
}
