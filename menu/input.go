package menu

import (
	"github.com/automoto/overlaymenu/config"
	"github.com/automoto/overlaymenu/core"
)

// IntentKind is the single action a tick of input resolves to.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentBack
	IntentPrevious
	IntentNext
	IntentSlideLeft
	IntentSlideRight
	IntentActivate
	IntentSelectRow
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentBack:       "back",
	IntentPrevious:   "previous",
	IntentNext:       "next",
	IntentSlideLeft:  "slide-left",
	IntentSlideRight: "slide-right",
	IntentActivate:   "activate",
	IntentSelectRow:  "select-row",
}

func (k IntentKind) String() string {
	if k < 0 || int(k) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[k]
}

// Intent is a resolved action. Index is the item it applies to, or -1.
type Intent struct {
	Kind  IntentKind
	Index int
}

var noIntent = Intent{Kind: IntentNone, Index: -1}

// resolveIntent picks the one action this tick's input maps to. Back wins
// over navigation, navigation over sliding, sliding over the mouse and the
// mouse over the select button.
func (m *Menu) resolveIntent(c core.Controls) Intent {
	if c.JustPressed(config.ActionMenuBack) {
		return Intent{Kind: IntentBack, Index: m.index}
	}

	up := c.JustPressed(config.ActionMenuUp)
	down := c.JustPressed(config.ActionMenuDown)
	if up && !down {
		return Intent{Kind: IntentPrevious, Index: m.index}
	}
	if down && !up {
		return Intent{Kind: IntentNext, Index: m.index}
	}

	if it := m.SelectedItem(); it != nil && it.caps.slidable {
		if c.JustPressed(config.ActionMenuLeft) {
			return Intent{Kind: IntentSlideLeft, Index: m.index}
		}
		if c.JustPressed(config.ActionMenuRight) {
			return Intent{Kind: IntentSlideRight, Index: m.index}
		}
	}

	if m.UseMouse && !c.UsingGamepad() {
		c.ShowCursor()
		if c.JustPressed(config.ActionMenuClick) {
			if in, ok := m.hitTest(c); ok {
				return in
			}
		}
	}

	if c.JustPressed(config.ActionMenuSelect) {
		return Intent{Kind: IntentActivate, Index: m.index}
	}
	return noIntent
}

// hitTest checks the cursor against the visible rows, arrows first.
func (m *Menu) hitTest(c core.Controls) (Intent, bool) {
	cursor := c.Cursor()
	for _, r := range m.geometry.Rows {
		if r.Index >= len(m.items) {
			break
		}
		it := m.items[r.Index]
		if it.caps.slidable {
			if c.InBounds(cursor, r.RightArrow.Pos, r.RightArrow.Size) {
				return Intent{Kind: IntentSlideRight, Index: r.Index}, true
			}
			if c.InBounds(cursor, r.LeftArrow.Pos, r.LeftArrow.Size) {
				return Intent{Kind: IntentSlideLeft, Index: r.Index}, true
			}
		}
		if c.InBounds(cursor, r.Bounds.Pos, r.Bounds.Size) {
			if r.Index == m.index {
				return Intent{Kind: IntentActivate, Index: r.Index}, true
			}
			return Intent{Kind: IntentSelectRow, Index: r.Index}, true
		}
	}
	return noIntent, false
}

// applyIntent performs in and plays its feedback.
func (m *Menu) applyIntent(in Intent) {
	switch in.Kind {
	case IntentBack:
		m.Back()
	case IntentPrevious:
		m.Previous()
		m.env.Play(config.SoundUpDown)
	case IntentNext:
		m.Next()
		m.env.Play(config.SoundUpDown)
	case IntentSlideLeft, IntentSlideRight:
		it := m.itemAt(in.Index)
		if it == nil {
			return
		}
		if !it.enabled {
			m.env.Play(config.SoundError)
			return
		}
		if in.Kind == IntentSlideLeft {
			it.slideLeft()
		} else {
			it.slideRight()
		}
		m.env.Play(config.SoundLeftRight)
	case IntentActivate:
		it := m.itemAt(in.Index)
		if it == nil || !it.enabled {
			m.env.Play(config.SoundError)
			return
		}
		m.activate(it)
		m.env.Play(config.SoundSelect)
	case IntentSelectRow:
		if err := m.SetSelectedIndex(in.Index); err != nil {
			return
		}
		m.env.Play(config.SoundUpDown)
	}
}

// activate fires the item and the menu notification, then refreshes the
// checkbox glyph.
func (m *Menu) activate(it *Item) {
	it.activate(m)
	m.ItemActivated.Emit(m, it)
	if it.glyph != nil {
		it.glyph.Texture = m.theme.Checkbox.Pick(it.isChecked(), m.SelectedItem() == it)
	}
}

func (m *Menu) itemAt(i int) *Item {
	if i < 0 || i >= len(m.items) {
		return nil
	}
	return m.items[i]
}
