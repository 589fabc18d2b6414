package menu

import (
	"fmt"

	"github.com/automoto/overlaymenu/core"
)

// scrollWindow returns the first visible index once i becomes the selection.
// The window stays put while i is above its last row; stepping onto the last
// row or just above the first scrolls by one; anything else snaps. The result
// never scrolls past the last page.
func scrollWindow(first, maxItems, count, i int) int {
	switch {
	case i >= first && i < first+maxItems-1:
	case i == first+maxItems-1:
		first++
	case i == first-1:
		first--
	case i < maxItems:
		first = 0
	default:
		first = i - maxItems + 1
	}
	if first > i {
		first = i
	}
	if i >= first+maxItems {
		first = i - maxItems + 1
	}
	last := count - maxItems
	if last < 0 {
		last = 0
	}
	if first > last {
		first = last
	}
	if first < 0 {
		first = 0
	}
	return first
}

// SelectedIndex returns the selection, or -1 when the menu is empty.
func (m *Menu) SelectedIndex() int { return m.index }

// SelectedItem returns the selected item, or nil when the menu is empty.
func (m *Menu) SelectedItem() *Item {
	if m.index < 0 || m.index >= len(m.items) {
		return nil
	}
	return m.items[m.index]
}

// SetSelectedIndex selects the item at i and scrolls the window to show it.
func (m *Menu) SetSelectedIndex(i int) error {
	if len(m.items) == 0 {
		return fmt.Errorf("menu %q: select %d: menu is empty: %w", m.Title(), i, core.ErrInvalidState)
	}
	if i < 0 || i >= len(m.items) {
		return fmt.Errorf("menu %q: select %d: out of range [0, %d): %w", m.Title(), i, len(m.items), core.ErrInvalidState)
	}
	m.firstItem = scrollWindow(m.firstItem, m.maxItems, len(m.items), i)
	m.index = i
	m.syncDescription()
	m.updateItems()
	m.triggerSelected()
	return nil
}

// Next selects the following item, wrapping to the first.
func (m *Menu) Next() {
	if len(m.items) == 0 {
		return
	}
	_ = m.SetSelectedIndex((m.index + 1) % len(m.items))
}

// Previous selects the preceding item, wrapping to the last.
func (m *Menu) Previous() {
	if len(m.items) == 0 {
		return
	}
	_ = m.SetSelectedIndex((m.index - 1 + len(m.items)) % len(m.items))
}

// MaxItems returns the number of rows shown at once.
func (m *Menu) MaxItems() int { return m.maxItems }

// SetMaxItems changes the number of rows shown at once.
func (m *Menu) SetMaxItems(n int) error {
	if n < 1 {
		return fmt.Errorf("menu %q: max items %d: must be at least 1: %w", m.Title(), n, core.ErrInvalidState)
	}
	if n == m.maxItems {
		return nil
	}
	m.maxItems = n
	m.firstItem = 0
	if m.index >= 0 {
		m.firstItem = scrollWindow(0, n, len(m.items), m.index)
	}
	m.Recalculate()
	return nil
}

// FirstVisible returns the index of the topmost visible item.
func (m *Menu) FirstVisible() int { return m.firstItem }

// VisibleItems returns the items inside the window.
func (m *Menu) VisibleItems() []*Item {
	end := m.firstItem + m.maxItems
	if end > len(m.items) {
		end = len(m.items)
	}
	if m.firstItem >= end {
		return nil
	}
	return m.items[m.firstItem:end]
}

// clampSelection restores the window after the list shrank. Selection events
// fire only when the index or the selected item differs from before.
func (m *Menu) clampSelection(prevIndex int, prevItem *Item) {
	count := len(m.items)
	if count == 0 {
		m.index = -1
		m.firstItem = 0
		m.syncDescription()
		m.Recalculate()
		return
	}
	i := m.index
	if i >= count {
		i = count - 1
	}
	if i < 0 {
		i = 0
	}
	m.firstItem = scrollWindow(m.firstItem, m.maxItems, count, i)
	m.index = i
	m.syncDescription()
	m.Recalculate()
	if m.index != prevIndex || m.SelectedItem() != prevItem {
		m.triggerSelected()
	}
}

// triggerSelected notifies the selected item and the menu subscribers. Hidden
// menus stay silent; showing them fires the current selection again.
func (m *Menu) triggerSelected() {
	it := m.SelectedItem()
	if it == nil || !m.visible {
		return
	}
	args := core.SelectedArgs{Index: m.index, OnScreen: m.index - m.firstItem}
	it.Selected.Emit(m, args)
	m.SelectedIndexChanged.Emit(m, args)
}
