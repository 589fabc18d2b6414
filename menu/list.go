package menu

import (
	"fmt"

	"github.com/automoto/overlaymenu/core"
)

// ListItem cycles through a fixed set of values with left and right. The
// current value is drawn between the arrows.
type ListItem struct {
	*Item
	values []string
	index  int

	// ItemChanged fires with the new value and its index.
	ItemChanged core.Event[core.ItemChangedArgs[string]]
}

// NewListItem creates a list showing the first value.
func NewListItem(title, description string, values ...string) *ListItem {
	l := &ListItem{
		Item:   NewItem(title, description),
		values: append([]string(nil), values...),
	}
	l.caps.slidable = true
	l.caps.inlineVal = true
	l.goLeft = l.previous
	l.goRight = l.next
	l.value = l.SelectedValue
	return l
}

func (l *ListItem) item() *Item {
	if l == nil {
		return nil
	}
	return l.Item
}

// Values returns a copy of the values.
func (l *ListItem) Values() []string {
	return append([]string(nil), l.values...)
}

// SetValues replaces the values and resets the index to the first one.
func (l *ListItem) SetValues(values ...string) {
	l.values = append([]string(nil), values...)
	l.index = 0
	l.refresh()
}

// SelectedIndex returns the current value index, or -1 if there are no values.
func (l *ListItem) SelectedIndex() int {
	if len(l.values) == 0 {
		return -1
	}
	return l.index
}

// SetSelectedIndex moves to the value at i.
func (l *ListItem) SetSelectedIndex(i int) error {
	if i < 0 || i >= len(l.values) {
		return fmt.Errorf("list %q: index %d out of range [0, %d): %w", l.title, i, len(l.values), core.ErrInvalidState)
	}
	if i == l.index {
		return nil
	}
	l.index = i
	l.changed()
	return nil
}

// SelectedValue returns the current value, or "" if there are no values.
func (l *ListItem) SelectedValue() string {
	if len(l.values) == 0 {
		return ""
	}
	return l.values[l.index]
}

func (l *ListItem) previous() {
	if len(l.values) == 0 {
		return
	}
	l.index = (l.index - 1 + len(l.values)) % len(l.values)
	l.changed()
}

func (l *ListItem) next() {
	if len(l.values) == 0 {
		return
	}
	l.index = (l.index + 1) % len(l.values)
	l.changed()
}

func (l *ListItem) changed() {
	l.refresh()
	l.ItemChanged.Emit(l, core.ItemChangedArgs[string]{Object: l.values[l.index], Index: l.index})
}

// refresh re-measures the value text, which moves the left arrow.
func (l *ListItem) refresh() {
	if l.owner != nil {
		l.owner.updateItems()
	}
}
