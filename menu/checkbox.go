package menu

import "github.com/automoto/overlaymenu/core"

// CheckboxItem is an item with an on/off state toggled on activation.
type CheckboxItem struct {
	*Item
	checked bool

	// CheckboxChanged fires with the new state whenever it actually changes.
	CheckboxChanged core.Event[bool]
}

// NewCheckboxItem creates an enabled checkbox.
func NewCheckboxItem(title, description string, checked bool) *CheckboxItem {
	c := &CheckboxItem{
		Item:    NewItem(title, description),
		checked: checked,
	}
	c.caps.checkbox = true
	c.Item.checked = func() bool { return c.checked }
	c.onActive = func() { c.SetChecked(!c.checked) }
	return c
}

func (c *CheckboxItem) item() *Item {
	if c == nil {
		return nil
	}
	return c.Item
}

func (c *CheckboxItem) Checked() bool { return c.checked }

// SetChecked changes the state and refreshes the glyph.
func (c *CheckboxItem) SetChecked(checked bool) {
	if c.checked == checked {
		return
	}
	c.checked = checked
	c.updateGlyph()
	c.CheckboxChanged.Emit(c, checked)
}

func (c *CheckboxItem) updateGlyph() {
	if c.glyph == nil || c.owner == nil {
		return
	}
	c.glyph.Texture = c.owner.theme.Checkbox.Pick(c.checked, c.owner.SelectedItem() == c.Item)
}
