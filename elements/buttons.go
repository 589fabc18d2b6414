package elements

import (
	"github.com/automoto/overlaymenu/config"
	"github.com/automoto/overlaymenu/core"
)

// InstructionalButtons is the hint bar listing the controls of a menu.
type InstructionalButtons struct {
	Visible bool
	buttons []core.ButtonHint
}

// NewInstructionalButtons creates a visible bar with the given hints.
func NewInstructionalButtons(hints ...core.ButtonHint) *InstructionalButtons {
	return &InstructionalButtons{
		Visible: true,
		buttons: append([]core.ButtonHint(nil), hints...),
	}
}

// Add appends a hint.
func (b *InstructionalButtons) Add(label string, action config.ActionID) {
	b.buttons = append(b.buttons, core.ButtonHint{Label: label, Action: action})
}

// Remove drops every hint bound to action.
func (b *InstructionalButtons) Remove(action config.ActionID) {
	kept := b.buttons[:0]
	for _, h := range b.buttons {
		if h.Action != action {
			kept = append(kept, h)
		}
	}
	b.buttons = kept
}

// Hints returns a copy of the current hints.
func (b *InstructionalButtons) Hints() []core.ButtonHint {
	return append([]core.ButtonHint(nil), b.buttons...)
}

// Draw hands the hints to the canvas.
func (b *InstructionalButtons) Draw(c core.Canvas) {
	if !b.Visible || len(b.buttons) == 0 {
		return
	}
	c.DrawButtons(b.Hints())
}
