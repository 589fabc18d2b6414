package components

import (
	cfg "github.com/automoto/overlaymenu/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputXbox
	InputPlayStation
)

// IsGamepad reports whether the method is a controller.
func (m InputMethod) IsGamepad() bool {
	return m == InputXbox || m == InputPlayStation
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
// All devices are merged.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	// Frames each action has been held, for auto repeat of directions
	HeldFrames [cfg.ActionCount]int
	Repeated   [cfg.ActionCount]bool

	// Cursor position in screen pixels
	CursorX, CursorY int
}

var Input = donburi.NewComponentType[InputData]()
