package config

// ActionID represents a logical menu control
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionMenuClick // Primary mouse button
	ActionMenuToggle
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:       "none",
	ActionMenuUp:     "up",
	ActionMenuDown:   "down",
	ActionMenuLeft:   "left",
	ActionMenuRight:  "right",
	ActionMenuSelect: "select",
	ActionMenuBack:   "back",
	ActionMenuClick:  "click",
	ActionMenuToggle: "toggle",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputConfig holds analog tuning shared by every host
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Frames an analog direction must be held before it repeats
	RepeatDelay    int
	RepeatInterval int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		RepeatDelay:    20,
		RepeatInterval: 6,
	}
}
