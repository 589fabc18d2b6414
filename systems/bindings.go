package systems

import (
	cfg "github.com/automoto/overlaymenu/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys and buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
	MouseButtons           []ebiten.MouseButton
}

// Bindings maps every menu action to its physical inputs
var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionMenuUp: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		// D-pad Up (analog stick handled separately)
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftTop,
		},
	},
	cfg.ActionMenuDown: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftBottom,
		},
	},
	cfg.ActionMenuLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	cfg.ActionMenuRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	cfg.ActionMenuSelect: {
		Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyNumpadEnter},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	cfg.ActionMenuBack: {
		Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
		// B / Circle button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightRight,
		},
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
	},
	cfg.ActionMenuClick: {
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
	},
	cfg.ActionMenuToggle: {
		Keys: []ebiten.Key{ebiten.KeyM, ebiten.KeyF1},
		// Start / Options button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
		},
	},
}

// repeatable actions fire again while held
var repeatable = []cfg.ActionID{
	cfg.ActionMenuUp,
	cfg.ActionMenuDown,
	cfg.ActionMenuLeft,
	cfg.ActionMenuRight,
}
