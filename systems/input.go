package systems

import (
	"strings"

	"github.com/automoto/overlaymenu/components"
	cfg "github.com/automoto/overlaymenu/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateOverlay in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed, mouseUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
				mouseUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional actions
	analog := map[cfg.ActionID]bool{
		cfg.ActionMenuLeft:  analogLeft,
		cfg.ActionMenuRight: analogRight,
		cfg.ActionMenuUp:    analogUp,
		cfg.ActionMenuDown:  analogDown,
	}
	for id, held := range analog {
		if held {
			input.Current[id] = true
			gamepadUsed = true
			activeGamepadID = analogGpID
		}
	}

	// Wheel scrolls the selection one row per notch
	if _, dy := ebiten.Wheel(); dy != 0 {
		if dy > 0 {
			input.Current[cfg.ActionMenuUp] = true
		} else {
			input.Current[cfg.ActionMenuDown] = true
		}
		mouseUsed = true
	}

	x, y := ebiten.CursorPosition()
	if x != input.CursorX || y != input.CursorY {
		input.CursorX, input.CursorY = x, y
		mouseUsed = true
	}

	updateRepeat(input)

	// Gamepad takes priority if several devices were used
	switch {
	case gamepadUsed:
		input.LastInputMethod = getControllerType(activeGamepadID)
	case mouseUsed:
		input.LastInputMethod = components.InputMouse
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// updateRepeat marks held directions as repeated after RepeatDelay frames,
// then once every RepeatInterval frames.
func updateRepeat(input *components.InputData) {
	input.Repeated = [cfg.ActionCount]bool{}
	for _, id := range repeatable {
		if !input.Current[id] {
			input.HeldFrames[id] = 0
			continue
		}
		input.HeldFrames[id]++
		held := input.HeldFrames[id] - cfg.Input.RepeatDelay
		if held >= 0 && cfg.Input.RepeatInterval > 0 && held%cfg.Input.RepeatInterval == 0 {
			input.Repeated[id] = true
		}
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame;
// auto repeat counts as a fresh press.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  (curr && !prev) || input.Repeated[id],
		JustReleased: !curr && prev,
	}
}

// InputMethod returns the most recently used input device
func InputMethod(e *ecs.ECS) components.InputMethod {
	return getOrCreateInput(e).LastInputMethod
}
