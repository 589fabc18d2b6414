package systems

import (
	"fmt"
	"log"

	cfg "github.com/automoto/overlaymenu/config"
	"github.com/automoto/overlaymenu/core"
	"github.com/automoto/overlaymenu/menu"
	"github.com/yohamta/donburi/ecs"
)

// longListSize is the number of rows of the scrolling showcase
const longListSize = 40

// NewMainMenu builds the demo menu tree, registers every menu in the pool and
// returns the root. onQuit runs when Quit is activated.
func NewMainMenu(e *ecs.ECS, opts []menu.Option, onQuit func()) *menu.Menu {
	env := NewEnvironment(e)
	o := GetOrCreateOverlay(e)
	settings := GetOrCreateSettingsMenu(e, nil)

	root := menu.New(env, cfg.C.Title, "MAIN MENU", opts...)
	options := menu.New(env, cfg.C.Title, "ITEM SHOWCASE", opts...)
	long := menu.New(env, cfg.C.Title, "LONG LIST", opts...)
	settingsMenu := NewSettingsMenu(e, env, opts...)

	// Showcase of every item kind
	plain := menu.NewItem("Plain Item", "Activating this item only plays a sound.")
	plain.Activated.Subscribe(func(any, core.Empty) {
		log.Printf("Activated %q", plain.Title())
	})

	locked := menu.NewItem("Locked Item", "Disabled items can be selected but not used.")
	locked.SetEnabled(false)

	unlock := menu.NewCheckboxItem("Unlock", "Enables the locked item above.", false)
	unlock.CheckboxChanged.Subscribe(func(_ any, checked bool) {
		locked.SetEnabled(checked)
	})

	mouse := menu.NewCheckboxItem("Mouse Input", "Let the mouse hover and click rows.", true)
	mouse.CheckboxChanged.Subscribe(func(_ any, checked bool) {
		for _, m := range settings.Menus {
			m.UseMouse = checked
		}
	})

	weapons := menu.NewListItem("Weapon", "List items cycle through their values with left and right.",
		"Pistol", "Shotgun", "Rifle", "Sniper", "Launcher")
	weapons.ItemChanged.Subscribe(func(_ any, args core.ItemChangedArgs[string]) {
		weapons.SetDescription(fmt.Sprintf("Equipped: %s", args.Object))
	})

	intensity := menu.NewSliderItem("Intensity", "Sliders move by their multiplier.", 100, 50)
	intensity.Multiplier = 5

	for _, item := range []menu.Entry{plain, locked, unlock, mouse, weapons, intensity} {
		_ = options.Add(item)
	}

	for i := 1; i <= longListSize; i++ {
		_ = long.Add(menu.NewItem(fmt.Sprintf("Row %d", i), fmt.Sprintf("Row %d of %d.", i, longListSize)))
	}

	for _, sub := range []*menu.Menu{options, long, settingsMenu} {
		if _, err := root.AddSubMenu(sub); err != nil {
			log.Printf("Warning: Could not add submenu %q: %v", sub.Subtitle(), err)
		}
	}

	quit := menu.NewItem("Quit", "Close the demo.")
	quit.Activated.Subscribe(func(any, core.Empty) {
		if onQuit != nil {
			onQuit()
		}
	})
	_ = root.Add(quit)

	settings.Menus = []*menu.Menu{root, options, long, settingsMenu}
	for _, m := range settings.Menus {
		if err := o.Pool.Add(m); err != nil {
			log.Printf("Warning: Could not pool menu %q: %v", m.Subtitle(), err)
		}
	}
	ApplyMenuStyle(settings)

	return root
}

// NewUpdateMenuToggle returns a system that opens root, or hides every menu,
// when the toggle action is pressed.
func NewUpdateMenuToggle(root *menu.Menu) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if !GetAction(input, cfg.ActionMenuToggle).JustPressed {
			return
		}
		o := GetOrCreateOverlay(e)
		if o.Pool.AreAnyVisible() {
			o.Pool.HideAll()
			return
		}
		root.SetVisible(true)
	}
}
