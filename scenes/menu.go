package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/overlaymenu/menu"
	"github.com/automoto/overlaymenu/systems"
	"github.com/automoto/overlaymenu/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var backdropColor = color.RGBA{R: 36, G: 44, B: 52, A: 255}

// MenuScene runs the overlay menu demo on top of a plain backdrop
type MenuScene struct {
	ecs     *ecs.ECS
	options []menu.Option
	saved   *systems.SavedSettings
	buttons *ui.ButtonsUI
	once    sync.Once

	// Root of the menu tree, shown on the first tick
	Root *menu.Menu
	quit bool
}

// NewMenuScene creates a new menu scene. saved may be nil.
func NewMenuScene(saved *systems.SavedSettings, opts ...menu.Option) *MenuScene {
	return &MenuScene{options: opts, saved: saved}
}

// Quit reports whether the user asked to leave
func (ms *MenuScene) Quit() bool {
	return ms.quit
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

// Resize forwards the game layout size to the menus
func (ms *MenuScene) Resize(width, height int) {
	if ms.ecs == nil {
		return
	}
	systems.SetResolution(ms.ecs, width, height)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.buttons = ui.NewButtonsUI()

	systems.GetOrCreateSettingsMenu(ms.ecs, ms.saved)
	systems.ApplySavedSettings(ms.ecs, ms.saved)
	ms.Root = systems.NewMainMenu(ms.ecs, ms.options, func() { ms.quit = true })

	// Input first, audio last so cues queued this tick play immediately
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenuToggle(ms.Root))
	ms.ecs.AddSystem(systems.UpdateOverlay)
	ms.ecs.AddSystem(ms.updateButtons)
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddRenderer(systems.LayerBackground, drawBackdrop)
	ms.ecs.AddRenderer(systems.LayerOverlay, systems.DrawOverlay)
	ms.ecs.AddRenderer(systems.LayerOverlay, ms.drawButtons)

	ms.Root.SetVisible(true)
}

func (ms *MenuScene) updateButtons(e *ecs.ECS) {
	ms.buttons.Update(systems.Hints(e), systems.InputMethod(e))
}

func (ms *MenuScene) drawButtons(_ *ecs.ECS, screen *ebiten.Image) {
	ms.buttons.Draw(screen)
}

// drawBackdrop stands in for the game the overlay would sit on
func drawBackdrop(_ *ecs.ECS, screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	vector.FillRect(screen, 0, 0, w, h, backdropColor, false)
	for x := float32(0); x < w; x += 64 {
		vector.StrokeLine(screen, x, 0, x, h, 1, color.RGBA{R: 48, G: 58, B: 68, A: 255}, false)
	}
	for y := float32(0); y < h; y += 64 {
		vector.StrokeLine(screen, 0, y, w, y, 1, color.RGBA{R: 48, G: 58, B: 68, A: 255}, false)
	}
}
