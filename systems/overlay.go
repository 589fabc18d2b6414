package systems

import (
	"github.com/automoto/overlaymenu/components"
	cfg "github.com/automoto/overlaymenu/config"
	"github.com/automoto/overlaymenu/core"
	"github.com/automoto/overlaymenu/pool"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	LayerBackground ecs.LayerID = iota
	LayerOverlay
)

// GetOrCreateOverlay returns the singleton Overlay component, creating it and
// its pool if needed.
func GetOrCreateOverlay(e *ecs.ECS) *components.OverlayData {
	entry, ok := components.Overlay.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Overlay))
		components.Overlay.SetValue(entry, components.OverlayData{
			Resolution: core.Size{W: float64(cfg.C.Width), H: float64(cfg.C.Height)},
			SafeZone:   1,
			Commands:   make([]components.DrawCommand, 0, 64),
		})
		// The pool reads the baseline through the environment, so the
		// component must hold its values first.
		components.Overlay.Get(entry).Pool = pool.New(NewEnvironment(e))
	}
	return components.Overlay.Get(entry)
}

// SetResolution records the screen size reported by the game layout.
func SetResolution(e *ecs.ECS, width, height int) {
	GetOrCreateOverlay(e).Resolution = core.Size{W: float64(width), H: float64(height)}
}

// SetSafeZone changes the safe-zone scalar menus are laid out against.
func SetSafeZone(e *ecs.ECS, zone float64) {
	GetOrCreateOverlay(e).SafeZone = zone
}

// UpdateOverlay ticks every pooled menu. Menus draw during their tick, so the
// draw list is rebuilt here and replayed by DrawOverlay.
func UpdateOverlay(e *ecs.ECS) {
	o := GetOrCreateOverlay(e)
	o.Commands = o.Commands[:0]
	o.CursorWanted = false

	o.Pool.Process()

	switch {
	case o.CursorWanted || !o.Pool.AreAnyVisible():
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	default:
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

// DrawOverlay replays the queued draw list onto the screen.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	o := GetOrCreateOverlay(e)
	for i := range o.Commands {
		drawCommand(screen, &o.Commands[i])
	}
}

// Hints returns the instructional buttons drawn this tick, if any.
func Hints(e *ecs.ECS) []core.ButtonHint {
	o := GetOrCreateOverlay(e)
	for i := len(o.Commands) - 1; i >= 0; i-- {
		if o.Commands[i].Kind == components.DrawButtons {
			return o.Commands[i].Hints
		}
	}
	return nil
}
