// Package pool ticks a set of overlay objects once per frame and keeps their
// layout in step with the host resolution and safe-zone.
package pool

import (
	"fmt"
	"reflect"

	"github.com/automoto/overlaymenu/core"
)

// Pool owns the per-frame loop of every registered object. It only observes
// them: removing an object drops the reference and nothing else.
type Pool struct {
	display core.Display
	objects []core.Processable

	resolution core.Size
	safeZone   float64

	ResolutionChanged core.Event[core.ResolutionChangedArgs]
	SafeZoneChanged   core.Event[core.SafeZoneChangedArgs]
}

// New creates an empty pool and records the current display state as the
// baseline for change detection.
func New(display core.Display) *Pool {
	return &Pool{
		display:    display,
		resolution: display.Resolution(),
		safeZone:   display.SafeZone(),
	}
}

// Resolution returns the cached resolution baseline.
func (p *Pool) Resolution() core.Size { return p.resolution }

// SafeZone returns the cached safe-zone baseline.
func (p *Pool) SafeZone() float64 { return p.safeZone }

// Len returns the number of registered objects.
func (p *Pool) Len() int { return len(p.objects) }

// Contains reports whether obj is registered.
func (p *Pool) Contains(obj core.Processable) bool {
	return p.indexOf(obj) >= 0
}

func (p *Pool) indexOf(obj core.Processable) int {
	for i, o := range p.objects {
		if o == obj {
			return i
		}
	}
	return -1
}

// Add registers obj.
func (p *Pool) Add(obj core.Processable) error {
	if isNil(obj) {
		return fmt.Errorf("pool: add: nil object: %w", core.ErrInvalidArgument)
	}
	if p.Contains(obj) {
		return fmt.Errorf("pool: add %T: %w", obj, core.ErrDuplicateItem)
	}
	p.objects = append(p.objects, obj)
	return nil
}

// isNil also catches typed nil pointers wrapped in the interface.
func isNil(obj core.Processable) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Remove unregisters obj. Unknown objects are ignored.
func (p *Pool) Remove(obj core.Processable) {
	i := p.indexOf(obj)
	if i < 0 {
		return
	}
	copy(p.objects[i:], p.objects[i+1:])
	p.objects[len(p.objects)-1] = nil
	p.objects = p.objects[:len(p.objects)-1]
}

// RefreshAll recalculates every object that supports it.
func (p *Pool) RefreshAll() {
	for _, o := range p.objects {
		if r, ok := o.(core.Recalculable); ok {
			r.Recalculate()
		}
	}
}

// AreAnyVisible reports whether any object that can be hidden is visible.
func (p *Pool) AreAnyVisible() bool {
	for _, o := range p.objects {
		if v, ok := o.(core.Visibility); ok && v.Visible() {
			return true
		}
	}
	return false
}

// HideAll hides every object that can be hidden.
func (p *Pool) HideAll() {
	for _, o := range p.objects {
		if v, ok := o.(core.Visibility); ok && v.Visible() {
			v.SetVisible(false)
		}
	}
}

// Process detects display changes, refreshes on change, then ticks every
// object. Detection runs first so every object sees the same geometry.
func (p *Pool) Process() {
	p.detectChanges()

	// Objects may add or remove others while ticking.
	objects := append([]core.Processable(nil), p.objects...)
	for _, o := range objects {
		o.Process()
	}
}

func (p *Pool) detectChanges() {
	if res := p.display.Resolution(); res != p.resolution {
		p.ResolutionChanged.Emit(p, core.ResolutionChangedArgs{Before: p.resolution, After: res})
		p.RefreshAll()
		p.resolution = res
	}
	if sz := p.display.SafeZone(); sz != p.safeZone {
		p.SafeZoneChanged.Emit(p, core.SafeZoneChangedArgs{Before: p.safeZone, After: sz})
		p.RefreshAll()
		p.safeZone = sz
	}
}
