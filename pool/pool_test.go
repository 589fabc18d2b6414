package pool

import (
	"errors"
	"reflect"
	"testing"

	"github.com/automoto/overlaymenu/core"
	"github.com/automoto/overlaymenu/core/coretest"
	"github.com/automoto/overlaymenu/menu"
)

// countingMenu counts layout refreshes of a real menu.
type countingMenu struct {
	*menu.Menu
	recalcs int
}

func (c *countingMenu) Recalculate() {
	c.recalcs++
	c.Menu.Recalculate()
}

// probe records the calls it receives into a shared log.
type probe struct {
	name string
	log  *[]string
}

func (p *probe) Recalculate() { *p.log = append(*p.log, p.name+".recalc") }
func (p *probe) Process()     { *p.log = append(*p.log, p.name+".process") }

// ticker is processable but has no layout.
type ticker struct{ ticks int }

func (t *ticker) Process() { t.ticks++ }

func newCountingMenu(env *coretest.Env, title string) *countingMenu {
	m := menu.New(env, title, "SUB")
	_ = m.Add(menu.NewItem("Item", ""))
	return &countingMenu{Menu: m}
}

// --- Add / Remove ---

func TestAddNil(t *testing.T) {
	p := New(coretest.NewEnv())
	if err := p.Add(nil); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("Add(nil) = %v, want ErrInvalidArgument", err)
	}
}

func TestAddTypedNil(t *testing.T) {
	p := New(coretest.NewEnv())
	var m *menu.Menu
	var tk *ticker
	for _, o := range []core.Processable{m, tk} {
		if err := p.Add(o); !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("Add(%T nil) = %v, want ErrInvalidArgument", o, err)
		}
	}
	if p.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", p.Len())
	}
	p.Process()
}

func TestAddDuplicate(t *testing.T) {
	env := coretest.NewEnv()
	p := New(env)
	m := newCountingMenu(env, "A")
	if err := p.Add(m); err != nil {
		t.Fatal(err)
	}
	if err := p.Add(m); !errors.Is(err, core.ErrDuplicateItem) {
		t.Errorf("second Add = %v, want ErrDuplicateItem", err)
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestRemove(t *testing.T) {
	p := New(coretest.NewEnv())
	a, b := &ticker{}, &ticker{}
	for _, o := range []core.Processable{a, b} {
		if err := p.Add(o); err != nil {
			t.Fatal(err)
		}
	}
	p.Remove(&ticker{})
	if p.Len() != 2 {
		t.Errorf("removing an absent object changed Len() to %d", p.Len())
	}
	p.Remove(a)
	if p.Contains(a) || !p.Contains(b) || p.Len() != 1 {
		t.Errorf("after Remove(a): contains a=%v b=%v len=%d", p.Contains(a), p.Contains(b), p.Len())
	}
	p.Process()
	if a.ticks != 0 || b.ticks != 1 {
		t.Errorf("ticks a=%d b=%d, want 0 and 1", a.ticks, b.ticks)
	}
}

// --- Change detection ---

func TestResolutionChangeCascade(t *testing.T) {
	env := coretest.NewEnv()
	p := New(env)
	a, b := newCountingMenu(env, "A"), newCountingMenu(env, "B")
	for _, m := range []*countingMenu{a, b} {
		if err := p.Add(m); err != nil {
			t.Fatal(err)
		}
	}
	var events []core.ResolutionChangedArgs
	p.ResolutionChanged.Subscribe(func(_ any, args core.ResolutionChangedArgs) {
		events = append(events, args)
	})

	p.Process()
	if a.recalcs != 0 || b.recalcs != 0 {
		t.Fatalf("recalculated without a change: a=%d b=%d", a.recalcs, b.recalcs)
	}

	env.Res = core.Size{W: 1280, H: 720}
	p.Process()
	if a.recalcs != 1 || b.recalcs != 1 {
		t.Errorf("recalcs a=%d b=%d, want 1 and 1", a.recalcs, b.recalcs)
	}
	if p.Resolution() != env.Res {
		t.Errorf("Resolution() = %+v, want %+v", p.Resolution(), env.Res)
	}
	want := []core.ResolutionChangedArgs{{Before: core.Size{W: 1920, H: 1080}, After: env.Res}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %+v, want %+v", events, want)
	}

	p.Process()
	if a.recalcs != 1 || b.recalcs != 1 || len(events) != 1 {
		t.Errorf("second tick refreshed again: a=%d b=%d events=%d", a.recalcs, b.recalcs, len(events))
	}
}

func TestSafeZoneChange(t *testing.T) {
	env := coretest.NewEnv()
	p := New(env)
	var log []string
	if err := p.Add(&probe{name: "x", log: &log}); err != nil {
		t.Fatal(err)
	}
	var got core.SafeZoneChangedArgs
	p.SafeZoneChanged.Subscribe(func(_ any, args core.SafeZoneChangedArgs) {
		log = append(log, "event")
		got = args
	})

	env.Zone = 0.9
	p.Process()
	if want := []string{"event", "x.recalc", "x.process"}; !reflect.DeepEqual(log, want) {
		t.Errorf("calls = %v, want %v", log, want)
	}
	if got.Before != 1 || got.After != 0.9 {
		t.Errorf("args = %+v, want 1 -> 0.9", got)
	}
	if p.SafeZone() != 0.9 {
		t.Errorf("SafeZone() = %v, want 0.9", p.SafeZone())
	}
}

func TestDetectionBeforeTicks(t *testing.T) {
	env := coretest.NewEnv()
	p := New(env)
	var log []string
	for _, name := range []string{"a", "b"} {
		if err := p.Add(&probe{name: name, log: &log}); err != nil {
			t.Fatal(err)
		}
	}
	if err := p.Add(&ticker{}); err != nil {
		t.Fatal(err)
	}

	env.Res = core.Size{W: 2560, H: 1080}
	env.Zone = 0.95
	p.Process()
	want := []string{
		"a.recalc", "b.recalc", // resolution
		"a.recalc", "b.recalc", // safe-zone
		"a.process", "b.process",
	}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("calls = %v, want %v", log, want)
	}
}

// --- Visibility helpers ---

func TestVisibilityHelpers(t *testing.T) {
	env := coretest.NewEnv()
	p := New(env)
	a, b := newCountingMenu(env, "A"), newCountingMenu(env, "B")
	for _, o := range []core.Processable{a, b, &ticker{}} {
		if err := p.Add(o); err != nil {
			t.Fatal(err)
		}
	}
	if p.AreAnyVisible() {
		t.Error("AreAnyVisible() = true with every menu hidden")
	}
	b.SetVisible(true)
	if !p.AreAnyVisible() {
		t.Error("AreAnyVisible() = false with a visible menu")
	}
	p.HideAll()
	if a.Visible() || b.Visible() || p.AreAnyVisible() {
		t.Error("HideAll() left a menu visible")
	}
}
