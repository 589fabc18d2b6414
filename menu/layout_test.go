package menu

import (
	"math"
	"reflect"
	"testing"

	"github.com/automoto/overlaymenu/config"
	"github.com/automoto/overlaymenu/core"
	"github.com/automoto/overlaymenu/core/coretest"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func checkRect(t *testing.T, name string, got Rect, x, y, w, h float64) {
	t.Helper()
	if !almost(got.Pos.X, x) || !almost(got.Pos.Y, y) || !almost(got.Size.W, w) || !almost(got.Size.H, h) {
		t.Errorf("%s = (%.2f, %.2f, %.2f x %.2f), want (%.2f, %.2f, %.2f x %.2f)",
			name, got.Pos.X, got.Pos.Y, got.Size.W, got.Size.H, x, y, w, h)
	}
}

func TestLayoutIdempotent(t *testing.T) {
	m, _ := newTestMenu(t, 14)
	if err := m.Add(NewListItem("List", "a list", "one", "two")); err != nil {
		t.Fatal(err)
	}
	if err := m.SetSelectedIndex(12); err != nil {
		t.Fatal(err)
	}
	first := m.Layout()
	second := m.Layout()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Layout() changed between calls:\n%+v\n%+v", first, second)
	}

	m.Recalculate()
	before := m.geometry
	m.Recalculate()
	if !reflect.DeepEqual(before, m.geometry) {
		t.Fatal("Recalculate() twice produced different geometry")
	}
}

func TestLayoutStacking(t *testing.T) {
	m, _ := newTestMenu(t, 3)
	if err := m.SetSelectedIndex(1); err != nil {
		t.Fatal(err)
	}
	g := m.Layout()
	l := config.Layout

	checkRect(t, "banner", g.Banner, 0, 0, 433, l.BannerHeight)
	checkRect(t, "subtitle", g.Subtitle, 0, 108, 433, 38)
	checkRect(t, "background", g.Background, 0, 146, 433, 3*37.4)
	checkRect(t, "highlight", g.Highlight, 0, 146+37.4, 433, 37.4)

	descY := 146 + 3*37.4 + 4
	checkRect(t, "description", g.Description, 0, descY, 433, float64(g.DescriptionLines)*35)
	if g.DescriptionLines != 1 {
		t.Errorf("DescriptionLines = %d, want 1", g.DescriptionLines)
	}
	if !almost(g.DescriptionText.X, 6) || !almost(g.DescriptionText.Y, descY+3) {
		t.Errorf("DescriptionText = %+v, want (6, %.2f)", g.DescriptionText, descY+3)
	}
	if !almost(g.BannerText.X, 433.0/2) || !almost(g.BannerText.Y, 22) {
		t.Errorf("BannerText = %+v, want (216.5, 22)", g.BannerText)
	}

	if len(g.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, want 3", len(g.Rows))
	}
	for k, r := range g.Rows {
		rowY := 146 + float64(k)*37.4
		if !almost(r.Title.X, 6) || !almost(r.Title.Y, rowY+3) {
			t.Errorf("row %d title = %+v, want (6, %.2f)", k, r.Title, rowY+3)
		}
		want := m.Theme().ItemColor
		if k == 1 {
			want = m.Theme().ItemSelectedColor
		}
		if r.TitleColor != want {
			t.Errorf("row %d color = %v, want %v", k, r.TitleColor, want)
		}
	}
}

func TestLayoutBlankSubtitle(t *testing.T) {
	env := coretest.NewEnv()
	m := New(env, "Main", "   ")
	if err := m.Add(NewItem("Only", "")); err != nil {
		t.Fatal(err)
	}
	g := m.Layout()
	if g.HasSubtitle {
		t.Error("HasSubtitle = true for a blank subtitle")
	}
	checkRect(t, "background", g.Background, 0, 108, 433, 37.4)
	if g.DescriptionLines != 0 {
		t.Errorf("DescriptionLines = %d, want 0 for a blank description", g.DescriptionLines)
	}
}

func TestLayoutWithoutBanner(t *testing.T) {
	m, _ := newTestMenu(t, 1)
	m.SetBanner("", "")
	g := m.Layout()
	if g.HasBanner {
		t.Error("HasBanner = true after removing the banner")
	}
	checkRect(t, "subtitle", g.Subtitle, 0, 0, 433, 38)
}

func TestLayoutRightAlignment(t *testing.T) {
	m, env := newTestMenu(t, 2, WithAlignment(core.AlignRight), WithWidth(500))
	g := m.Layout()
	if !almost(g.Origin.X, 1920-500) {
		t.Errorf("Origin.X = %.2f, want %.2f", g.Origin.X, 1920.0-500)
	}

	// 4:3 shrinks the reference width.
	env.Res = core.Size{W: 1440, H: 1080}
	g = m.Layout()
	if !almost(g.Origin.X, 1440-500) {
		t.Errorf("4:3 Origin.X = %.2f, want %.2f", g.Origin.X, 1440.0-500)
	}

	m.SetAlignment(core.AlignLeft)
	if !almost(m.Layout().Origin.X, 0) {
		t.Errorf("left Origin.X = %.2f, want 0", m.Layout().Origin.X)
	}
}

func TestLayoutSafeZone(t *testing.T) {
	m, env := newTestMenu(t, 1)
	env.Zone = 0.9
	g := m.Layout()
	if !almost(g.Origin.X, 96) || !almost(g.Origin.Y, 54) {
		t.Errorf("Origin = %+v, want (96, 54)", g.Origin)
	}

	m.SetAlignment(core.AlignRight)
	g = m.Layout()
	if !almost(g.Origin.X, 1920-433-96) {
		t.Errorf("right Origin.X = %.2f, want %.2f", g.Origin.X, 1920.0-433-96)
	}

	m.SafeZoneAware = false
	g = m.Layout()
	if !almost(g.Origin.X, 1920-433) || !almost(g.Origin.Y, 0) {
		t.Errorf("unaware Origin = %+v, want (%.2f, 0)", g.Origin, 1920.0-433)
	}
}

func TestLayoutDegenerateInputs(t *testing.T) {
	env := coretest.NewEnv()
	env.Res = core.Size{}
	m := New(env, "Main", "MAIN", WithWidth(0))
	if err := m.Add(NewSliderItem("Volume", "", 10, 5)); err != nil {
		t.Fatal(err)
	}
	m.SetAlignment(core.AlignRight)
	g := m.Layout()
	if !almost(g.Origin.X, 1920) {
		t.Errorf("Origin.X = %.2f, want 1920 for a zero resolution", g.Origin.X)
	}
	m.SetVisible(true)
	env.Press(config.ActionMenuRight)
	m.Process()
	if got := len(env.ButtonsDrawn); got != 1 {
		t.Errorf("buttons drawn %d times, want 1", got)
	}
}

func TestLayoutArrowsOnlyOnSelectedRow(t *testing.T) {
	env := coretest.NewEnv()
	m := New(env, "Main", "MAIN")
	a := NewListItem("First", "", "Low", "High")
	b := NewListItem("Second", "", "Off", "On")
	for _, it := range []Entry{a, b} {
		if err := m.Add(it); err != nil {
			t.Fatal(err)
		}
	}
	g := m.Layout()
	right := 433.0

	sel := g.Rows[0]
	checkRect(t, "selected right arrow", sel.RightArrow, right-35, 146+4, 30, 30)
	valueW := env.TextWidth("Low", core.FontChaletLondon, m.Theme().ItemScale)
	wantValueX := right - 30 - 1 - valueW
	if !almost(sel.Value.X, wantValueX) {
		t.Errorf("selected value X = %.2f, want %.2f", sel.Value.X, wantValueX)
	}
	checkRect(t, "selected left arrow", sel.LeftArrow, wantValueX-30, 146+4, 30, 30)

	other := g.Rows[1]
	if !other.RightArrow.Size.IsZero() || !other.LeftArrow.Size.IsZero() {
		t.Errorf("unselected arrows = %+v / %+v, want zero size", other.LeftArrow.Size, other.RightArrow.Size)
	}
	if other.ValueColor != m.Theme().ItemColor {
		t.Errorf("unselected value color = %v, want %v", other.ValueColor, m.Theme().ItemColor)
	}
}

func TestLayoutSliderBar(t *testing.T) {
	env := coretest.NewEnv()
	m := New(env, "Main", "MAIN")
	s := NewSliderItem("Volume", "", 10, 5)
	if err := m.Add(s); err != nil {
		t.Fatal(err)
	}
	r := m.Layout().Rows[0]
	barX := 433.0 - 30 - 1 - 150
	checkRect(t, "bar", r.BarBack, barX, 146+14, 150, 9)
	checkRect(t, "fill", r.BarFill, barX, 146+14, 75, 9)
	checkRect(t, "left arrow", r.LeftArrow, barX-30, 146+4, 30, 30)
}

func TestLayoutCheckboxTextures(t *testing.T) {
	env := coretest.NewEnv()
	m := New(env, "Main", "MAIN")
	on := NewCheckboxItem("On", "", true)
	off := NewCheckboxItem("Off", "", false)
	for _, it := range []Entry{on, off} {
		if err := m.Add(it); err != nil {
			t.Fatal(err)
		}
	}
	cb := m.Theme().Checkbox
	g := m.Layout()
	if got := g.Rows[0].CheckboxTexture; got != cb.TickSelected {
		t.Errorf("selected checked texture = %q, want %q", got, cb.TickSelected)
	}
	if got := g.Rows[1].CheckboxTexture; got != cb.Blank {
		t.Errorf("unselected blank texture = %q, want %q", got, cb.Blank)
	}
	checkRect(t, "checkbox", g.Rows[0].Checkbox, 433-50, 146-6, 50, 50)
}

func TestLayoutDisabledColor(t *testing.T) {
	m, _ := newTestMenu(t, 2)
	m.Items()[1].SetEnabled(false)
	g := m.Layout()
	if g.Rows[1].TitleColor != m.Theme().ItemDisabledColor {
		t.Errorf("disabled color = %v, want %v", g.Rows[1].TitleColor, m.Theme().ItemDisabledColor)
	}
}

func TestRecalculateScalesToPixels(t *testing.T) {
	m, env := newTestMenu(t, 1)
	env.Res = core.Size{W: 1280, H: 720}
	m.Recalculate()
	pos, size := m.background.Absolute()
	scale := 720.0 / 1080
	if !almost(pos.Y, 146*scale) || !almost(size.W, 433*scale) {
		t.Errorf("background pixels = %+v %+v, want y=%.2f w=%.2f", pos, size, 146*scale, 433*scale)
	}
}
