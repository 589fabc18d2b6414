package core

import (
	"reflect"
	"testing"
)

func TestEventOrderAndUnsubscribe(t *testing.T) {
	var e Event[int]
	var got []string
	e.Subscribe(func(_ any, v int) { got = append(got, "a") })
	unsubscribe := e.Subscribe(func(_ any, v int) { got = append(got, "b") })
	e.Subscribe(func(_ any, v int) { got = append(got, "c") })
	e.Subscribe(nil)

	e.Emit(nil, 1)
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("handlers ran %v, want %v", got, want)
	}

	got = nil
	unsubscribe()
	unsubscribe()
	e.Emit(nil, 2)
	if want := []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("after unsubscribe ran %v, want %v", got, want)
	}
	if e.Len() != 2 {
		t.Errorf("Len() = %d, want 2", e.Len())
	}
}

func TestEventCancel(t *testing.T) {
	var e Event[*CancelArgs]
	e.Subscribe(func(_ any, a *CancelArgs) { a.Cancel = true })
	args := &CancelArgs{}
	e.Emit("sender", args)
	if !args.Cancel {
		t.Error("handler could not cancel")
	}
}

// --- Geometry ---

func TestReferenceWidth(t *testing.T) {
	tests := []struct {
		res  Size
		want float64
	}{
		{Size{W: 1920, H: 1080}, 1920},
		{Size{W: 1440, H: 1080}, 1440},
		{Size{W: 2560, H: 1080}, 2560},
		{Size{W: 1280, H: 720}, 1920},
		{Size{}, 1920},
		{Size{W: 1920, H: 0}, 1920},
	}
	for _, tt := range tests {
		if got := ReferenceWidth(tt.res); got != tt.want {
			t.Errorf("ReferenceWidth(%+v) = %v, want %v", tt.res, got, tt.want)
		}
	}
}

func TestPixelScale(t *testing.T) {
	if got := PixelScale(Size{W: 960, H: 540}); got != 0.5 {
		t.Errorf("PixelScale(540p) = %v, want 0.5", got)
	}
	if got := PixelScale(Size{}); got != 1 {
		t.Errorf("PixelScale(zero) = %v, want 1", got)
	}
}

func TestContains(t *testing.T) {
	pos, size := Point{X: 10, Y: 10}, Size{W: 20, H: 10}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{X: 10, Y: 10}, true}, // top-left inclusive
		{Point{X: 29.9, Y: 19.9}, true},
		{Point{X: 30, Y: 15}, false}, // right edge exclusive
		{Point{X: 15, Y: 20}, false}, // bottom edge exclusive
		{Point{X: 9.9, Y: 15}, false},
	}
	for _, tt := range tests {
		if got := Contains(tt.p, pos, size); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if Contains(Point{}, Point{}, Size{}) {
		t.Error("zero size box contains a point")
	}
}

func TestAlignmentString(t *testing.T) {
	for a, want := range map[Alignment]string{AlignLeft: "left", AlignCenter: "center", AlignRight: "right"} {
		if a.String() != want {
			t.Errorf("%d.String() = %q, want %q", a, a.String(), want)
		}
	}
}
