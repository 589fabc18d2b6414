package menu

import "github.com/automoto/overlaymenu/core"

// SliderItem holds an integer in [0, Maximum] drawn as a bar. Left and right
// move it by Multiplier and stop at the ends.
type SliderItem struct {
	*Item
	maximum    int
	value      int
	Multiplier int

	// ValueChanged fires with the new value.
	ValueChanged core.Event[int]
}

// NewSliderItem creates a slider stepping by one.
func NewSliderItem(title, description string, maximum, value int) *SliderItem {
	if maximum < 0 {
		maximum = 0
	}
	s := &SliderItem{
		Item:       NewItem(title, description),
		maximum:    maximum,
		value:      clampInt(value, 0, maximum),
		Multiplier: 1,
	}
	s.caps.slidable = true
	s.caps.bar = true
	s.goLeft = func() { s.SetValue(s.value - s.step()) }
	s.goRight = func() { s.SetValue(s.value + s.step()) }
	s.fraction = func() float64 {
		if s.maximum == 0 {
			return 0
		}
		return float64(s.value) / float64(s.maximum)
	}
	return s
}

func (s *SliderItem) item() *Item {
	if s == nil {
		return nil
	}
	return s.Item
}

func (s *SliderItem) Value() int { return s.value }

func (s *SliderItem) Maximum() int { return s.maximum }

// SetValue clamps v into range and notifies when it changed.
func (s *SliderItem) SetValue(v int) {
	v = clampInt(v, 0, s.maximum)
	if v == s.value {
		return
	}
	s.value = v
	if s.owner != nil {
		s.owner.updateItems()
	}
	s.ValueChanged.Emit(s, v)
}

// SetMaximum changes the upper bound, clamping the current value.
func (s *SliderItem) SetMaximum(maximum int) {
	if maximum < 0 {
		maximum = 0
	}
	s.maximum = maximum
	s.SetValue(s.value)
	if s.owner != nil {
		s.owner.updateItems()
	}
}

func (s *SliderItem) step() int {
	if s.Multiplier < 1 {
		return 1
	}
	return s.Multiplier
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
