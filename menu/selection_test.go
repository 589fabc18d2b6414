package menu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/automoto/overlaymenu/core"
	"github.com/automoto/overlaymenu/core/coretest"
)

func newTestMenu(t *testing.T, n int, opts ...Option) (*Menu, *coretest.Env) {
	t.Helper()
	env := coretest.NewEnv()
	m := New(env, "Main", "MAIN MENU", opts...)
	for i := 0; i < n; i++ {
		if err := m.Add(NewItem(fmt.Sprintf("Item %d", i), fmt.Sprintf("Description %d", i))); err != nil {
			t.Fatalf("Add(item %d) error: %v", i, err)
		}
	}
	return m, env
}

func checkWindow(t *testing.T, m *Menu) {
	t.Helper()
	n := m.Len()
	first, sel, max := m.FirstVisible(), m.SelectedIndex(), m.MaxItems()
	if n == 0 {
		if sel != -1 || first != 0 {
			t.Fatalf("empty menu: selection=%d first=%d, want -1 and 0", sel, first)
		}
		return
	}
	if first < 0 || first > sel || sel >= first+max {
		t.Fatalf("window broken: first=%d selection=%d max=%d", first, sel, max)
	}
	limit := n
	if max > limit {
		limit = max
	}
	if first+max > limit {
		t.Fatalf("window past last page: first=%d max=%d count=%d", first, max, n)
	}
}

// --- scrollWindow ---

func TestScrollWindow(t *testing.T) {
	tests := []struct {
		name                 string
		first, max, count, i int
		want                 int
	}{
		{"sticky top", 0, 10, 25, 0, 0},
		{"sticky middle", 3, 10, 25, 7, 3},
		{"last slot scrolls down", 0, 10, 25, 9, 1},
		{"above first scrolls up", 5, 10, 25, 4, 4},
		{"snap to top", 12, 10, 25, 2, 0},
		{"snap to bottom", 0, 10, 25, 24, 15},
		{"clamped to last page", 15, 10, 25, 24, 15},
		{"fewer items than rows", 0, 10, 4, 3, 0},
		{"single row", 0, 1, 5, 0, 0},
		{"single row down", 0, 1, 5, 1, 1},
		{"single row jump", 0, 1, 5, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scrollWindow(tt.first, tt.max, tt.count, tt.i)
			if got != tt.want {
				t.Errorf("scrollWindow(%d, %d, %d, %d) = %d, want %d", tt.first, tt.max, tt.count, tt.i, got, tt.want)
			}
		})
	}
}

// --- SetSelectedIndex ---

func TestWindowing(t *testing.T) {
	m, _ := newTestMenu(t, 25)

	steps := []struct {
		index     int
		wantFirst int
	}{
		{9, 1},
		{24, 15},
		{0, 0},
	}
	for _, s := range steps {
		if err := m.SetSelectedIndex(s.index); err != nil {
			t.Fatalf("SetSelectedIndex(%d) error: %v", s.index, err)
		}
		if got := m.FirstVisible(); got != s.wantFirst {
			t.Errorf("after SetSelectedIndex(%d), FirstVisible() = %d, want %d", s.index, got, s.wantFirst)
		}
		checkWindow(t, m)
	}
}

func TestSetSelectedIndexEmpty(t *testing.T) {
	m, _ := newTestMenu(t, 0)
	err := m.SetSelectedIndex(0)
	if !errors.Is(err, core.ErrInvalidState) {
		t.Fatalf("SetSelectedIndex on empty menu = %v, want ErrInvalidState", err)
	}
	if m.SelectedIndex() != -1 {
		t.Errorf("SelectedIndex() = %d, want -1", m.SelectedIndex())
	}
}

func TestSetSelectedIndexOutOfRange(t *testing.T) {
	m, _ := newTestMenu(t, 3)
	for _, i := range []int{3, 10, -1} {
		if err := m.SetSelectedIndex(i); !errors.Is(err, core.ErrInvalidState) {
			t.Errorf("SetSelectedIndex(%d) = %v, want ErrInvalidState", i, err)
		}
	}
	if m.SelectedIndex() != 0 {
		t.Errorf("failed selections changed SelectedIndex() to %d", m.SelectedIndex())
	}
}

func TestSelectionUpdatesDescription(t *testing.T) {
	m, _ := newTestMenu(t, 3)
	if err := m.SetSelectedIndex(2); err != nil {
		t.Fatal(err)
	}
	if got := m.Description(); got != "Description 2" {
		t.Errorf("Description() = %q, want %q", got, "Description 2")
	}
}

// --- Next / Previous ---

func TestWraparound(t *testing.T) {
	m, _ := newTestMenu(t, 3)
	if err := m.SetSelectedIndex(2); err != nil {
		t.Fatal(err)
	}
	m.Next()
	if m.SelectedIndex() != 0 {
		t.Errorf("Next() at last item: SelectedIndex() = %d, want 0", m.SelectedIndex())
	}
	m.Previous()
	if m.SelectedIndex() != 2 {
		t.Errorf("Previous() at first item: SelectedIndex() = %d, want 2", m.SelectedIndex())
	}
}

func TestNextPreviousEmpty(t *testing.T) {
	m, _ := newTestMenu(t, 0)
	m.Next()
	m.Previous()
	if m.SelectedIndex() != -1 {
		t.Errorf("SelectedIndex() = %d, want -1", m.SelectedIndex())
	}
}

func TestInvariantSweep(t *testing.T) {
	for _, max := range []int{1, 2, 5, 10} {
		t.Run(fmt.Sprintf("max=%d", max), func(t *testing.T) {
			m, _ := newTestMenu(t, 0, WithMaxItems(max))
			for i := 0; i < 13; i++ {
				if err := m.Add(NewItem(fmt.Sprintf("Item %d", i), "")); err != nil {
					t.Fatal(err)
				}
				checkWindow(t, m)
			}
			for i := 0; i < 30; i++ {
				m.Next()
				checkWindow(t, m)
			}
			for i := 0; i < 30; i++ {
				m.Previous()
				checkWindow(t, m)
			}
			for _, i := range []int{12, 0, 6, 11, 1, 7} {
				if err := m.SetSelectedIndex(i); err != nil {
					t.Fatal(err)
				}
				checkWindow(t, m)
			}
			for m.Len() > 0 {
				m.Remove(m.Items()[m.Len()/2])
				checkWindow(t, m)
			}
		})
	}
}

// --- MaxItems ---

func TestSetMaxItems(t *testing.T) {
	m, _ := newTestMenu(t, 20)
	if err := m.SetMaxItems(0); !errors.Is(err, core.ErrInvalidState) {
		t.Fatalf("SetMaxItems(0) = %v, want ErrInvalidState", err)
	}
	if m.MaxItems() != 10 {
		t.Errorf("MaxItems() = %d, want 10", m.MaxItems())
	}

	if err := m.SetSelectedIndex(15); err != nil {
		t.Fatal(err)
	}
	if err := m.SetMaxItems(4); err != nil {
		t.Fatalf("SetMaxItems(4) error: %v", err)
	}
	checkWindow(t, m)
	if got := len(m.VisibleItems()); got != 4 {
		t.Errorf("len(VisibleItems()) = %d, want 4", got)
	}
}

// --- Removal ---

func TestRemoveSelectedLastClamps(t *testing.T) {
	m, _ := newTestMenu(t, 5)
	if err := m.SetSelectedIndex(4); err != nil {
		t.Fatal(err)
	}
	m.Remove(m.SelectedItem())
	if m.SelectedIndex() != 3 {
		t.Errorf("SelectedIndex() = %d, want 3", m.SelectedIndex())
	}
	checkWindow(t, m)
}

func TestRemoveBeforeSelectionKeepsItem(t *testing.T) {
	m, _ := newTestMenu(t, 6)
	if err := m.SetSelectedIndex(4); err != nil {
		t.Fatal(err)
	}
	selected := m.SelectedItem()
	items := m.Items()
	n := m.RemoveFunc(func(it *Item) bool { return it == items[1] || it == items[3] })
	if n != 2 {
		t.Fatalf("RemoveFunc removed %d, want 2", n)
	}
	if m.SelectedItem() != selected {
		t.Errorf("SelectedItem() = %q, want %q", m.SelectedItem().Title(), selected.Title())
	}
	if m.SelectedIndex() != 2 {
		t.Errorf("SelectedIndex() = %d, want 2", m.SelectedIndex())
	}
}

func TestRemoveSelectionEvents(t *testing.T) {
	m, _ := newTestMenu(t, 6)
	m.SetVisible(true)
	if err := m.SetSelectedIndex(2); err != nil {
		t.Fatal(err)
	}
	var fired []core.SelectedArgs
	m.SelectedIndexChanged.Subscribe(func(_ any, a core.SelectedArgs) { fired = append(fired, a) })

	// Same item at the same index: nothing to report.
	m.Remove(m.Items()[4])
	if len(fired) != 0 {
		t.Fatalf("removing a row after the selection fired %+v", fired)
	}

	// Same item, new index.
	m.Remove(m.Items()[0])
	if len(fired) != 1 || fired[0].Index != 1 {
		t.Fatalf("removing a row before the selection fired %+v, want index 1", fired)
	}

	// Selected item gone, index kept.
	m.Remove(m.SelectedItem())
	if len(fired) != 2 || fired[1].Index != 1 {
		t.Errorf("removing the selected row fired %+v, want a second event at index 1", fired)
	}
}

func TestClearShowsNoItemsText(t *testing.T) {
	m, _ := newTestMenu(t, 12)
	if err := m.SetSelectedIndex(11); err != nil {
		t.Fatal(err)
	}
	m.Clear()
	checkWindow(t, m)
	if m.SelectedItem() != nil {
		t.Errorf("SelectedItem() = %v, want nil", m.SelectedItem())
	}
	if got, want := m.Description(), m.Theme().NoItemsText; got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}
}
