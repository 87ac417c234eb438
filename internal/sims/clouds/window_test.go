package clouds

import "testing"

func TestRebaseIdleObserver(t *testing.T) {
	win := &Window{W: 120, H: 120, CellSize: 2}
	for i := 0; i < 10; i++ {
		if win.Rebase(0, 0) {
			t.Fatalf("centered observer triggered rebase on call %d", i)
		}
	}
	if win.OffsetX != 0 || win.OffsetY != 0 {
		t.Fatalf("offsets drifted: (%v, %v)", win.OffsetX, win.OffsetY)
	}
}

func TestRebaseThresholdIsExclusive(t *testing.T) {
	// W/3 = 40 cells, cell size 2: increment 80, threshold 40.
	win := &Window{W: 120, H: 120, CellSize: 2}

	if win.Rebase(40, 0) {
		t.Fatal("observer exactly on the threshold should not rebase")
	}
	if !win.Rebase(40.001, 0) {
		t.Fatal("observer just past the threshold should rebase")
	}
	if win.OffsetX != 80 {
		t.Fatalf("OffsetX = %v, want 80", win.OffsetX)
	}
	if win.OffsetY != 0 {
		t.Fatalf("OffsetY = %v, want 0", win.OffsetY)
	}
}

func TestRebaseSingleIncrementPerCall(t *testing.T) {
	win := &Window{W: 120, H: 120, CellSize: 2}

	// Observer teleports far away; the window catches up 80 units per call.
	if !win.Rebase(1000, 0) {
		t.Fatal("distant observer should rebase")
	}
	if win.OffsetX != 80 {
		t.Fatalf("first catch-up step: OffsetX = %v, want 80", win.OffsetX)
	}
	if !win.Rebase(1000, 0) {
		t.Fatal("still-distant observer should rebase again")
	}
	if win.OffsetX != 160 {
		t.Fatalf("second catch-up step: OffsetX = %v, want 160", win.OffsetX)
	}
}

func TestRebaseBothAxes(t *testing.T) {
	win := &Window{W: 120, H: 120, CellSize: 2}

	if !win.Rebase(100, -100) {
		t.Fatal("diagonal observer should rebase")
	}
	if win.OffsetX != 80 || win.OffsetY != -80 {
		t.Fatalf("offsets = (%v, %v), want (80, -80)", win.OffsetX, win.OffsetY)
	}
}

func TestRebaseRectangularIncrements(t *testing.T) {
	// Each axis uses a third of its own extent: 9/3=3 cells and 6/3=2 cells.
	win := &Window{W: 9, H: 6, CellSize: 1}

	if !win.Rebase(10, 10) {
		t.Fatal("expected rebase")
	}
	if win.OffsetX != 3 || win.OffsetY != 2 {
		t.Fatalf("offsets = (%v, %v), want (3, 2)", win.OffsetX, win.OffsetY)
	}
}

func TestContains(t *testing.T) {
	win := &Window{W: 10, H: 10, CellSize: 2, OffsetX: 100, OffsetY: 0}
	cases := []struct {
		px, py float64
		want   bool
	}{
		{100, 0, true},
		{90, -10, true},
		{110, 0, false},
		{89.9, 0, false},
		{100, 9.9, true},
		{100, 10, false},
	}
	for _, c := range cases {
		if got := win.Contains(c.px, c.py); got != c.want {
			t.Fatalf("Contains(%v, %v) = %v, want %v", c.px, c.py, got, c.want)
		}
	}
}
