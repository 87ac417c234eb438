package clouds

import "testing"

func TestVelocityFieldDeterministic(t *testing.T) {
	a := NewVelocityField(32, 32, 5, 42)
	b := NewVelocityField(32, 32, 5, 42)
	for i := range a.vx {
		if a.vx[i] != b.vx[i] || a.vy[i] != b.vy[i] {
			t.Fatalf("same seed produced different fields at %d", i)
		}
	}

	c := NewVelocityField(32, 32, 5, 43)
	same := true
	for i := range a.vx {
		if a.vx[i] != c.vx[i] || a.vy[i] != c.vy[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical fields")
	}
}

func TestVelocityFieldBounded(t *testing.T) {
	f := NewVelocityField(48, 32, 5, 7)
	if f.W != 48 || f.H != 32 {
		t.Fatalf("field is %dx%d, want 48x32", f.W, f.H)
	}
	// Noise values sit in [-1, 1], so half their difference sits in [-1, 1].
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			vx, vy := f.At(x, y)
			if vx < -1 || vx > 1 || vy < -1 || vy > 1 {
				t.Fatalf("velocity out of range at (%d,%d): (%v, %v)", x, y, vx, vy)
			}
		}
	}
}

func TestVelocityFieldZeroScaleIsStill(t *testing.T) {
	// Zero noise scale collapses every sample to the same point of the
	// potential, so all finite differences vanish.
	f := NewVelocityField(16, 16, 0, 99)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			vx, vy := f.At(x, y)
			if vx != 0 || vy != 0 {
				t.Fatalf("zero-scale field not still at (%d,%d): (%v, %v)", x, y, vx, vy)
			}
		}
	}
}

func TestVelocityFieldNotGradientLike(t *testing.T) {
	// The field is a curl: the x component differentiates the potential
	// along y and vice versa. A symmetric (gradient) construction would
	// make vx equal along x differences; spot-check the field has both
	// nonzero components somewhere, which the degenerate constructions
	// do not produce.
	f := NewVelocityField(64, 64, 5, 1)
	var sawX, sawY bool
	for i := range f.vx {
		if f.vx[i] != 0 {
			sawX = true
		}
		if f.vy[i] != 0 {
			sawY = true
		}
	}
	if !sawX || !sawY {
		t.Fatalf("expected both components populated, sawX=%v sawY=%v", sawX, sawY)
	}
}
