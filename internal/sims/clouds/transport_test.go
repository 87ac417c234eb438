package clouds

import (
	"math"
	"math/rand"
	"testing"

	"cloudsim/internal/core"
)

func stillField(w, h int) *VelocityField {
	return &VelocityField{W: w, H: h, vx: make([]float32, w*h), vy: make([]float32, w*h)}
}

func sum(cells []float32) float64 {
	var total float64
	for _, v := range cells {
		total += float64(v)
	}
	return total
}

func TestDiffuseImpulseSweepOrder(t *testing.T) {
	density := core.NewFloatGrid(6, 6)
	old := core.NewFloatGrid(6, 6)
	density.Set(3, 3, 100)

	diffuse(0.01, old, density, 1)

	// The sweep runs x-outer, y-inner, ascending, reading already-updated
	// values at smaller indices. Cells visited before (3,3) see only
	// zeros; cells visited after see its fresh value.
	center := 100.0 / 1.04
	after := 0.01 * center / 1.04
	corner := 0.01 * 2 * after / 1.04

	checks := []struct {
		x, y int
		want float64
	}{
		{3, 3, center},
		{2, 3, 0},
		{3, 2, 0},
		{3, 4, after},
		{4, 3, after},
		{4, 4, corner},
		{2, 4, 0},
		{4, 2, 0},
	}
	for _, c := range checks {
		got := float64(old.At(c.x, c.y))
		if math.Abs(got-c.want) > 1e-3 {
			t.Fatalf("oldDensity[%d][%d] = %v, want %v", c.x, c.y, got, c.want)
		}
	}

	if got := sum(old.Cells()); got > 100 {
		t.Fatalf("diffusion created mass: sum %v > 100", got)
	}
}

func TestDiffuseLeavesBorderUntouched(t *testing.T) {
	density := core.NewFloatGrid(8, 8)
	old := core.NewFloatGrid(8, 8)
	for i := range density.Cells() {
		density.Cells()[i] = 50
	}
	for i := range old.Cells() {
		old.Cells()[i] = -1
	}

	diffuse(0.01, old, density, 1)

	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			onBorder := x == 0 || x == 7 || y == 0 || y == 7
			if onBorder && old.At(x, y) != -1 {
				t.Fatalf("border cell (%d,%d) was written: %v", x, y, old.At(x, y))
			}
			if !onBorder && old.At(x, y) == -1 {
				t.Fatalf("interior cell (%d,%d) was not written", x, y)
			}
		}
	}
}

func TestAdvectStillFieldMovesNothing(t *testing.T) {
	old := core.NewFloatGrid(8, 8)
	density := core.NewFloatGrid(8, 8)
	old.Set(4, 4, 96.5)
	density.Set(1, 1, 999) // stale content must be zero-filled

	advect(old, density, stillField(8, 8), 1)

	if density.At(4, 4) != old.At(4, 4) {
		t.Fatalf("integer-coordinate trace should forward full mass: got %v, want %v",
			density.At(4, 4), old.At(4, 4))
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x == 4 && y == 4 {
				continue
			}
			if density.At(x, y) != 0 {
				t.Fatalf("unexpected density at (%d,%d): %v", x, y, density.At(x, y))
			}
		}
	}
}

func TestAdvectDropsSubUnitDensity(t *testing.T) {
	old := core.NewFloatGrid(8, 8)
	density := core.NewFloatGrid(8, 8)
	old.Set(3, 3, 1.0) // exactly 1 is not transported
	old.Set(5, 5, 0.9)

	advect(old, density, stillField(8, 8), 1)

	for i, v := range density.Cells() {
		if v != 0 {
			t.Fatalf("sub-unit density transported at index %d: %v", i, v)
		}
	}
}

func TestAdvectAccumulatesIntoSharedDestination(t *testing.T) {
	old := core.NewFloatGrid(8, 8)
	density := core.NewFloatGrid(8, 8)
	vel := stillField(8, 8)

	// (2,2) drifts one cell right onto (3,2); (3,2) stays put.
	vel.vx[2*8+2] = 1
	old.Set(2, 2, 10)
	old.Set(3, 2, 20)

	advect(old, density, vel, 1)

	if density.At(3, 2) != 30 {
		t.Fatalf("destination should sum contributions: got %v, want 30", density.At(3, 2))
	}
}

func TestAdvectSplitsMassBilinearly(t *testing.T) {
	old := core.NewFloatGrid(8, 8)
	density := core.NewFloatGrid(8, 8)
	vel := stillField(8, 8)

	vel.vx[3*8+3] = 0.25
	vel.vy[3*8+3] = 0.5
	old.Set(3, 3, 8)

	advect(old, density, vel, 1)

	wants := map[[2]int]float64{
		{3, 3}: 8 * 0.75 * 0.5,
		{4, 3}: 8 * 0.25 * 0.5,
		{3, 4}: 8 * 0.75 * 0.5,
		{4, 4}: 8 * 0.25 * 0.5,
	}
	for pos, want := range wants {
		got := float64(density.At(pos[0], pos[1]))
		if math.Abs(got-want) > 1e-5 {
			t.Fatalf("density[%d][%d] = %v, want %v", pos[0], pos[1], got, want)
		}
	}
	if got := sum(density.Cells()); math.Abs(got-8) > 1e-5 {
		t.Fatalf("bilinear split should conserve mass: sum %v, want 8", got)
	}
}

func TestAdvectExtremeVelocitiesStayInBounds(t *testing.T) {
	const w, h = 16, 16
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		old := core.NewFloatGrid(w, h)
		density := core.NewFloatGrid(w, h)
		vel := stillField(w, h)
		for i := range vel.vx {
			vel.vx[i] = float32((rng.Float64()*2 - 1) * 1e6)
			vel.vy[i] = float32((rng.Float64()*2 - 1) * 1e6)
		}
		for i := range old.Cells() {
			old.Cells()[i] = rng.Float32() * 500
		}
		before := sum(old.Cells())

		// The clamp to [0.5, n-1.5] must keep all four destination
		// indices in bounds; an out-of-range index panics here.
		advect(old, density, vel, 1)

		after := sum(density.Cells())
		if after > before+1e-3 {
			t.Fatalf("trial %d: advection created mass: %v > %v", trial, after, before)
		}
		for i, v := range density.Cells() {
			if v < 0 || math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				t.Fatalf("trial %d: bad density at %d: %v", trial, i, v)
			}
		}
	}
}
