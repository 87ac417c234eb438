package clouds

import "cloudsim/internal/core"

// diffuse runs one relaxation sweep of implicit nearest-neighbor smoothing
// from density into the scratch buffer. The sweep writes into the same
// buffer it reads neighbor values from, so cells at smaller x (and smaller y
// within a column) contribute their freshly updated values while the rest
// contribute whatever the scratch buffer held. The x-outer, y-inner,
// ascending traversal is part of the contract; reordering it changes the
// output. Border cells are never written.
func diffuse(rate float32, old, density *core.FloatGrid, dt float32) {
	w, h := density.W, density.H
	a := dt * rate

	od := old.Cells()
	dd := density.Cells()
	for x := 1; x < w-1; x++ {
		for y := 1; y < h-1; y++ {
			i := y*w + x
			od[i] = (dd[i] + a*(od[i-1]+od[i+1]+od[i-w]+od[i+w])) / (1 + 4*a)
		}
	}
}

// advect transports the scratch buffer along the velocity field back into
// density. Each interior source cell above the unit threshold is traced
// forward along the flow (the historical sign convention of this solver:
// velocity is added, not subtracted), clamped so the four surrounding cells
// are always in bounds, and its mass is split bilinearly and accumulated.
// Sub-unit densities are treated as noise and dropped.
func advect(old, density *core.FloatGrid, vel *VelocityField, dt float32) {
	w, h := density.W, density.H

	dd := density.Cells()
	for i := range dd {
		dd[i] = 0
	}

	od := old.Cells()
	for x := 1; x < w-1; x++ {
		for y := 1; y < h-1; y++ {
			m := od[y*w+x]
			if m <= 1 {
				continue
			}

			vx, vy := vel.At(x, y)
			dx := float32(x) + dt*vx
			dy := float32(y) + dt*vy

			if dx < 0.5 {
				dx = 0.5
			}
			if dx > float32(w)-1.5 {
				dx = float32(w) - 1.5
			}
			if dy < 0.5 {
				dy = 0.5
			}
			if dy > float32(h)-1.5 {
				dy = float32(h) - 1.5
			}

			x0 := int(dx)
			x1 := x0 + 1
			y0 := int(dy)
			y1 := y0 + 1

			s1 := dx - float32(x0)
			s0 := 1 - s1
			t1 := dy - float32(y0)
			t0 := 1 - t1

			dd[y0*w+x0] += m * s0 * t0
			dd[y1*w+x0] += m * s0 * t1
			dd[y0*w+x1] += m * s1 * t0
			dd[y1*w+x1] += m * s1 * t1
		}
	}
}
