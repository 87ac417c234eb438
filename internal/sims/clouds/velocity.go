package clouds

import opensimplex "github.com/ojrac/opensimplex-go"

// VelocityField is the static turbulent flow that advects every cloud. It is
// built once from the curl of a coherent-noise potential, which keeps the
// flow approximately divergence-free, and is read-only afterwards.
type VelocityField struct {
	W, H int
	vx   []float32
	vy   []float32
}

// NewVelocityField samples a 3D opensimplex potential at the four corner
// points one cell away from (x, y) and stores the finite-difference curl.
// The x component differentiates along y and the y component along x with
// reversed operand order; the asymmetry is what makes this a curl rather
// than a gradient, so it must not be "corrected".
func NewVelocityField(w, h int, scale float64, seed int64) *VelocityField {
	f := &VelocityField{
		W:  w,
		H:  h,
		vx: make([]float32, w*h),
		vy: make([]float32, w*h),
	}

	noise := opensimplex.New(seed)
	nxScale := scale
	nyScale := scale * float64(w) / float64(h)

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			x0 := float64(x-1) / float64(w) * nxScale
			y0 := float64(y-1) / float64(h) * nyScale
			x1 := float64(x+1) / float64(w) * nxScale
			y1 := float64(y+1) / float64(h) * nyScale

			n00 := noise.Eval3(x0, y0, 0)
			n10 := noise.Eval3(x1, y0, 0)
			n01 := noise.Eval3(x0, y1, 0)

			i := y*w + x
			f.vx[i] = float32((n01 - n00) / 2)
			f.vy[i] = float32((n00 - n10) / 2)
		}
	}
	return f
}

// At returns the flow vector at cell (x, y).
func (f *VelocityField) At(x, y int) (float32, float32) {
	i := y*f.W + x
	return f.vx[i], f.vy[i]
}
