package core

// FloatGrid stores a 2D scalar field of float32 values in row-major order.
type FloatGrid struct {
	W, H int
	data []float32
}

// NewFloatGrid allocates a zeroed grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float32, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float32 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at (x, y).
func (g *FloatGrid) At(x, y int) float32 { return g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *FloatGrid) Set(x, y int, v float32) { g.data[y*g.W+x] = v }

// Add accumulates v into (x, y).
func (g *FloatGrid) Add(x, y int, v float32) { g.data[y*g.W+x] += v }

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// ShiftX slides the grid content by dx cells along the x axis. The value at
// (x, y) ends up at (x+dx, y); cells revealed on the vacated side are zeroed
// and content pushed past the edge is discarded.
func (g *FloatGrid) ShiftX(dx int) {
	if dx == 0 {
		return
	}
	if dx <= -g.W || dx >= g.W {
		g.Clear()
		return
	}
	for y := 0; y < g.H; y++ {
		row := g.data[y*g.W : (y+1)*g.W]
		if dx < 0 {
			copy(row[:g.W+dx], row[-dx:])
			for x := g.W + dx; x < g.W; x++ {
				row[x] = 0
			}
		} else {
			copy(row[dx:], row[:g.W-dx])
			for x := 0; x < dx; x++ {
				row[x] = 0
			}
		}
	}
}

// ShiftY slides the grid content by dy cells along the y axis, with the same
// discard and zero-fill behavior as ShiftX.
func (g *FloatGrid) ShiftY(dy int) {
	if dy == 0 {
		return
	}
	if dy <= -g.H || dy >= g.H {
		g.Clear()
		return
	}
	if dy < 0 {
		copy(g.data[:(g.H+dy)*g.W], g.data[-dy*g.W:])
		tail := g.data[(g.H+dy)*g.W:]
		for i := range tail {
			tail[i] = 0
		}
	} else {
		copy(g.data[dy*g.W:], g.data[:(g.H-dy)*g.W])
		head := g.data[:dy*g.W]
		for i := range head {
			head[i] = 0
		}
	}
}
