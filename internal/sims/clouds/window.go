package clouds

// Window is the finite region simulated around the observer. All clouds
// scroll together, so there is one window per world; its offsets are the
// world-space coordinates of the window center.
type Window struct {
	W, H     int
	CellSize float64
	OffsetX  float64
	OffsetY  float64
}

// stepX and stepY are the rebase increments in cells. Each axis moves by one
// third of its own extent; integer division keeps the world increment and
// the content shift in exact agreement for sizes not divisible by three.
func (w *Window) stepX() int { return w.W / 3 }
func (w *Window) stepY() int { return w.H / 3 }

// Rebase recenters the window when the observer has left its central third.
// Each axis moves by at most one third-window increment per call, so a fast
// observer is caught up over several ticks rather than in one jump. Reports
// whether either offset changed.
func (w *Window) Rebase(px, py float64) bool {
	incX := float64(w.stepX()) * w.CellSize
	incY := float64(w.stepY()) * w.CellSize

	moved := false
	switch {
	case px > w.OffsetX+incX/2:
		w.OffsetX += incX
		moved = true
	case px < w.OffsetX-incX/2:
		w.OffsetX -= incX
		moved = true
	}
	switch {
	case py > w.OffsetY+incY/2:
		w.OffsetY += incY
		moved = true
	case py < w.OffsetY-incY/2:
		w.OffsetY -= incY
		moved = true
	}
	return moved
}

// Contains reports whether the world position falls inside the window.
func (w *Window) Contains(px, py float64) bool {
	halfW := float64(w.W) * w.CellSize / 2
	halfH := float64(w.H) * w.CellSize / 2
	return px >= w.OffsetX-halfW && px < w.OffsetX+halfW &&
		py >= w.OffsetY-halfH && py < w.OffsetY+halfH
}
