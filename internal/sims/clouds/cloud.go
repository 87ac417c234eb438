package clouds

import (
	"cloudsim/internal/compound"
	"cloudsim/internal/core"
)

// Cloud is the scalar density field of one compound type, plus the scratch
// buffer the solver ping-pongs through and the window offsets the content
// was last aligned to. A cloud whose cached offsets lag the shared window is
// stale and must be shifted before the next solver pass.
type Cloud struct {
	id compound.ID

	density *core.FloatGrid
	old     *core.FloatGrid

	cellSize float64
	offsetX  float64
	offsetY  float64
}

func newCloud(id compound.ID, win *Window) *Cloud {
	return &Cloud{
		id:       id,
		density:  core.NewFloatGrid(win.W, win.H),
		old:      core.NewFloatGrid(win.W, win.H),
		cellSize: win.CellSize,
		offsetX:  win.OffsetX,
		offsetY:  win.OffsetY,
	}
}

// ID returns the compound type this cloud simulates.
func (c *Cloud) ID() compound.ID { return c.id }

// Density exposes the finished density field. Consumers must treat it as
// read-only; it is rewritten every tick.
func (c *Cloud) Density() []float32 { return c.density.Cells() }

// Offsets returns the window offsets the density content is aligned to.
func (c *Cloud) Offsets() (float64, float64) { return c.offsetX, c.offsetY }

// syncWindow shifts the density content when the shared window has been
// rebased since this cloud was last stepped. Rebase moves at most one
// increment per axis per tick, so each axis shifts by exactly one third of
// its own extent; a diagonal rebase becomes two independent axis shifts.
func (c *Cloud) syncWindow(win *Window) {
	if c.offsetX != win.OffsetX {
		if c.offsetX < win.OffsetX {
			c.density.ShiftX(-win.stepX())
		} else {
			c.density.ShiftX(win.stepX())
		}
		c.offsetX = win.OffsetX
	}
	if c.offsetY != win.OffsetY {
		if c.offsetY < win.OffsetY {
			c.density.ShiftY(-win.stepY())
		} else {
			c.density.ShiftY(win.stepY())
		}
		c.offsetY = win.OffsetY
	}
}

// AddCloud deposits density at a world position. Deposits outside the
// current window are dropped.
func (c *Cloud) AddCloud(amount float32, worldX, worldY float64) {
	w, h := c.density.W, c.density.H
	cx := int((worldX-c.offsetX)/c.cellSize) + w/2
	cy := int((worldY-c.offsetY)/c.cellSize) + h/2
	if cx < 0 || cx >= w || cy < 0 || cy >= h {
		return
	}
	c.density.Add(cx, cy, amount)
}

// TakeCompound removes and returns an integer amount of compound from a
// cell, proportional to rate. Densities truncate to whole units on the way
// out and residues below one unit snap to zero. Returns -1 for cells outside
// the grid.
func (c *Cloud) TakeCompound(x, y int, rate float32) int {
	w, h := c.density.W, c.density.H
	if x < 0 || x >= w || y < 0 || y >= h {
		return -1
	}
	i := c.density.Index(x, y)
	dd := c.density.Cells()
	amount := int(float32(int(dd[i])) * rate)
	dd[i] -= float32(amount)
	if dd[i] < 1 {
		dd[i] = 0
	}
	return amount
}

// AmountAvailable reports what TakeCompound would return for the same cell
// and rate, without mutating the cloud.
func (c *Cloud) AmountAvailable(x, y int, rate float32) int {
	w, h := c.density.W, c.density.H
	if x < 0 || x >= w || y < 0 || y >= h {
		return -1
	}
	return int(float32(int(c.density.At(x, y))) * rate)
}
