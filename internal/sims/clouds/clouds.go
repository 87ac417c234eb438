// Package clouds implements the compound cloud simulation: per-compound
// density grids diffused and advected over a precomputed turbulent velocity
// field, inside a finite window that scrolls after the observer.
package clouds

import (
	"fmt"
	"math"

	"cloudsim/internal/compound"
	"cloudsim/internal/core"
)

// World owns the shared window, the velocity field and one cloud per
// simulated compound type.
type World struct {
	cfg Config
	win Window
	vel *VelocityField

	grids map[compound.ID]*Cloud
	order []compound.ID

	obsX, obsY float64
	ticks      uint64

	display []uint8
}

// New returns a cloud world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig builds a world and derives its velocity field from the
// configured noise scale and seed.
func NewWithConfig(cfg Config) *World {
	cfg = sanitize(cfg)
	w := &World{
		cfg: cfg,
		win: Window{W: cfg.Width, H: cfg.Height, CellSize: cfg.CellSize},
		vel: NewVelocityField(cfg.Width, cfg.Height, cfg.Params.NoiseScale, cfg.Seed),

		grids:   make(map[compound.ID]*Cloud),
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	return w
}

// NewWithField builds a world around a caller-supplied velocity field. The
// field dimensions must match the configured grid dimensions; a mismatch is
// a programming error reported once here rather than checked per tick.
func NewWithField(cfg Config, vel *VelocityField) (*World, error) {
	cfg = sanitize(cfg)
	if vel == nil {
		return nil, fmt.Errorf("clouds: nil velocity field")
	}
	if vel.W != cfg.Width || vel.H != cfg.Height {
		return nil, fmt.Errorf("clouds: velocity field is %dx%d, grids are %dx%d",
			vel.W, vel.H, cfg.Width, cfg.Height)
	}
	w := NewWithConfig(cfg)
	w.vel = vel
	return w, nil
}

func sanitize(cfg Config) Config {
	// The solver only touches interior cells, so anything narrower than
	// three cells has no interior.
	if cfg.Width < 3 {
		cfg.Width = 3
	}
	if cfg.Height < 3 {
		cfg.Height = 3
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = 1
	}
	return cfg
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "clouds" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Cells exposes the combined display buffer: the strongest compound density
// per cell clamped to 0..255.
func (w *World) Cells() []uint8 { return w.display }

// Window returns a copy of the current window state.
func (w *World) Window() Window { return w.win }

// Observer returns the last observer position supplied to the world.
func (w *World) Observer() (float64, float64) { return w.obsX, w.obsY }

// Ticks reports how many steps the world has run since the last reset.
func (w *World) Ticks() uint64 { return w.ticks }

// CreateGrid returns the cloud for a compound type, creating it lazily with
// zeroed density and the current window geometry.
func (w *World) CreateGrid(id compound.ID) *Cloud {
	if c, ok := w.grids[id]; ok {
		return c
	}
	c := newCloud(id, &w.win)
	w.grids[id] = c
	w.order = append(w.order, id)
	return c
}

// DestroyGrid removes a compound's cloud. Removing an absent grid is a no-op.
func (w *World) DestroyGrid(id compound.ID) {
	if _, ok := w.grids[id]; !ok {
		return
	}
	delete(w.grids, id)
	for i, existing := range w.order {
		if existing == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Cloud looks up the cloud simulated for a compound type.
func (w *World) Cloud(id compound.ID) (*Cloud, bool) {
	c, ok := w.grids[id]
	return c, ok
}

// CompoundIDs returns the simulated compound types in creation order.
func (w *World) CompoundIDs() []compound.ID {
	out := make([]compound.ID, len(w.order))
	copy(out, w.order)
	return out
}

// Reset rebuilds the velocity field and zeroes every cloud deterministically.
// A zero seed falls back to the configured seed, matching the registry
// contract used by the front ends.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.vel = NewVelocityField(w.cfg.Width, w.cfg.Height, w.cfg.Params.NoiseScale, effective)

	w.win.OffsetX = 0
	w.win.OffsetY = 0
	w.obsX = 0
	w.obsY = 0
	w.ticks = 0

	for _, c := range w.grids {
		c.density.Clear()
		c.old.Clear()
		c.offsetX = 0
		c.offsetY = 0
	}
	for i := range w.display {
		w.display[i] = 0
	}
}

// SetObserver records the observer position the next step recenters around.
// Non-finite coordinates are rejected before any grid is touched: a single
// NaN offset would propagate through diffusion into every density cell.
func (w *World) SetObserver(px, py float64) error {
	if math.IsNaN(px) || math.IsInf(px, 0) || math.IsNaN(py) || math.IsInf(py, 0) {
		return fmt.Errorf("clouds: non-finite observer position (%v, %v)", px, py)
	}
	w.obsX = px
	w.obsY = py
	return nil
}

// Tick records the observer position and advances the simulation one step.
func (w *World) Tick(px, py float64) error {
	if err := w.SetObserver(px, py); err != nil {
		return err
	}
	w.Step()
	return nil
}

// Step advances one tick against the last recorded observer position. The
// window rebase and all stale-grid shifts complete before any solver pass so
// every cloud reads a consistently aligned grid.
func (w *World) Step() {
	w.win.Rebase(w.obsX, w.obsY)

	for _, id := range w.order {
		c := w.grids[id]
		c.syncWindow(&w.win)
		diffuse(w.cfg.Params.DiffusionRate, c.old, c.density, 1)
		advect(c.old, c.density, w.vel, 1)
	}

	w.rebuildDisplay()
	w.ticks++
}

func init() {
	core.Register("clouds", func(cfg map[string]string) core.Sim {
		w := NewWithConfig(FromMap(cfg))
		infos := compound.All()
		if names, ok := cfg["compounds"]; ok {
			if resolved, err := compound.ResolveList(names); err == nil {
				infos = resolved
			}
		}
		for _, info := range infos {
			w.CreateGrid(info.ID)
		}
		return w
	})
}
