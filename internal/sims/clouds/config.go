package clouds

import "strconv"

// Params holds the numerical constants of the cloud solver.
type Params struct {
	// NoiseScale stretches the noise potential sampled for the velocity
	// field. Zero collapses the potential to a constant, which yields a
	// still (all-zero) velocity field.
	NoiseScale float64
	// DiffusionRate is the per-tick smoothing rate.
	DiffusionRate float32
}

// Config controls the cloud simulation dimensions and window geometry.
type Config struct {
	Width  int
	Height int

	// CellSize is the world-space extent of one grid cell.
	CellSize float64

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    120,
		Height:   120,
		CellSize: 2,
		Seed:     1337,
		Params: Params{
			NoiseScale:    5,
			DiffusionRate: 0.01,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.NoiseScale = parsed
		}
	}
	if v, ok := cfg["diffusion_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			c.Params.DiffusionRate = float32(parsed)
		}
	}
	return c
}
