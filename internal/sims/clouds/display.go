package clouds

import (
	"strconv"

	"cloudsim/internal/core"
)

// rebuildDisplay folds every cloud into the shared display buffer, keeping
// the strongest compound per cell. The 0..255 clamp mirrors the alpha
// intensity the density consumer historically uploaded.
func (w *World) rebuildDisplay() {
	for i := range w.display {
		w.display[i] = 0
	}
	for _, id := range w.order {
		dd := w.grids[id].density.Cells()
		for i, v := range dd {
			intensity := int(v)
			if intensity < 0 {
				intensity = 0
			} else if intensity > 255 {
				intensity = 255
			}
			if uint8(intensity) > w.display[i] {
				w.display[i] = uint8(intensity)
			}
		}
	}
}

// Parameters exposes the configured solver constants for display surfaces.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name:    "Window",
				Summary: "grid geometry shared by all clouds",
				Params: []core.Parameter{
					{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(w.cfg.Width)},
					{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(w.cfg.Height)},
					{Key: "cell_size", Label: "Cell size", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(w.cfg.CellSize, 'g', -1, 64)},
				},
			},
			{
				Name:    "Solver",
				Summary: "diffusion and velocity-field constants",
				Params: []core.Parameter{
					{Key: "diffusion_rate", Label: "Diffusion rate", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(float64(w.cfg.Params.DiffusionRate), 'g', -1, 32)},
					{Key: "noise_scale", Label: "Noise scale", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(w.cfg.Params.NoiseScale, 'g', -1, 64)},
					{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(w.cfg.Seed, 10)},
				},
			},
		},
	}
}
