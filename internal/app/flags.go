package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Scale     int
	TPS       int
	Seed      int64
	Width     int
	Height    int
	CellSize  float64
	Compounds string

	// Speed is how far the observer moves per tick, in world units.
	Speed float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scale:     5,
		TPS:       30,
		Seed:      1337,
		Width:     120,
		Height:    120,
		CellSize:  2,
		Compounds: "oxygen,co2,glucose,ammonia",
		Speed:     2,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "velocity field seed")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.CellSize, "cell-size", c.CellSize, "world units per cell")
	fs.StringVar(&c.Compounds, "compounds", c.Compounds, "comma-separated compound types to simulate")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "observer movement per tick in world units")
}

// SimOptions renders the config as the key/value map the sim registry
// factories consume.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":         strconv.Itoa(c.Width),
		"h":         strconv.Itoa(c.Height),
		"cell_size": strconv.FormatFloat(c.CellSize, 'g', -1, 64),
		"seed":      strconv.FormatInt(c.Seed, 10),
		"compounds": c.Compounds,
	}
}
