package main

import (
	"flag"
	"log"

	"cloudsim/internal/compound"
	"cloudsim/internal/server"
	"cloudsim/internal/sims/clouds"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	tps := flag.Int("tps", 30, "simulation ticks per second")
	seed := flag.Int64("seed", 1337, "velocity field seed")
	width := flag.Int("w", 120, "grid width in cells")
	height := flag.Int("h", 120, "grid height in cells")
	cellSize := flag.Float64("cell-size", 2, "world units per cell")
	compoundsFlag := flag.String("compounds", "oxygen,co2,glucose,ammonia", "comma-separated compound types to simulate")
	flag.Parse()

	infos, err := compound.ResolveList(*compoundsFlag)
	if err != nil {
		log.Fatalf("resolving compounds: %v", err)
	}

	cfg := clouds.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.CellSize = *cellSize
	cfg.Seed = *seed

	world := clouds.NewWithConfig(cfg)
	for _, info := range infos {
		world.CreateGrid(info.ID)
		log.Printf("simulating compound %q", info.Name)
	}

	if err := server.New(world, *tps, *seed).Run(*addr); err != nil {
		log.Fatal(err)
	}
}
