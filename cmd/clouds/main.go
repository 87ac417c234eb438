//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cloudsim/internal/app"
	"cloudsim/internal/core"
	"cloudsim/internal/sims/clouds"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()["clouds"]
	if !ok {
		log.Fatal("clouds sim not registered")
	}

	sim := factory(cfg.SimOptions())
	world, ok := sim.(*clouds.World)
	if !ok {
		log.Fatalf("unexpected sim type %T", sim)
	}

	game := app.New(world, cfg)
	size := world.Size()

	ebiten.SetWindowTitle("cloudsim — " + world.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
