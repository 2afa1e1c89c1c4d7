//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandfall/internal/app"
	"sandfall/internal/core"
	_ "sandfall/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	logger := core.NewLogger(cfg.LogLevel)

	factory, ok := core.Sims()["sand"]
	if !ok {
		log.Fatal("sand simulation not registered")
	}

	sim := factory(cfg.SimConfig())
	sim.Reset(cfg.Seed)
	size := sim.Size()
	logger.Infof("starting %s %dx%d scene=%s seed=%d", sim.Name(), size.W, size.H, cfg.Scene, cfg.Seed)

	game := app.New(sim, cfg, logger)

	ebiten.SetWindowTitle("sandfall")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Errorf("%v", err)
		log.Fatal(err)
	}
}
