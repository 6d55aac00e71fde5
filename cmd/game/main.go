package main

import (
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/blockfall/internal/application/game"
	"github.com/younwookim/blockfall/internal/application/scene/playing"
	"github.com/younwookim/blockfall/internal/infrastructure/config"
	"github.com/younwookim/blockfall/internal/infrastructure/logging"
)

func main() {
	configDir := flag.String("config", "", "Load game.json from this directory instead of the built-in one")
	seed := flag.Uint64("seed", 0, "Piece sequence seed (0 uses the configured seed or the clock)")
	recordDir := flag.String("record", "", "Save a replay of each game into this directory")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Session.Seed = *seed
	}
	if *recordDir != "" {
		cfg.Session.RecordDir = *recordDir
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	screenW, screenH := playing.ScreenSize(cfg.Display.CellSize)
	first := playing.New(cfg, playing.NextSeed(cfg), logger)
	g := game.New(first, screenW, screenH, cfg.Display.Framerate, logger)
	defer g.Close()

	ebiten.SetWindowSize(screenW*cfg.Display.Scale, screenH*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	logger.Info("starting",
		zap.String("config", loader.BasePath()),
		zap.Int("width", screenW),
		zap.Int("height", screenH),
	)

	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game stopped", zap.Error(err))
	}
}

// newLoader reads from dir when given, else from the embedded configs
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
