// Command replay re-runs a recorded game headlessly and reports the outcome.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/younwookim/blockfall/internal/application/replay"
	"github.com/younwookim/blockfall/internal/infrastructure/config"
	"github.com/younwookim/blockfall/internal/infrastructure/logging"
)

func main() {
	level := flag.String("level", "info", "Log level: debug, info, warn or error")
	format := flag.String("format", "console", "Log format: console or json")
	board := flag.Bool("board", false, "Print the final board")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] replay.json\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := logging.New(config.LoggingConfig{Level: *level, Format: *format})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	path := flag.Arg(0)
	data, err := replay.Load(path)
	if err != nil {
		logger.Fatal("failed to load replay", zap.String("path", path), zap.Error(err))
	}

	r, err := replay.NewReplayer(*data)
	if err != nil {
		logger.Fatal("invalid replay", zap.String("path", path), zap.Error(err))
	}

	view := r.Play(logger).Snapshot()
	logger.Info("replay finished",
		zap.String("id", data.ID),
		zap.Uint64("seed", data.Seed),
		zap.Int("actions", r.Total()),
		zap.Stringer("state", view.State),
		zap.Int("score", view.Score),
		zap.Int("level", view.Level),
		zap.Int("lines", view.Lines),
		zap.Int("pieces", view.Pieces),
	)

	if *board {
		fmt.Print(view.Board.String())
	}
}
