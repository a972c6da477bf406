package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/config"
	"github.com/hailam/chesscore/internal/game"
	"github.com/hailam/chesscore/internal/protocol"
	"github.com/hailam/chesscore/internal/storage"
)

var (
	configPath = flag.String("config", "", "path to YAML config file")
	startFEN   = flag.String("fen", "", "initial position in FEN (default: standard start)")
	stats      = flag.Bool("stats", false, "record game statistics persistently")
	dataDir    = flag.String("data", "", "data directory for statistics storage")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Flags override file values.
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
	if *stats {
		cfg.Stats = true
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	var store *storage.Storage
	if cfg.Stats {
		var err error
		store, err = storage.Open(cfg.DataDir)
		if err != nil {
			log.Printf("Warning: statistics disabled: %v", err)
		} else {
			defer store.Close()
			if prefs, err := store.LoadPreferences(); err == nil && cfg.StartFEN == "" {
				cfg.StartFEN = prefs.StartFEN
			}
		}
	}

	g := game.New()
	if cfg.StartFEN != "" {
		pos, err := board.ParseFEN(cfg.StartFEN)
		if err != nil {
			log.Fatalf("invalid FEN %q: %v", cfg.StartFEN, err)
		}
		g = game.NewFromPosition(pos)
	}

	handler := protocol.New(g, os.Stdout)

	start := time.Now()
	if err := handler.Run(os.Stdin); err != nil {
		log.Fatal(err)
	}

	if store != nil {
		recordResult(store, g, time.Since(start))
	}
}

// recordResult folds a finished game into the persistent statistics.
// Unfinished games are not recorded.
func recordResult(store *storage.Storage, g *game.Game, elapsed time.Duration) {
	status := g.Status()
	if !status.GameOver() {
		return
	}

	moves, _ := g.History()
	result := storage.Result{
		Termination: status.String(),
		Moves:       len(moves),
		Duration:    elapsed,
	}
	if status == board.Checkmate {
		// The side to move is mated; the other side won.
		result.Winner = strings.ToLower(g.Position().SideToMove.Other().String())
	}

	if err := store.RecordGame(result); err != nil {
		log.Printf("Warning: failed to record game: %v", err)
	}
}
