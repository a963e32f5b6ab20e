package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"reversi-engine/engine"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	maxEmpties := flag.Int("max-empties", 16, "largest exact-search horizon in the grid")
	games := flag.Int("games", 1, "games per grid cell")
	workers := flag.Int("workers", runtime.NumCPU(), "cells played concurrently")
	seed := flag.Uint64("seed", 0, "seed for reproducible runs (0 = entropy)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *games <= 0 || *workers <= 0 {
		fmt.Fprintln(os.Stderr, "-games and -workers must be > 0")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := engine.RunSelfPlay(ctx, engine.SelfPlayConfig{
		MaxEmpties: *maxEmpties,
		Games:      *games,
		Workers:    *workers,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
	for _, line := range stats.Lines() {
		fmt.Println(line)
	}
}
