package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"reversi-engine/engine"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	plies := flag.Int("plies", 11, "number of plies to expand")
	short := flag.Bool("short", false, "print one \"ply direct unique\" line per ply")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if *plies <= 0 {
		fmt.Fprintln(os.Stderr, "-plies must be > 0")
		os.Exit(2)
	}

	start := time.Now()
	layers := engine.CountPatterns(*plies)
	if *short {
		for _, row := range engine.PatternRows(layers) {
			fmt.Println(row)
		}
	} else {
		for _, l := range layers {
			fmt.Println(l)
		}
	}
	log.Info().Int("plies", *plies).Dur("elapsed", time.Since(start)).Msg("patterns-done")
}
