package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"reversi-engine/engine"
	rm "reversi-engine/reversimg"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	boardFile := flag.String("board", "", "board text file (empty = random position)")
	sideFlag := flag.String("side", "B", "side to move when -board is given")
	passedFlag := flag.Bool("passed", false, "the previous turn was a pass")
	empties := flag.Int("empties", 12, "vacant cells left in the random position")
	seed := flag.Uint64("seed", 1, "seed for the random position")
	repeatFlag := flag.Int("repeat", 1, "number of solves to run")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *repeatFlag <= 0 {
		fmt.Fprintf(os.Stderr, "repeat must be positive, got %d\n", *repeatFlag)
		os.Exit(2)
	}
	if *empties < 0 || *empties > 60 {
		fmt.Fprintf(os.Stderr, "empties must be in [0, 60], got %d\n", *empties)
		os.Exit(2)
	}

	var (
		board  rm.BitBoard
		side   rm.Side
		passed = *passedFlag
		err    error
	)
	if *boardFile != "" {
		text, err := os.ReadFile(*boardFile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not read board")
		}
		if board, err = rm.ParseBoard(string(text)); err != nil {
			log.Fatal().Err(err).Str("file", *boardFile).Msg("could not parse board")
		}
		if side, err = rm.ParseSide(*sideFlag); err != nil {
			fmt.Fprintf(os.Stderr, "-side: %v\n", err)
			os.Exit(2)
		}
	} else {
		board, side, passed = engine.RandomPosition(engine.NewSeededRand(*seed), *empties)
	}

	var cpuFile *os.File
	if *cpuProfile != "" {
		cpuFile, err = os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	out := termenv.NewOutput(os.Stdout)
	fmt.Print(board.FormatCandidates(side))
	fmt.Printf("side=%s passed=%v empties=%d repeat=%d\n", side, passed, rm.Size*rm.Size-int(board.Occupied()), *repeatFlag)

	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		var solver engine.Solver
		iterStart := time.Now()
		best, score := solver.SearchExactWithCandidates(board, side, board.Candidates(side), passed)
		iterElapsed := time.Since(iterStart)
		log.Debug().Uint64("nodes", solver.Stats.Nodes).Uint64("cutoffs", solver.Stats.Cutoffs).Msg("solve-done")

		line := fmt.Sprintf("iteration %d: best %s score %s nodes %d time=%v", i+1, best, score, solver.Stats.Nodes, iterElapsed)
		fmt.Println(out.String(line).Bold().String())
		if i == 0 {
			solver.Stats.Dump(os.Stdout)
		}
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
}
