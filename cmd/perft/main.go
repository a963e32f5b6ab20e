package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	rm "reversi-engine/reversimg"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func main() {
	boardFile := flag.String("board", "", "Board text file (defaults to initial position)")
	sideFlag := flag.String("side", "B", "Side to move (B or W)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}
	side, err := rm.ParseSide(*sideFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "-side: %v\n", err)
		os.Exit(2)
	}

	board := rm.New()
	if *boardFile != "" {
		text, err := os.ReadFile(*boardFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading board: %v\n", err)
			os.Exit(2)
		}
		if board, err = rm.ParseBoard(string(text)); err != nil {
			fmt.Fprintf(os.Stderr, "ParseBoard error: %v\n", err)
			os.Exit(2)
		}
	}

	if *divide {
		div := rm.PerftDivide(board, side, *depth)
		moves := maps.Keys(div)
		slices.Sort(moves)
		var sum uint64
		for _, p := range moves {
			fmt.Printf("%s: %d\n", p, div[p])
			sum += div[p]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += rm.Perft(board, side, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
