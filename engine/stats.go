package engine

import (
	"fmt"
	"io"
)

// SearchStats collects counters for a single solver run.
type SearchStats struct {
	Nodes     uint64
	Cutoffs   uint64
	Passes    uint64
	Terminals uint64
}

// Add accumulates o into s.
func (s *SearchStats) Add(o SearchStats) {
	s.Nodes += o.Nodes
	s.Cutoffs += o.Cutoffs
	s.Passes += o.Passes
	s.Terminals += o.Terminals
}

// Dump writes the counters as protocol info lines.
func (s SearchStats) Dump(w io.Writer) {
	fmt.Fprintln(w, "info string Search statistics:")
	fmt.Fprintf(w, "info string   Nodes: %d\n", s.Nodes)
	fmt.Fprintf(w, "info string   Beta cutoffs: %d\n", s.Cutoffs)
	fmt.Fprintf(w, "info string   Forced passes: %d\n", s.Passes)
	fmt.Fprintf(w, "info string   Finished games: %d\n", s.Terminals)
}
