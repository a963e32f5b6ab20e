package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	rm "reversi-engine/reversimg"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var ErrBadConfig = errors.New("invalid self-play configuration")

// SelfPlayConfig configures RunSelfPlay. Zero fields take their defaults.
type SelfPlayConfig struct {
	// MaxEmpties bounds the grid: Black solves exactly from 64-i occupied
	// cells and White from 64-j, for every i, j in [0, MaxEmpties].
	MaxEmpties int
	// Games is the number of games played per grid cell.
	Games int
	// Workers bounds the number of cells played concurrently.
	Workers int
	// Seed makes runs reproducible. Zero draws every RNG from entropy.
	Seed uint64
}

const (
	defaultMaxEmpties = 16
	maxMaxEmpties     = 60
)

func (c SelfPlayConfig) withDefaults() SelfPlayConfig {
	if c.MaxEmpties == 0 {
		c.MaxEmpties = defaultMaxEmpties
	}
	if c.Games == 0 {
		c.Games = 1
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	return c
}

func (c SelfPlayConfig) validate() error {
	if c.MaxEmpties < 0 || c.MaxEmpties > maxMaxEmpties {
		return fmt.Errorf("%w: max empties %d not in [0, %d]", ErrBadConfig, c.MaxEmpties, maxMaxEmpties)
	}
	if c.Games < 0 {
		return fmt.Errorf("%w: games %d", ErrBadConfig, c.Games)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrBadConfig, c.Workers)
	}
	return nil
}

// SelfPlayRow is one aggregated outcome of a grid cell.
type SelfPlayRow struct {
	I, J  int
	Black rm.Count
	White rm.Count
	Games uint64
}

func (r SelfPlayRow) String() string {
	return fmt.Sprintf("%d %d %d %d %d", r.I, r.J, r.Black, r.White, r.Games)
}

// SelfPlayStats holds final-count histograms per grid cell.
type SelfPlayStats struct {
	MaxEmpties int
	cells      [][]map[uint16]uint64
}

func newSelfPlayStats(maxEmpties int) *SelfPlayStats {
	cells := make([][]map[uint16]uint64, maxEmpties+1)
	for i := range cells {
		cells[i] = make([]map[uint16]uint64, maxEmpties+1)
		for j := range cells[i] {
			cells[i][j] = make(map[uint16]uint64)
		}
	}
	return &SelfPlayStats{MaxEmpties: maxEmpties, cells: cells}
}

func outcomeKey(black, white rm.Count) uint16 { return uint16(black)<<8 | uint16(white) }

// Games returns the number of games recorded for cell (i, j).
func (s *SelfPlayStats) Games(i, j int) uint64 {
	var n uint64
	for _, c := range s.cells[i][j] {
		n += c
	}
	return n
}

// Rows lists every outcome ordered by cell, then by (black, white).
func (s *SelfPlayStats) Rows() []SelfPlayRow {
	var rows []SelfPlayRow
	for i := range s.cells {
		for j, hist := range s.cells[i] {
			keys := maps.Keys(hist)
			slices.Sort(keys)
			for _, k := range keys {
				rows = append(rows, SelfPlayRow{
					I:     i,
					J:     j,
					Black: rm.Count(k >> 8),
					White: rm.Count(k),
					Games: hist[k],
				})
			}
		}
	}
	return rows
}

// Lines renders Rows as "i j black white games".
func (s *SelfPlayStats) Lines() []string {
	return lo.Map(s.Rows(), func(r SelfPlayRow, _ int) string { return r.String() })
}

// cellSeed derives an independent seed per grid cell so results do not depend
// on scheduling.
func cellSeed(seed uint64, i, j int) uint64 {
	x := seed ^ uint64(i)<<32 ^ uint64(j)
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// RunSelfPlay plays cfg.Games games for every cell of the grid, Black
// switching to exact search with i empties left and White with j, and
// aggregates the final counts. Cells run concurrently on up to cfg.Workers
// goroutines; cancellation is checked between games.
func RunSelfPlay(ctx context.Context, cfg SelfPlayConfig) (*SelfPlayStats, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log.Info().Int("max-empties", cfg.MaxEmpties).Int("games", cfg.Games).Int("workers", cfg.Workers).Msg("self-play-start")
	start := time.Now()

	stats := newSelfPlayStats(cfg.MaxEmpties)
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := 0; i <= cfg.MaxEmpties; i++ {
		for j := 0; j <= cfg.MaxEmpties; j++ {
			if gctx.Err() != nil {
				break
			}
			i, j := i, j
			g.Go(func() error {
				var rng Rand
				if cfg.Seed != 0 {
					rng = NewSeededRand(cellSeed(cfg.Seed, i, j))
				} else {
					rng = NewRand()
				}
				hist := make(map[uint16]uint64)
				for n := 0; n < cfg.Games; n++ {
					if err := gctx.Err(); err != nil {
						return err
					}
					game := NewGame(
						NewExactStrategy(rm.Black, rm.Count(rm.Size*rm.Size-i), rng),
						NewExactStrategy(rm.White, rm.Count(rm.Size*rm.Size-j), rng),
					)
					hist[outcomeKey(game.PlayGame())]++
				}
				mu.Lock()
				for k, n := range hist {
					stats.cells[i][j][k] += n
				}
				mu.Unlock()
				log.Debug().Int("i", i).Int("j", j).Int("games", cfg.Games).Msg("cell-done")
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("self-play-done")
	return stats, nil
}
