package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"reversi-engine/engine"
	rm "reversi-engine/reversimg"

	"github.com/muesli/termenv"
	"github.com/samber/lo"
)

// defaultExactThreshold is the occupancy from which "go" solves exactly.
const defaultExactThreshold = 50

func main() {
	protocolLoop(os.Stdin, os.Stdout)
}

type session struct {
	out        io.Writer
	term       *termenv.Output
	board      rm.BitBoard
	side       rm.Side
	lastPassed bool
	threshold  rm.Count
	printStats bool
	rng        engine.Rand
}

func newSession(out io.Writer) *session {
	s := &session{
		out:       out,
		term:      termenv.NewOutput(out),
		threshold: defaultExactThreshold,
		rng:       engine.NewRand(),
	}
	s.reset()
	return s
}

func (s *session) reset() {
	s.board = rm.New()
	s.side = rm.Black
	s.lastPassed = false
}

func (s *session) errorf(format string, args ...any) {
	fmt.Fprintf(s.out, "error "+format+"\n", args...)
}

func protocolLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	s := newSession(out)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "quit":
			return
		case "new":
			s.reset()
			fmt.Fprintln(s.out, "ok")
		case "show":
			s.show()
		case "board":
			s.setBoard(tokens[1:])
		case "moves":
			s.moves()
		case "play":
			if len(tokens) < 2 {
				s.errorf("missing position")
				continue
			}
			s.play(tokens[1])
		case "pass":
			s.pass()
		case "go":
			s.search(tokens[1:])
		case "solve":
			s.solve()
		case "stats":
			if len(tokens) < 2 {
				s.errorf("missing on/off")
				continue
			}
			s.printStats = strings.EqualFold(tokens[1], "on")
			fmt.Fprintln(s.out, "ok")
		default:
			s.errorf("unknown command %s", tokens[0])
		}
	}
}

// show prints the board with the legal moves marked, colouring the pieces when
// the output is a terminal.
func (s *session) show() {
	text := s.board.FormatCandidates(s.side)
	black := s.term.String(string(rm.GlyphBlack)).Foreground(s.term.Color("#5f87ff")).Bold().String()
	white := s.term.String(string(rm.GlyphWhite)).Foreground(s.term.Color("#ffaf00")).Bold().String()
	text = strings.NewReplacer(string(rm.GlyphBlack), black, string(rm.GlyphWhite), white).Replace(text)
	fmt.Fprint(s.out, text)
	b, w := s.board.Count()
	fmt.Fprintf(s.out, "side %s black %d white %d\n", s.side, b, w)
}

// setBoard loads "board <row>/<row>/.../<row> [side]".
func (s *session) setBoard(args []string) {
	if len(args) == 0 {
		s.errorf("missing board")
		return
	}
	b, err := rm.ParseBoard(strings.ReplaceAll(args[0], "/", "\n"))
	if err != nil {
		s.errorf("%v", err)
		return
	}
	side := rm.Black
	if len(args) > 1 {
		if side, err = rm.ParseSide(args[1]); err != nil {
			s.errorf("%v", err)
			return
		}
	}
	s.board, s.side, s.lastPassed = b, side, false
	fmt.Fprintln(s.out, "ok")
}

func (s *session) moves() {
	positions := s.board.Candidates(s.side).Positions()
	names := lo.Map(positions, func(p rm.Position, _ int) string { return p.String() })
	fmt.Fprintln(s.out, strings.TrimSpace("moves "+strings.Join(names, " ")))
}

func (s *session) play(arg string) {
	p, err := rm.ParsePosition(arg)
	if err != nil {
		s.errorf("%v", err)
		return
	}
	if err := s.board.Play(s.side, p); err != nil {
		s.errorf("%v", err)
		return
	}
	s.advance(false)
	fmt.Fprintln(s.out, "ok")
	s.reportGameOver()
}

func (s *session) pass() {
	if s.board.HasMoves(s.side) {
		s.errorf("%s has legal moves", s.side)
		return
	}
	s.advance(true)
	fmt.Fprintln(s.out, "ok")
	s.reportGameOver()
}

func (s *session) advance(passed bool) {
	s.side = s.side.Flip()
	s.lastPassed = passed
}

// search picks and plays a move for the side to move: "go [threshold]".
func (s *session) search(args []string) {
	threshold := s.threshold
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 || n > rm.Size*rm.Size {
			s.errorf("invalid threshold %s", args[0])
			return
		}
		threshold = rm.Count(n)
	}
	candidates := s.board.Candidates(s.side)
	if candidates == 0 {
		if s.board.IsGameOver() {
			s.errorf("game is over")
			return
		}
		s.advance(true)
		fmt.Fprintln(s.out, "bestmove pass")
		return
	}
	strategy := engine.NewExactStrategy(s.side, threshold, s.rng)
	p := strategy.Choose(&s.board, s.board.Occupied(), candidates, s.lastPassed)
	s.board.Put(s.side, p)
	s.advance(false)
	fmt.Fprintf(s.out, "bestmove %s\n", p)
	if s.printStats {
		strategy.Stats().Dump(s.out)
	}
	s.reportGameOver()
}

func (s *session) solve() {
	var solver engine.Solver
	score := solver.SearchExact(s.board, s.side, s.lastPassed)
	black, white := score.Mine, score.Opp
	if s.side == rm.White {
		black, white = white, black
	}
	fmt.Fprintf(s.out, "score %d %d turn %d\n", black, white, score.Turn)
	if s.printStats {
		solver.Stats.Dump(s.out)
	}
}

func (s *session) reportGameOver() {
	if s.board.IsGameOver() {
		b, w := s.board.Count()
		fmt.Fprintf(s.out, "gameover %d %d\n", b, w)
	}
}
