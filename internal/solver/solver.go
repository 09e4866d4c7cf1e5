package solver

import (
	"time"

	"github.com/BradMears/peg-game/internal/board"
	"github.com/BradMears/peg-game/internal/histogram"
	"github.com/BradMears/peg-game/internal/verify"
)

// Stats describes one search.
type Stats struct {
	Nodes     uint64        // boards visited, the start included
	Terminals uint64        // dead-end boards reached by at least one jump
	Duration  time.Duration // wall time of the search
}

// Result is the outcome of searching every game from one starting hole.
type Result struct {
	Start     board.Cell
	Histogram *histogram.Histogram
	Stats     Stats
}

// Solver enumerates every jump sequence from a starting board.
type Solver struct {
	options   *Options
	validator *Validator

	// Per-run state, reset by Run.
	hist        *histogram.Histogram
	stats       Stats
	initialPegs int
}

// New creates a solver with the given options.
func New(options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	options = options.withDefaults()

	return &Solver{
		options:   options,
		validator: NewValidator(options.Topology, options.Failer),
	}
}

// Run plays out every game that starts with the given hole empty and returns
// the tally of how many pegs each game left behind.
func (s *Solver) Run(start board.Cell) (*Result, error) {
	b, err := board.New(start)
	if err != nil {
		return nil, err
	}

	s.hist = &histogram.Histogram{}
	s.stats = Stats{}
	s.initialPegs = b.PegCount()

	began := time.Now()
	s.play(b, nil)
	s.stats.Duration = time.Since(began)

	verify.That(s.options.Failer, s.hist.Total() == s.stats.Terminals,
		"start %d: histogram holds %d games but %d terminal boards were reached",
		start, s.hist.Total(), s.stats.Terminals)

	s.options.Logger.Debug("search finished",
		"start", start,
		"games", s.stats.Terminals,
		"nodes", s.stats.Nodes,
		"duration", s.stats.Duration,
	)

	return &Result{Start: start, Histogram: s.hist, Stats: s.stats}, nil
}

// play tries every legal jump on b. It returns true when b is terminal.
// b and history are never modified: each jump is played on a copy of the
// board and appended to a fresh copy of the history.
func (s *Solver) play(b board.Board, history []board.Move) bool {
	s.stats.Nodes++
	topo := s.options.Topology

	terminal := true
	for from := board.Cell(0); from < board.CellCount; from++ {
		if !b[from] {
			continue
		}
		for _, j := range topo.Jumps[from] {
			if b[j.Over] && !b[j.To] {
				s.jump(b, history, board.Move{From: from, Over: j.Over, To: j.To})
				terminal = false
			}
		}
	}
	return terminal
}

// jump plays m on its own copies of the board and history, then keeps
// playing. A branch that dead-ends here is tallied and validated.
func (s *Solver) jump(b board.Board, history []board.Move, m board.Move) {
	b = b.Apply(m)
	next := make([]board.Move, len(history)+1)
	copy(next, history)
	next[len(history)] = m

	if s.play(b, next) {
		s.finish(b, next)
	}
}

// finish records a completed game.
func (s *Solver) finish(b board.Board, moves []board.Move) {
	fail := s.options.Failer
	remaining := b.PegCount()

	verify.That(fail, remaining == s.initialPegs-len(moves),
		"board has %d pegs after %d moves from %d", remaining, len(moves), s.initialPegs)
	if err := s.hist.Record(remaining); err != nil {
		verify.That(fail, false, "%v", err)
	}
	s.stats.Terminals++

	if s.options.OnGame != nil {
		s.options.OnGame(moves, remaining)
	}
	s.validator.Validate(moves)
}
