// Package generator picks the starting boards an enumeration runs from.
package generator

import (
	"fmt"

	"github.com/BradMears/peg-game/internal/board"
)

// Start is a starting board and the hole left empty on it.
type Start struct {
	Hole  board.Cell
	Board board.Board
}

// Generator produces starting boards.
type Generator struct {
	options *Options
}

// New creates a generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}
	return &Generator{options: options}
}

// Holes returns the holes to start from, in ascending order for the
// defaults and in the given order, without repeats, for explicit starts.
func (g *Generator) Holes() ([]board.Cell, error) {
	if len(g.options.Starts) > 0 {
		seen := make(map[board.Cell]bool, len(g.options.Starts))
		holes := make([]board.Cell, 0, len(g.options.Starts))
		for _, c := range g.options.Starts {
			if !board.IsValidCell(c) {
				return nil, fmt.Errorf("%w: start %d must be in range [0, %d)",
					board.ErrInvalidCell, c, board.CellCount)
			}
			if seen[c] {
				continue
			}
			seen[c] = true
			holes = append(holes, c)
		}
		return holes, nil
	}

	if g.options.AllHoles {
		holes := make([]board.Cell, board.CellCount)
		for c := range holes {
			holes[c] = board.Cell(c)
		}
		return holes, nil
	}

	return board.CanonicalStarts(), nil
}

// Generate returns the starting boards.
func (g *Generator) Generate() ([]Start, error) {
	holes, err := g.Holes()
	if err != nil {
		return nil, err
	}
	starts := make([]Start, len(holes))
	for i, h := range holes {
		starts[i] = Start{Hole: h, Board: board.MustNew(h)}
	}
	return starts, nil
}
