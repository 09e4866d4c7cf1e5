package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidCell   = errors.New("cell out of bounds")
	ErrMalformedMove = errors.New("malformed move")
	ErrIllegalMove   = errors.New("move violates jump rules")
)

// IsLegal reports whether m can be played on b: From and Over hold pegs, To
// is empty, and (Over, To) is registered for From.
func (t *Topology) IsLegal(b Board, m Move) bool {
	if !IsValidCell(m.From) || !IsValidCell(m.Over) || !IsValidCell(m.To) {
		return false
	}
	if !b[m.From] || !b[m.Over] || b[m.To] {
		return false
	}
	for _, j := range t.Jumps[m.From] {
		if j.Over == m.Over && j.To == m.To {
			return true
		}
	}
	return false
}

// HasAnyMove reports whether any legal jump remains on b. A board without
// one is terminal.
func (t *Topology) HasAnyMove(b Board) bool {
	for from := Cell(0); from < CellCount; from++ {
		if !b[from] {
			continue
		}
		for _, j := range t.Jumps[from] {
			if b[j.Over] && !b[j.To] {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns every legal jump on b, ordered by source cell and then
// by registration order.
func (t *Topology) LegalMoves(b Board) []Move {
	var moves []Move
	for from := Cell(0); from < CellCount; from++ {
		if !b[from] {
			continue
		}
		for _, j := range t.Jumps[from] {
			if b[j.Over] && !b[j.To] {
				moves = append(moves, Move{From: from, Over: j.Over, To: j.To})
			}
		}
	}
	return moves
}

// IsValidCell reports whether c is a hole on the board.
func IsValidCell(c Cell) bool {
	return c >= 0 && c < CellCount
}

// validateCell checks if a cell is within board bounds.
func validateCell(c Cell) error {
	if !IsValidCell(c) {
		return fmt.Errorf("%w: cell %d must be in range [0, %d)", ErrInvalidCell, c, CellCount)
	}
	return nil
}

// ParseCell parses a decimal hole number.
func ParseCell(s string) (Cell, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return InvalidCell, fmt.Errorf("%w: %q is not a number", ErrInvalidCell, s)
	}
	c := Cell(n)
	if err := validateCell(c); err != nil {
		return InvalidCell, err
	}
	return c, nil
}

// ParseMove parses a "from,over,to" triple. Surrounding brackets and spaces
// are ignored, so the output of Move.String parses back.
func ParseMove(s string) (Move, error) {
	trimmed := strings.Trim(strings.TrimSpace(s), "[]")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 3 {
		return Move{}, fmt.Errorf("%w: %q (use format like '3,1,0')", ErrMalformedMove, s)
	}
	var cells [3]Cell
	for i, p := range parts {
		c, err := ParseCell(p)
		if err != nil {
			return Move{}, fmt.Errorf("%w: %q: %w", ErrMalformedMove, s, err)
		}
		cells[i] = c
	}
	return Move{From: cells[0], Over: cells[1], To: cells[2]}, nil
}
