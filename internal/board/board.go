package board

import (
	"fmt"
	"strings"
)

// Board dimensions
const (
	Rows      = 5
	CellCount = Rows * (Rows + 1) / 2

	// StartPegs is the number of pegs on a board with a single empty hole.
	StartPegs = CellCount - 1

	// MaxMoves bounds the length of any game: every jump removes one peg and
	// at least one peg is always left standing.
	MaxMoves = StartPegs - 1
)

// InvalidCell is returned by MakeCell for coordinates off the triangle.
const InvalidCell Cell = -1

// Cell identifies one hole of the triangle. Holes are numbered row by row
// from the apex, left to right:
//
//	        0
//	      1   2
//	    3   4   5
//	  6   7   8   9
//	10  11  12  13  14
type Cell int

// Move is a single jump: the peg at From hops over the peg at Over and
// lands in the empty hole To. The jumped peg is removed.
type Move struct {
	From Cell
	Over Cell
	To   Cell
}

// String renders the move as "[from, over, to]".
func (m Move) String() string {
	return fmt.Sprintf("[%d, %d, %d]", m.From, m.Over, m.To)
}

// Board holds one peg flag per hole. It is a plain array, so assigning or
// passing a Board copies it; a search branch can never see a sibling's pegs.
type Board [CellCount]bool

// New returns a full board with a single empty hole.
func New(empty Cell) (Board, error) {
	if err := validateCell(empty); err != nil {
		return Board{}, err
	}
	var b Board
	for i := range b {
		b[i] = true
	}
	b[empty] = false
	return b, nil
}

// MustNew is New for holes known to be valid, such as the canonical starts.
func MustNew(empty Cell) Board {
	b, err := New(empty)
	if err != nil {
		panic(err)
	}
	return b
}

// Has reports whether the hole holds a peg. Out-of-range cells report false.
func (b Board) Has(c Cell) bool {
	if !IsValidCell(c) {
		return false
	}
	return b[c]
}

// Apply returns a copy of the board with the move played. It does not check
// legality; see Topology.IsLegal.
func (b Board) Apply(m Move) Board {
	b[m.From] = false
	b[m.Over] = false
	b[m.To] = true
	return b
}

// PegCount returns the number of pegs on the board.
func (b Board) PegCount() int {
	n := 0
	for _, peg := range b {
		if peg {
			n++
		}
	}
	return n
}

// Empty returns the empty holes in ascending order.
func (b Board) Empty() []Cell {
	var holes []Cell
	for c, peg := range b {
		if !peg {
			holes = append(holes, Cell(c))
		}
	}
	return holes
}

// String returns the board as a 15-character string, 'x' for a peg and
// '.' for an empty hole.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for _, peg := range b {
		if peg {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// Format returns the board drawn as a triangle.
func (b Board) Format() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		sb.WriteString(strings.Repeat(" ", 2*(Rows-1-row)))
		for col := 0; col <= row; col++ {
			if col > 0 {
				sb.WriteString("   ")
			}
			if b[MakeCell(row, col)] {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Precomputed lookup tables for cell to row and column mapping.
var cellToRow, cellToCol = buildCoords()

// MakeCell transforms a row and column into a cell index.
// Returns InvalidCell if the coordinates are off the triangle.
func MakeCell(row, col int) Cell {
	if row < 0 || row >= Rows || col < 0 || col > row {
		return InvalidCell
	}
	return Cell(row*(row+1)/2 + col)
}

// RowCol returns the coordinates of a cell.
func RowCol(c Cell) (row, col int) {
	return cellToRow[c], cellToCol[c]
}

func buildCoords() (rows, cols [CellCount]int) {
	for row := 0; row < Rows; row++ {
		for col := 0; col <= row; col++ {
			c := MakeCell(row, col)
			rows[c] = row
			cols[c] = col
		}
	}
	return rows, cols
}
