package board

import "fmt"

// Jump is one registered (over, to) pair for a source hole.
type Jump struct {
	Over Cell
	To   Cell
}

// Topology lists, for every hole, the jumps a peg standing there could make
// on an otherwise suitable board.
//
// Topology is immutable after construction; it is safe to share the same
// pointer across every search branch.
type Topology struct {
	// Jumps maps a source cell to its registered jumps, in direction order.
	Jumps [CellCount][]Jump
}

// directions are the six unit steps along the triangle's three axes, as
// (row, col) deltas.
var directions = [6][2]int{
	{-1, 0},  // up-right
	{-1, -1}, // up-left
	{0, -1},  // left
	{0, 1},   // right
	{1, 0},   // down-left
	{1, 1},   // down-right
}

var standardTopology *Topology

// StandardTopology returns the shared Topology of the 5-row triangle.
func StandardTopology() *Topology {
	return standardTopology
}

// NewTopology derives the jump table from cell coordinates: a jump from c
// passes over the adjacent cell one step along an axis and lands on the cell
// two steps along the same axis.
func NewTopology() (*Topology, error) {
	t := &Topology{}
	for c := Cell(0); c < CellCount; c++ {
		row, col := RowCol(c)
		for _, d := range directions {
			over := MakeCell(row+d[0], col+d[1])
			to := MakeCell(row+2*d[0], col+2*d[1])
			if over == InvalidCell || to == InvalidCell {
				continue
			}
			t.Jumps[c] = append(t.Jumps[c], Jump{Over: over, To: to})
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that every registered jump runs along a straight line of
// three adjacent cells and that each hole has between 2 and 4 jumps.
func (t *Topology) Validate() error {
	for c := Cell(0); c < CellCount; c++ {
		jumps := t.Jumps[c]
		if len(jumps) < 2 || len(jumps) > 4 {
			return fmt.Errorf("topology: cell %d has %d jumps, expected 2-4", c, len(jumps))
		}
		for _, j := range jumps {
			if !IsValidCell(j.Over) || !IsValidCell(j.To) {
				return fmt.Errorf("topology: cell %d has out-of-range jump %v", c, j)
			}
			if !Colinear(c, j.Over, j.To) {
				return fmt.Errorf("topology: cell %d jump over %d to %d is not a straight line",
					c, j.Over, j.To)
			}
		}
	}
	return nil
}

// Adjacent reports whether two cells are one step apart along an axis.
func Adjacent(a, b Cell) bool {
	ra, ca := RowCol(a)
	rb, cb := RowCol(b)
	dr, dc := rb-ra, cb-ca
	for _, d := range directions {
		if d[0] == dr && d[1] == dc {
			return true
		}
	}
	return false
}

// Colinear reports whether from, over and to are consecutive adjacent
// cells along a single axis.
func Colinear(from, over, to Cell) bool {
	if !Adjacent(from, over) || !Adjacent(over, to) {
		return false
	}
	rf, cf := RowCol(from)
	ro, co := RowCol(over)
	rt, ct := RowCol(to)
	return ro-rf == rt-ro && co-cf == ct-co
}

func init() {
	t, err := NewTopology()
	if err != nil {
		// The triangle is fixed; a failure here is a bug.
		panic("standard topology failed validation: " + err.Error())
	}
	standardTopology = t
}
