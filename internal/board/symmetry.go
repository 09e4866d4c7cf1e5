package board

import "slices"

// Symmetry maps every cell to its image under one rotation or reflection of
// the triangle.
type Symmetry [CellCount]Cell

// axisPermutations reorder a cell's three distances to the triangle's
// sides. Every permutation is one of the six dihedral motions; the identity
// comes first.
var axisPermutations = [6][3]int{
	{0, 1, 2},
	{1, 2, 0},
	{2, 0, 1},
	{1, 0, 2},
	{0, 2, 1},
	{2, 1, 0},
}

// Symmetries returns the six rigid motions of the triangle, identity first.
func Symmetries() []Symmetry {
	syms := make([]Symmetry, 0, len(axisPermutations))
	for _, perm := range axisPermutations {
		var s Symmetry
		for c := Cell(0); c < CellCount; c++ {
			row, col := RowCol(c)
			// Distances to the left edge, right edge and bottom row; they
			// always sum to Rows-1.
			dist := [3]int{col, row - col, Rows - 1 - row}
			moved := [3]int{dist[perm[0]], dist[perm[1]], dist[perm[2]]}
			newRow := Rows - 1 - moved[2]
			s[c] = MakeCell(newRow, moved[0])
		}
		syms = append(syms, s)
	}
	return syms
}

// Board returns the image of b under the symmetry.
func (s Symmetry) Board(b Board) Board {
	var out Board
	for c, peg := range b {
		out[s[c]] = peg
	}
	return out
}

// Move returns the image of m under the symmetry.
func (s Symmetry) Move(m Move) Move {
	return Move{From: s[m.From], Over: s[m.Over], To: s[m.To]}
}

// Orbits partitions the cells into symmetry classes. Each orbit is sorted
// and the orbits are ordered by their smallest cell.
func Orbits() [][]Cell {
	syms := Symmetries()
	var seen [CellCount]bool
	var orbits [][]Cell

	for c := Cell(0); c < CellCount; c++ {
		if seen[c] {
			continue
		}
		var orbit []Cell
		for _, s := range syms {
			img := s[c]
			if !seen[img] {
				seen[img] = true
				orbit = append(orbit, img)
			}
		}
		slices.Sort(orbit)
		orbits = append(orbits, orbit)
	}
	return orbits
}

// CanonicalStarts returns one empty hole per symmetry class: the lowest
// numbered cell of each orbit. Every other single-hole start is a rotation
// or mirror image of one of these.
func CanonicalStarts() []Cell {
	orbits := Orbits()
	starts := make([]Cell, len(orbits))
	for i, orbit := range orbits {
		starts[i] = orbit[0]
	}
	return starts
}

// Canonical returns the representative start for the hole c.
func Canonical(c Cell) Cell {
	for _, orbit := range Orbits() {
		if slices.Contains(orbit, c) {
			return orbit[0]
		}
	}
	return InvalidCell
}
