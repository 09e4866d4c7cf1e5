package solver

import (
	"github.com/BradMears/peg-game/internal/board"
)

// CountTerminals returns the number of dead-end boards reachable from b by
// at least one jump, counted once per distinct path. It walks the tree with
// a single board and undoes each jump on the way back, so it shares nothing
// with the solver's copying search and serves as an independent tally.
func CountTerminals(topo *board.Topology, b board.Board) uint64 {
	if topo == nil {
		topo = board.StandardTopology()
	}
	return countTerminals(topo, &b, 0)
}

func countTerminals(topo *board.Topology, b *board.Board, depth int) uint64 {
	var count uint64
	moved := false

	for from := board.Cell(0); from < board.CellCount; from++ {
		if !b[from] {
			continue
		}
		for _, j := range topo.Jumps[from] {
			if !b[j.Over] || b[j.To] {
				continue
			}
			moved = true

			b[from], b[j.Over], b[j.To] = false, false, true
			count += countTerminals(topo, b, depth+1)
			b[from], b[j.Over], b[j.To] = true, true, false
		}
	}

	if !moved && depth > 0 {
		return 1
	}
	return count
}
