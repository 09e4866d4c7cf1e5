package solver

import (
	"github.com/BradMears/peg-game/internal/board"
	"github.com/BradMears/peg-game/internal/verify"
)

// Validator replays a finished game from scratch and checks that every jump
// was legal and that the game really ended on a dead end.
type Validator struct {
	topo *board.Topology
	fail verify.Failer
}

// NewValidator returns a validator reporting to fail.
func NewValidator(topo *board.Topology, fail verify.Failer) *Validator {
	if topo == nil {
		topo = board.StandardTopology()
	}
	if fail == nil {
		fail = verify.Panic{}
	}
	return &Validator{topo: topo, fail: fail}
}

// Validate replays moves and reports every problem to the Failer. It returns
// true when the game is sound.
//
// The starting board is rebuilt from the first move: a game starts with a
// single empty hole and the first jump must land in it.
func (v *Validator) Validate(moves []board.Move) bool {
	if !verify.That(v.fail, len(moves) > 0, "game has no moves") {
		return false
	}
	if !verify.That(v.fail, len(moves) <= board.MaxMoves,
		"game has %d moves, at most %d are possible", len(moves), board.MaxMoves) {
		return false
	}

	empty := moves[0].To
	b, err := board.New(empty)
	if !verify.That(v.fail, err == nil, "first move %v: %v", moves[0], err) {
		return false
	}

	for i, m := range moves {
		if !verify.That(v.fail, v.topo.IsLegal(b, m),
			"move %d %v is illegal on board %s", i+1, m, b) {
			return false
		}
		b = b.Apply(m)
	}

	return verify.That(v.fail, !v.topo.HasAnyMove(b),
		"game ends on board %s which still has a legal jump", b)
}
