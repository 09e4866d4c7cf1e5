package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradMears/peg-game/internal/board"
	"github.com/BradMears/peg-game/internal/solver"
	"github.com/BradMears/peg-game/internal/verify"
)

// firstGame returns a copy of the first finished game found from start.
func firstGame(t *testing.T, start board.Cell) []board.Move {
	t.Helper()
	var game []board.Move
	s := solver.New(&solver.Options{
		OnGame: func(moves []board.Move, _ int) {
			if game == nil {
				game = append([]board.Move(nil), moves...)
			}
		},
	})
	_, err := s.Run(start)
	require.NoError(t, err)
	require.NotEmpty(t, game)
	return game
}

func TestValidate_AcceptsFoundGame(t *testing.T) {
	c := &verify.Collect{}
	v := solver.NewValidator(nil, c)
	for _, start := range board.CanonicalStarts() {
		game := firstGame(t, start)
		assert.True(t, v.Validate(game), "start %d: %v", start, c.Violations())
		assert.Equal(t, start, game[0].To)
	}
	assert.False(t, c.Failed())
}

func TestValidate_Rejects(t *testing.T) {
	game := firstGame(t, 0)
	require.Greater(t, len(game), 2)

	withBadMove := append([]board.Move(nil), game...)
	withBadMove[1] = board.Move{From: 0, Over: 1, To: 3}

	tooLong := make([]board.Move, board.MaxMoves+1)
	for i := range tooLong {
		tooLong[i] = game[0]
	}

	tests := []struct {
		name  string
		moves []board.Move
	}{
		{"empty", nil},
		{"too long", tooLong},
		{"ends early", game[:len(game)-1]},
		{"illegal move", withBadMove},
		{"first move lands off the board", []board.Move{{From: 3, Over: 1, To: -1}}},
		{"repeated move", []board.Move{game[0], game[0]}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &verify.Collect{}
			v := solver.NewValidator(nil, c)
			assert.False(t, v.Validate(tc.moves))
			assert.Len(t, c.Violations(), 1)
		})
	}
}

func TestValidate_PanicsWhenStrict(t *testing.T) {
	v := solver.NewValidator(nil, verify.Panic{})
	assert.Panics(t, func() { v.Validate(nil) })
}

func TestRun_ReportsViolationsFromBrokenTopology(t *testing.T) {
	// A table missing a jump makes the search stop early on boards the
	// validator, which uses the full table, still considers playable.
	broken, err := board.NewTopology()
	require.NoError(t, err)
	broken.Jumps[3] = broken.Jumps[3][:2]

	c := &verify.Collect{}
	check := solver.NewValidator(board.StandardTopology(), c)

	var games int
	s := solver.New(&solver.Options{
		Topology: broken,
		Failer:   &verify.Collect{},
		OnGame: func(moves []board.Move, _ int) {
			games++
			check.Validate(moves)
		},
	})
	_, err = s.Run(0)
	require.NoError(t, err)

	assert.Positive(t, games)
	assert.True(t, c.Failed())
}
