package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradMears/peg-game/internal/board"
	"github.com/BradMears/peg-game/internal/generator"
)

func TestHoles_Default(t *testing.T) {
	holes, err := generator.New(nil).Holes()
	require.NoError(t, err)
	assert.Equal(t, []board.Cell{0, 1, 3, 4}, holes)
}

func TestHoles_AllHoles(t *testing.T) {
	holes, err := generator.New(&generator.Options{AllHoles: true}).Holes()
	require.NoError(t, err)
	require.Len(t, holes, board.CellCount)
	for i, h := range holes {
		assert.Equal(t, board.Cell(i), h)
	}
}

func TestHoles_Explicit(t *testing.T) {
	holes, err := generator.New(&generator.Options{
		Starts:   []board.Cell{12, 2, 12},
		AllHoles: true,
	}).Holes()
	require.NoError(t, err)
	assert.Equal(t, []board.Cell{12, 2}, holes)
}

func TestHoles_ExplicitInvalid(t *testing.T) {
	_, err := generator.New(&generator.Options{Starts: []board.Cell{3, 15}}).Holes()
	assert.ErrorIs(t, err, board.ErrInvalidCell)
}

func TestGenerate(t *testing.T) {
	starts, err := generator.New(nil).Generate()
	require.NoError(t, err)
	require.Len(t, starts, 4)
	for _, s := range starts {
		assert.Equal(t, []board.Cell{s.Hole}, s.Board.Empty())
		assert.Equal(t, board.StartPegs, s.Board.PegCount())
	}
}
