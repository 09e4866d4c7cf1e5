package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BradMears/peg-game/internal/board"
	"github.com/BradMears/peg-game/internal/solver"
	"github.com/BradMears/peg-game/internal/verify"
)

var errInvalidGame = errors.New("game is not valid")

func init() {
	validateCmd := &cobra.Command{
		Use:   "validate MOVE...",
		Short: "Check that a sequence of jumps is a complete game",
		Long: `Replay a game and check that every jump is legal and that no jump is left
at the end. The starting board is the full board with the first move's
landing hole empty.

Each MOVE is a from,over,to triple of hole numbers.

Examples:
  peg-game validate 3,1,0 5,4,3 0,2,5
  peg-game validate "[5, 2, 0]" "[14, 9, 5]"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	moves := make([]board.Move, 0, len(args))
	for _, arg := range args {
		m, err := board.ParseMove(arg)
		if err != nil {
			return err
		}
		moves = append(moves, m)
	}

	// Collect instead of aborting: a bad game here is user input, not a bug.
	c := &verify.Collect{}
	if solver.NewValidator(nil, c).Validate(moves) {
		final := board.MustNew(moves[0].To)
		for _, m := range moves {
			final = final.Apply(m)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "valid game: %d moves, %d pegs left\n", len(moves), final.PegCount())
		fmt.Fprint(cmd.OutOrStdout(), final.Format())
		return nil
	}

	for _, viol := range c.Violations() {
		fmt.Fprintln(cmd.OutOrStdout(), viol.Message)
	}
	return errInvalidGame
}
