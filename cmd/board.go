package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BradMears/peg-game/internal/board"
)

func init() {
	boardCmd := &cobra.Command{
		Use:   "board HOLE [MOVE...]",
		Short: "Draw a starting board and list its legal jumps",
		Long: `Draw the board with HOLE empty, play any given moves on it, and list the
jumps that are legal afterwards.

Examples:
  peg-game board 4
  peg-game board 0 3,1,0 5,4,3`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBoard,
	}

	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	hole, err := board.ParseCell(args[0])
	if err != nil {
		return err
	}
	b := board.MustNew(hole)
	topo := board.StandardTopology()

	for _, arg := range args[1:] {
		m, err := board.ParseMove(arg)
		if err != nil {
			return err
		}
		if !topo.IsLegal(b, m) {
			return fmt.Errorf("%w: %v is not legal on %s", board.ErrIllegalMove, m, b)
		}
		b = b.Apply(m)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, b.Format())
	fmt.Fprintf(out, "%d pegs\n", b.PegCount())

	moves := topo.LegalMoves(b)
	if len(moves) == 0 {
		fmt.Fprintln(out, "no legal jumps: game over")
		return nil
	}
	fmt.Fprintln(out, "legal jumps:")
	for _, m := range moves {
		fmt.Fprintf(out, "  %v\n", m)
	}
	return nil
}
