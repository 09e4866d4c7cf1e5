package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BradMears/peg-game/internal/board"
	"github.com/BradMears/peg-game/internal/generator"
)

func init() {
	startsCmd := &cobra.Command{
		Use:   "starts",
		Short: "Show the symmetry classes of starting holes",
		Long: `Group the 15 holes into classes of starts that are rotations or mirror
images of each other, then draw the starting board for every hole the
enumeration would use.

Examples:
  peg-game starts
  peg-game starts --all-holes`,
		Args: cobra.NoArgs,
		RunE: runStarts,
	}

	rootCmd.AddCommand(startsCmd)
}

func runStarts(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Symmetry classes:")
	for _, orbit := range board.Orbits() {
		fmt.Fprintf(out, "  %2d: %v\n", orbit[0], orbit)
	}

	starts, err := generator.New(&generator.Options{
		Starts:   cfg.StartCells(),
		AllHoles: cfg.AllHoles,
	}).Generate()
	if err != nil {
		return err
	}

	for _, s := range starts {
		fmt.Fprintf(out, "\nStart %d (class %d):\n", s.Hole, board.Canonical(s.Hole))
		fmt.Fprint(out, s.Board.Format())
	}
	return nil
}
