package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/BradMears/peg-game/internal/generator"
	"github.com/BradMears/peg-game/internal/histogram"
	"github.com/BradMears/peg-game/internal/metrics"
	"github.com/BradMears/peg-game/internal/solver"
	"github.com/BradMears/peg-game/internal/verify"
)

func init() {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Enumerate every game and print the remaining-peg histogram",
		Long: `Enumerate every game from each starting hole and print, for every
number of remaining pegs from 0 to 13, how many games ended that way.

The text report has one "pegs<TAB>games" line per count. The json and yaml
reports also break the counts down by starting hole.

Examples:
  peg-game run
  peg-game run --all-holes
  peg-game run --starts 4 --format yaml
  peg-game run --strict --log-level debug`,
		Args: cobra.NoArgs,
		RunE: runEnumerate,
	}

	rootCmd.AddCommand(runCmd)
}

func runEnumerate(cmd *cobra.Command, args []string) error {
	format, err := histogram.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logger.With("run_id", runID)

	gen := generator.New(&generator.Options{
		Starts:   cfg.StartCells(),
		AllHoles: cfg.AllHoles,
	})
	holes, err := gen.Holes()
	if err != nil {
		return err
	}

	s := solver.New(&solver.Options{
		Failer: verify.New(cfg.Strict, log),
		Logger: log,
	})

	var m *metrics.Metrics
	if cfg.MetricsFile != "" {
		m = metrics.New()
	}

	log.Info("enumeration started", "starts", holes, "strict", cfg.Strict)
	report := histogram.NewReport(runID)
	for _, hole := range holes {
		res, err := s.Run(hole)
		if err != nil {
			return fmt.Errorf("start %d: %w", hole, err)
		}
		log.Info("start searched",
			"start", hole,
			"games", res.Histogram.Total(),
			"fewest_pegs", res.Histogram.Min(),
			"most_pegs", res.Histogram.Max(),
			"nodes", res.Stats.Nodes,
			"duration", res.Stats.Duration,
		)

		report.Add(hole, res.Histogram)
		if m != nil {
			m.RecordResult(res)
		}
	}
	log.Info("enumeration finished", "games", report.Games)

	if err := report.Write(cmd.OutOrStdout(), format); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if m != nil {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics file: %w", err)
		}
		log.Debug("metrics written", "file", cfg.MetricsFile)
	}

	return nil
}
