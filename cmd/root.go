package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BradMears/peg-game/internal/config"
)

var (
	cfgFile string
	v       *viper.Viper

	// cfg and logger are set by loadConfig before any command runs.
	cfg    config.Config
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "peg-game",
	Short: "Enumerate every game of 15-hole triangle peg solitaire",
	Long: `Play out every possible sequence of jumps on the 15-hole triangular
peg board, starting from one empty hole per symmetry class, and print how
many games ended with each number of pegs left.

Without a subcommand the full enumeration is run, as with 'peg-game run'.

Examples:
  peg-game
  peg-game run --format json
  peg-game run --starts 0,4 --metrics-file /var/lib/node_exporter/peggame.prom
  peg-game starts
  peg-game validate 3,1,0 5,4,3 0,2,5`,
	PersistentPreRunE: loadConfig,
	RunE:              runEnumerate,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML config file")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.Bool("strict", false, "Panic on the first invariant violation instead of logging it and exiting")
	pf.StringP("format", "f", "text", "Report format: text, json or yaml")
	pf.IntSlice("starts", nil, "Empty holes to start from (default one per symmetry class)")
	pf.Bool("all-holes", false, "Start from every hole instead of one per symmetry class")
	pf.String("metrics-file", "", "Write Prometheus metrics to this file after the run")

	v = newViper()
}

// newViper returns a viper instance with every persistent flag bound to its
// config key.
func newViper() *viper.Viper {
	v := config.NewViper()
	pf := rootCmd.PersistentFlags()
	for key, flag := range map[string]string{
		config.KeyLogLevel:    "log-level",
		config.KeyStrict:      "strict",
		config.KeyFormat:      "format",
		config.KeyStarts:      "starts",
		config.KeyAllHoles:    "all-holes",
		config.KeyMetricsFile: "metrics-file",
	} {
		if err := v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic("binding flag " + flag + ": " + err.Error())
		}
	}
	return v
}

// loadConfig merges flags, environment and config file, then sets up the
// logger every command uses.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	level, err := loaded.Level()
	if err != nil {
		return err
	}

	cfg = loaded
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
