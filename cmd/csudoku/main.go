package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/csudoku/internal/config"
	"svw.info/csudoku/internal/solver"
)

var (
	cfg    config.Config
	logger *slog.Logger

	configPath string
	diagonal   bool
	twins      bool
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")
	pf.BoolVar(&diagonal, "diagonal", false, "constrain both main diagonals")
	pf.BoolVar(&twins, "twins", false, "interleave naked-twins pruning into reduction")
	pf.StringVar(&logLevel, "log-level", "", "debug|info|warn|error")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		// Flags win over the config file, but only when actually set.
		if cmd.Flags().Changed("diagonal") {
			cfg.Solver.Diagonal = diagonal
		}
		if cmd.Flags().Changed("twins") {
			cfg.Solver.NakedTwins = twins
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)}))
		slog.SetDefault(logger)
		return nil
	}

	rootCmd.AddCommand(solveCmd, watchCmd, generateCmd, serveCmd)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newSolver builds the constraint solver from the effective configuration.
func newSolver(history bool) *solver.ConstraintSolver {
	var opts []solver.Option
	if cfg.Solver.Diagonal {
		opts = append(opts, solver.WithDiagonals())
	}
	if cfg.Solver.NakedTwins {
		opts = append(opts, solver.WithNakedTwins())
	}
	if history {
		opts = append(opts, solver.WithHistory())
	}
	return solver.New(opts...)
}
