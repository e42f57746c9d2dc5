package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"svw.info/csudoku/internal/domain"
	"svw.info/csudoku/internal/generator"
	"svw.info/csudoku/internal/grid"
	"svw.info/csudoku/internal/infrastructure/storage"
	"svw.info/csudoku/internal/solver"
	"svw.info/csudoku/internal/tui"
)

var (
	showStats  bool
	genSeed    int64
	genDiff    string
	genSave    bool
	listenAddr string

	rootCmd = &cobra.Command{
		Use:           "csudoku",
		Short:         "Constraint-propagation Sudoku solver",
		Long:          "csudoku solves, generates, and serves 9x9 Sudoku puzzles (plain or diagonal variant) using constraint propagation with backtracking search.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	solveCmd = &cobra.Command{
		Use:   "solve [grid]",
		Short: "Solve an 81-character puzzle string and print the grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}

	watchCmd = &cobra.Command{
		Use:   "watch [grid]",
		Short: "Solve a puzzle and replay the assignment history in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		RunE:  runGenerate,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE:  runServe,
	}
)

func init() {
	solveCmd.Flags().BoolVar(&showStats, "stats", false, "log search nodes and duration")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "generation seed (0 means current time)")
	generateCmd.Flags().StringVar(&genDiff, "difficulty", "medium", "easy|medium|hard|expert")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "persist the puzzle to the storage directory")
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "listen address (overrides config)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	s := newSolver(false)
	v, st, err := s.SolveGrid(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, solver.ErrNoSolution) {
			fmt.Println("no solution")
		}
		return err
	}
	fmt.Print(grid.Render(v.Snapshot()))
	if showStats {
		logger.Info("solved", "nodes", st.Nodes, "dur", st.Duration.Round(time.Microsecond))
	}
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	s := newSolver(true)
	v, _, err := s.SolveGrid(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, solver.ErrNoSolution) {
			fmt.Println("no solution")
		}
		return err
	}
	fmt.Print(grid.Render(v.Snapshot()))
	// The replay is best-effort: a missing TTY or an empty history must not
	// turn a solved puzzle into a failure.
	if err := tui.Run(v.History()); err != nil {
		logger.Warn("could not replay the solve; the solution above still stands", "err", err)
	}
	return nil
}

func parseDifficulty(s string) domain.Difficulty {
	switch s {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s := newSolver(false)
	g := generator.NewUniqueGenerator(s, cfg.Solver.Diagonal)
	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := g.Generate(cmd.Context(), seed, parseDifficulty(genDiff))
	if err != nil {
		return err
	}
	fmt.Println(grid.FromBoard(&p.Board))
	logger.Info("generated", "seed", seed, "difficulty", genDiff, "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
	if genSave {
		p.ID = uuid.NewString()
		if err := storage.NewFS(cfg.Storage.Path).Save(cmd.Context(), p); err != nil {
			return err
		}
		logger.Info("saved", "id", p.ID, "path", cfg.Storage.Path)
	}
	return nil
}
