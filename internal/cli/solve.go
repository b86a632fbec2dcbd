package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilepath/puzzle"
	"github.com/katalvlaran/tilepath/solver"
)

// solveCommand creates the "solve" command.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		configPath string
		maxStates  int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a shortest move sequence for a 5×5 sliding-tile puzzle",
		Long: `Reads [puzzle] start and goal boards from a TOML file, searches the board graph
breadth-first and prints every board from start to goal, separated by blank lines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			start, goal, err := cfg.Puzzle.Boards()
			if err != nil {
				return err
			}
			limit := cfg.Puzzle.MaxStates
			if cmd.Flags().Changed("max-states") {
				limit = maxStates
			}

			c.Logger.Debug("solving", "inversions", start.Inversions(), "max_states", limit)
			onDepth := depthLogger(c.Logger, "states")
			prog := newProgress(c.Logger)

			sol, err := solver.Solve(start, goal,
				solver.WithContext(cmd.Context()),
				solver.WithMaxStates(limit),
				solver.WithOnDiscover(func(_ puzzle.Board, depth int) { onDepth(depth) }),
			)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			prog.done("Solved", "moves", sol.Len(), "explored", sol.Explored)

			return writeBoards(cmd.OutOrStdout(), sol.Steps)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file with a [puzzle] table")
	cmd.Flags().IntVar(&maxStates, "max-states", 0, "stop after discovering this many boards (0 = unlimited)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
