package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/search"
)

const defaultStart = "8,6,7/2,5,4/3,0,1"

// solveOptions holds options for the solve command.
type solveOptions struct {
	cfg        Config
	maxCost    float64
	configPath string
	start      string
	goal       string
	noCheck    bool
}

// newSolveCmd creates the solve command.
func (a *App) newSolveCmd() *cobra.Command {
	opts := &solveOptions{cfg: DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a sliding-tile puzzle",
		Long: `Solve an N-puzzle (2x2 up to 4x4). Boards are written row by row, tiles
separated by commas, rows by "/"; 0 is the blank.

Examples:
  # Hardest 8-puzzle, A* with Manhattan distance
  npuzzle solve --start 8,6,7/2,5,4/3,0,1

  # Bidirectional search, actions only
  npuzzle solve -a bidir -p actions --start 1,2,3/4,5,6/0,7,8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolve(cmd.Flags(), opts.cfg, opts.maxCost, opts.configPath)
			if err != nil {
				return err
			}

			return a.solve(cmd.Context(), cfg, opts)
		},
	}

	bindFlags(cmd.Flags(), &opts.cfg, &opts.maxCost, &opts.configPath)
	cmd.Flags().StringVar(&opts.start, "start", defaultStart, "Start board")
	cmd.Flags().StringVar(&opts.goal, "goal", "", "Goal board (default: ordered tiles, blank last)")
	cmd.Flags().BoolVar(&opts.noCheck, "no-check", false, "Skip the solvability check")

	return cmd
}

func (a *App) solve(ctx context.Context, cfg Config, opts *solveOptions) error {
	start, err := puzzle.Parse(opts.start)
	if err != nil {
		return fmt.Errorf("start board: %w", err)
	}
	goal, err := puzzle.Goal(start.Size())
	if opts.goal != "" {
		goal, err = puzzle.Parse(opts.goal)
	}
	if err != nil {
		return fmt.Errorf("goal board: %w", err)
	}
	if !opts.noCheck {
		ok, err := puzzle.Solvable(start, goal)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.stdout, "unsolvable: tile parity differs from goal")
			return nil
		}
	}
	h, err := boardHeuristic(cfg.Heuristic)
	if err != nil {
		return err
	}
	sopts, shutdown, err := a.options(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = shutdown(context.Background()) }()

	fmt.Fprint(a.stdout, start)
	fmt.Fprintln(a.stdout)
	if cfg.Policy == "actions" {
		return solveWith(a.stdout, cfg.Algorithm, start, goal, h, search.ActionPath[puzzle.Board, puzzle.Move](), sopts,
			func(w io.Writer, path []puzzle.Move) int {
				for i, m := range path {
					fmt.Fprintf(w, "%d. %s\n", i+1, m)
				}
				return len(path)
			})
	}

	return solveWith(a.stdout, cfg.Algorithm, start, goal, h, search.FullPath[puzzle.Board, puzzle.Move](), sopts,
		func(w io.Writer, path []search.Step[puzzle.Board, puzzle.Move]) int {
			for i, st := range path {
				fmt.Fprintf(w, "%d. %s (g=%g)\n%s\n", i+1, st.Action, st.GCost, st.State)
			}
			return len(path)
		})
}

// solveWith runs algo and prints the path through render, which returns the
// number of moves it printed.
func solveWith[R any](
	w io.Writer,
	algo string,
	start, goal puzzle.Board,
	h search.Heuristic[puzzle.Board],
	policy search.Policy[puzzle.Board, puzzle.Move, R],
	opts []search.Option,
	render func(io.Writer, R) int,
) error {
	run, err := pick(algo, puzzle.Successors, h, policy)
	if err != nil {
		return err
	}
	res, err := run(start, goal, opts...)
	if err != nil {
		return err
	}
	steps := 0
	if res.Found() {
		steps = render(w, res.Path)
	}
	report(w, algo, res, steps)

	return nil
}

func boardHeuristic(name string) (search.Heuristic[puzzle.Board], error) {
	switch name {
	case "manhattan", "":
		return puzzle.Manhattan, nil
	case "misplaced":
		return puzzle.Misplaced, nil
	case "zero":
		return func(_, _ puzzle.Board) float64 { return 0 }, nil
	default:
		return nil, fmt.Errorf("cli: unknown puzzle heuristic %q", name)
	}
}
