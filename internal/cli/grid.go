package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/gridworld"
	"github.com/katalvlaran/lvsearch/search"
)

// gridOptions holds options for the grid command.
type gridOptions struct {
	cfg        Config
	maxCost    float64
	configPath string
	mapPath    string
	from, to   []int
	diagonal   bool
}

// newGridCmd creates the grid command.
func (a *App) newGridCmd() *cobra.Command {
	opts := &gridOptions{cfg: DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Find a path across a weighted grid map",
		Long: `Find a path across a grid read from a file of whitespace-separated
integers. Each value is the cost of standing on that cell; values below 1
are walls.

Example:
  npuzzle grid --map city.txt --from 0,0 --to 9,9 --diagonal -a bidir`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolve(cmd.Flags(), opts.cfg, opts.maxCost, opts.configPath)
			if err != nil {
				return err
			}

			return a.grid(cmd.Context(), cfg, opts)
		},
	}

	bindFlags(cmd.Flags(), &opts.cfg, &opts.maxCost, &opts.configPath)
	cmd.Flags().StringVarP(&opts.mapPath, "map", "m", "", "Path to the grid file (required)")
	cmd.Flags().IntSliceVar(&opts.from, "from", []int{0, 0}, "Start cell x,y")
	cmd.Flags().IntSliceVar(&opts.to, "to", nil, "Goal cell x,y (default: bottom-right corner)")
	cmd.Flags().BoolVar(&opts.diagonal, "diagonal", false, "Allow diagonal moves")

	_ = cmd.MarkFlagRequired("map")

	return cmd
}

func (a *App) grid(ctx context.Context, cfg Config, opts *gridOptions) error {
	data, err := os.ReadFile(opts.mapPath)
	if err != nil {
		return fmt.Errorf("reading map: %w", err)
	}
	gopts := gridworld.DefaultOptions()
	if opts.diagonal {
		gopts.Conn = gridworld.Conn8
	}
	g, err := gridworld.Parse(string(data), gopts)
	if err != nil {
		return err
	}
	from, err := cellFlag(opts.from, gridworld.Cell{})
	if err != nil {
		return err
	}
	to, err := cellFlag(opts.to, gridworld.Cell{X: g.Width - 1, Y: g.Height - 1})
	if err != nil {
		return err
	}
	h := g.Heuristic()
	if cfg.Heuristic == "zero" {
		h = func(_, _ gridworld.Cell) float64 { return 0 }
	}
	sopts, shutdown, err := a.options(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = shutdown(context.Background()) }()

	run, err := pick(cfg.Algorithm, g.Successors, h, search.ActionPath[gridworld.Cell, gridworld.Direction]())
	if err != nil {
		return err
	}
	res, err := run(from, to, sopts...)
	if err != nil {
		return err
	}
	if res.Found() {
		printRoute(a.stdout, g, from, res.Path)
	}
	report(a.stdout, cfg.Algorithm, res, len(res.Path))

	return nil
}

func printRoute(w io.Writer, g *gridworld.Grid, from gridworld.Cell, dirs []gridworld.Direction) {
	cells, _, err := g.Walk(from, dirs)
	if err != nil {
		fmt.Fprintf(w, "route does not replay: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%v", from)
	for i, c := range cells {
		fmt.Fprintf(w, " -%s-> %v", dirs[i], c)
	}
	fmt.Fprintln(w)
}

func cellFlag(xy []int, def gridworld.Cell) (gridworld.Cell, error) {
	switch len(xy) {
	case 0:
		return def, nil
	case 2:
		return gridworld.Cell{X: xy[0], Y: xy[1]}, nil
	default:
		return def, fmt.Errorf("cli: cell must be x,y, got %v", xy)
	}
}
