// Command mazegame generates a maze, solves it and prints the result.
//
// Settings come from a .env file and MAZE_* environment variables (see
// package config); flags override them. With -moves the maze is walked by
// hand using w/a/s/d keys, otherwise the configured solver runs.
//
//	mazegame -height 12 -width 30 -seed 7 -solver dfs
//	mazegame -height 3 -width 3 -seed 1 -moves ddss
//	mazegame -topology hex -hexsize 6
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/mazegraph/bfs"
	"github.com/katalvlaran/mazegraph/builder"
	"github.com/katalvlaran/mazegraph/config"
	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/dfs"
	"github.com/katalvlaran/mazegraph/game"
	"github.com/katalvlaran/mazegraph/prim_kruskal"
)

// keys maps move keys to headings.
var keys = map[rune]core.Direction{
	'w': core.Up,
	'a': core.Left,
	's': core.Down,
	'd': core.Right,
}

func main() {
	var (
		envFile   = flag.String("env", ".env", "dotenv file with MAZE_* settings")
		height    = flag.Int("height", 0, "rows of a rect maze")
		width     = flag.Int("width", 0, "columns of a rect maze")
		bias      = flag.Float64("bias", 0, "orientation bias in [0, 1]")
		seed      = flag.Int64("seed", 0, "maze seed, 0 for time-based")
		topology  = flag.String("topology", "", "rect or hex")
		hexSize   = flag.Int("hexsize", 0, "radius of a hex maze")
		solver    = flag.String("solver", "", "bfs or dfs")
		method    = flag.String("method", "", "kruskal or prim")
		moves     = flag.String("moves", "", "walk the maze by hand with w/a/s/d")
		verbosity = flag.Int("v", 0, "log verbosity")
	)
	flag.Parse()

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", strconv.Itoa(*verbosity))
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	defer klog.Flush()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fail(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "height":
			cfg.Height = *height
		case "width":
			cfg.Width = *width
		case "bias":
			cfg.Bias = *bias
		case "seed":
			cfg.Seed = *seed
		case "topology":
			cfg.Topology = config.Topology(*topology)
		case "hexsize":
			cfg.HexSize = *hexSize
		case "solver":
			if cfg.Solver, err = game.ParseSolver(*solver); err != nil {
				fail(err)
			}
		case "method":
			if cfg.Method, err = prim_kruskal.ParseMethod(*method); err != nil {
				fail(err)
			}
		}
	})
	if err = cfg.Validate(); err != nil {
		fail(err)
	}

	if cfg.Topology == config.TopologyHex {
		err = runHex(cfg)
	} else {
		err = runRect(cfg, *moves)
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	klog.Errorf("mazegame: %v", err)
	klog.Flush()
	os.Exit(1)
}

func runRect(cfg config.Config, moves string) error {
	g, err := game.NewRect(cfg.Height, cfg.Width, cfg.Bias, game.WithSeed(cfg.Seed), game.WithMethod(cfg.Method))
	if err != nil {
		return err
	}
	d, err := game.NewDriver(g)
	if err != nil {
		return err
	}
	if err = d.Restart(); err != nil {
		return err
	}
	built, err := d.Drain()
	if err != nil {
		return err
	}
	klog.Infof("maze %s: %d walls opened", g.ID(), built)

	if moves != "" {
		walked := 0
		for _, key := range moves {
			dir, ok := keys[key]
			if !ok {
				klog.Warningf("ignoring key %q", key)
				continue
			}
			if err = d.Move(dir); err != nil {
				klog.Warningf("move %s: %v", dir, err)
				continue
			}
			walked++
			if g.IsSolved() {
				break
			}
		}
		if _, err = d.Drain(); err != nil {
			return err
		}
		fmt.Printf("walked %d cells, solved: %v\n", walked, g.IsSolved())
	} else {
		if err = d.Solve(cfg.Solver); err != nil {
			return err
		}
		steps, err := d.Drain()
		if err != nil {
			return err
		}
		path, err := d.Search().Path()
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d steps, %d cells expanded, path of %d cells\n",
			cfg.Solver, steps, d.Search().Visited(), len(path))
	}
	return render(os.Stdout, g)
}

func runHex(cfg config.Config) error {
	b := builder.NewHex(
		builder.WithSize(cfg.HexSize),
		builder.WithBias(cfg.Bias),
		builder.WithSeed(cfg.Seed),
		builder.WithMethod(cfg.Method),
	)
	g, err := b.BuildInstant()
	if err != nil {
		return err
	}
	target := core.VertexID(g.VertexCount() - 1)
	solve := bfs.Solve
	if cfg.Solver == game.SolverDFS {
		solve = dfs.Solve
	}
	path, err := solve(g, 0, target)
	if err != nil {
		return err
	}
	fmt.Printf("hex maze radius %d (seed %d): %d cells, %d openings, %s path of %d cells\n",
		cfg.HexSize, b.Seed(), g.VertexCount(), g.EdgeCount()/2, cfg.Solver, len(path))
	return nil
}
