// Command npuzzle solves sliding-tile puzzles read from a text file or
// generated by scrambling a solved board, printing a move-by-move replay and
// search metrics.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/louiserondia/npuzzle/boardgraph"
	"github.com/louiserondia/npuzzle/grid"
	"github.com/louiserondia/npuzzle/grid/gridtext"
	"github.com/louiserondia/npuzzle/heuristic"
	"github.com/louiserondia/npuzzle/scramble"
	"github.com/louiserondia/npuzzle/search"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "npuzzle:", err)
		os.Exit(1)
	}
}

type config struct {
	filepath   string
	generate   int
	iterations int
	heuristic  string
	algo       string
	diagnose   bool
	seed       int64
	seedSet    bool
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("npuzzle", flag.ContinueOnError)
	cfg := &config{}
	fs.StringVar(&cfg.filepath, "filepath", "", "read a puzzle from this text file")
	fs.IntVar(&cfg.generate, "generate", 0, "generate a random solvable puzzle of this side length")
	fs.IntVar(&cfg.iterations, "iterations", 100, "random legal moves applied when generating")
	fs.IntVar(&cfg.iterations, "generate-complexity", 100, "same as --iterations")
	fs.StringVar(&cfg.heuristic, "heuristic", "manhattan", "manhattan|euclidian|misplaced|zero")
	fs.StringVar(&cfg.algo, "algo", "astar", "astar|idastar")
	fs.BoolVar(&cfg.diagnose, "diagnose", false, "print a boardgraph connectivity/distance report before solving")
	var seed int64
	fs.Int64Var(&seed, "seed", 0, "seed the scrambler's RNG (defaults to a time-derived seed)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.seedSet = true
		}
	})
	cfg.seed = seed

	return cfg, nil
}

func run(args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	g, err := loadGrid(cfg)
	if err != nil {
		return err
	}

	if cfg.diagnose {
		if err := diagnoseInto(stdout, g.Side()); err != nil {
			return err
		}
	}

	h, err := parseHeuristic(cfg.heuristic)
	if err != nil {
		return err
	}
	algo, err := parseAlgo(cfg.algo)
	if err != nil {
		return err
	}

	return solveInto(stdout, g, algo, h)
}

// diagnoseInto runs boardgraph.Diagnose for side and writes its
// connectivity/cross-validation report to w.
func diagnoseInto(w io.Writer, side int) error {
	rep, err := boardgraph.Diagnose(side)
	if err != nil {
		return fmt.Errorf("diagnose: %w", err)
	}
	fmt.Fprintln(w, rep)
	fmt.Fprintln(w)

	return nil
}

// solveInto runs search.Solve on g and renders the replay and metrics to w.
func solveInto(w io.Writer, g *grid.Grid, algo search.Algo, h heuristic.Kind) error {
	res, err := search.Solve(g, algo, search.WithHeuristic(h))
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	return res.Render(w)
}

func loadGrid(cfg *config) (*grid.Grid, error) {
	switch {
	case cfg.filepath != "" && cfg.generate != 0:
		return nil, fmt.Errorf("--filepath and --generate are mutually exclusive")
	case cfg.filepath != "":
		raw, err := os.ReadFile(cfg.filepath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", cfg.filepath, err)
		}
		g, err := gridtext.Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", cfg.filepath, err)
		}

		return g, nil
	case cfg.generate != 0:
		seed := cfg.seed
		if !cfg.seedSet {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))

		return scramble.Generate(cfg.generate, cfg.iterations, rng), nil
	default:
		return nil, fmt.Errorf("one of --filepath or --generate is required")
	}
}

func parseHeuristic(s string) (heuristic.Kind, error) {
	switch s {
	case "manhattan":
		return heuristic.Manhattan, nil
	case "euclidian":
		return heuristic.EuclideanFloor, nil
	case "misplaced":
		return heuristic.Misplaced, nil
	case "zero":
		return heuristic.Zero, nil
	default:
		return 0, fmt.Errorf("unknown --heuristic %q", s)
	}
}

func parseAlgo(s string) (search.Algo, error) {
	switch s {
	case "astar":
		return search.AStar, nil
	case "idastar":
		return search.IDAStar, nil
	default:
		return 0, fmt.Errorf("unknown --algo %q", s)
	}
}
