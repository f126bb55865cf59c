// Package config loads maze session settings from a .env file and the
// process environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/mazegraph/core"
	"github.com/katalvlaran/mazegraph/game"
	"github.com/katalvlaran/mazegraph/prim_kruskal"
)

// Topology selects the maze lattice.
type Topology string

const (
	TopologyRect Topology = "rect"
	TopologyHex  Topology = "hex"
)

// ErrBadValue indicates an environment value that cannot be parsed or is out of range.
var ErrBadValue = fmt.Errorf("%w: config: bad value", core.ErrInvalidArgument)

// Config holds the settings of one run.
type Config struct {
	Height   int                 // MAZE_HEIGHT, rows of a rect maze
	Width    int                 // MAZE_WIDTH, columns of a rect maze
	Bias     float64             // MAZE_BIAS, orientation bias in [0, 1]
	Seed     int64               // MAZE_SEED, 0 for a time-based seed
	Topology Topology            // MAZE_TOPOLOGY, rect or hex
	HexSize  int                 // MAZE_HEX_SIZE, radius of a hex maze
	Solver   game.Solver         // MAZE_SOLVER, bfs or dfs
	Method   prim_kruskal.Method // MAZE_METHOD, kruskal or prim
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Height:   20,
		Width:    40,
		Bias:     0.5,
		Topology: TopologyRect,
		HexSize:  4,
		Solver:   game.SolverBFS,
		Method:   prim_kruskal.MethodKruskal,
	}
}

// Load reads files (".env" when none is given) into the environment
// without overriding variables already set, then builds a Config from the
// environment over Default.
//
// A missing .env file is logged and otherwise ignored. Malformed or
// out-of-range values fail with ErrBadValue.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		klog.V(1).Infof("config: .env not loaded: %v", err)
	}

	cfg := Default()
	var err error
	if cfg.Height, err = envInt("MAZE_HEIGHT", cfg.Height); err != nil {
		return cfg, err
	}
	if cfg.Width, err = envInt("MAZE_WIDTH", cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.HexSize, err = envInt("MAZE_HEX_SIZE", cfg.HexSize); err != nil {
		return cfg, err
	}
	if cfg.Bias, err = envFloat("MAZE_BIAS", cfg.Bias); err != nil {
		return cfg, err
	}
	if cfg.Seed, err = envInt64("MAZE_SEED", cfg.Seed); err != nil {
		return cfg, err
	}

	cfg.Topology = Topology(strings.ToLower(getEnvWithDefault("MAZE_TOPOLOGY", string(cfg.Topology))))
	if cfg.Solver, err = game.ParseSolver(getEnvWithDefault("MAZE_SOLVER", string(cfg.Solver))); err != nil {
		return cfg, errors.Wrap(ErrBadValue, err.Error())
	}
	if cfg.Method, err = prim_kruskal.ParseMethod(strings.ToLower(getEnvWithDefault("MAZE_METHOD", string(cfg.Method)))); err != nil {
		return cfg, errors.Wrap(ErrBadValue, err.Error())
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges. Rect limits follow the game package.
func (c Config) Validate() error {
	switch c.Topology {
	case TopologyRect:
		if c.Height < game.MinSide || c.Height > game.MaxHeight {
			return errors.Wrapf(ErrBadValue, "MAZE_HEIGHT %d outside [%d, %d]", c.Height, game.MinSide, game.MaxHeight)
		}
		if c.Width < game.MinSide || c.Width > game.MaxWidth {
			return errors.Wrapf(ErrBadValue, "MAZE_WIDTH %d outside [%d, %d]", c.Width, game.MinSide, game.MaxWidth)
		}
	case TopologyHex:
		if c.HexSize < 1 {
			return errors.Wrapf(ErrBadValue, "MAZE_HEX_SIZE %d below 1", c.HexSize)
		}
	default:
		return errors.Wrapf(ErrBadValue, "MAZE_TOPOLOGY %q", c.Topology)
	}
	if !(c.Bias >= 0 && c.Bias <= 1) {
		return errors.Wrapf(ErrBadValue, "MAZE_BIAS %v outside [0, 1]", c.Bias)
	}
	return nil
}

// getEnvWithDefault returns the value of key, or fallback when unset or empty.
func getEnvWithDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	s := getEnvWithDefault(key, "")
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback, errors.Wrapf(ErrBadValue, "%s=%q is not an integer", key, s)
	}
	return v, nil
}

func envInt64(key string, fallback int64) (int64, error) {
	s := getEnvWithDefault(key, "")
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fallback, errors.Wrapf(ErrBadValue, "%s=%q is not an integer", key, s)
	}
	return v, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	s := getEnvWithDefault(key, "")
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback, errors.Wrapf(ErrBadValue, "%s=%q is not a number", key, s)
	}
	return v, nil
}
