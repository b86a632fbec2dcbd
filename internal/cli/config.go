package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/tilepath/core"
	"github.com/katalvlaran/tilepath/puzzle"
)

// ErrMissingSection is returned when a command needs a config table the
// file does not contain.
var ErrMissingSection = errors.New("cli: config section missing")

// Config is the TOML input of every command:
//
//	[puzzle]
//	start = [[0, 2, 3, 4, 5], ...]   # 5 rows of 5
//	goal  = [[1, 2, 3, 4, 5], ...]   # optional, defaults to the solved board
//	max_states = 1000000             # optional, 0 = unlimited
//
//	[graph]
//	nodes = 8                        # optional, defaults to max index + 1
//	pairs = [0, 1, 1, 2, 5, 6]       # consecutive index pairs
type Config struct {
	Puzzle *PuzzleConfig `toml:"puzzle"`
	Graph  *GraphConfig  `toml:"graph"`
}

// PuzzleConfig describes one puzzle instance.
type PuzzleConfig struct {
	Start     [][]int `toml:"start"`
	Goal      [][]int `toml:"goal"`
	MaxStates int     `toml:"max_states"`
}

// GraphConfig describes an explicit undirected graph.
type GraphConfig struct {
	Nodes int   `toml:"nodes"`
	Pairs []int `toml:"pairs"`
}

// LoadConfig reads and decodes the TOML file at path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// DecodeConfig decodes TOML from r. Unknown keys are rejected so typos
// do not silently fall back to defaults.
func DecodeConfig(r io.Reader) (*Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return nil, fmt.Errorf("decode config: unknown keys %s", strings.Join(keys, ", "))
	}

	return &cfg, nil
}

// Boards validates and returns the start and goal boards.
// A missing goal means the solved board.
func (p *PuzzleConfig) Boards() (start, goal puzzle.Board, err error) {
	if p == nil {
		return start, goal, fmt.Errorf("%w: [puzzle]", ErrMissingSection)
	}
	if start, err = puzzle.NewBoard(p.Start); err != nil {
		return start, goal, fmt.Errorf("start board: %w", err)
	}
	if len(p.Goal) == 0 {
		return start, puzzle.Solved(), nil
	}
	if goal, err = puzzle.NewBoard(p.Goal); err != nil {
		return start, goal, fmt.Errorf("goal board: %w", err)
	}

	return start, goal, nil
}

// Build constructs the graph. With Nodes unset the graph is sized by the
// largest index in Pairs, as core.MakeGraph does.
func (gc *GraphConfig) Build() (*core.Graph, error) {
	if gc == nil {
		return nil, fmt.Errorf("%w: [graph]", ErrMissingSection)
	}
	if gc.Nodes <= 0 {
		return core.MakeGraph(gc.Pairs...)
	}
	if len(gc.Pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: %d indices do not form pairs", core.ErrInvalidArgument, len(gc.Pairs))
	}

	g := core.NewGraph(gc.Nodes)
	for i := 0; i < len(gc.Pairs); i += 2 {
		if _, err := g.Connect(gc.Pairs[i], gc.Pairs[i+1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}
