package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roguegrid/pkg/dungeon"
	"github.com/matzehuels/roguegrid/pkg/errors"
)

// genFlags holds the generator flags shared by generate, grid, play and serve.
type genFlags struct {
	seed      string // decimal seed, 0 = time-derived
	gridSize  int    // macro grid side length
	rooms     string // room budget as "min-max"
	junctions int    // rooms converted to junctions (upper bound)
	corridors string // corridor mode: glyph or uniform
}

func addGenFlags(cmd *cobra.Command, f *genFlags, withSeed bool) {
	if withSeed {
		cmd.Flags().StringVarP(&f.seed, "seed", "s", "0", "random seed (0 picks one from the clock)")
	}
	cmd.Flags().IntVar(&f.gridSize, "grid-size", dungeon.DefaultGridSize, "macro grid side length")
	cmd.Flags().StringVar(&f.rooms, "rooms", "", "room budget as min-max (e.g. 6-9)")
	cmd.Flags().IntVar(&f.junctions, "junctions", 0, "maximum number of rooms turned into corridor junctions")
	cmd.Flags().StringVar(&f.corridors, "corridors", dungeon.DefaultCorridors, "corridor style: glyph, uniform")
	registerGenCompletions(cmd)
}

// apply overrides base with every flag set on the command line.
func (f *genFlags) apply(cmd *cobra.Command, base dungeon.Config) (dungeon.Config, error) {
	cfg := base
	changed := cmd.Flags().Changed
	if changed("grid-size") {
		cfg.GridSize = f.gridSize
		if !changed("rooms") {
			cfg.MinRooms = min(cfg.MinRooms, cfg.GridSize*cfg.GridSize)
			cfg.MaxRooms = min(cfg.MaxRooms, cfg.GridSize*cfg.GridSize)
		}
	}
	if changed("rooms") {
		lo, hi, err := parseRange(f.rooms)
		if err != nil {
			return cfg, err
		}
		cfg.MinRooms, cfg.MaxRooms = lo, hi
	}
	if changed("junctions") {
		cfg.Junctions = f.junctions
	}
	if changed("corridors") {
		cfg.Corridors = f.corridors
	}
	return cfg, cfg.Validate()
}

// seedValue parses the --seed flag.
func (f *genFlags) seedValue() (uint64, error) {
	return errors.ParseSeed(f.seed)
}

// parseRange parses "a-b" or a single "n" meaning "n-n".
func parseRange(s string) (int, int, error) {
	lo, hi, found := strings.Cut(s, "-")
	if !found {
		hi = lo
	}
	a, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid range %q", s)
	}
	b, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid range %q", s)
	}
	if a > b {
		return 0, 0, errors.New(errors.ErrCodeInvalidConfig, "invalid range %q: %d > %d", s, a, b)
	}
	return a, b, nil
}

func formatRange(lo, hi int) string {
	if lo == hi {
		return strconv.Itoa(lo)
	}
	return fmt.Sprintf("%d-%d", lo, hi)
}
