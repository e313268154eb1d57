package dungeon

import (
	"github.com/matzehuels/roguegrid/pkg/carve"
	"github.com/matzehuels/roguegrid/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultGridSize is the number of macro cells per side.
	DefaultGridSize = 3

	// DefaultSubgridSize is the number of tiles per side of one macro cell.
	DefaultSubgridSize = 10

	// DefaultMinRoomDim and DefaultMaxRoomDim bound room width and height,
	// outline included.
	DefaultMinRoomDim = 5
	DefaultMaxRoomDim = 9

	// DefaultMargin is the number of blank tiles kept between a room and the
	// edge of its sub-rectangle.
	DefaultMargin = 1

	// DefaultMinRooms and DefaultMaxRooms bound the room budget drawn per run.
	DefaultMinRooms = 6
	DefaultMaxRooms = 9

	// DefaultCorridors is the default corridor drawing mode.
	DefaultCorridors = carve.ModeGlyph
)

// Config controls the shape of generated dungeons. The zero value is not
// valid; start from [DefaultConfig] or call [Config.SetDefaults].
type Config struct {
	GridSize    int    `toml:"grid_size" json:"grid_size"`
	SubgridSize int    `toml:"subgrid_size" json:"subgrid_size"`
	MinRoomDim  int    `toml:"min_room_dim" json:"min_room_dim"`
	MaxRoomDim  int    `toml:"max_room_dim" json:"max_room_dim"`
	Margin      int    `toml:"margin" json:"margin"`
	MinRooms    int    `toml:"min_rooms" json:"min_rooms"`
	MaxRooms    int    `toml:"max_rooms" json:"max_rooms"`
	Junctions   int    `toml:"junctions" json:"junctions"`
	Corridors   string `toml:"corridors" json:"corridors"`
}

// DefaultConfig returns the classic layout: a 3×3 grid of 10×10 cells holding
// six to nine rooms of 5 to 9 tiles per side.
func DefaultConfig() Config {
	return Config{
		GridSize:    DefaultGridSize,
		SubgridSize: DefaultSubgridSize,
		MinRoomDim:  DefaultMinRoomDim,
		MaxRoomDim:  DefaultMaxRoomDim,
		Margin:      DefaultMargin,
		MinRooms:    DefaultMinRooms,
		MaxRooms:    DefaultMaxRooms,
		Corridors:   DefaultCorridors,
	}
}

// SetDefaults fills zero-valued fields with their defaults. Junctions is
// left alone since zero is meaningful.
func (c *Config) SetDefaults() {
	d := DefaultConfig()
	if c.GridSize == 0 {
		c.GridSize = d.GridSize
	}
	if c.SubgridSize == 0 {
		c.SubgridSize = d.SubgridSize
	}
	if c.MinRoomDim == 0 {
		c.MinRoomDim = d.MinRoomDim
	}
	if c.MaxRoomDim == 0 {
		c.MaxRoomDim = d.MaxRoomDim
	}
	if c.Margin == 0 {
		c.Margin = d.Margin
	}
	if c.MinRooms == 0 {
		c.MinRooms = min(d.MinRooms, c.GridSize*c.GridSize)
	}
	if c.MaxRooms == 0 {
		c.MaxRooms = min(d.MaxRooms, c.GridSize*c.GridSize)
	}
	if c.Corridors == "" {
		c.Corridors = d.Corridors
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return errors.New(errors.ErrCodeInvalidConfig, format, args...)
	}
	switch {
	case c.GridSize < 2:
		return invalid("grid_size must be >= 2, got %d", c.GridSize)
	case c.Margin < 1:
		return invalid("margin must be >= 1, got %d", c.Margin)
	case c.MinRoomDim < 3:
		return invalid("min_room_dim must be >= 3, got %d", c.MinRoomDim)
	case c.MaxRoomDim < c.MinRoomDim:
		return invalid("max_room_dim (%d) must be >= min_room_dim (%d)", c.MaxRoomDim, c.MinRoomDim)
	case c.MinRoomDim > c.SubgridSize-2*c.Margin:
		return invalid("min_room_dim (%d) does not fit a %d-tile cell with margin %d",
			c.MinRoomDim, c.SubgridSize, c.Margin)
	case c.MinRooms < 1:
		return invalid("min_rooms must be >= 1, got %d", c.MinRooms)
	case c.MaxRooms < c.MinRooms:
		return invalid("max_rooms (%d) must be >= min_rooms (%d)", c.MaxRooms, c.MinRooms)
	case c.MaxRooms > c.GridSize*c.GridSize:
		return invalid("max_rooms (%d) exceeds %d cells", c.MaxRooms, c.GridSize*c.GridSize)
	case c.Junctions < 0:
		return invalid("junctions must be >= 0, got %d", c.Junctions)
	}
	if _, err := carve.ParseMode(c.Corridors); err != nil {
		return err
	}
	return nil
}

// CanvasSize returns the side length of the tile canvas.
func (c Config) CanvasSize() int { return c.GridSize * c.SubgridSize }

// RoomDims returns the range room sizes are drawn from: [MinRoomDim,
// MaxRoomDim] with the top cut to what fits inside the margins of a cell.
func (c Config) RoomDims() (lo, hi int) {
	hi = min(c.MaxRoomDim, c.SubgridSize-2*c.Margin)
	return min(c.MinRoomDim, hi), hi
}

// Mode returns the corridor mode, falling back to glyph mode for unknown names.
func (c Config) Mode() carve.Mode {
	m, _ := carve.ParseMode(c.Corridors)
	return m
}
