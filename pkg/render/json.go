package render

import (
	"encoding/json"

	"github.com/matzehuels/roguegrid/pkg/dungeon"
	"github.com/matzehuels/roguegrid/pkg/grid"
)

// Document is the serialized form of a dungeon.
type Document struct {
	Seed        uint64               `json:"seed"`
	Width       int                  `json:"width"`
	Height      int                  `json:"height"`
	Config      dungeon.Config       `json:"config"`
	Rooms       []dungeon.Room       `json:"rooms"`
	Junctions   []grid.Cell          `json:"junctions,omitempty"`
	Edges       []grid.Edge          `json:"edges"`
	Connections []dungeon.Connection `json:"connections"`
	Markers     dungeon.Markers      `json:"markers"`
	Macro       string               `json:"macro"`
	Rows        []string             `json:"rows"`
}

// NewDocument collects the serializable parts of d.
func NewDocument(d *dungeon.Dungeon) Document {
	return Document{
		Seed:        d.Seed,
		Width:       d.Width(),
		Height:      d.Height(),
		Config:      d.Config,
		Rooms:       d.Rooms,
		Junctions:   d.Junctions,
		Edges:       d.Grid.Edges(),
		Connections: d.Connections,
		Markers:     d.Markers,
		Macro:       d.Grid.String(),
		Rows:        d.Canvas.Rows(),
	}
}

// JSON returns d as indented JSON.
func JSON(d *dungeon.Dungeon) ([]byte, error) {
	return json.MarshalIndent(NewDocument(d), "", "  ")
}
