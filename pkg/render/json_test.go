package render

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/roguegrid/pkg/dungeon"
)

func TestJSON(t *testing.T) {
	d, err := dungeon.Generate(dungeon.DefaultConfig(), 7)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	data, err := JSON(d)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.Seed != 7 {
		t.Errorf("seed = %d, want 7", doc.Seed)
	}
	if doc.Width != d.Width() || doc.Height != d.Height() {
		t.Errorf("size = %dx%d, want %dx%d", doc.Width, doc.Height, d.Width(), d.Height())
	}
	if len(doc.Rows) != d.Height() {
		t.Errorf("rows = %d, want %d", len(doc.Rows), d.Height())
	}
	if len(doc.Rooms) != len(d.Rooms) {
		t.Errorf("rooms = %d, want %d", len(doc.Rooms), len(d.Rooms))
	}
	if doc.Markers.Goal != d.Goal {
		t.Errorf("goal = %v, want %v", doc.Markers.Goal, d.Goal)
	}
	if doc.Config != d.Config {
		t.Errorf("config = %+v, want %+v", doc.Config, d.Config)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, key := range []string{"seed", "width", "height", "config", "rooms", "edges", "connections", "markers", "macro", "rows"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}
