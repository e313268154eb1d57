package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/roguegrid/pkg/dungeon"
	"github.com/matzehuels/roguegrid/pkg/pipeline"
	"github.com/matzehuels/roguegrid/pkg/session"
)

func newTestPlayModel(t *testing.T, seed uint64) PlayModel {
	t.Helper()
	runner := pipeline.NewRunner(nil, log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	cfg := dungeon.DefaultConfig()
	d, err := runner.Generate(context.Background(), pipeline.Options{Seed: seed, Config: cfg})
	if err != nil {
		t.Fatal(err)
	}
	return NewPlayModel(context.Background(), runner, cfg, session.New(d))
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayModelMoves(t *testing.T) {
	m := newTestPlayModel(t, 42)
	start := m.Session.Pos()

	moved := false
	for _, k := range []string{"up", "l", "s", "a"} {
		next, _ := m.Update(key(k))
		m = next.(PlayModel)
		if m.Last != session.OutcomeBlocked {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatal("no key moved the actor off the start tile")
	}
	if m.Session.Pos() == start {
		t.Error("position did not change after a successful move")
	}
}

func TestPlayModelIgnoresUnknownKeys(t *testing.T) {
	m := newTestPlayModel(t, 42)
	next, cmd := m.Update(key("x"))
	if cmd != nil {
		t.Error("unknown key should not return a command")
	}
	if next.(PlayModel).Session.State().Moves != 0 {
		t.Error("unknown key should not move")
	}
}

func TestPlayModelQuit(t *testing.T) {
	m := newTestPlayModel(t, 42)
	for _, k := range []string{"q", "esc"} {
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Errorf("%q should quit", k)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q should return tea.Quit", k)
		}
	}
}

func TestPlayModelRestart(t *testing.T) {
	m := newTestPlayModel(t, 42)
	oldID := m.Session.ID()

	next, _ := m.Update(key("r"))
	m = next.(PlayModel)
	if m.Session.ID() == oldID {
		t.Error("restart should start a new session")
	}
	if m.Session.Dungeon().Seed != 42 {
		t.Errorf("restart seed = %d, want 42", m.Session.Dungeon().Seed)
	}

	next, _ = m.Update(key("n"))
	m = next.(PlayModel)
	if m.Session.Dungeon().Seed == 42 {
		t.Error("new dungeon should use a fresh seed")
	}
}

func TestPlayModelView(t *testing.T) {
	m := newTestPlayModel(t, 42)
	view := m.View()
	for _, want := range []string{"seed 42", "moves", "treasure", "@"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRoomTable(t *testing.T) {
	d, err := dungeon.Generate(dungeon.DefaultConfig(), 42)
	if err != nil {
		t.Fatal(err)
	}
	out := roomTable(d)
	for _, want := range []string{"Cell", "Markers", "start", "goal", d.Rooms[0].Cell.String()} {
		if !strings.Contains(out, want) {
			t.Errorf("room table missing %q:\n%s", want, out)
		}
	}
}
