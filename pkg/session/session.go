// Package session provides interactive play-throughs over generated dungeons.
//
// A [Session] walks an actor from the start marker through the dungeon one
// tile at a time. Moves are checked against the walkable tile set; stepping
// on the treasure picks it up and stepping on the goal ends the session.
//
// # Usage
//
//	d, _ := dungeon.Generate(dungeon.DefaultConfig(), 42)
//	sess := session.New(d)
//	dir, err := session.ParseDirection("left")
//	if err != nil {
//	    return err
//	}
//	outcome, err := sess.Move(ctx, dir)
//
// Sessions served over HTTP are kept in a [Store]. [MemoryStore] keeps them
// in memory and drops sessions that have been idle longer than their TTL.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/roguegrid/pkg/dungeon"
	"github.com/matzehuels/roguegrid/pkg/errors"
	"github.com/matzehuels/roguegrid/pkg/observability"
	"github.com/matzehuels/roguegrid/pkg/render"
	"github.com/matzehuels/roguegrid/pkg/tile"
)

// Outcome describes the result of a move.
type Outcome string

const (
	OutcomeMoved    Outcome = "moved"
	OutcomeBlocked  Outcome = "blocked"
	OutcomeTreasure Outcome = "treasure"
	OutcomeGoal     Outcome = "goal"
)

// DefaultTTL is how long an idle session is kept by a store.
const DefaultTTL = 30 * time.Minute

var directions = map[string]tile.Side{
	"up": tile.North, "north": tile.North, "k": tile.North, "w": tile.North,
	"right": tile.East, "east": tile.East, "l": tile.East, "d": tile.East,
	"down": tile.South, "south": tile.South, "s": tile.South, "j": tile.South,
	"left": tile.West, "west": tile.West, "h": tile.West, "a": tile.West,
}

// ParseDirection maps a direction name or movement key to a side.
// Accepted: up/down/left/right, north/east/south/west, hjkl and wasd.
func ParseDirection(s string) (tile.Side, error) {
	if d, ok := directions[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return tile.NoSides, errors.New(errors.ErrCodeInvalidDirection,
		"invalid direction: %q (use up, down, left, right, hjkl or wasd)", s)
}

// Session is one play-through. It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id        string
	dungeon   *dungeon.Dungeon
	canvas    *tile.Canvas
	pos       tile.Point
	treasure  bool
	ended     bool
	moves     int
	createdAt time.Time
	touchedAt time.Time
}

// State is a snapshot of a session.
type State struct {
	ID          string     `json:"id"`
	Seed        uint64     `json:"seed"`
	Pos         tile.Point `json:"pos"`
	HasTreasure bool       `json:"has_treasure"`
	Ended       bool       `json:"ended"`
	Moves       int        `json:"moves"`
	CreatedAt   time.Time  `json:"created_at"`
	View        []string   `json:"view,omitempty"`
}

// New starts a session at the start marker of d. The dungeon's canvas is
// copied so picking up treasure does not change d.
func New(d *dungeon.Dungeon) *Session {
	now := time.Now()
	s := &Session{
		id:        uuid.NewString(),
		dungeon:   d,
		canvas:    d.Canvas.Clone(),
		pos:       d.Start,
		createdAt: now,
		touchedAt: now,
	}
	return s
}

// Start creates a session and reports it to the session hooks.
func Start(ctx context.Context, d *dungeon.Dungeon) *Session {
	s := New(d)
	observability.Session().OnSessionStart(ctx, s.id, d.Seed)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Dungeon returns the dungeon being played.
func (s *Session) Dungeon() *dungeon.Dungeon { return s.dungeon }

// Pos returns the actor position.
func (s *Session) Pos() tile.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// Canvas returns a copy of the session's canvas, with picked-up treasure removed.
func (s *Session) Canvas() *tile.Canvas {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas.Clone()
}

// Move steps the actor one tile toward dir.
//
// A move onto a tile outside the canvas or onto a non-walkable tile returns
// [OutcomeBlocked] and leaves the actor in place. Moving after the goal has
// been reached fails with SESSION_ENDED.
func (s *Session) Move(ctx context.Context, dir tile.Side) (Outcome, error) {
	if dir.Count() != 1 {
		return "", errors.New(errors.ErrCodeInvalidDirection, "move needs exactly one direction, got %s", dir)
	}

	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return "", errors.New(errors.ErrCodeSessionEnded, "session %s has reached the goal", s.id)
	}
	s.touchedAt = time.Now()

	outcome := s.step(dir)
	moves, treasure := s.moves, s.treasure
	s.mu.Unlock()

	hooks := observability.Session()
	hooks.OnMove(ctx, s.id, dir.String(), string(outcome))
	switch outcome {
	case OutcomeTreasure:
		hooks.OnTreasure(ctx, s.id, moves)
	case OutcomeGoal:
		hooks.OnGoal(ctx, s.id, moves, treasure)
	}
	return outcome, nil
}

func (s *Session) step(dir tile.Side) Outcome {
	next := s.pos.Step(dir)
	k := s.canvas.At(next)
	if !s.canvas.In(next) || !k.Walkable() {
		return OutcomeBlocked
	}
	s.pos = next
	s.moves++

	switch k {
	case tile.Treasure:
		s.treasure = true
		_ = s.canvas.Set(next, tile.Floor)
		return OutcomeTreasure
	case tile.Goal:
		s.ended = true
		return OutcomeGoal
	}
	return OutcomeMoved
}

// View returns the canvas rows with the actor drawn on top.
func (s *Session) View() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.canvas.Rows()
	r := []rune(rows[s.pos.Y])
	r[s.pos.X] = []rune(render.ActorGlyph)[0]
	rows[s.pos.Y] = string(r)
	return rows
}

// State returns a snapshot without the view.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:          s.id,
		Seed:        s.dungeon.Seed,
		Pos:         s.pos,
		HasTreasure: s.treasure,
		Ended:       s.ended,
		Moves:       s.moves,
		CreatedAt:   s.createdAt,
	}
}

// Snapshot returns the state including the view.
func (s *Session) Snapshot() State {
	st := s.State()
	st.View = s.View()
	return st
}

// IsExpired reports whether the session has been idle longer than ttl.
func (s *Session) IsExpired(ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.touchedAt) > ttl
}
