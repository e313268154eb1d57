package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roguegrid/pkg/errors"
	"github.com/matzehuels/roguegrid/pkg/session"
	"github.com/matzehuels/roguegrid/pkg/tile"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{}, log.NewWithOptions(io.Discard, log.Options{}), nil)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status": "ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"commit": "none"`) {
		t.Errorf("body = %s, want the build commit", rec.Body.String())
	}
}

func TestDungeonFormats(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		query       string
		contentType string
		contains    string
	}{
		{"", "application/json", `"seed": 42`},
		{"?format=json", "application/json", `"rows"`},
		{"?format=text&style=compact", "text/plain; charset=utf-8", "┌"},
		{"?format=wide", "text/plain; charset=utf-8", "─"},
		{"?format=dot", "text/vnd.graphviz; charset=utf-8", "graph G {"},
		{"?format=json&corridors=uniform", "application/json", `"corridors": "uniform"`},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, "/dungeons/42"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			if got := rec.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if got := rec.Header().Get("X-Roguegrid-Seed"); got != "42" {
				t.Errorf("seed header = %q, want 42", got)
			}
			if !strings.Contains(rec.Body.String(), tt.contains) {
				t.Errorf("body does not contain %q", tt.contains)
			}
		})
	}
}

func TestDungeonIsDeterministic(t *testing.T) {
	s := newTestServer(t)
	a := do(t, s, http.MethodGet, "/dungeons/7?format=text", "")
	b := do(t, s, http.MethodGet, "/dungeons/7?format=text", "")
	if !bytes.Equal(a.Body.Bytes(), b.Body.Bytes()) {
		t.Error("same seed should produce the same map")
	}
}

func TestDungeonErrors(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		path   string
		status int
		code   errors.Code
	}{
		{"/dungeons/abc", http.StatusBadRequest, errors.ErrCodeInvalidSeed},
		{"/dungeons/-1", http.StatusBadRequest, errors.ErrCodeInvalidSeed},
		{"/dungeons/1?format=gif", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"/dungeons/1?style=fancy", http.StatusBadRequest, errors.ErrCodeInvalidStyle},
		{"/dungeons/1?corridors=lava", http.StatusBadRequest, errors.ErrCodeInvalidConfig},
		{"/dungeons/1?junctions=x", http.StatusBadRequest, errors.ErrCodeInvalidConfig},
		{"/nowhere", http.StatusNotFound, errors.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, tt.path, "")
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body.String())
			}
			if body := decodeError(t, rec); body.Code != tt.code {
				t.Errorf("code = %s, want %s", body.Code, tt.code)
			}
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/sessions", `{"seed": 42}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var created session.State
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || created.Seed != 42 || len(created.View) == 0 {
		t.Fatalf("created = %+v", created)
	}
	if loc := rec.Header().Get("Location"); loc != "/sessions/"+created.ID {
		t.Errorf("Location = %q", loc)
	}

	rec = do(t, s, http.MethodGet, "/sessions/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	// The start is a room center, so at least one direction is open.
	moved := false
	for _, dir := range []string{"up", "right", "down", "left"} {
		rec = do(t, s, http.MethodPost, "/sessions/"+created.ID+"/moves", `{"direction": "`+dir+`"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("move status = %d: %s", rec.Code, rec.Body.String())
		}
		var resp moveResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Outcome != session.OutcomeBlocked {
			moved = true
			if resp.State.Moves != 1 {
				t.Errorf("moves = %d, want 1", resp.State.Moves)
			}
			break
		}
	}
	if !moved {
		t.Error("actor could not leave the start tile")
	}
}

func TestSessionErrors(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/sessions/missing", "")
	if rec.Code != http.StatusNotFound || decodeError(t, rec).Code != errors.ErrCodeSessionNotFound {
		t.Errorf("missing session: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, s, http.MethodPost, "/sessions", `{"seed": "x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad body status = %d", rec.Code)
	}

	rec = do(t, s, http.MethodPost, "/sessions", `{"seed": 3}`)
	var created session.State
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	rec = do(t, s, http.MethodPost, "/sessions/"+created.ID+"/moves", `{"direction": "sideways"}`)
	if rec.Code != http.StatusBadRequest || decodeError(t, rec).Code != errors.ErrCodeInvalidDirection {
		t.Errorf("bad direction: %d %s", rec.Code, rec.Body.String())
	}
}

func TestMoveAfterGoalConflicts(t *testing.T) {
	s := newTestServer(t)
	store := s.store.(*session.MemoryStore)

	rec := do(t, s, http.MethodPost, "/sessions", `{"seed": 11}`)
	var created session.State
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	sess, err := store.Get(t.Context(), created.ID)
	if err != nil {
		t.Fatal(err)
	}

	// Walk to the goal by replaying a shortest path.
	d := sess.Dungeon()
	for _, dir := range pathTo(d.Canvas, d.Start, d.Goal) {
		rec = do(t, s, http.MethodPost, "/sessions/"+created.ID+"/moves", `{"direction": "`+dir.String()+`"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("move %s: %d %s", dir, rec.Code, rec.Body.String())
		}
	}
	if !sess.State().Ended {
		t.Fatal("session should have ended at the goal")
	}

	rec = do(t, s, http.MethodPost, "/sessions/"+created.ID+"/moves", `{"direction": "left"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("status after goal = %d, want 409", rec.Code)
	}
}

func pathTo(c *tile.Canvas, from, to tile.Point) []tile.Side {
	prev := map[tile.Point]tile.Side{from: tile.NoSides}
	queue := []tile.Point{from}
	for len(queue) > 0 && queue[0] != to {
		p := queue[0]
		queue = queue[1:]
		for _, dir := range []tile.Side{tile.North, tile.East, tile.South, tile.West} {
			q := p.Step(dir)
			if _, ok := prev[q]; ok || !c.At(q).Walkable() {
				continue
			}
			prev[q] = dir
			queue = append(queue, q)
		}
	}
	var path []tile.Side
	for p := to; p != from; {
		dir := prev[p]
		path = append([]tile.Side{dir}, path...)
		p = p.Step(dir.Opposite())
	}
	return path
}
