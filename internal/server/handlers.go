package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/roguegrid/pkg/buildinfo"
	"github.com/matzehuels/roguegrid/pkg/errors"
	"github.com/matzehuels/roguegrid/pkg/pipeline"
	"github.com/matzehuels/roguegrid/pkg/session"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := buildinfo.Fields()
	body["status"] = "ok"
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
}

// handleDungeon renders the dungeon for a seed in one format.
func (s *Server) handleDungeon(w http.ResponseWriter, r *http.Request) {
	seed, err := errors.ParseSeed(chi.URLParam(r, "seed"))
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatJSON
	}
	opts := pipeline.Options{
		Seed:    seed,
		Config:  s.cfg.Generator,
		Formats: []string{format},
		Style:   q.Get("style"),
	}
	if v := q.Get("corridors"); v != "" {
		opts.Config.Corridors = v
	}
	if v := q.Get("junctions"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid junctions %q", v))
			return
		}
		opts.Config.Junctions = n
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.Header().Set("X-Roguegrid-Seed", strconv.FormatUint(res.Dungeon.Seed, 10))
	w.Header().Set("X-Roguegrid-Run", res.RunID.String())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

type createSessionRequest struct {
	Seed      uint64 `json:"seed"`
	Corridors string `json:"corridors,omitempty"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	cfg := s.cfg.Generator
	if req.Corridors != "" {
		cfg.Corridors = req.Corridors
	}
	d, err := s.runner.Generate(r.Context(), pipeline.Options{Seed: req.Seed, Config: cfg})
	if err != nil {
		writeError(w, err)
		return
	}

	sess := session.Start(r.Context(), d)
	if err := s.store.Set(r.Context(), sess); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "store session"))
		return
	}
	w.Header().Set("Location", "/sessions/"+sess.ID())
	writeJSON(w, http.StatusCreated, sess.Snapshot())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

type moveRequest struct {
	Direction string `json:"direction"`
}

type moveResponse struct {
	Outcome session.Outcome `json:"outcome"`
	State   session.State   `json:"state"`
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	dir, err := session.ParseDirection(req.Direction)
	if err != nil {
		writeError(w, err)
		return
	}

	outcome, err := sess.Move(r.Context(), dir)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, moveResponse{Outcome: outcome, State: sess.Snapshot()})
}
