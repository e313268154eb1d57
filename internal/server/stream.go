package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/roguegrid/pkg/errors"
	"github.com/matzehuels/roguegrid/pkg/session"
)

const streamWriteTimeout = 3 * time.Second

// Stream message types.
const (
	streamState = "state"
	streamMove  = "move"
	streamError = "error"
)

// streamMessage is one server-to-client frame on a session stream.
type streamMessage struct {
	Type    string          `json:"type"`
	Outcome session.Outcome `json:"outcome,omitempty"`
	State   *session.State  `json:"state,omitempty"`
	Error   *errorBody      `json:"error,omitempty"`
}

// handleStream plays a session over a websocket. The client sends
// {"direction": "..."} frames; every frame is answered with the outcome and
// the new state. The stream closes normally once the goal is reached.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: s.cfg.AllowedOrigins})
	if err != nil {
		s.logger.Debug("websocket accept failed", "session", sess.ID(), "error", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "")

	// The request context ends when the handler returns; reads and writes
	// use the connection's own lifetime.
	ctx := context.WithoutCancel(r.Context())
	state := sess.Snapshot()
	if err := s.send(ctx, conn, streamMessage{Type: streamState, State: &state}); err != nil {
		return
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var req moveRequest
		if err := json.Unmarshal(data, &req); err != nil {
			err = errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid move frame")
			if s.sendError(ctx, conn, err) != nil {
				return
			}
			continue
		}
		dir, err := session.ParseDirection(req.Direction)
		if err != nil {
			if s.sendError(ctx, conn, err) != nil {
				return
			}
			continue
		}

		outcome, err := sess.Move(ctx, dir)
		if err != nil {
			if s.sendError(ctx, conn, err) != nil {
				return
			}
			continue
		}
		state := sess.Snapshot()
		if err := s.send(ctx, conn, streamMessage{Type: streamMove, Outcome: outcome, State: &state}); err != nil {
			return
		}
		if outcome == session.OutcomeGoal {
			conn.Close(websocket.StatusNormalClosure, "goal reached")
			return
		}
	}
}

func (s *Server) send(ctx context.Context, conn *websocket.Conn, msg streamMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, streamWriteTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, data)
}

func (s *Server) sendError(ctx context.Context, conn *websocket.Conn, err error) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return s.send(ctx, conn, streamMessage{Type: streamError, Error: &errorBody{Code: code, Message: errors.UserMessage(err)}})
}
