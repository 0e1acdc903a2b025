package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/playperu/courtboard/internal/court"
)

// DragRequest carries the marker and the position reported by the gesture.
type DragRequest struct {
	Marker string  `json:"marker"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

func (d DragRequest) parse() (court.MarkerID, court.Coordinate, error) {
	id, err := court.ParseMarkerID(d.Marker)
	return id, court.Coordinate{X: d.X, Y: d.Y}, err
}

// dragError maps drag failures to a status and message.
func dragError(err error) (int, string) {
	switch {
	case errors.Is(err, court.ErrUnknownMarker):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, court.ErrInactiveMarker):
		return http.StatusConflict, err.Error()
	}
	return http.StatusBadRequest, "invalid request body"
}

// startDrag opens a drag on sess, distinguishing an inactive slot from an
// accepted start. The returned token identifies the drag it opened.
func startDrag(sess *Session, id court.MarkerID, pos court.Coordinate) (CommandResponse, uint64, error) {
	var token uint64
	resp := sess.Apply("drag_start", func(b *court.Board) bool {
		if !b.StartDrag(id, pos) {
			return false
		}
		token, _ = b.DragToken()
		return true
	})
	if !resp.Accepted {
		return resp, 0, court.ErrInactiveMarker
	}
	return resp, token, nil
}

func handleDragStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DragRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		id, pos, err := req.parse()
		if err != nil {
			status, msg := dragError(err)
			writeError(w, status, msg)
			return
		}

		resp, _, err := startDrag(boardSession(r), id, pos)
		if err != nil {
			status, msg := dragError(err)
			writeError(w, status, msg)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleDragMove(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DragRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		id, pos, err := req.parse()
		if err != nil {
			status, msg := dragError(err)
			writeError(w, status, msg)
			return
		}

		sess := boardSession(r)
		resp := sess.Apply("drag_move", func(b *court.Board) bool {
			return b.MoveDrag(id, pos)
		})
		if !resp.Accepted {
			logger.Debug("orphan drag move absorbed", "board_id", sess.ID, "marker", id)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleDragEnd(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := boardSession(r)
		resp := sess.Apply("commit", (*court.Board).EndDrag)
		if !resp.Accepted {
			logger.Debug("orphan drag end absorbed", "board_id", sess.ID)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleDragCancel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, boardSession(r).Apply("drag_cancel", (*court.Board).CancelDrag))
	}
}
