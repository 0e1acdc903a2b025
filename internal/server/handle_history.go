package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/courtboard/internal/court"
)

// ModeRequest selects singles or doubles.
type ModeRequest struct {
	Doubles bool `json:"doubles"`
}

// HistoryEntry is one committed snapshot of a board's timeline.
type HistoryEntry struct {
	Index    int            `json:"index"`
	Current  bool           `json:"current"`
	Snapshot court.Snapshot `json:"snapshot"`
}

func handleHistoryEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		i, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "index must be an integer")
			return
		}
		sess := boardSession(r)
		snap, ok := sess.HistoryAt(i)
		if !ok {
			writeError(w, http.StatusNotFound, "history entry not found")
			return
		}
		writeJSON(w, http.StatusOK, HistoryEntry{
			Index:    i,
			Current:  i == sess.State().History.Cursor,
			Snapshot: snap,
		})
	}
}

func handleUndo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, boardSession(r).Apply("undo", (*court.Board).Undo))
	}
}

func handleRedo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, boardSession(r).Apply("redo", (*court.Board).Redo))
	}
}

func handleReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := boardSession(r).Apply("reset", func(b *court.Board) bool {
			b.Reset()
			return true
		})
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleMode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ModeRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		resp := boardSession(r).Apply("mode", func(b *court.Board) bool {
			b.ToggleMode(req.Doubles)
			return true
		})
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleTogglePlayerTrails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := boardSession(r).Apply("trails", func(b *court.Board) bool {
			b.TogglePlayerTrails()
			return true
		})
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleToggleShuttleTrail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := boardSession(r).Apply("trails", func(b *court.Board) bool {
			b.ToggleShuttleTrail()
			return true
		})
		writeJSON(w, http.StatusOK, resp)
	}
}
