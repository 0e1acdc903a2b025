package server

import (
	"net/http"

	"github.com/playperu/courtboard/internal/court"
)

// CreateBoardRequest sizes a new board either directly or from the screen
// it will be drawn on. All fields are optional.
type CreateBoardRequest struct {
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	ScreenWidth  float64 `json:"screenWidth,omitempty"`
	ScreenHeight float64 `json:"screenHeight,omitempty"`
}

// ResizeRequest is the body of PUT /api/boards/{boardID}/court.
type ResizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func handleCreateBoard(boards *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBoardRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Width < 0 || req.Height < 0 || req.ScreenWidth < 0 || req.ScreenHeight < 0 {
			writeError(w, http.StatusBadRequest, "sizes must not be negative")
			return
		}

		dims := court.Dimensions{Width: req.Width, Height: req.Height}
		if dims.Width == 0 && dims.Height == 0 && req.ScreenWidth > 0 && req.ScreenHeight > 0 {
			dims = court.FitDimensions(req.ScreenWidth, req.ScreenHeight)
		}

		sess := boards.Create(dims)
		w.Header().Set("Location", "/api/boards/"+sess.ID)
		writeJSON(w, http.StatusCreated, sess.State())
	}
}

func handleGetBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeStateWithETag(w, r, boardSession(r).State())
	}
}

func handleTrails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trails := boardSession(r).Trails()
		if trails == nil {
			trails = []court.Trail{}
		}
		writeJSON(w, http.StatusOK, trails)
	}
}

func handleResize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResizeRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Width <= 0 || req.Height <= 0 {
			writeError(w, http.StatusBadRequest, "width and height must be positive")
			return
		}

		resp := boardSession(r).Apply("resize", func(b *court.Board) bool {
			b.Resize(court.Dimensions{Width: req.Width, Height: req.Height})
			return true
		})
		writeJSON(w, http.StatusOK, resp)
	}
}
