package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/courtboard/internal/court"
	"github.com/playperu/courtboard/internal/customize"
)

// MarkerCustomization pairs a customization with the contrast color used
// for its border and icon.
type MarkerCustomization struct {
	Marker   court.MarkerID `json:"marker"`
	Contrast string         `json:"contrast"`
	Hue      float64        `json:"hue"`
	customize.Customization
}

// SelectRequest is the body of PUT /api/customizations/selected.
type SelectRequest struct {
	Marker string `json:"marker"`
}

// SelectResponse names the marker selected in the settings panel.
type SelectResponse struct {
	Marker court.MarkerID `json:"marker"`
}

func withContrast(id court.MarkerID, c customize.Customization) MarkerCustomization {
	return MarkerCustomization{
		Marker:        id,
		Contrast:      customize.ContrastColor(c.Color),
		Hue:           customize.HueOf(c.Color),
		Customization: c,
	}
}

func markerParam(w http.ResponseWriter, r *http.Request) (court.MarkerID, bool) {
	id, err := court.ParseMarkerID(chi.URLParam(r, "marker"))
	if err != nil {
		writeError(w, http.StatusNotFound, "marker not found")
		return "", false
	}
	return id, true
}

func handleListCustomizations(svc *customize.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.All(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		out := make([]MarkerCustomization, 0, len(court.Markers))
		for _, id := range court.Markers {
			if c, ok := all[id]; ok {
				out = append(out, withContrast(id, c))
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleGetCustomization(svc *customize.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := markerParam(w, r)
		if !ok {
			return
		}
		c, err := svc.Get(r.Context(), id)
		if errors.Is(err, customize.ErrNotFound) {
			writeError(w, http.StatusNotFound, "marker not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, withContrast(id, c))
	}
}

func handleUpdateCustomization(svc *customize.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := markerParam(w, r)
		if !ok {
			return
		}
		var patch customize.Patch
		if err := readJSON(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		c, err := svc.Update(r.Context(), id, patch)
		switch {
		case errors.Is(err, customize.ErrInvalidColor), errors.Is(err, customize.ErrInvalidIconType):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, customize.ErrShuttleIcon):
			writeError(w, http.StatusConflict, err.Error())
			return
		case errors.Is(err, customize.ErrNotFound):
			writeError(w, http.StatusNotFound, "marker not found")
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, withContrast(id, c))
	}
}

func handleResetCustomizations(svc *customize.Service) http.HandlerFunc {
	list := handleListCustomizations(svc)
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reset(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		list(w, r)
	}
}

func handleGetSelected(svc *customize.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, SelectResponse{Marker: svc.Selected()})
	}
}

func handleSetSelected(svc *customize.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		id, err := court.ParseMarkerID(req.Marker)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		svc.Select(id)
		writeJSON(w, http.StatusOK, SelectResponse{Marker: id})
	}
}
