package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type ctxKey int

const ctxKeySession ctxKey = iota

func boardMiddleware(boards *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "boardID")
			if id == "" {
				writeError(w, http.StatusNotFound, "board not found")
				return
			}

			sess, err := boards.Get(id)
			if err != nil {
				writeError(w, http.StatusNotFound, "board not found")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func boardSession(r *http.Request) *Session {
	return r.Context().Value(ctxKeySession).(*Session)
}
