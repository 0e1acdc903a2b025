package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/playperu/courtboard/internal/customize"
)

func addRoutes(r chi.Router, logger *slog.Logger, boards *Registry, broker *Broker, custom *customize.Service, spaDir string) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Courtboard API", "/openapi.json", "/docs"))

	r.Post("/api/boards", handleCreateBoard(boards))

	// Board routes: {boardID} is resolved by boardMiddleware.
	r.Route("/api/boards/{boardID}", func(r chi.Router) {
		r.Use(boardMiddleware(boards))
		r.Get("/", handleGetBoard())
		r.Get("/trails", handleTrails())
		r.Get("/history/{index}", handleHistoryEntry())
		r.Get("/events", handleEvents(broker))
		r.Get("/ws", handleDragStream(logger))

		r.Post("/drag/start", handleDragStart())
		r.Post("/drag/move", handleDragMove(logger))
		r.Post("/drag/end", handleDragEnd(logger))
		r.Post("/drag/cancel", handleDragCancel())

		r.Post("/undo", handleUndo())
		r.Post("/redo", handleRedo())
		r.Post("/reset", handleReset())
		r.Post("/mode", handleMode())
		r.Post("/trails/players", handleTogglePlayerTrails())
		r.Post("/trails/shuttle", handleToggleShuttleTrail())
		r.Put("/court", handleResize())
	})

	// Marker customization, one set per process.
	r.Route("/api/customizations", func(r chi.Router) {
		r.Get("/", handleListCustomizations(custom))
		r.Post("/reset", handleResetCustomizations(custom))
		r.Get("/selected", handleGetSelected(custom))
		r.Put("/selected", handleSetSelected(custom))
		r.Get("/{marker}", handleGetCustomization(custom))
		r.Patch("/{marker}", handleUpdateCustomization(custom))
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
