package api

import (
	"distance-matrix-client/internal/api/handlers"
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/ports"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// journal may be nil, which disables recording and /history.
func NewRouter(
	querier ports.MatrixQuerier,
	provider ports.DistanceProvider,
	journal ports.ResultJournal,
	defaults domain.Options,
) http.Handler {
	r := mux.NewRouter()

	matrixHandler := &handlers.MatrixHandler{
		Querier:  querier,
		Journal:  journal,
		Defaults: defaults,
	}
	nearestHandler := &handlers.NearestHandler{Provider: provider}
	historyHandler := &handlers.HistoryHandler{Journal: journal}

	// Handlers check the method themselves so a wrong method gets a JSON
	// 405 with an Allow header.
	r.HandleFunc("/health", handlers.Health)
	r.HandleFunc("/matrix", matrixHandler.Matrix)
	r.HandleFunc("/nearest", nearestHandler.Nearest)
	r.HandleFunc("/history", historyHandler.List)

	return requestIDMiddleware(loggingMiddleware(r))
}
