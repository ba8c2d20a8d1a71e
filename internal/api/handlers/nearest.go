package handlers

import (
	"distance-matrix-client/internal/api/dto"
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/ports"
	"distance-matrix-client/internal/services"
	"net/http"
)

type NearestHandler struct {
	Provider ports.DistanceProvider
}

// Nearest ranks the destinations of GET /nearest by travel duration from origin.
func (h *NearestHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	origin := domain.NormalizeLocation(q.Get("origin"))
	if origin == "" {
		writeError(w, r, http.StatusBadRequest, "origin is required")
		return
	}
	destinations := splitLocations(q.Get("destinations"))
	if len(destinations) == 0 {
		writeError(w, r, http.StatusBadRequest, "destinations is required")
		return
	}

	ranked, err := services.RankDestinations(r.Context(), h.Provider, origin, destinations)
	if err != nil {
		writeQueryError(w, r, err)
		return
	}

	res := dto.NearestResponse{
		Origin:       origin,
		Destinations: make([]dto.NearestDestinationResponse, 0, len(ranked)),
	}
	for _, d := range ranked {
		res.Destinations = append(res.Destinations, dto.NearestDestinationResponse{
			Destination:              d.Destination,
			DistanceMeters:           d.DistanceMeters,
			DurationSeconds:          d.DurationSeconds,
			DurationInTrafficSeconds: d.DurationInTrafficSeconds,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
