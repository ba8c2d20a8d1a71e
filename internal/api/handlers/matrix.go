package handlers

import (
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/ports"
	"distance-matrix-client/internal/services"
	"net/http"
)

// MatrixHandler answers GET /matrix with the decoded API response.
// Request parameters override the server defaults for this query only.
type MatrixHandler struct {
	Querier  ports.MatrixQuerier
	Journal  ports.ResultJournal
	Defaults domain.Options
}

func (h *MatrixHandler) Matrix(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	origins := splitLocations(q.Get("origins"))
	if len(origins) == 0 {
		writeError(w, r, http.StatusBadRequest, "origins is required")
		return
	}
	destinations := splitLocations(q.Get("destinations"))
	if len(destinations) == 0 {
		writeError(w, r, http.StatusBadRequest, "destinations is required")
		return
	}

	opts, err := overridesFromQuery(r).Apply(h.Defaults)
	if err != nil {
		writeQueryError(w, r, err)
		return
	}

	resp, err := services.RunMatrixQuery(r.Context(), h.Querier, h.Journal, opts, origins, destinations)
	if err != nil {
		writeQueryError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}
