package handlers

import (
	"distance-matrix-client/internal/api/dto"
	"distance-matrix-client/internal/platform/logging"
	"distance-matrix-client/internal/platform/obs"
	"distance-matrix-client/internal/ports"
	"net/http"
	"strconv"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 500
)

// HistoryHandler exposes read-only access to the query journal.
type HistoryHandler struct {
	Journal ports.ResultJournal
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.Journal == nil {
		writeError(w, r, http.StatusServiceUnavailable, "query journal is disabled")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	entries, err := h.Journal.Recent(r.Context(), limit)
	if err != nil {
		logging.Default.Errorw("list history failed", "req_id", obs.RequestID(r.Context()), "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.HistoryResponse{Entries: make([]dto.JournalEntryResponse, 0, len(entries))}
	for _, e := range entries {
		res.Entries = append(res.Entries, dto.JournalEntryResponse{
			QueryID:         e.QueryID,
			QueriedAt:       e.QueriedAt,
			Origin:          e.Origin,
			Destination:     e.Destination,
			Mode:            e.Mode,
			Status:          e.Status,
			DistanceMeters:  e.DistanceMeters,
			DurationSeconds: e.DurationSeconds,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
