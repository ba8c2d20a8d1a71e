package handlers

import (
	"distance-matrix-client/internal/api/dto"
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/platform/logging"
	"distance-matrix-client/internal/platform/obs"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Default.Warnw("encode failed",
			"req_id", obs.RequestID(r.Context()), "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: msg})
}

// writeQueryError maps a matrix query failure onto an HTTP status.
func writeQueryError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		apiErr *domain.APIRequestError
		trErr  *domain.TransportError
		stErr  *domain.StatusError
	)

	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &apiErr):
		writeJSON(w, r, http.StatusBadGateway, dto.ErrorResponse{
			Error:          apiErr.Error(),
			UpstreamStatus: apiErr.StatusCode,
		})
	case errors.As(err, &trErr):
		writeError(w, r, http.StatusBadGateway, "distance matrix API unreachable")
	case errors.As(err, &stErr):
		writeError(w, r, http.StatusBadGateway, stErr.Error())
	default:
		logging.Default.Errorw("matrix query failed", "req_id", obs.RequestID(r.Context()), "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// splitLocations splits a pipe-separated parameter, dropping blank entries.
func splitLocations(s string) []string {
	var out []string
	for _, part := range strings.Split(s, domain.LocationSeparator) {
		if p := domain.NormalizeLocation(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func overridesFromQuery(r *http.Request) domain.Overrides {
	q := r.URL.Query()
	return domain.Overrides{
		Mode:                     q.Get("mode"),
		Units:                    q.Get("units"),
		Language:                 q.Get("language"),
		Avoid:                    q.Get("avoid"),
		DepartureTime:            q.Get("departure_time"),
		ArrivalTime:              q.Get("arrival_time"),
		TrafficModel:             q.Get("traffic_model"),
		TransitMode:              q.Get("transit_mode"),
		TransitRoutingPreference: q.Get("transit_routing_preference"),
	}
}
