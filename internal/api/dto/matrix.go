package dto

import "time"

type ErrorResponse struct {
	Error          string `json:"error"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
}

type NearestDestinationResponse struct {
	Destination              string `json:"destination"`
	DistanceMeters           int    `json:"distance_meters"`
	DurationSeconds          int    `json:"duration_seconds"`
	DurationInTrafficSeconds int    `json:"duration_in_traffic_seconds,omitempty"`
}

type NearestResponse struct {
	Origin       string                       `json:"origin"`
	Destinations []NearestDestinationResponse `json:"destinations"`
}

type JournalEntryResponse struct {
	QueryID         string    `json:"query_id"`
	QueriedAt       time.Time `json:"queried_at"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	Mode            string    `json:"mode"`
	Status          string    `json:"status"`
	DistanceMeters  int       `json:"distance_meters"`
	DurationSeconds int       `json:"duration_seconds"`
}

type HistoryResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}
