package domain

import "encoding/json"

// StatusOK is the top-level and element status of a successful answer.
const StatusOK = "OK"

// MatrixResponse is the decoded body of a distance matrix answer.
// Rows follow the order of origins, elements the order of destinations.
//
// Only the fields below are decoded. Raw holds the body exactly as received
// so fields without a struct counterpart stay reachable; a body that is valid
// JSON but not an object does not decode.
type MatrixResponse struct {
	Status               string      `json:"status"`
	ErrorMessage         string      `json:"error_message,omitempty"`
	OriginAddresses      []string    `json:"origin_addresses"`
	DestinationAddresses []string    `json:"destination_addresses"`
	Rows                 []MatrixRow `json:"rows"`

	Raw json.RawMessage `json:"-"`
}

type MatrixRow struct {
	Elements []MatrixElement `json:"elements"`
}

// Distance and travel time between one origin and one destination.
type MatrixElement struct {
	Status            string     `json:"status"`
	Distance          *TextValue `json:"distance,omitempty"`
	Duration          *TextValue `json:"duration,omitempty"`
	DurationInTraffic *TextValue `json:"duration_in_traffic,omitempty"`
	Fare              *Fare      `json:"fare,omitempty"`
}

// TextValue pairs a machine value (meters or seconds) with its display text.
type TextValue struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

type Fare struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
	Text     string  `json:"text"`
}

// Err reports a non-OK top-level status as a *StatusError.
func (r *MatrixResponse) Err() error {
	if r.Status == StatusOK {
		return nil
	}
	return &StatusError{Status: r.Status, Message: r.ErrorMessage}
}

// Element returns the element for origin i and destination j.
func (r *MatrixResponse) Element(i, j int) (MatrixElement, bool) {
	if i < 0 || i >= len(r.Rows) {
		return MatrixElement{}, false
	}
	row := r.Rows[i].Elements
	if j < 0 || j >= len(row) {
		return MatrixElement{}, false
	}
	return row[j], true
}
