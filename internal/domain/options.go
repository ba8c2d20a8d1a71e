package domain

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
)

// LocationSeparator joins several locations into one query parameter.
const LocationSeparator = "|"

// Options is an immutable snapshot of every parameter sent with one query.
// All With* methods return a modified copy and never touch the receiver.
type Options struct {
	Origins                  string
	Destinations             string
	Mode                     TravelMode
	Units                    UnitSystem
	Language                 string
	Avoid                    Restriction
	DepartureTime            string
	ArrivalTime              string
	TrafficModel             TrafficModel
	TransitMode              TransitMode
	TransitRoutingPreference TransitRoutingPreference
	Auth                     Auth
}

// wireOptions is the query-string shape of Options.
type wireOptions struct {
	Origins                  string `url:"origins"`
	Destinations             string `url:"destinations"`
	Mode                     string `url:"mode"`
	Units                    string `url:"units"`
	Language                 string `url:"language"`
	Avoid                    string `url:"avoid,omitempty"`
	DepartureTime            string `url:"departure_time,omitempty"`
	ArrivalTime              string `url:"arrival_time,omitempty"`
	TrafficModel             string `url:"traffic_model,omitempty"`
	TransitMode              string `url:"transit_mode,omitempty"`
	TransitRoutingPreference string `url:"transit_routing_preference,omitempty"`
	Key                      string `url:"key,omitempty"`
	Client                   string `url:"client,omitempty"`
	Signature                string `url:"signature,omitempty"`
}

// DefaultOptions returns the base option set installed with the given auth.
func DefaultOptions(auth Auth) Options {
	if auth == nil {
		auth = SimpleKey{}
	}
	return Options{
		Mode:     DefaultMode,
		Units:    DefaultUnits,
		Language: DefaultLanguage,
		Auth:     auth,
	}
}

// NormalizeLocation trims a location and collapses interior whitespace, so
// "New  York" and "New York" name the same place.
func NormalizeLocation(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FormatLocations joins locations with the pipe separator.
func FormatLocations(locations []string) string {
	return strings.Join(locations, LocationSeparator)
}

func (o Options) WithLocations(origins, destinations []string) Options {
	o.Origins = FormatLocations(origins)
	o.Destinations = FormatLocations(destinations)
	return o
}

func (o Options) WithMode(mode string) (Options, error) {
	m, err := ParseTravelMode(mode)
	if err != nil {
		return o, err
	}
	o.Mode = m
	return o, nil
}

// WithLanguage accepts any string; the API interprets it as a locale.
func (o Options) WithLanguage(language string) Options {
	o.Language = language
	return o
}

func (o Options) WithAvoid(avoid string) (Options, error) {
	r, err := ParseRestriction(avoid)
	if err != nil {
		return o, err
	}
	o.Avoid = r
	return o, nil
}

func (o Options) WithUnits(units string) (Options, error) {
	u, err := ParseUnitSystem(units)
	if err != nil {
		return o, err
	}
	o.Units = u
	return o, nil
}

func (o Options) WithDepartureTime(value string) Options {
	o.DepartureTime = value
	return o
}

func (o Options) WithArrivalTime(value string) Options {
	o.ArrivalTime = value
	return o
}

// WithTrafficModel stores the value without checking it against the known
// traffic models. Legacy behavior: the API rejects unknown values remotely.
func (o Options) WithTrafficModel(value string) Options {
	o.TrafficModel = TrafficModel(value)
	return o
}

// WithTransitMode stores the value unchecked (legacy, see WithTrafficModel).
func (o Options) WithTransitMode(value string) Options {
	o.TransitMode = TransitMode(value)
	return o
}

// WithTransitRoutingPreference stores the value unchecked (legacy, see WithTrafficModel).
func (o Options) WithTransitRoutingPreference(value string) Options {
	o.TransitRoutingPreference = TransitRoutingPreference(value)
	return o
}

// WithKey switches to simple key auth, dropping any client and signature.
func (o Options) WithKey(key string) Options {
	o.Auth = SimpleKey{Key: key}
	return o
}

// WithClient switches to business auth. A signature already present is kept;
// coming from simple key auth the signature starts out empty.
func (o Options) WithClient(client string) Options {
	b, _ := o.Auth.(BusinessAuth)
	b.Client = client
	o.Auth = b
	return o
}

// WithSignature switches to business auth, keeping an existing client.
func (o Options) WithSignature(signature string) Options {
	b, _ := o.Auth.(BusinessAuth)
	b.Signature = signature
	o.Auth = b
	return o
}

// Reset restores origins, destinations, mode, units, language and avoid.
// Auth, departure/arrival time and the traffic/transit fields survive.
func (o Options) Reset() Options {
	o.Origins = ""
	o.Destinations = ""
	o.Mode = DefaultMode
	o.Units = DefaultUnits
	o.Language = DefaultLanguage
	o.Avoid = ""
	return o
}

// Values encodes the options as query parameters. Unset optional fields and
// empty credentials are omitted.
func (o Options) Values() (url.Values, error) {
	w := wireOptions{
		Origins:                  o.Origins,
		Destinations:             o.Destinations,
		Mode:                     string(o.Mode),
		Units:                    string(o.Units),
		Language:                 o.Language,
		Avoid:                    string(o.Avoid),
		DepartureTime:            o.DepartureTime,
		ArrivalTime:              o.ArrivalTime,
		TrafficModel:             string(o.TrafficModel),
		TransitMode:              string(o.TransitMode),
		TransitRoutingPreference: string(o.TransitRoutingPreference),
	}

	switch a := o.Auth.(type) {
	case SimpleKey:
		w.Key = a.Key
	case BusinessAuth:
		w.Client = a.Client
		w.Signature = a.Signature
	}

	v, err := query.Values(w)
	if err != nil {
		return nil, fmt.Errorf("encode options: %w", err)
	}
	return v, nil
}
