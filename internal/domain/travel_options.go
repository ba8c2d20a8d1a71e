package domain

import "slices"

// Travel mode for a distance matrix query.
type TravelMode string

const (
	ModeDriving   TravelMode = "driving"
	ModeWalking   TravelMode = "walking"
	ModeBicycling TravelMode = "bicycling"
	ModeTransit   TravelMode = "transit"
)

// Unit system used for the human-readable text fields of the response.
type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

// Route feature the query asks the API to avoid.
type Restriction string

const (
	AvoidTolls    Restriction = "tolls"
	AvoidHighways Restriction = "highways"
	AvoidFerries  Restriction = "ferries"
	AvoidIndoor   Restriction = "indoor"
)

type TrafficModel string

const (
	TrafficBestGuess   TrafficModel = "best_guess"
	TrafficPessimistic TrafficModel = "pessimistic"
	TrafficOptimistic  TrafficModel = "optimistic"
)

type TransitMode string

const (
	TransitBus    TransitMode = "bus"
	TransitSubway TransitMode = "subway"
	TransitTrain  TransitMode = "train"
	TransitTram   TransitMode = "tram"
	TransitRail   TransitMode = "rail"
)

type TransitRoutingPreference string

const (
	PreferLessWalking    TransitRoutingPreference = "less_walking"
	PreferFewerTransfers TransitRoutingPreference = "fewer_transfers"
)

const (
	DefaultMode     = ModeDriving
	DefaultUnits    = UnitsMetric
	DefaultLanguage = "en"
)

var (
	validTravelModes  = []TravelMode{ModeDriving, ModeWalking, ModeBicycling, ModeTransit}
	validUnits        = []UnitSystem{UnitsMetric, UnitsImperial}
	validRestrictions = []Restriction{AvoidTolls, AvoidHighways, AvoidFerries, AvoidIndoor}

	// The three tables below are documented by the API but never enforced by
	// the setters. See Options.WithTrafficModel.
	validTrafficModels             = []TrafficModel{TrafficBestGuess, TrafficPessimistic, TrafficOptimistic}
	validTransitModes              = []TransitMode{TransitBus, TransitSubway, TransitTrain, TransitTram, TransitRail}
	validTransitRoutingPreferences = []TransitRoutingPreference{PreferLessWalking, PreferFewerTransfers}
)

func ParseTravelMode(s string) (TravelMode, error) {
	m := TravelMode(s)
	if !slices.Contains(validTravelModes, m) {
		return "", invalidArgument("invalid mode: %s", s)
	}
	return m, nil
}

func ParseUnitSystem(s string) (UnitSystem, error) {
	u := UnitSystem(s)
	if !slices.Contains(validUnits, u) {
		return "", invalidArgument("invalid units: %s", s)
	}
	return u, nil
}

func ParseRestriction(s string) (Restriction, error) {
	r := Restriction(s)
	if !slices.Contains(validRestrictions, r) {
		return "", invalidArgument("invalid restriction: %s", s)
	}
	return r, nil
}

func (t TrafficModel) IsKnown() bool { return slices.Contains(validTrafficModels, t) }

func (t TransitMode) IsKnown() bool { return slices.Contains(validTransitModes, t) }

func (p TransitRoutingPreference) IsKnown() bool {
	return slices.Contains(validTransitRoutingPreferences, p)
}
