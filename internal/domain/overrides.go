package domain

// Overrides are per-query option values, typically taken from request
// parameters or command-line flags. Empty fields leave the base option
// untouched.
type Overrides struct {
	Mode                     string
	Units                    string
	Language                 string
	Avoid                    string
	DepartureTime            string
	ArrivalTime              string
	TrafficModel             string
	TransitMode              string
	TransitRoutingPreference string
}

// Apply returns o with every non-empty override set through the matching
// With method. Mode, units and avoid are validated; an invalid value fails
// the whole call and o is returned unchanged.
func (ov Overrides) Apply(o Options) (Options, error) {
	out := o
	var err error

	if ov.Mode != "" {
		if out, err = out.WithMode(ov.Mode); err != nil {
			return o, err
		}
	}
	if ov.Units != "" {
		if out, err = out.WithUnits(ov.Units); err != nil {
			return o, err
		}
	}
	if ov.Avoid != "" {
		if out, err = out.WithAvoid(ov.Avoid); err != nil {
			return o, err
		}
	}
	if ov.Language != "" {
		out = out.WithLanguage(ov.Language)
	}
	if ov.DepartureTime != "" {
		out = out.WithDepartureTime(ov.DepartureTime)
	}
	if ov.ArrivalTime != "" {
		out = out.WithArrivalTime(ov.ArrivalTime)
	}
	if ov.TrafficModel != "" {
		out = out.WithTrafficModel(ov.TrafficModel)
	}
	if ov.TransitMode != "" {
		out = out.WithTransitMode(ov.TransitMode)
	}
	if ov.TransitRoutingPreference != "" {
		out = out.WithTransitRoutingPreference(ov.TransitRoutingPreference)
	}

	return out, nil
}
