package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsWithMode(t *testing.T) {
	for _, mode := range []string{"driving", "walking", "bicycling", "transit"} {
		t.Run(mode, func(t *testing.T) {
			opts, err := DefaultOptions(nil).WithMode(mode)
			require.NoError(t, err)
			assert.Equal(t, TravelMode(mode), opts.Mode)

			v, err := opts.Values()
			require.NoError(t, err)
			assert.Equal(t, mode, v.Get("mode"))
		})
	}

	base := DefaultOptions(nil)
	got, err := base.WithMode("flying")
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "invalid mode: flying")
	assert.Equal(t, base, got)
}

func TestOptionsWithUnitsAndAvoid(t *testing.T) {
	base := DefaultOptions(nil)

	for _, u := range []string{"metric", "imperial"} {
		opts, err := base.WithUnits(u)
		require.NoError(t, err)
		assert.Equal(t, UnitSystem(u), opts.Units)
	}
	_, err := base.WithUnits("furlongs")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	for _, a := range []string{"tolls", "highways", "ferries", "indoor"} {
		opts, err := base.WithAvoid(a)
		require.NoError(t, err)
		assert.Equal(t, Restriction(a), opts.Avoid)
	}
	_, err = base.WithAvoid("potholes")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestOptionsUncheckedFieldsAcceptAnything(t *testing.T) {
	opts := DefaultOptions(nil).
		WithTrafficModel("reckless").
		WithTransitMode("zeppelin").
		WithTransitRoutingPreference("most_scenic")

	assert.Equal(t, TrafficModel("reckless"), opts.TrafficModel)
	assert.False(t, opts.TrafficModel.IsKnown())
	assert.Equal(t, TransitMode("zeppelin"), opts.TransitMode)
	assert.False(t, opts.TransitMode.IsKnown())
	assert.Equal(t, TransitRoutingPreference("most_scenic"), opts.TransitRoutingPreference)
	assert.False(t, opts.TransitRoutingPreference.IsKnown())

	assert.True(t, TrafficPessimistic.IsKnown())
	assert.True(t, TransitTram.IsKnown())
	assert.True(t, PreferFewerTransfers.IsKnown())
}

func TestOptionsAuthTransitions(t *testing.T) {
	business := DefaultOptions(BusinessAuth{Client: "C0", Signature: "S0"})

	withKey := business.WithKey("X")
	assert.Equal(t, SimpleKey{Key: "X"}, withKey.Auth)

	both := DefaultOptions(SimpleKey{Key: "K"}).WithClient("C").WithSignature("S")
	assert.Equal(t, BusinessAuth{Client: "C", Signature: "S"}, both.Auth)

	// Client alone keeps whatever signature was already there.
	clientOnly := business.WithClient("C1")
	assert.Equal(t, BusinessAuth{Client: "C1", Signature: "S0"}, clientOnly.Auth)

	fromKey := DefaultOptions(SimpleKey{Key: "K"}).WithClient("C")
	assert.Equal(t, BusinessAuth{Client: "C"}, fromKey.Auth)
}

func TestOptionsReset(t *testing.T) {
	opts, err := DefaultOptions(SimpleKey{Key: "K"}).WithMode("walking")
	require.NoError(t, err)
	opts, err = opts.WithUnits("imperial")
	require.NoError(t, err)
	opts, err = opts.WithAvoid("tolls")
	require.NoError(t, err)
	opts = opts.WithTrafficModel("optimistic").
		WithDepartureTime("now").
		WithLanguage("fr").
		WithLocations([]string{"A"}, []string{"B"})

	reset := opts.Reset()

	assert.Equal(t, ModeDriving, reset.Mode)
	assert.Equal(t, UnitsMetric, reset.Units)
	assert.Equal(t, "en", reset.Language)
	assert.Empty(t, reset.Avoid)
	assert.Empty(t, reset.Origins)
	assert.Empty(t, reset.Destinations)

	assert.Equal(t, SimpleKey{Key: "K"}, reset.Auth)
	assert.Equal(t, TrafficOptimistic, reset.TrafficModel)
	assert.Equal(t, "now", reset.DepartureTime)
}

func TestOptionsValues(t *testing.T) {
	opts := DefaultOptions(SimpleKey{Key: "K"}).
		WithLocations([]string{"A", "B"}, []string{"C"}).
		WithDepartureTime("1700000000")

	v, err := opts.Values()
	require.NoError(t, err)

	assert.Equal(t, "A|B", v.Get("origins"))
	assert.Equal(t, "C", v.Get("destinations"))
	assert.Equal(t, "driving", v.Get("mode"))
	assert.Equal(t, "metric", v.Get("units"))
	assert.Equal(t, "en", v.Get("language"))
	assert.Equal(t, "1700000000", v.Get("departure_time"))
	assert.Equal(t, "K", v.Get("key"))
	assert.NotContains(t, v, "avoid")
	assert.NotContains(t, v, "client")
	assert.NotContains(t, v, "signature")

	v, err = DefaultOptions(BusinessAuth{Client: "C", Signature: "S"}).Values()
	require.NoError(t, err)
	assert.Equal(t, "C", v.Get("client"))
	assert.Equal(t, "S", v.Get("signature"))
	assert.NotContains(t, v, "key")
}

func TestAuthFromCredentials(t *testing.T) {
	assert.Equal(t, BusinessAuth{Client: "C", Signature: "S"}, AuthFromCredentials("K", "C", "S"))
	assert.Equal(t, SimpleKey{Key: "K"}, AuthFromCredentials("K", "C", ""))
	assert.Equal(t, SimpleKey{}, AuthFromCredentials("", "", "S"))
}

func TestMatrixResponseHelpers(t *testing.T) {
	resp := &MatrixResponse{
		Status: "OK",
		Rows: []MatrixRow{
			{Elements: []MatrixElement{{Status: "OK", Distance: &TextValue{Text: "1 km", Value: 1000}}}},
		},
	}
	require.NoError(t, resp.Err())

	el, ok := resp.Element(0, 0)
	require.True(t, ok)
	assert.Equal(t, 1000.0, el.Distance.Value)

	_, ok = resp.Element(1, 0)
	assert.False(t, ok)
	_, ok = resp.Element(0, 3)
	assert.False(t, ok)

	denied := &MatrixResponse{Status: "REQUEST_DENIED", ErrorMessage: "bad key"}
	var se *StatusError
	require.ErrorAs(t, denied.Err(), &se)
	assert.Equal(t, "REQUEST_DENIED", se.Status)
	assert.Equal(t, "DMA status REQUEST_DENIED: bad key", se.Error())
}

func TestNormalizeLocation(t *testing.T) {
	assert.Equal(t, "New York", NormalizeLocation("  New \t York "))
	assert.Equal(t, "", NormalizeLocation(" \n "))
	assert.Equal(t, "51.48,-0.19", NormalizeLocation("51.48,-0.19"))
}
