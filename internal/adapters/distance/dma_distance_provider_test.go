package distance

import (
	"context"
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/ports"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneRowBody = `{
  "status": "OK",
  "origin_addresses": ["Hub"],
  "destination_addresses": ["North", "South"],
  "rows": [{"elements": [
    {"status": "OK", "distance": {"text": "1.2 km", "value": 1200.4}, "duration": {"text": "3 mins", "value": 179.6}},
    {"status": "OK", "distance": {"text": "5 km", "value": 5000}, "duration": {"text": "9 mins", "value": 540},
     "duration_in_traffic": {"text": "12 mins", "value": 720}}
  ]}]
}`

func TestGetDistancesMapsOneRow(t *testing.T) {
	tr := &fakeTransport{status: http.StatusOK, body: oneRowBody}
	opts, err := domain.DefaultOptions(domain.SimpleKey{Key: "K"}).WithUnits("imperial")
	require.NoError(t, err)
	c := newTestClient(t, tr, WithDefaultOptions(opts))

	got, err := c.GetDistances(context.Background(), "  Hub ", []string{"North", "South", "North ", "", "Hub"})
	require.NoError(t, err)

	assert.Equal(t, map[string]ports.DistanceResult{
		"North": {DistanceMeters: 1200, DurationSeconds: 180},
		"South": {DistanceMeters: 5000, DurationSeconds: 540, DurationInTrafficSeconds: 720},
		"Hub":   {},
	}, got)

	require.Len(t, tr.requests(), 1)
	q := tr.lastQuery(t)
	assert.Equal(t, "Hub", q.Get("origins"))
	assert.Equal(t, "North|South", q.Get("destinations"))
	assert.Equal(t, "imperial", q.Get("units"))
}

func TestGetDistancesOnlyOriginSkipsRequest(t *testing.T) {
	tr := &fakeTransport{status: http.StatusOK, body: oneRowBody}
	c := newTestClient(t, tr)

	got, err := c.GetDistances(context.Background(), "Hub", []string{"Hub"})
	require.NoError(t, err)
	assert.Equal(t, map[string]ports.DistanceResult{"Hub": {}}, got)
	assert.Empty(t, tr.requests())
}

func TestGetDistancesElementStatus(t *testing.T) {
	body := `{"status":"OK","rows":[{"elements":[{"status":"ZERO_RESULTS"}]}]}`
	c := newTestClient(t, &fakeTransport{status: http.StatusOK, body: body})

	_, err := c.GetDistances(context.Background(), "A", []string{"B"})

	var se *domain.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "ZERO_RESULTS", se.Status)
}

func TestGetDistancesTopLevelStatus(t *testing.T) {
	body := `{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`
	c := newTestClient(t, &fakeTransport{status: http.StatusOK, body: body})

	_, err := c.GetDistances(context.Background(), "A", []string{"B"})

	var se *domain.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "REQUEST_DENIED", se.Status)
}

func TestGetDistancesRowShapeMismatch(t *testing.T) {
	body := `{"status":"OK","rows":[{"elements":[{"status":"OK","distance":{"value":1},"duration":{"value":1}}]}]}`
	c := newTestClient(t, &fakeTransport{status: http.StatusOK, body: body})

	_, err := c.GetDistances(context.Background(), "A", []string{"B", "C"})
	assert.ErrorContains(t, err, "row length does not match")
}

func TestGetDistance(t *testing.T) {
	body := `{"status":"OK","rows":[{"elements":[{"status":"OK","distance":{"value":10},"duration":{"value":20}}]}]}`
	c := newTestClient(t, &fakeTransport{status: http.StatusOK, body: body})

	got, err := c.GetDistance(context.Background(), "A", " B  ")
	require.NoError(t, err)
	assert.Equal(t, ports.DistanceResult{DistanceMeters: 10, DurationSeconds: 20}, got)

	_, err = c.GetDistance(context.Background(), "A", "   ")
	assert.Error(t, err)
}

func TestMockDistanceProviderMatrix(t *testing.T) {
	p := NewMockDistanceProvider([]MockPair{{From: "A", To: "B", Meters: 100, Seconds: 60}})

	resp, err := p.Matrix(context.Background(), domain.DefaultOptions(nil), []string{"A"}, []string{"B", "C"})
	require.NoError(t, err)

	el, ok := resp.Element(0, 0)
	require.True(t, ok)
	assert.Equal(t, 100.0, el.Distance.Value)

	el, ok = resp.Element(0, 1)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", el.Status)

	assert.Equal(t, "B|C", p.LastOptions().Destinations)
	assert.Equal(t, 1, p.Calls())
}
