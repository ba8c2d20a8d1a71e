package cli

import (
	"bytes"
	"distance-matrix-client/internal/domain"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const answer = `{
  "status": "OK",
  "origin_addresses": ["A", "B"],
  "destination_addresses": ["C"],
  "rows": [
    {"elements": [{"status": "OK", "distance": {"text": "2 km", "value": 2000}, "duration": {"text": "5 mins", "value": 300}}]},
    {"elements": [{"status": "OK", "distance": {"text": "1 km", "value": 1000}, "duration": {"text": "2 mins", "value": 120}}]}
  ]
}`

type fakeAPI struct {
	mu      sync.Mutex
	queries []url.Values
}

func (f *fakeAPI) handler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.queries = append(f.queries, r.URL.Query())
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if r.URL.Query().Get("origins") == "Hub" {
		_, _ = w.Write([]byte(`{"status":"OK","rows":[{"elements":[` +
			`{"status":"OK","distance":{"value":900},"duration":{"value":400}},` +
			`{"status":"OK","distance":{"value":300},"duration":{"value":100}}]}]}`))
		return
	}
	_, _ = w.Write([]byte(answer))
}

func (f *fakeAPI) last() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

// setup isolates the command from local config files and points it at a fake API.
func setup(t *testing.T) *fakeAPI {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)

	api := &fakeAPI{}
	srv := httptest.NewServer(http.HandlerFunc(api.handler))
	t.Cleanup(srv.Close)

	t.Setenv("DMA_API_BASE_URL", srv.URL+"/maps/api/distancematrix/json?")
	t.Setenv("DMA_API_KEY", "test-key")
	for _, name := range []string{"DMA_CLIENT", "DMA_SIGNATURE", "Outdated2", "Outdated3"} {
		t.Setenv(name, "")
	}
	t.Setenv("DMA_DATABASE_DRIVER", "sqlite")
	t.Setenv("DMA_DATABASE_URL", filepath.Join(dir, "journal.db"))
	return api
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMatrixCommand(t *testing.T) {
	api := setup(t)

	out, err := run(t, "matrix", "--origin", "A", "--origin", "B", "--destination", "C", "--mode", "walking", "--transit-mode", "tram")
	require.NoError(t, err, out)

	var resp domain.MatrixResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "OK", resp.Status)
	assert.Len(t, resp.Rows, 2)

	q := api.last()
	assert.Equal(t, "A|B", q.Get("origins"))
	assert.Equal(t, "C", q.Get("destinations"))
	assert.Equal(t, "walking", q.Get("mode"))
	assert.Equal(t, "tram", q.Get("transit_mode"))
	assert.Equal(t, "test-key", q.Get("key"))
}

func TestMatrixCommandRejectsInvalidMode(t *testing.T) {
	api := setup(t)

	_, err := run(t, "matrix", "--origin", "A", "--destination", "C", "--mode", "flying")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Empty(t, api.queries)
}

func TestMatrixRecordThenHistory(t *testing.T) {
	setup(t)

	_, err := run(t, "matrix", "--origin", "A", "--origin", "B", "--destination", "C", "--record")
	require.NoError(t, err)

	out, err := run(t, "history", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "DESTINATION")
	assert.Contains(t, out, "driving")
	assert.Contains(t, out, "2000")
	assert.Contains(t, out, "1000")
}

func TestHistoryEmpty(t *testing.T) {
	setup(t)

	out, err := run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No recorded queries")
}

func TestNearestCommand(t *testing.T) {
	setup(t)

	out, err := run(t, "nearest", "--origin", "Hub", "--destination", "Far", "--destination", "Near")
	require.NoError(t, err, out)

	assert.Regexp(t, `(?s)1\s+Near.*2\s+Far`, out)
}
