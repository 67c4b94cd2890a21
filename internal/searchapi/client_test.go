package searchapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEndpoint struct {
	mu        sync.Mutex
	body      string
	status    int
	delay     time.Duration
	lastQuery string
	lastLimit string
	lastReqID string
}

func (f *fakeEndpoint) server(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/api/search", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.lastQuery = r.URL.Query().Get("q")
		f.lastLimit = r.URL.Query().Get("limit")
		f.lastReqID = r.Header.Get(RequestIDHeader)
		f.mu.Unlock()
		if f.delay > 0 {
			select {
			case <-time.After(f.delay):
			case <-r.Context().Done():
				return
			}
		}
		status := f.status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(f.body))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchDecodesRecordsInOrder(t *testing.T) {
	f := &fakeEndpoint{body: `[
		{"name": "Sodium Chloride", "formula": "NaCl", "id": "nacl"},
		{"name": "Sodium Hydroxide", "formula": "NaOH", "id": 42, "molecular_weight": 39.997},
		{"name": "Sodium Bicarbonate", "formula": "NaHCO3"}
	]`}
	srv := f.server(t)

	c := NewClient(srv.URL+"/", WithLimit(7))
	got, err := c.Search(context.Background(), "sodium")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Sodium Chloride", got[0].Name)
	assert.Equal(t, "nacl", got[0].ID)
	assert.Equal(t, "42", got[1].ID, "numeric ids become strings")
	assert.InDelta(t, 39.997, got[1].MolecularWeight, 1e-9)
	assert.Equal(t, "NaHCO3", got[2].ID, "missing id falls back to the formula")

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, "sodium", f.lastQuery)
	assert.Equal(t, "7", f.lastLimit)
	_, err = uuid.Parse(f.lastReqID)
	assert.NoError(t, err, "request id header is a UUID")
}

func TestSearchEmptyArray(t *testing.T) {
	f := &fakeEndpoint{body: `[]`}
	srv := f.server(t)

	got, err := NewClient(srv.URL).Search(context.Background(), "zz")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSearchQueryIsEscaped(t *testing.T) {
	f := &fakeEndpoint{body: `[]`}
	srv := f.server(t)

	_, err := NewClient(srv.URL).Search(context.Background(), "a&b c")
	require.NoError(t, err)
	f.mu.Lock()
	defer f.mu.Unlock()
	require.Equal(t, "a&b c", f.lastQuery)
}

func TestSearchNon2xxIsErrStatus(t *testing.T) {
	f := &fakeEndpoint{status: http.StatusInternalServerError, body: `{"error": "boom"}`}
	srv := f.server(t)

	_, err := NewClient(srv.URL).Search(context.Background(), "water")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrStatus))
	require.Contains(t, err.Error(), "500")
}

func TestSearchMalformedBody(t *testing.T) {
	f := &fakeEndpoint{body: `{"not": "an array"}`}
	srv := f.server(t)

	_, err := NewClient(srv.URL).Search(context.Background(), "water")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrStatus))
}

func TestSearchRespectsContextCancel(t *testing.T) {
	f := &fakeEndpoint{body: `[]`, delay: 2 * time.Second}
	srv := f.server(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := NewClient(srv.URL).Search(ctx, "water")
	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestSearchTimeout(t *testing.T) {
	f := &fakeEndpoint{body: `[]`, delay: 2 * time.Second}
	srv := f.server(t)

	_, err := NewClient(srv.URL, WithTimeout(50*time.Millisecond)).Search(context.Background(), "water")
	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestTimeoutLeavesSharedHTTPClientAlone(t *testing.T) {
	f := &fakeEndpoint{body: `[]`, delay: 2 * time.Second}
	srv := f.server(t)

	shared := &http.Client{}
	c := NewClient(srv.URL, WithHTTPClient(shared), WithTimeout(50*time.Millisecond))

	_, err := c.Search(context.Background(), "water")
	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Zero(t, shared.Timeout)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, defaultBaseURL, c.BaseURL())
	assert.Equal(t, defaultLimit, c.limit)
	assert.Equal(t, defaultTimeout, c.timeout)
	assert.Zero(t, c.httpClient.Timeout)
}
