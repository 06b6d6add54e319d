package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentradar/dentradar-api/internal/config"
	"github.com/dentradar/dentradar-api/pkg/metrics"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *int64) {
	t.Helper()

	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(config.PlacesConfig{
		APIKey:       "test-key",
		BaseURL:      srv.URL,
		Timeout:      5 * time.Second,
		CacheTTL:     time.Minute,
		PhotoMaxWide: 800,
	}, zerolog.Nop(), metrics.NewMetrics("places_test", t.Name()))
	return c, &hits
}

func TestTextSearch(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/textsearch/json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "dentist 5551234567", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","results":[{"place_id":"ChIJ1","name":"Main St Dental"}]}`))
	}))

	results, err := client.TextSearch(context.Background(), "dentist 5551234567")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ChIJ1", results[0].PlaceID)
}

func TestTextSearchZeroResults(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))

	results, err := client.TextSearch(context.Background(), "nothing here")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestTextSearchErrorStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OVER_QUERY_LIMIT"}`))
	}))

	_, err := client.TextSearch(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OVER_QUERY_LIMIT")
}

func TestDetailsCaching(t *testing.T) {
	client, hits := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/details/json", r.URL.Path)
		assert.Equal(t, "ChIJ1", r.URL.Query().Get("place_id"))
		w.Write([]byte(`{"status":"OK","result":{"place_id":"ChIJ1","name":"Main St Dental"}}`))
	}))

	for i := 0; i < 3; i++ {
		place, err := client.Details(context.Background(), "ChIJ1")
		require.NoError(t, err)
		assert.Equal(t, "Main St Dental", place.Name)
	}

	// Two repeat lookups served from cache.
	assert.Equal(t, int64(1), atomic.LoadInt64(hits))
}

func TestAutocomplete(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/autocomplete/json", r.URL.Path)
		assert.Equal(t, "(regions)", r.URL.Query().Get("types"))
		assert.Equal(t, "country:us", r.URL.Query().Get("components"))
		w.Write([]byte(`{"status":"OK","predictions":[{"description":"Springfield, IL, USA","place_id":"ChIJ2"}]}`))
	}))

	preds, err := client.Autocomplete(context.Background(), "Springf")
	require.NoError(t, err)
	require.Len(t, preds, 1)
	assert.Equal(t, "Springfield, IL, USA", preds[0].Description)
}

func TestGeocode(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"1 Main St","geometry":{"location":{"lat":40.7,"lng":-74.0}}}]}`))
	}))

	res, err := client.Geocode(context.Background(), "1 Main St")
	require.NoError(t, err)
	assert.Equal(t, 40.7, res.Lat)
	assert.Equal(t, "1 Main St", res.Address)
}

func TestHTTPErrorStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.TextSearch(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestConfigured(t *testing.T) {
	c := NewClient(config.PlacesConfig{CacheTTL: time.Minute}, zerolog.Nop(), metrics.NewMetrics("places_test_cfg", "unconfigured"))
	assert.False(t, c.Configured())
}

func TestPhotoURL(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler())

	u := client.PhotoURL("ref123")
	assert.Contains(t, u, "/place/photo?")
	assert.Contains(t, u, "photo_reference=ref123")
	assert.Contains(t, u, "maxwidth=800")
}
