package radiobrowser

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexivanou/worldradio-api/internal/config"
	"github.com/alexivanou/worldradio-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.RadioConfig{
		BaseURL: serverURL,
		Timeout: 2 * time.Second,
	})
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/stations/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Kenya", q.Get("country"))
		assert.Equal(t, "7", q.Get("limit"))
		assert.Equal(t, "clickcount", q.Get("order"))
		assert.Equal(t, "true", q.Get("reverse"))
		assert.Equal(t, "jazz", q.Get("name"))

		json.NewEncoder(w).Encode([]model.Station{
			{StationUUID: "a-1", Name: "Jazz FM", URLResolved: "http://stream/a1", Country: "Republic of Kenya", ClickCount: 42},
			{StationUUID: "a-2", Name: "Smooth", URLResolved: "http://stream/a2", ClickCount: 7},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	stations, err := client.Search(context.Background(), "Kenya", "jazz", 7)
	require.NoError(t, err)
	require.Len(t, stations, 2)

	// Attribution country overrides whatever the upstream reported
	assert.Equal(t, "Kenya", stations[0].Country)
	assert.Equal(t, "Kenya", stations[1].Country)
	assert.Equal(t, "Jazz FM", stations[0].Name)
	assert.Equal(t, 42, stations[0].ClickCount)
}

func TestClient_Search_OmitsEmptyNameFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["name"]
		assert.False(t, present)
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	stations, err := client.Search(context.Background(), "Chile", "", 5)
	require.NoError(t, err)
	assert.Empty(t, stations)
}

func TestClient_Search_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), "Ghana", "", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Search_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), "Ghana", "", 5)
	require.Error(t, err)
}

func TestClient_Search_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	client := newTestClient(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Search(ctx, "Egypt", "", 5)
	require.Error(t, err)
}
