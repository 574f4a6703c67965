package radiobrowser

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/alexivanou/worldradio-api/internal/config"
	"github.com/alexivanou/worldradio-api/internal/model"
)

const searchPath = "/json/stations/search"

// Client queries the radio-browser station directory. It keeps no state
// between calls; every Search is one outbound HTTP request bounded by the
// configured timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a directory client from config
func NewClient(cfg config.RadioConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search fetches up to limit stations for one country, most popular first.
// nameFilter narrows results by station name substring when non-empty. The
// Country field of every returned record is set to the queried country so
// attribution survives the merge.
func (c *Client) Search(ctx context.Context, country, nameFilter string, limit int) ([]model.Station, error) {
	params := url.Values{}
	params.Set("country", country)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("order", "clickcount")
	params.Set("reverse", "true")
	if nameFilter != "" {
		params.Set("name", nameFilter)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations for %s: %w", country, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d querying stations for %s", resp.StatusCode, country)
	}

	var stations []model.Station
	if err := json.NewDecoder(resp.Body).Decode(&stations); err != nil {
		return nil, fmt.Errorf("failed to decode stations for %s: %w", country, err)
	}

	for i := range stations {
		stations[i].Country = country
	}
	return stations, nil
}
