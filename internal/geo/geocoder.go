// Package geo resolves office addresses to map coordinates through
// Nominatim. Lookups are best-effort: any failure falls back to a fixed
// default so the map always renders.
package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Paris city centre, used whenever geocoding fails.
const (
	DefaultLatitude  = 48.8566
	DefaultLongitude = 2.3522
)

type Geocoder struct {
	baseURL    string
	httpClient *http.Client
}

func NewGeocoder(baseURL string) *Geocoder {
	return &Geocoder{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Locate returns coordinates for a free-text address. It never fails: a
// transport error, a bad status, an empty result or unparsable coordinates
// all yield the default position.
func (g *Geocoder) Locate(ctx context.Context, address string) (float64, float64) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("q", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return DefaultLatitude, DefaultLongitude
	}
	req.Header.Set("User-Agent", "medi4all-webfront")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return DefaultLatitude, DefaultLongitude
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return DefaultLatitude, DefaultLongitude
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil || len(results) == 0 {
		return DefaultLatitude, DefaultLongitude
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return DefaultLatitude, DefaultLongitude
	}
	return lat, lon
}
