package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const googleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Geocoder turns a coordinate into a human readable label
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// GoogleGeocoder reverse geocodes using the Google Maps Geocoding API
type GoogleGeocoder struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// GoogleGeocodeResponse represents the Google Maps Geocoding API response
type GoogleGeocodeResponse struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// NewGoogleGeocoder returns nil when no key is configured, which disables labelling.
func NewGoogleGeocoder(apiKey string, timeout time.Duration) *GoogleGeocoder {
	if apiKey == "" {
		return nil
	}
	return &GoogleGeocoder{
		apiKey:  apiKey,
		baseURL: googleGeocodeURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// ReverseGeocode converts coordinates to a formatted address
func (g *GoogleGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Add("latlng", fmt.Sprintf("%f,%f", lat, lng))
	params.Add("key", g.apiKey)

	fullURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var result GoogleGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Status != "OK" {
		return "", fmt.Errorf("geocoding API returned status: %s", result.Status)
	}
	if len(result.Results) == 0 {
		return "", fmt.Errorf("no results found")
	}

	return result.Results[0].FormattedAddress, nil
}
