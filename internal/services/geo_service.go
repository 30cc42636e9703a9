package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sort"
	"time"

	"tripjournal/pkg/utils"
)

type Coordinate struct {
	Lat float64
	Lng float64
}

// GeocodingProvider resolves a free-text place name to a coordinate.
// One resolution per itinerary build; the coordinate is reused for every
// category search.
type GeocodingProvider interface {
	Geocode(ctx context.Context, location string) (Coordinate, error)
}

// PlaceSearchProvider returns ranked candidate places around a coordinate.
type PlaceSearchProvider interface {
	SearchNearby(ctx context.Context, coord Coordinate, category string, limit int) ([]POICandidate, error)
}

// Search radius applied to every category search. Not a per-call parameter.
const searchRadiusMeters = 5000

const (
	defaultGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultPlacesURL  = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
)

// GoogleGeoClient talks to the Google Maps Geocoding and Places HTTP APIs.
// Base URLs are fields so tests can point the client at a fixture server.
type GoogleGeoClient struct {
	HTTP       *http.Client
	APIKey     string
	GeocodeURL string
	PlacesURL  string
}

func NewGoogleGeoClient() *GoogleGeoClient {
	key := os.Getenv("GOOGLE_MAPS_API_KEY")
	if key == "" {
		panic("GOOGLE_MAPS_API_KEY is empty")
	}
	return &GoogleGeoClient{
		HTTP:       &http.Client{Timeout: 15 * time.Second},
		APIKey:     key,
		GeocodeURL: defaultGeocodeURL,
		PlacesURL:  defaultPlacesURL,
	}
}

type geocodeEnvelope struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *GoogleGeoClient) Geocode(ctx context.Context, location string) (Coordinate, error) {
	q := url.Values{}
	q.Set("address", location)
	q.Set("key", c.APIKey)

	var payload geocodeEnvelope
	if err := c.getJSON(ctx, c.GeocodeURL, q, &payload); err != nil {
		return Coordinate{}, fmt.Errorf("%w: %v", utils.ErrGeocodeFailed, err)
	}

	if payload.Status != "OK" || len(payload.Results) == 0 {
		return Coordinate{}, fmt.Errorf("%w: status %q with %d results",
			utils.ErrGeocodeFailed, payload.Status, len(payload.Results))
	}

	loc := payload.Results[0].Geometry.Location
	return Coordinate{Lat: loc.Lat, Lng: loc.Lng}, nil
}

type placesEnvelope struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID  string   `json:"place_id"`
		Name     string   `json:"name"`
		Rating   *float64 `json:"rating"`
		Types    []string `json:"types"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *GoogleGeoClient) SearchNearby(ctx context.Context, coord Coordinate, category string, limit int) ([]POICandidate, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", coord.Lat, coord.Lng))
	q.Set("radius", fmt.Sprintf("%d", searchRadiusMeters))
	q.Set("type", category)
	q.Set("key", c.APIKey)

	var payload placesEnvelope
	if err := c.getJSON(ctx, c.PlacesURL, q, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPlaceSearchFailed, err)
	}

	// ZERO_RESULTS is an empty pool, not a failure; under-fill is valid.
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("%w: status %q", utils.ErrPlaceSearchFailed, payload.Status)
	}

	// The provider's type filter is advisory, re-filter client-side.
	candidates := make([]POICandidate, 0, len(payload.Results))
	for _, r := range payload.Results {
		if !containsCategory(r.Types, category) {
			continue
		}
		rating := 0.0
		if r.Rating != nil {
			rating = *r.Rating
		}
		candidates = append(candidates, POICandidate{
			ID:         r.PlaceID,
			Name:       r.Name,
			Lat:        r.Geometry.Location.Lat,
			Lng:        r.Geometry.Location.Lng,
			Categories: r.Types,
			Rating:     rating,
		})
	}

	// Rating descending, provider order preserved on ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rating > candidates[j].Rating
	})

	if limit >= 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

func (c *GoogleGeoClient) getJSON(ctx context.Context, baseURL string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("bad status: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func containsCategory(types []string, category string) bool {
	for _, t := range types {
		if t == category {
			return true
		}
	}
	return false
}
