package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/wanderplan/trips-backend-go/internal/spatial"
)

// DefaultBaseURL is the Mapbox Places geocoding endpoint
const DefaultBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// MapboxSearcher queries the Mapbox Places API.
type MapboxSearcher struct {
	baseURL    string
	token      string
	httpClient *http.Client
	results    *cache.Cache
}

// NewMapboxSearcher creates a Mapbox-backed searcher. Identical queries within
// a short window are served from an in-process cache to stay inside the
// provider's rate limits.
func NewMapboxSearcher(baseURL, token string, timeout time.Duration) *MapboxSearcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &MapboxSearcher{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		results: cache.New(5*time.Minute, 10*time.Minute),
	}
}

type mapboxFeature struct {
	Text      string          `json:"text"`
	Center    json.RawMessage `json:"center"`
	Relevance json.RawMessage `json:"relevance"`
}

// parseCenter decodes a feature's [longitude, latitude] pair. A center that
// is not a numeric array yields nil, which marks the hit unusable without
// failing the features around it.
func parseCenter(raw json.RawMessage) []float64 {
	if len(raw) == 0 {
		return nil
	}
	var coords []float64
	if err := json.Unmarshal(raw, &coords); err != nil {
		return nil
	}
	return coords
}

// parseRelevance tolerates a missing, quoted or garbage relevance value;
// anything that is not a number scores zero.
func parseRelevance(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err == nil {
		return v
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return 0
}

type mapboxResponse struct {
	Features []mapboxFeature `json:"features"`
}

// Search issues one forward-geocoding query for the keyword, scoped by the
// bounding box and biased toward the proximity point.
func (m *MapboxSearcher) Search(ctx context.Context, query string, proximityLat, proximityLon float64, bbox spatial.BoundingBox, limit int) ([]Hit, error) {
	if limit <= 0 || limit > MaxResultsPerQuery {
		limit = MaxResultsPerQuery
	}

	params := url.Values{}
	params.Set("proximity", fmt.Sprintf("%f,%f", proximityLon, proximityLat))
	params.Set("bbox", fmt.Sprintf("%f,%f,%f,%f", bbox.MinLon, bbox.MinLat, bbox.MaxLon, bbox.MaxLat))
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("access_token", m.token)

	reqURL := fmt.Sprintf("%s/%s.json?%s", m.baseURL, url.PathEscape(query), params.Encode())

	if cached, ok := m.results.Get(reqURL); ok {
		return cached.([]Hit), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building place search request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("place search returned status %d", resp.StatusCode)
	}

	var mbResp mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&mbResp); err != nil {
		return nil, fmt.Errorf("decoding place search response: %w", err)
	}

	hits := make([]Hit, 0, len(mbResp.Features))
	for _, feat := range mbResp.Features {
		hits = append(hits, Hit{
			Name:      feat.Text,
			Center:    parseCenter(feat.Center),
			Relevance: parseRelevance(feat.Relevance),
		})
	}

	m.results.Set(reqURL, hits, cache.DefaultExpiration)

	return hits, nil
}
