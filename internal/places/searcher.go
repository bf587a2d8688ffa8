package places

import (
	"context"

	"github.com/wanderplan/trips-backend-go/internal/spatial"
)

// MaxResultsPerQuery is the hard ceiling the provider imposes on a single
// text-search query. Requests must never ask for more.
const MaxResultsPerQuery = 10

// Hit is one raw result from the place search provider. Center is the
// provider's [longitude, latitude] pair and is handed to the caller
// unvalidated; a short or missing pair means the hit is unusable.
type Hit struct {
	Name      string
	Center    []float64
	Relevance float64
}

// Searcher is the text-search contract for a POI provider: a keyword query
// scoped by a bounding box with a proximity bias toward the center point.
type Searcher interface {
	Search(ctx context.Context, query string, proximityLat, proximityLon float64, bbox spatial.BoundingBox, limit int) ([]Hit, error)
}
