package landmarks

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wanderplan/trips-backend-go/internal/places"
	"github.com/wanderplan/trips-backend-go/internal/spatial"
)

// searchConcurrency bounds the parallel keyword queries per category
const searchConcurrency = 4

// Candidate is a filtered search hit under consideration for a trip. It only
// lives for the duration of one generation call; relevance is never persisted.
type Candidate struct {
	Name      string
	Latitude  float64
	Longitude float64
	Category  string
	Relevance float64
}

// Collector gathers the candidate pool for one category by querying the
// place provider once per expanded keyword.
type Collector struct {
	searcher places.Searcher
}

// NewCollector creates a collector over the given provider
func NewCollector(searcher places.Searcher) *Collector {
	return &Collector{searcher: searcher}
}

// Collect runs every keyword query and pools the surviving candidates.
// A failed query drops its keyword and nothing else; a category where every
// keyword fails yields an empty pool, not an error. Queries run concurrently
// and the pool is an unordered set.
func (c *Collector) Collect(ctx context.Context, category string, keywords []string, centerLat, centerLon float64, bbox spatial.BoundingBox, maxDistance float64) []Candidate {
	var (
		mu   sync.Mutex
		pool []Candidate
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(searchConcurrency)

	for _, keyword := range keywords {
		keyword := keyword
		g.Go(func() error {
			hits, err := c.searcher.Search(ctx, keyword, centerLat, centerLon, bbox, places.MaxResultsPerQuery)
			if err != nil {
				log.Printf("place search failed for keyword %q (category %s): %v", keyword, category, err)
				return nil
			}

			kept := filterHits(category, keyword, hits, centerLat, centerLon, maxDistance)
			if len(kept) == 0 {
				return nil
			}

			mu.Lock()
			pool = append(pool, kept...)
			mu.Unlock()
			return nil
		})
	}

	// Workers never return an error; Wait is only a join point.
	_ = g.Wait()

	return pool
}

// filterHits converts raw hits into candidates, dropping anything with
// malformed coordinates, outside the distance limit, or named like a plain
// street address.
func filterHits(category, keyword string, hits []places.Hit, centerLat, centerLon, maxDistance float64) []Candidate {
	normalized := NormalizeCategory(category)

	var kept []Candidate
	for _, hit := range hits {
		if len(hit.Center) < 2 {
			continue
		}
		hitLon := hit.Center[0]
		hitLat := hit.Center[1]

		if spatial.HaversineMiles(centerLat, centerLon, hitLat, hitLon) > maxDistance {
			continue
		}

		name := hit.Name
		if name == "" {
			name = keyword
		}
		if isDeniedName(name) {
			continue
		}

		kept = append(kept, Candidate{
			Name:      name,
			Latitude:  hitLat,
			Longitude: hitLon,
			Category:  normalized,
			Relevance: hit.Relevance,
		})
	}

	return kept
}
