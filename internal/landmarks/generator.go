package landmarks

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"strings"

	"github.com/wanderplan/trips-backend-go/internal/models"
	"github.com/wanderplan/trips-backend-go/internal/places"
	"github.com/wanderplan/trips-backend-go/internal/spatial"
)

// Generator runs the full landmark pipeline for one trip: keyword expansion,
// per-category collection and final selection.
type Generator struct {
	collector *Collector
	selector  *Selector
}

// NewGenerator creates a generator over the given provider. rng may be nil
// for a time-seeded source.
func NewGenerator(searcher places.Searcher, rng *rand.Rand) *Generator {
	return &Generator{
		collector: NewCollector(searcher),
		selector:  NewSelector(rng),
	}
}

// Generate assembles up to numDestinations landmarks around the center point.
// landmarkTypes is a comma-separated category list; countsJSON optionally maps
// category labels to per-category counts.
func (g *Generator) Generate(ctx context.Context, lat, lon float64, landmarkTypes string, maxDistance float64, numDestinations int, countsJSON string) []models.Landmark {
	categories := ParseCategories(landmarkTypes)
	counts := ParseCategoryCounts(categories, countsJSON)

	if len(categories) == 0 || numDestinations <= 0 {
		return []models.Landmark{}
	}

	bbox := spatial.BoundingBoxAround(lat, lon, maxDistance)

	pools := make(map[string][]Candidate, len(categories))
	for _, cat := range categories {
		pools[cat] = g.collector.Collect(ctx, cat, Expand(cat), lat, lon, bbox, maxDistance)
	}

	return g.selector.Select(pools, counts, numDestinations)
}

// ParseCategories splits a comma-separated category list, trimming whitespace
// and dropping empty entries.
func ParseCategories(landmarkTypes string) []string {
	var categories []string
	for _, part := range strings.Split(landmarkTypes, ",") {
		if cat := strings.TrimSpace(part); cat != "" {
			categories = append(categories, cat)
		}
	}
	return categories
}

// ParseCategoryCounts builds the per-category destination counts. Every listed
// category defaults to one; the optional JSON object overrides counts for the
// categories it names. Malformed JSON falls back to the defaults rather than
// failing the request.
func ParseCategoryCounts(categories []string, countsJSON string) map[string]int {
	counts := make(map[string]int, len(categories))
	for _, cat := range categories {
		counts[cat] = 1
	}

	if countsJSON == "" || countsJSON == "{}" {
		return counts
	}

	var overrides map[string]int
	if err := json.Unmarshal([]byte(countsJSON), &overrides); err != nil {
		log.Printf("invalid landmark counts %q, using one per category: %v", countsJSON, err)
		return counts
	}

	for cat, n := range overrides {
		if _, listed := counts[cat]; !listed {
			continue
		}
		if n < 0 {
			n = 0
		}
		counts[cat] = n
	}

	return counts
}
