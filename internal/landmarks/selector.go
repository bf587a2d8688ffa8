package landmarks

import (
	"math/rand"
	"sort"
	"time"

	"github.com/wanderplan/trips-backend-go/internal/models"
)

// Selector assembles the final landmark list from per-category candidate
// pools. The random source is injected so tests can pin outcomes; production
// uses a time-seeded source.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector. Passing nil uses a time-seeded source.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// Select picks up to counts[category] candidates per category and truncates
// the combined result to overallCap landmarks.
//
// Each pool is shuffled before the count prefix is taken, then only that
// prefix is ordered by relevance: the selection is a random subset refined by
// relevance, not a global top-N. The shuffle keeps results from always
// favoring whichever keyword query ran first.
func (s *Selector) Select(pools map[string][]Candidate, counts map[string]int, overallCap int) []models.Landmark {
	if overallCap <= 0 {
		return []models.Landmark{}
	}

	// Sorted category order so a seeded source yields reproducible output
	categories := make([]string, 0, len(pools))
	for cat := range pools {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var combined []Candidate
	for _, cat := range categories {
		count := counts[cat]
		if count <= 0 || len(pools[cat]) == 0 {
			continue
		}

		pool := append([]Candidate(nil), pools[cat]...)
		s.rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		if count < len(pool) {
			pool = pool[:count]
		}
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].Relevance > pool[j].Relevance
		})

		combined = append(combined, pool...)
	}

	deduped := dedupeCandidates(combined)

	if len(deduped) > overallCap {
		s.rng.Shuffle(len(deduped), func(i, j int) {
			deduped[i], deduped[j] = deduped[j], deduped[i]
		})
		deduped = deduped[:overallCap]
	}

	landmarks := make([]models.Landmark, 0, len(deduped))
	for _, c := range deduped {
		landmarks = append(landmarks, models.Landmark{
			Name:      c.Name,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
			Type:      c.Category,
		})
	}

	return landmarks
}

// dedupeCandidates collapses candidates sharing (name, category), keeping the
// higher-relevance entry. Order of first appearance is preserved.
func dedupeCandidates(candidates []Candidate) []Candidate {
	type key struct {
		name     string
		category string
	}

	index := make(map[key]int, len(candidates))
	var out []Candidate
	for _, c := range candidates {
		k := key{name: c.Name, category: c.Category}
		if i, ok := index[k]; ok {
			if c.Relevance > out[i].Relevance {
				out[i] = c
			}
			continue
		}
		index[k] = len(out)
		out = append(out, c)
	}

	return out
}
