package landmarks

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededSelector(seed int64) *Selector {
	return NewSelector(rand.New(rand.NewSource(seed)))
}

func makePool(category string, n int) []Candidate {
	pool := make([]Candidate, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, Candidate{
			Name:      category + string(rune('A'+i)),
			Latitude:  40.0 + float64(i)*0.01,
			Longitude: -74.0,
			Category:  NormalizeCategory(category),
			Relevance: float64(i) / float64(n),
		})
	}
	return pool
}

func TestSelectFoodAndParksScenario(t *testing.T) {
	pools := map[string][]Candidate{
		"Food":  makePool("Food", 5),
		"Parks": makePool("Parks", 3),
	}
	counts := map[string]int{"Food": 2, "Parks": 1}

	result := seededSelector(1).Select(pools, counts, 3)

	require.Len(t, result, 3)

	var food, park int
	for _, l := range result {
		switch l.Type {
		case "Food":
			food++
		case "Park":
			park++
		default:
			t.Fatalf("unexpected landmark type %q", l.Type)
		}
	}
	assert.LessOrEqual(t, food, 2)
	assert.LessOrEqual(t, park, 1)
}

func TestSelectZeroCapYieldsEmpty(t *testing.T) {
	pools := map[string][]Candidate{
		"Food": makePool("Food", 10),
	}
	counts := map[string]int{"Food": 5}

	assert.Empty(t, seededSelector(7).Select(pools, counts, 0))
}

func TestSelectZeroCountContributesNothing(t *testing.T) {
	pools := map[string][]Candidate{
		"Food":  makePool("Food", 5),
		"Parks": makePool("Parks", 5),
	}
	counts := map[string]int{"Food": 0, "Parks": 2}

	result := seededSelector(3).Select(pools, counts, 10)

	require.Len(t, result, 2)
	for _, l := range result {
		assert.Equal(t, "Park", l.Type)
	}
}

func TestSelectEmptyPoolContributesNothing(t *testing.T) {
	pools := map[string][]Candidate{
		"Food":    makePool("Food", 3),
		"Museums": nil,
	}
	counts := map[string]int{"Food": 2, "Museums": 4}

	result := seededSelector(11).Select(pools, counts, 10)

	assert.Len(t, result, 2)
}

func TestSelectNeverExceedsRequestedCounts(t *testing.T) {
	pools := map[string][]Candidate{
		"Food":  makePool("Food", 20),
		"Parks": makePool("Parks", 20),
	}
	counts := map[string]int{"Food": 3, "Parks": 2}

	// cap above the sum: output bounded by the counts alone
	result := seededSelector(5).Select(pools, counts, 100)

	assert.Len(t, result, 5)
}

func TestSelectCapTruncates(t *testing.T) {
	pools := map[string][]Candidate{
		"Food":  makePool("Food", 10),
		"Parks": makePool("Parks", 10),
	}
	counts := map[string]int{"Food": 10, "Parks": 10}

	for seed := int64(0); seed < 10; seed++ {
		result := seededSelector(seed).Select(pools, counts, 4)
		assert.Len(t, result, 4)
	}
}

func TestSelectDeduplicatesKeepingHigherRelevance(t *testing.T) {
	pools := map[string][]Candidate{
		"Food": {
			{Name: "Twin Bistro", Category: "Food", Latitude: 40.0, Longitude: -74.0, Relevance: 0.3},
			{Name: "Twin Bistro", Category: "Food", Latitude: 40.1, Longitude: -74.1, Relevance: 0.9},
		},
	}
	counts := map[string]int{"Food": 2}

	for seed := int64(0); seed < 20; seed++ {
		result := seededSelector(seed).Select(pools, counts, 10)
		require.Len(t, result, 1, "seed %d", seed)
		// the survivor is the higher-relevance entry
		assert.InDelta(t, 40.1, result[0].Latitude, 1e-9, "seed %d", seed)
	}
}

func TestSelectDeduplicatesEqualRelevanceToOne(t *testing.T) {
	pools := map[string][]Candidate{
		"Art": {
			{Name: "Gallery One", Category: "Art", Relevance: 0.5},
			{Name: "Gallery One", Category: "Art", Relevance: 0.5},
		},
	}
	counts := map[string]int{"Art": 2}

	for seed := int64(0); seed < 20; seed++ {
		result := seededSelector(seed).Select(pools, counts, 10)
		assert.Len(t, result, 1, "seed %d", seed)
	}
}

func TestSelectSameNameDifferentCategorySurvives(t *testing.T) {
	pools := map[string][]Candidate{
		"Art":     {{Name: "The Annex", Category: "Art", Relevance: 0.5}},
		"Museums": {{Name: "The Annex", Category: "Museums", Relevance: 0.6}},
	}
	counts := map[string]int{"Art": 1, "Museums": 1}

	result := seededSelector(2).Select(pools, counts, 10)

	assert.Len(t, result, 2)
}

func TestSelectReproducibleWithSameSeed(t *testing.T) {
	pools := map[string][]Candidate{
		"Food":  makePool("Food", 8),
		"Parks": makePool("Parks", 8),
	}
	counts := map[string]int{"Food": 3, "Parks": 3}

	a := seededSelector(42).Select(pools, counts, 4)
	b := seededSelector(42).Select(pools, counts, 4)

	assert.Equal(t, a, b)
}

func TestSelectStripsRelevanceAndKeepsType(t *testing.T) {
	pools := map[string][]Candidate{
		"Parks": {{Name: "Elm Gardens", Category: "Park", Latitude: 40.0, Longitude: -74.0, Relevance: 0.9}},
	}
	counts := map[string]int{"Parks": 1}

	result := seededSelector(9).Select(pools, counts, 1)

	require.Len(t, result, 1)
	assert.Equal(t, "Elm Gardens", result[0].Name)
	assert.Equal(t, "Park", result[0].Type)
}
