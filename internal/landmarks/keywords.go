package landmarks

import "strings"

// categoryKeywords maps a requested category to the ordered keyword variants
// searched against the place provider. The table is built once at process
// start and never mutated; keyword order is part of the contract.
var categoryKeywords = map[string][]string{
	"Food": {
		"restaurant", "cafe", "diner", "bistro", "eatery", "food",
		"coffee shop", "grill", "pho", "ramen", "yakitori",
	},
	"Parks": {
		"park", "botanical garden", "green space", "garden",
		"nature reserve", "public park", "urban park",
	},
	"Historic": {
		"historic building", "heritage site", "historical site",
		"landmark", "old building", "monumental",
	},
	"Memorials": {
		"memorial", "monument", "commemorative", "statue", "cenotaph", "tribute",
	},
	"Museums": {
		"museum", "art gallery", "exhibit", "history museum",
		"science museum", "cultural center",
	},
	"Art": {
		"art gallery", "exhibit", "showcase", "gallery",
		"art center", "art museum", "creative space",
	},
	"Entertainment": {
		"cinema", "movie theater", "theater", "amusement",
		"entertainment", "arcade", "playhouse", "live performance",
	},
}

// deniedTerms disqualify a hit name that looks like a generic street or
// commercial address rather than a point of interest (case-insensitive
// substring match).
var deniedTerms = []string{
	"street", "drive", "way", "avenue", "road",
	"development", "developments", "residential",
	"commercial", "office", "plaza", "mall", "complex",
	"apartment", "lane", "parkway", "court", "common", "commons", "place",
}

// Expand returns the ordered keyword list for a category. Unrecognized
// categories fall back to a single-element list of the category itself.
func Expand(category string) []string {
	if keywords, ok := categoryKeywords[category]; ok {
		out := make([]string, len(keywords))
		copy(out, keywords)
		return out
	}
	return []string{category}
}

// NormalizeCategory maps the provider-facing "Parks" bucket to the singular
// label stored on candidates; every other category passes through unchanged.
func NormalizeCategory(category string) string {
	if category == "Parks" {
		return "Park"
	}
	return category
}

// isDeniedName reports whether the hit name contains any denylisted term
func isDeniedName(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range deniedTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
