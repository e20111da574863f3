package keywords

import (
	"strings"

	"redditpulse/internal/models"
)

const regionSampleSize = 3

// RegionMetrics is the region-focus summary: the matching subset plus its
// headline numbers.
type RegionMetrics struct {
	PostCount    int
	AvgSentiment float64
	TopKeywords  []string
	SamplePosts  models.PostCollection
}

// RegionFocus filters the collection down to posts matching the search
// term (when given) and at least one region keyword, then summarizes the
// subset. No matching posts is an insufficient-data condition.
func RegionFocus(coll models.PostCollection, regionTerms []string, searchTerm string, extractor Extractor) (*RegionMetrics, error) {
	searchLower := strings.ToLower(searchTerm)

	var subset models.PostCollection
	for _, p := range coll {
		title := strings.ToLower(p.Title)
		if searchLower != "" && !strings.Contains(title, searchLower) {
			continue
		}
		if len(regionTerms) > 0 && !containsAny(title, regionTerms) {
			continue
		}
		subset = append(subset, p)
	}

	if len(subset) == 0 {
		return nil, &models.ComputationError{Msg: "no posts match the region keywords"}
	}

	var sum float64
	titles := make([]string, len(subset))
	for i, p := range subset {
		sum += p.SentimentCompound
		titles[i] = p.Title
	}

	sample := subset
	if len(sample) > regionSampleSize {
		sample = sample[:regionSampleSize]
	}

	metrics := &RegionMetrics{
		PostCount:    len(subset),
		AvgSentiment: sum / float64(len(subset)),
		SamplePosts:  sample.Clone(),
	}
	if extractor != nil {
		metrics.TopKeywords = extractor.TopKeywords(titles, 10)
	}
	return metrics, nil
}
