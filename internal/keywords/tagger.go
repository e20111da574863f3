package keywords

import (
	"strings"

	"redditpulse/internal/models"
)

// Tag computes, per category, the posts whose title contains at least one
// of the category's terms (case-insensitive substring) and, when a search
// term is given, the search term as well. Categories with no matching
// posts are absent from the result.
func Tag(coll models.PostCollection, categories []Category, searchTerm string) []models.CategoryStat {
	searchLower := strings.ToLower(searchTerm)

	var stats []models.CategoryStat
	for _, cat := range categories {
		if len(cat.Terms) == 0 {
			continue
		}

		var count int
		var sum float64
		for _, p := range coll {
			title := strings.ToLower(p.Title)
			if searchLower != "" && !strings.Contains(title, searchLower) {
				continue
			}
			if !containsAny(title, cat.Terms) {
				continue
			}
			count++
			sum += p.SentimentCompound
		}

		if count == 0 {
			continue
		}
		stats = append(stats, models.CategoryStat{
			Name:         cat.Name,
			PostCount:    count,
			AvgSentiment: sum / float64(count),
		})
	}
	return stats
}

// MatchedTerms reports which of the given terms a title contains,
// case-insensitively, in term order.
func MatchedTerms(title string, terms []string) []string {
	titleLower := strings.ToLower(title)

	var matched []string
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(titleLower, strings.ToLower(term)) {
			matched = append(matched, term)
		}
	}
	return matched
}

func containsAny(titleLower string, terms []string) bool {
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(titleLower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
