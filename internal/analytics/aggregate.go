package analytics

import (
	"sort"

	"redditpulse/internal/models"
)

// SortCriterion selects the field TopN ranks by.
type SortCriterion string

const (
	ByScore     SortCriterion = "score"
	ByComments  SortCriterion = "comments"
	ByRecency   SortCriterion = "recency"
	BySentiment SortCriterion = "sentiment"
)

// GroupByDate computes {mean compound, post count} per distinct date,
// ascending by date.
func GroupByDate(coll models.PostCollection) []models.DailyStat {
	type bucket struct {
		sum   float64
		count int
	}

	buckets := make(map[int64]*bucket)
	for _, p := range coll {
		key := p.Date.Unix()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.sum += p.SentimentCompound
		b.count++
	}

	stats := make([]models.DailyStat, 0, len(buckets))
	for _, p := range coll {
		key := p.Date.Unix()
		b, ok := buckets[key]
		if !ok {
			continue
		}
		stats = append(stats, models.DailyStat{
			Date:         p.Date,
			AvgSentiment: b.sum / float64(b.count),
			PostCount:    b.count,
		})
		delete(buckets, key)
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].Date.Before(stats[j].Date) })
	return stats
}

// GroupByLabel counts posts per sentiment label. Labels with no posts are
// present with a zero count so chart axes stay stable.
func GroupByLabel(coll models.PostCollection) map[models.SentimentLabel]int {
	counts := map[models.SentimentLabel]int{
		models.LabelPositive: 0,
		models.LabelNeutral:  0,
		models.LabelNegative: 0,
	}
	for _, p := range coll {
		counts[p.Label]++
	}
	return counts
}

// TopN returns the n posts ranking highest on the criterion, ties broken
// by original collection order. n larger than the collection returns the
// whole collection sorted.
func TopN(coll models.PostCollection, criterion SortCriterion, n int) (models.PostCollection, error) {
	if n < 0 {
		return nil, models.NewValidationError("top-n count %d is negative", n)
	}

	var greater func(a, b models.Post) bool
	switch criterion {
	case ByScore:
		greater = func(a, b models.Post) bool { return a.Score > b.Score }
	case ByComments:
		greater = func(a, b models.Post) bool { return a.NumComments > b.NumComments }
	case ByRecency:
		greater = func(a, b models.Post) bool { return a.CreatedAt.After(b.CreatedAt) }
	case BySentiment:
		greater = func(a, b models.Post) bool { return a.SentimentCompound > b.SentimentCompound }
	default:
		return nil, models.NewValidationError("unknown sort criterion %q", criterion)
	}

	sorted := coll.Clone()
	sort.SliceStable(sorted, func(i, j int) bool { return greater(sorted[i], sorted[j]) })

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n], nil
}

// MeanCompound is the average compound score. Asking for the mean of an
// empty collection is an insufficient-data condition, not a zero.
func MeanCompound(coll models.PostCollection) (float64, error) {
	if len(coll) == 0 {
		return 0, &models.ComputationError{Msg: "mean of zero posts"}
	}

	var sum float64
	for _, p := range coll {
		sum += p.SentimentCompound
	}
	return sum / float64(len(coll)), nil
}
