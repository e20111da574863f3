package report

import (
	"encoding/json"
	"io"
	"time"

	"redditpulse/internal/analytics"
	"redditpulse/internal/models"
)

const topPostCount = 5

// BuildSnapshot derives the report summary from a filtered collection.
// Every export format renders this one snapshot, so the JSON and the PDF
// can never disagree. A zero-post collection is an insufficient-data
// condition; percentages are never computed over a zero total.
func BuildSnapshot(coll models.PostCollection, searchTerm string, now time.Time, categories []models.CategoryStat) (*models.ReportSnapshot, error) {
	if len(coll) == 0 {
		return nil, &models.ComputationError{Msg: "cannot summarize zero posts"}
	}

	mean, err := analytics.MeanCompound(coll)
	if err != nil {
		return nil, err
	}

	counts := analytics.GroupByLabel(coll)
	total := len(coll)
	distribution := make(map[models.SentimentLabel]models.LabelCount, len(counts))
	for label, count := range counts {
		distribution[label] = models.LabelCount{
			Count:   count,
			Percent: float64(count) / float64(total) * 100,
		}
	}

	top, err := analytics.TopN(coll, analytics.ByScore, topPostCount)
	if err != nil {
		return nil, err
	}
	topPosts := make([]models.TopPost, 0, len(top))
	for _, p := range top {
		topPosts = append(topPosts, models.TopPost{
			Title:       p.Title,
			Label:       p.Label,
			Score:       p.Score,
			NumComments: p.NumComments,
		})
	}

	snapshot := &models.ReportSnapshot{
		Metadata: models.ReportMetadata{
			SearchTerm:   searchTerm,
			AnalysisDate: now,
			TotalPosts:   total,
		},
		Metrics: models.ReportMetrics{
			AverageSentiment: mean,
			Distribution:     distribution,
		},
		TopPosts:   topPosts,
		Categories: categories,
	}

	if daily := analytics.GroupByDate(coll); len(daily) > 0 {
		snapshot.Daily = daily
	}

	return snapshot, nil
}

// WriteJSON serializes the snapshot as the structured export artifact.
func WriteJSON(snapshot *models.ReportSnapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshot)
}
