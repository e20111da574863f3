package analytics

import (
	"time"

	"redditpulse/internal/models"
)

// Filter returns the ordered sub-collection whose date falls inside the
// inclusive range and whose score meets the threshold. An empty result is
// a valid outcome, not an error; only malformed parameters fail.
func Filter(coll models.PostCollection, params models.FilterParams) (models.PostCollection, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	start := truncateToDay(params.StartDate)
	end := truncateToDay(params.EndDate)

	out := make(models.PostCollection, 0, len(coll))
	for _, p := range coll {
		if p.Date.Before(start) || p.Date.After(end) {
			continue
		}
		if p.Score < params.MinScore {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
