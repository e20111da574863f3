package analytics

import (
	"errors"
	"math"
	"testing"
	"time"

	"redditpulse/internal/models"
)

func TestGroupByDate(t *testing.T) {
	coll := models.PostCollection{
		post("a", 1, 0.4, day(2024, 3, 11)),
		post("b", 1, 0.2, day(2024, 3, 10)),
		post("c", 1, 0.0, day(2024, 3, 11)),
	}

	stats := GroupByDate(coll)
	if len(stats) != 2 {
		t.Fatalf("got %d buckets, want 2", len(stats))
	}

	if !stats[0].Date.Equal(day(2024, 3, 10)) {
		t.Errorf("stats[0].Date = %v, want 2024-03-10 (ascending order)", stats[0].Date)
	}
	if stats[0].PostCount != 1 || stats[0].AvgSentiment != 0.2 {
		t.Errorf("stats[0] = %+v, want count 1, avg 0.2", stats[0])
	}

	if stats[1].PostCount != 2 {
		t.Errorf("stats[1].PostCount = %d, want 2", stats[1].PostCount)
	}
	if math.Abs(stats[1].AvgSentiment-0.2) > 1e-12 {
		t.Errorf("stats[1].AvgSentiment = %v, want 0.2", stats[1].AvgSentiment)
	}
}

func TestGroupByDate_Empty(t *testing.T) {
	if stats := GroupByDate(nil); len(stats) != 0 {
		t.Errorf("GroupByDate(nil) = %v, want empty", stats)
	}
}

func TestGroupByLabel(t *testing.T) {
	coll := models.PostCollection{
		post("a", 1, 0.4, day(2024, 3, 10)),
		post("b", 1, 0.5, day(2024, 3, 10)),
		post("c", 1, -0.4, day(2024, 3, 10)),
		post("d", 1, 0.0, day(2024, 3, 10)),
	}

	counts := GroupByLabel(coll)
	if counts[models.LabelPositive] != 2 {
		t.Errorf("positive = %d, want 2", counts[models.LabelPositive])
	}
	if counts[models.LabelNegative] != 1 {
		t.Errorf("negative = %d, want 1", counts[models.LabelNegative])
	}
	if counts[models.LabelNeutral] != 1 {
		t.Errorf("neutral = %d, want 1", counts[models.LabelNeutral])
	}
}

func TestTopN(t *testing.T) {
	base := day(2024, 3, 10)
	coll := models.PostCollection{
		{Title: "low", Score: 5, NumComments: 9, CreatedAt: base.Add(1 * time.Hour), SentimentCompound: 0.9},
		{Title: "mid-first", Score: 10, NumComments: 3, CreatedAt: base.Add(3 * time.Hour), SentimentCompound: 0.1},
		{Title: "mid-second", Score: 10, NumComments: 7, CreatedAt: base.Add(2 * time.Hour), SentimentCompound: -0.5},
		{Title: "high", Score: 50, NumComments: 1, CreatedAt: base.Add(4 * time.Hour), SentimentCompound: 0.0},
	}

	t.Run("by score with stable ties", func(t *testing.T) {
		got, err := TopN(coll, ByScore, 3)
		if err != nil {
			t.Fatalf("TopN() error = %v", err)
		}
		want := []string{"high", "mid-first", "mid-second"}
		for i, title := range want {
			if got[i].Title != title {
				t.Errorf("result[%d] = %q, want %q", i, got[i].Title, title)
			}
		}
	})

	t.Run("by comments", func(t *testing.T) {
		got, err := TopN(coll, ByComments, 1)
		if err != nil {
			t.Fatalf("TopN() error = %v", err)
		}
		if got[0].Title != "low" {
			t.Errorf("top by comments = %q, want %q", got[0].Title, "low")
		}
	})

	t.Run("by recency", func(t *testing.T) {
		got, err := TopN(coll, ByRecency, 1)
		if err != nil {
			t.Fatalf("TopN() error = %v", err)
		}
		if got[0].Title != "high" {
			t.Errorf("top by recency = %q, want %q", got[0].Title, "high")
		}
	})

	t.Run("by sentiment", func(t *testing.T) {
		got, err := TopN(coll, BySentiment, 1)
		if err != nil {
			t.Fatalf("TopN() error = %v", err)
		}
		if got[0].Title != "low" {
			t.Errorf("top by sentiment = %q, want %q", got[0].Title, "low")
		}
	})

	t.Run("n larger than collection", func(t *testing.T) {
		got, err := TopN(coll, ByScore, 100)
		if err != nil {
			t.Fatalf("TopN() error = %v", err)
		}
		if len(got) != len(coll) {
			t.Errorf("got %d posts, want all %d", len(got), len(coll))
		}
	})

	t.Run("unknown criterion", func(t *testing.T) {
		_, err := TopN(coll, SortCriterion("upvotes"), 1)
		var vErr *models.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("error = %v (%T), want *models.ValidationError", err, err)
		}
	})

	t.Run("input order preserved", func(t *testing.T) {
		if _, err := TopN(coll, ByScore, 2); err != nil {
			t.Fatal(err)
		}
		if coll[0].Title != "low" {
			t.Error("TopN reordered its input collection")
		}
	})
}

func TestMeanCompound_Empty(t *testing.T) {
	_, err := MeanCompound(nil)

	var cErr *models.ComputationError
	if !errors.As(err, &cErr) {
		t.Fatalf("error = %v (%T), want *models.ComputationError", err, err)
	}
}
