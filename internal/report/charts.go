package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"redditpulse/internal/models"
)

var labelColors = map[models.SentimentLabel]drawing.Color{
	models.LabelPositive: drawing.ColorFromHex("4caf50"),
	models.LabelNeutral:  drawing.ColorFromHex("ffc107"),
	models.LabelNegative: drawing.ColorFromHex("f44336"),
}

// renderDistributionChart draws the per-label post counts as a bar chart
// PNG under dir and returns its path.
func renderDistributionChart(snapshot *models.ReportSnapshot, dir string) (string, error) {
	labels := []models.SentimentLabel{models.LabelPositive, models.LabelNeutral, models.LabelNegative}

	bars := make([]chart.Value, 0, len(labels))
	for _, label := range labels {
		bars = append(bars, chart.Value{
			Label: string(label),
			Value: float64(snapshot.Metrics.Distribution[label].Count),
			Style: chart.Style{FillColor: labelColors[label], StrokeColor: labelColors[label]},
		})
	}

	graph := chart.BarChart{
		Title:      "Sentiment Distribution",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      1024,
		Height:     512,
		BarWidth:   120,
		Bars:       bars,
	}

	return saveChart(dir, "sentiment.png", func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// renderTrendChart draws the daily mean compound series. Needs at least
// two days of data to make a line.
func renderTrendChart(daily []models.DailyStat, dir string) (string, error) {
	if len(daily) < 2 {
		return "", fmt.Errorf("trend chart needs at least 2 days, have %d", len(daily))
	}

	xs := make([]float64, len(daily))
	ys := make([]float64, len(daily))
	for i, stat := range daily {
		xs[i] = float64(stat.Date.Unix())
		ys[i] = stat.AvgSentiment
	}

	graph := chart.Chart{
		Title:  "Daily Average Sentiment",
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return timeFromUnix(f).Format("2006-01-02")
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "avg sentiment",
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("2196f3"),
					DotColor:    drawing.ColorFromHex("2196f3"),
					DotWidth:    4,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	return saveChart(dir, "trend.png", func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// renderCategoryChart draws per-category post counts, top five categories.
func renderCategoryChart(categories []models.CategoryStat, dir string) (string, error) {
	if len(categories) == 0 {
		return "", fmt.Errorf("no category data")
	}

	if len(categories) > 5 {
		categories = categories[:5]
	}

	bars := make([]chart.Value, 0, len(categories))
	for _, cat := range categories {
		bars = append(bars, chart.Value{
			Label: cat.Name,
			Value: float64(cat.PostCount),
			Style: chart.Style{FillColor: drawing.ColorFromHex("9e9e9e"), StrokeColor: drawing.ColorFromHex("9e9e9e")},
		})
	}

	graph := chart.BarChart{
		Title:      "Category Analysis (Top 5)",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      1024,
		Height:     512,
		BarWidth:   120,
		Bars:       bars,
	}

	return saveChart(dir, "category.png", func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

func timeFromUnix(v float64) time.Time {
	return time.Unix(int64(v), 0).UTC()
}

func saveChart(dir, name string, render func(*os.File) error) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := render(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
