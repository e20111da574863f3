package models

import "time"

// DailyStat is one group-by-date bucket.
type DailyStat struct {
	Date         time.Time `json:"date"`
	AvgSentiment float64   `json:"avg_sentiment"`
	PostCount    int       `json:"post_count"`
}

// CategoryStat is one keyword-category bucket. Categories with zero
// matching posts are never emitted.
type CategoryStat struct {
	Name         string  `json:"category"`
	PostCount    int     `json:"post_count"`
	AvgSentiment float64 `json:"avg_sentiment"`
}

type LabelCount struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type TopPost struct {
	Title       string         `json:"title"`
	Label       SentimentLabel `json:"sentiment"`
	Score       int            `json:"score"`
	NumComments int            `json:"num_comments"`
}

// ReportSnapshot is the point-in-time summary shared by the JSON and PDF
// export paths. Both artifacts render exactly these numbers.
type ReportSnapshot struct {
	Metadata ReportMetadata `json:"metadata"`
	Metrics  ReportMetrics  `json:"metrics"`
	TopPosts []TopPost      `json:"top_posts"`

	Daily      []DailyStat    `json:"daily,omitempty"`
	Categories []CategoryStat `json:"categories,omitempty"`
}

type ReportMetadata struct {
	SearchTerm   string    `json:"search_term"`
	AnalysisDate time.Time `json:"analysis_date"`
	TotalPosts   int       `json:"total_posts"`
}

type ReportMetrics struct {
	AverageSentiment float64                        `json:"average_sentiment"`
	Distribution     map[SentimentLabel]LabelCount `json:"distribution"`
}
