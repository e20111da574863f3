package models

import "time"

type SentimentLabel string

const (
	LabelPositive SentimentLabel = "Positive"
	LabelNeutral  SentimentLabel = "Neutral"
	LabelNegative SentimentLabel = "Negative"
)

// Post is a single Reddit submission with its VADER sentiment components.
// Date and Label are derived during normalization and are empty on a raw post.
type Post struct {
	Title             string    `json:"title"`
	Text              string    `json:"text,omitempty"`
	Score             int       `json:"score"`
	NumComments       int       `json:"num_comments"`
	CreatedAt         time.Time `json:"created"`
	URL               string    `json:"url,omitempty"`
	SentimentNeg      float64   `json:"sentiment_neg"`
	SentimentNeu      float64   `json:"sentiment_neu"`
	SentimentPos      float64   `json:"sentiment_pos"`
	SentimentCompound float64   `json:"sentiment_compound"`

	Date  time.Time      `json:"date,omitempty"`
	Label SentimentLabel `json:"sentiment,omitempty"`
}

// PostCollection is an ordered table of posts. Filtering and normalization
// return new collections; an existing collection is never mutated in place.
type PostCollection []Post

// Clone returns a copy that can be augmented without touching the original.
func (pc PostCollection) Clone() PostCollection {
	if pc == nil {
		return nil
	}
	out := make(PostCollection, len(pc))
	copy(out, pc)
	return out
}

type RedditAPIResponse struct {
	Data RedditAPIData `json:"data"`
}

type RedditAPIData struct {
	After    string           `json:"after"`
	Children []RedditAPIChild `json:"children"`
}

type RedditAPIChild struct {
	Data RedditAPIChildData `json:"data"`
}

type RedditAPIChildData struct {
	Subreddit   string  `json:"subreddit"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Ups         int     `json:"ups"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	URL         string  `json:"url"`
	ID          string  `json:"id"`
	Name        string  `json:"name"`
}
