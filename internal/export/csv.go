package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"redditpulse/internal/models"
)

var requiredColumns = []string{"title", "sentiment_compound", "created"}

// csvRow is the delimited-text projection of a Post. Timestamps travel as
// RFC 3339 so exports round-trip through uploads.
type csvRow struct {
	Title             string  `csv:"title"`
	Text              string  `csv:"text"`
	Score             int     `csv:"score"`
	NumComments       int     `csv:"num_comments"`
	Created           string  `csv:"created"`
	URL               string  `csv:"url"`
	SentimentNeg      float64 `csv:"sentiment_neg"`
	SentimentNeu      float64 `csv:"sentiment_neu"`
	SentimentPos      float64 `csv:"sentiment_pos"`
	SentimentCompound float64 `csv:"sentiment_compound"`
	Date              string  `csv:"date"`
	Sentiment         string  `csv:"sentiment"`
}

// WriteCSV emits every column of the collection with a header row.
func WriteCSV(coll models.PostCollection, w io.Writer) error {
	rows := make([]*csvRow, 0, len(coll))
	for _, p := range coll {
		row := &csvRow{
			Title:             p.Title,
			Text:              p.Text,
			Score:             p.Score,
			NumComments:       p.NumComments,
			Created:           p.CreatedAt.Format(time.RFC3339),
			URL:               p.URL,
			SentimentNeg:      p.SentimentNeg,
			SentimentNeu:      p.SentimentNeu,
			SentimentPos:      p.SentimentPos,
			SentimentCompound: p.SentimentCompound,
			Sentiment:         string(p.Label),
		}
		if !p.Date.IsZero() {
			row.Date = p.Date.Format("2006-01-02")
		}
		rows = append(rows, row)
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("[CSVExport] write failed: %w", err)
	}
	return nil
}

// ReadCSV ingests an uploaded table. The header row must carry the
// required columns before any row is parsed; anything less is a
// ValidationError, not a partial import.
func ReadCSV(r io.Reader) (models.PostCollection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("[CSVExport] read failed: %w", err)
	}

	if err := validateHeader(data); err != nil {
		return nil, err
	}

	var rows []*csvRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, models.NewValidationError("malformed CSV: %v", err)
	}

	coll := make(models.PostCollection, 0, len(rows))
	for i, row := range rows {
		created, err := parseTimestamp(row.Created)
		if err != nil {
			return nil, models.NewValidationError("row %d: bad created timestamp %q", i+1, row.Created)
		}

		coll = append(coll, models.Post{
			Title:             row.Title,
			Text:              row.Text,
			Score:             row.Score,
			NumComments:       row.NumComments,
			CreatedAt:         created,
			URL:               row.URL,
			SentimentNeg:      row.SentimentNeg,
			SentimentNeu:      row.SentimentNeu,
			SentimentPos:      row.SentimentPos,
			SentimentCompound: row.SentimentCompound,
		})
	}
	return coll, nil
}

func validateHeader(data []byte) error {
	reader := csv.NewReader(bytes.NewReader(data))
	header, err := reader.Read()
	if err != nil {
		return models.NewValidationError("cannot read CSV header: %v", err)
	}

	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return models.NewValidationError("missing required column %q", col)
		}
	}
	return nil
}

func parseTimestamp(raw string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}
