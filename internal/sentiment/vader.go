package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"redditpulse/internal/models"
)

const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Scores holds the VADER component weights (non-negative, summing to 1)
// and the compound score in [-1, 1].
type Scores struct {
	Negative float64
	Neutral  float64
	Positive float64
	Compound float64
}

// Analyzer wraps the VADER lexicon analyzer. Scoring is deterministic and
// needs no network or state, so one analyzer serves the whole process.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Scores runs text through VADER after stripping markdown and links.
// Reddit selftext is markdown; the raw markup skews the lexicon.
func (a *Analyzer) Scores(text string) Scores {
	s := a.vader.PolarityScores(ConvertMarkdownToText(text))
	return Scores{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}
}

// Classify maps a compound score to its three-way label. The thresholds do
// not overlap; the gap between them is the neutral band.
func Classify(compound float64) models.SentimentLabel {
	switch {
	case compound >= PositiveThreshold:
		return models.LabelPositive
	case compound <= NegativeThreshold:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := RemoveLinks(stripTags(string(output)))

	return strings.Join(strings.Fields(plainText), " ")
}

func stripTags(input string) string {
	tagPattern := regexp.MustCompile(`<[^>]*>`)
	return tagPattern.ReplaceAllString(input, " ")
}
