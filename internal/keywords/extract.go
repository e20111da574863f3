package keywords

import (
	"regexp"
	"sort"
	"strings"

	"redditpulse/internal/models"
)

const DefaultMinTokenLen = 3

// StopWords drops glue words from keyword extraction. Includes the Arabic
// particles the region lists need.
var StopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "that": {}, "this": {},
	"with": {}, "from": {}, "are": {}, "was": {}, "you": {},
	"ال": {}, "في": {}, "من": {}, "على": {}, "أن": {}, "هذا": {},
}

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Extractor produces the top-k most frequent keywords across a set of
// titles. The two implementations are substitutable; which one runs is a
// configuration choice, never a runtime fallback.
type Extractor interface {
	TopKeywords(titles []string, k int) []string
}

// NewExtractor resolves a configured strategy name. FrequencyExtractor is
// the reference behavior.
func NewExtractor(strategy string) (Extractor, error) {
	switch strategy {
	case "", "frequency":
		return &FrequencyExtractor{MinTokenLen: DefaultMinTokenLen}, nil
	case "vectorizer":
		return &VectorizerExtractor{MinTokenLen: DefaultMinTokenLen}, nil
	default:
		return nil, models.NewValidationError("unknown keyword extractor %q", strategy)
	}
}

// FrequencyExtractor tokenizes and counts by hand: lowercase word-boundary
// tokens, short tokens and stop words dropped, ties broken by
// first-encountered order.
type FrequencyExtractor struct {
	MinTokenLen int
}

func (e *FrequencyExtractor) TopKeywords(titles []string, k int) []string {
	counts := make(map[string]int)
	var order []string

	for _, title := range titles {
		for _, token := range tokenize(title, e.MinTokenLen) {
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	return rankTokens(counts, order, k)
}

// VectorizerExtractor builds a document-term count matrix over a fixed
// vocabulary and sums the columns. Same output contract as the frequency
// extractor; the interesting property is that the two stay compatible.
type VectorizerExtractor struct {
	MinTokenLen int
}

func (e *VectorizerExtractor) TopKeywords(titles []string, k int) []string {
	// First pass: vocabulary in first-encountered order.
	vocab := make(map[string]int)
	var terms []string
	docs := make([][]string, len(titles))
	for i, title := range titles {
		docs[i] = tokenize(title, e.MinTokenLen)
		for _, token := range docs[i] {
			if _, ok := vocab[token]; !ok {
				vocab[token] = len(terms)
				terms = append(terms, token)
			}
		}
	}

	// Second pass: per-document term vectors, then column sums.
	columns := make([]int, len(terms))
	for _, doc := range docs {
		vector := make([]int, len(terms))
		for _, token := range doc {
			vector[vocab[token]]++
		}
		for idx, n := range vector {
			columns[idx] += n
		}
	}

	counts := make(map[string]int, len(terms))
	for idx, term := range terms {
		counts[term] = columns[idx]
	}
	return rankTokens(counts, terms, k)
}

func tokenize(title string, minLen int) []string {
	if minLen <= 0 {
		minLen = DefaultMinTokenLen
	}

	var tokens []string
	for _, raw := range tokenPattern.FindAllString(title, -1) {
		token := strings.ToLower(raw)
		if len([]rune(token)) < minLen {
			continue
		}
		if _, stop := StopWords[token]; stop {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// rankTokens sorts by count descending, ties by first-encountered order,
// and keeps the top k.
func rankTokens(counts map[string]int, order []string, k int) []string {
	firstSeen := make(map[string]int, len(order))
	for idx, token := range order {
		firstSeen[token] = idx
	}

	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}
