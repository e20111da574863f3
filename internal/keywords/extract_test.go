package keywords

import (
	"reflect"
	"testing"
)

var extractorImpls = []struct {
	name string
	ex   Extractor
}{
	{"frequency", &FrequencyExtractor{MinTokenLen: DefaultMinTokenLen}},
	{"vectorizer", &VectorizerExtractor{MinTokenLen: DefaultMinTokenLen}},
}

func TestTopKeywords_CountsAndOrder(t *testing.T) {
	titles := []string{
		"housing market housing crisis",
		"market update today",
		"housing report",
	}

	for _, impl := range extractorImpls {
		t.Run(impl.name, func(t *testing.T) {
			got := impl.ex.TopKeywords(titles, 3)
			want := []string{"housing", "market", "crisis"}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("TopKeywords = %v, want %v", got, want)
			}
		})
	}
}

func TestTopKeywords_TiesByFirstEncounter(t *testing.T) {
	titles := []string{"zebra apple", "apple zebra"}

	for _, impl := range extractorImpls {
		t.Run(impl.name, func(t *testing.T) {
			got := impl.ex.TopKeywords(titles, 2)
			want := []string{"zebra", "apple"}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("TopKeywords = %v, want %v (ties break by first encounter)", got, want)
			}
		})
	}
}

func TestTopKeywords_DropsShortAndStopTokens(t *testing.T) {
	titles := []string{"the AI of it is on going strong going"}

	for _, impl := range extractorImpls {
		t.Run(impl.name, func(t *testing.T) {
			got := impl.ex.TopKeywords(titles, 10)
			for _, token := range got {
				if len([]rune(token)) < DefaultMinTokenLen {
					t.Errorf("short token %q survived", token)
				}
				if _, stop := StopWords[token]; stop {
					t.Errorf("stop word %q survived", token)
				}
			}
			if got[0] != "going" {
				t.Errorf("top token = %q, want %q", got[0], "going")
			}
		})
	}
}

func TestTopKeywords_KLargerThanVocabulary(t *testing.T) {
	titles := []string{"only couple words"}

	for _, impl := range extractorImpls {
		t.Run(impl.name, func(t *testing.T) {
			got := impl.ex.TopKeywords(titles, 50)
			if len(got) != 3 {
				t.Errorf("got %d keywords, want 3", len(got))
			}
		})
	}
}

// The vectorized strategy must stay output-compatible with the reference
// frequency strategy.
func TestExtractors_Compatible(t *testing.T) {
	titles := []string{
		"Morocco tourism numbers climbing this summer",
		"Casablanca property market heats up",
		"tourism boost for Casablanca hotels",
		"property investors eye Morocco",
	}

	freq := (&FrequencyExtractor{MinTokenLen: DefaultMinTokenLen}).TopKeywords(titles, 5)
	vec := (&VectorizerExtractor{MinTokenLen: DefaultMinTokenLen}).TopKeywords(titles, 5)

	if !reflect.DeepEqual(freq, vec) {
		t.Errorf("strategies diverged:\nfrequency:  %v\nvectorizer: %v", freq, vec)
	}
}

func TestNewExtractor(t *testing.T) {
	tests := []struct {
		strategy string
		wantErr  bool
	}{
		{"", false},
		{"frequency", false},
		{"vectorizer", false},
		{"sklearn", true},
	}

	for _, tt := range tests {
		t.Run("strategy "+tt.strategy, func(t *testing.T) {
			ex, err := NewExtractor(tt.strategy)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewExtractor(%q) error = %v", tt.strategy, err)
			}
			if ex == nil {
				t.Fatal("NewExtractor returned nil extractor")
			}
		})
	}
}
