package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"redditpulse/internal/models"
	"redditpulse/internal/sentiment"
)

const listingFixture = `{
	"data": {
		"after": "",
		"children": [
			{"data": {"subreddit": "python", "title": "Go is great", "selftext": "really enjoying it", "ups": 42, "num_comments": 7, "created_utc": 1700000000, "url": "https://example.com/a", "id": "abc"}},
			{"data": {"subreddit": "python", "title": "Another post", "selftext": "", "ups": 3, "num_comments": 1, "created_utc": 1700086400, "url": "https://example.com/b", "id": "def"}}
		]
	}
}`

func testClient(t *testing.T, handler http.HandlerFunc) *RedditClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &RedditClient{
		client:   srv.Client(),
		analyzer: sentiment.NewAnalyzer(),
		apiURL:   srv.URL,
	}
}

func TestFetchPosts_Success(t *testing.T) {
	rc := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "golang" {
			t.Errorf("query q = %q, want %q", got, "golang")
		}
		if got := r.URL.Query().Get("limit"); got != "50" {
			t.Errorf("query limit = %q, want %q", got, "50")
		}
		w.Write([]byte(listingFixture))
	})

	posts, err := rc.FetchPosts(context.Background(), "golang", 50, RetryPolicy{MaxAttempts: 3})
	if err != nil {
		t.Fatalf("FetchPosts() error = %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}

	first := posts[0]
	if first.Title != "Go is great" {
		t.Errorf("Title = %q, want %q", first.Title, "Go is great")
	}
	if first.Score != 42 || first.NumComments != 7 {
		t.Errorf("Score/NumComments = %d/%d, want 42/7", first.Score, first.NumComments)
	}
	if first.CreatedAt.IsZero() {
		t.Error("CreatedAt not derived from created_utc")
	}
	if first.SentimentCompound == 0 {
		t.Error("expected a nonzero compound score for clearly positive text")
	}
}

func TestFetchPosts_RetriesThenFails(t *testing.T) {
	var calls int
	rc := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := rc.FetchPosts(context.Background(), "golang", 10, RetryPolicy{MaxAttempts: 3})
	if err == nil {
		t.Fatal("expected error after retry exhaustion")
	}
	if calls != 3 {
		t.Errorf("server saw %d attempts, want 3", calls)
	}

	var fetchErr *models.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error type = %T, want *models.FetchError", err)
	}
	if fetchErr.Attempts != 3 {
		t.Errorf("FetchError.Attempts = %d, want 3", fetchErr.Attempts)
	}
}

func TestFetchPosts_MalformedBody(t *testing.T) {
	rc := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := rc.FetchPosts(context.Background(), "golang", 10, RetryPolicy{MaxAttempts: 1})

	var fetchErr *models.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error type = %T, want *models.FetchError", err)
	}
}

func TestFetchPosts_ContextCancelStopsRetries(t *testing.T) {
	var calls int
	ctx, cancel := context.WithCancel(context.Background())
	rc := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		cancel()
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := rc.FetchPosts(ctx, "golang", 10, RetryPolicy{MaxAttempts: 5})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("server saw %d attempts after cancel, want 1", calls)
	}
}
