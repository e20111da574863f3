package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"redditpulse/internal/models"
	"redditpulse/internal/sentiment"
)

const (
	REDDIT_AUTH_URL = "https://www.reddit.com/api/v1/access_token"
	REDDIT_API_URL  = "https://oauth.reddit.com"
)

// RetryPolicy bounds a fetch. There is no backoff or jitter; failed
// attempts are retried as-is until the budget runs out.
type RetryPolicy struct {
	MaxAttempts       int
	PerAttemptTimeout time.Duration
}

type RedditClient struct {
	config   *clientcredentials.Config
	client   *http.Client
	analyzer *sentiment.Analyzer
	apiURL   string
}

func NewRedditClient(clientID, clientSecret string, analyzer *sentiment.Analyzer) *RedditClient {
	oauthConf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     REDDIT_AUTH_URL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	return &RedditClient{
		config:   oauthConf,
		client:   oauthConf.Client(context.Background()),
		analyzer: analyzer,
		apiURL:   REDDIT_API_URL,
	}
}

func (rc *RedditClient) refreshClient() {
	if rc.config == nil {
		return
	}
	rc.client = rc.config.Client(context.Background())
}

// FetchPosts searches r/all for keyword and returns posts scored at
// ingest. Retry exhaustion surfaces as a FetchError, never as an empty
// success.
func (rc *RedditClient) FetchPosts(ctx context.Context, keyword string, limit int, policy RetryPolicy) (models.PostCollection, error) {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		attemptCtx := ctx
		var cancel context.CancelFunc
		if policy.PerAttemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, policy.PerAttemptTimeout)
		}

		posts, err := rc.fetchOnce(attemptCtx, keyword, limit)
		if cancel != nil {
			cancel()
		}
		if err == nil {
			slog.Info("[RedditClient] Fetched posts",
				slog.String("keyword", keyword),
				slog.Int("count", len(posts)))
			return posts, nil
		}

		lastErr = err
		slog.Warn("[RedditClient] Fetch attempt failed",
			slog.String("keyword", keyword),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))

		if ctx.Err() != nil {
			break
		}
	}

	return nil, &models.FetchError{Query: keyword, Attempts: policy.MaxAttempts, Err: lastErr}
}

func (rc *RedditClient) fetchOnce(ctx context.Context, keyword string, limit int) (models.PostCollection, error) {
	parsedUrl, err := url.Parse(rc.apiURL + "/r/all/search")
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to parse URL: %w", err)
	}
	queryParams := parsedUrl.Query()
	queryParams.Add("q", keyword)
	queryParams.Add("sort", "top")
	queryParams.Add("limit", strconv.Itoa(limit))
	parsedUrl.RawQuery = queryParams.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedUrl.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := rc.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		slog.Warn("[RedditClient] Token expired - Refreshing client")
		rc.refreshClient()
		return nil, fmt.Errorf("[RedditClient] unauthorized, token refreshed")
	default:
		return nil, fmt.Errorf("[RedditClient] unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var listing models.RedditAPIResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("[RedditClient] malformed listing: %w", err)
	}

	return rc.toPosts(listing), nil
}

func (rc *RedditClient) toPosts(listing models.RedditAPIResponse) models.PostCollection {
	posts := make(models.PostCollection, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		d := child.Data
		scores := rc.analyzer.Scores(d.Title + " " + d.Selftext)
		posts = append(posts, models.Post{
			Title:             d.Title,
			Text:              d.Selftext,
			Score:             d.Ups,
			NumComments:       d.NumComments,
			CreatedAt:         time.Unix(int64(d.CreatedUTC), 0).UTC(),
			URL:               d.URL,
			SentimentNeg:      scores.Negative,
			SentimentNeu:      scores.Neutral,
			SentimentPos:      scores.Positive,
			SentimentCompound: scores.Compound,
		})
	}
	return posts
}
