package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"redditpulse/config"
	"redditpulse/internal/analytics"
	"redditpulse/internal/clients"
	"redditpulse/internal/export"
	"redditpulse/internal/keywords"
	"redditpulse/internal/logging"
	"redditpulse/internal/models"
	"redditpulse/internal/normalize"
	"redditpulse/internal/report"
	"redditpulse/internal/sentiment"
)

const dateLayout = "2006-01-02"

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if err := run(); err != nil {
		slog.Error("[Dashboard] Run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	var (
		keyword  = flag.String("keyword", "python", "subreddit keyword to search for")
		limit    = flag.Int("limit", 100, "maximum number of posts to fetch")
		csvIn    = flag.String("csv", "", "ingest posts from a CSV file instead of fetching")
		start    = flag.String("start", "2018-03-14", "filter start date (YYYY-MM-DD)")
		end      = flag.String("end", time.Now().Format(dateLayout), "filter end date (YYYY-MM-DD)")
		minScore = flag.Int("min-score", 0, "minimum post score")
		sortBy   = flag.String("sort", "score", "top-post criterion: score, comments, recency, sentiment")
		topCount = flag.Int("top", 10, "number of top posts to log")
		outDir   = flag.String("out", ".", "directory for exported artifacts")
	)
	flag.Parse()

	cfg := config.FromEnv()
	analyzer := sentiment.NewAnalyzer()
	ctx := context.Background()

	params, err := parseFilterParams(*start, *end, *minScore)
	if err != nil {
		return err
	}

	extractor, err := keywords.NewExtractor(cfg.ExtractorStrategy)
	if err != nil {
		return err
	}

	raw, err := loadPosts(ctx, cfg, analyzer, *csvIn, *keyword, *limit)
	if err != nil {
		return err
	}

	normalizer := normalize.New(openCache(cfg))
	normalized, err := normalizer.Normalize(ctx, raw)
	if err != nil {
		return err
	}

	filtered, err := analytics.Filter(normalized, params)
	if err != nil {
		return err
	}

	slog.Info("[Dashboard] Filter applied",
		slog.Int("raw", len(normalized)),
		slog.Int("filtered", len(filtered)))

	if len(filtered) == 0 {
		slog.Warn("[Dashboard] No posts match the filters; nothing to export")
		return nil
	}

	logTopPosts(filtered, analytics.SortCriterion(*sortBy), *topCount)

	regionTerms := cfg.RegionKeywords
	if len(regionTerms) == 0 {
		regionTerms = keywords.DefaultRegionKeywords
	}
	logRegionFocus(filtered, regionTerms, *keyword, extractor)

	categories := keywords.Tag(filtered, keywords.DefaultIndustries, *keyword)

	return exportArtifacts(filtered, categories, *keyword, *outDir)
}

func parseFilterParams(start, end string, minScore int) (models.FilterParams, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return models.FilterParams{}, models.NewValidationError("bad start date %q", start)
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return models.FilterParams{}, models.NewValidationError("bad end date %q", end)
	}

	params := models.FilterParams{StartDate: startDate, EndDate: endDate, MinScore: minScore}
	if err := params.Validate(); err != nil {
		return models.FilterParams{}, err
	}
	return params, nil
}

func loadPosts(ctx context.Context, cfg config.Config, analyzer *sentiment.Analyzer, csvIn, keyword string, limit int) (models.PostCollection, error) {
	if csvIn != "" {
		f, err := os.Open(csvIn)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		posts, err := export.ReadCSV(f)
		if err != nil {
			return nil, err
		}
		slog.Info("[Dashboard] Loaded posts from CSV",
			slog.String("file", csvIn),
			slog.Int("count", len(posts)))
		return posts, nil
	}

	rc := clients.NewRedditClient(cfg.RedditClientID, cfg.RedditClientSecret, analyzer)
	return rc.FetchPosts(ctx, keyword, limit, clients.RetryPolicy{
		MaxAttempts:       cfg.FetchMaxAttempts,
		PerAttemptTimeout: cfg.FetchTimeout,
	})
}

func openCache(cfg config.Config) normalize.Cache {
	if cfg.ValkeyAddr == "" {
		return nil
	}

	cache, err := clients.DialValkey(cfg.ValkeyAddr, cfg.ValkeyPassword, cfg.ValkeyTLS)
	if err != nil {
		slog.Warn("[Dashboard] Valkey unavailable, using in-memory cache only",
			slog.String("error", err.Error()))
		return nil
	}
	return cache
}

func logTopPosts(coll models.PostCollection, criterion analytics.SortCriterion, n int) {
	top, err := analytics.TopN(coll, criterion, n)
	if err != nil {
		slog.Warn("[Dashboard] Skipping top posts", slog.String("error", err.Error()))
		return
	}

	for i, p := range top {
		slog.Info("[Dashboard] Top post",
			slog.Int("rank", i+1),
			slog.String("title", p.Title),
			slog.Int("score", p.Score),
			slog.String("sentiment", string(p.Label)))
	}
}

func logRegionFocus(coll models.PostCollection, regionTerms []string, searchTerm string, extractor keywords.Extractor) {
	metrics, err := keywords.RegionFocus(coll, regionTerms, searchTerm, extractor)
	if err != nil {
		slog.Info("[Dashboard] No region focus data", slog.String("reason", err.Error()))
		return
	}

	slog.Info("[Dashboard] Region focus",
		slog.Int("posts", metrics.PostCount),
		slog.String("avg_sentiment", fmt.Sprintf("%.2f", metrics.AvgSentiment)),
		slog.Any("top_keywords", metrics.TopKeywords))
}

func exportArtifacts(filtered models.PostCollection, categories []models.CategoryStat, searchTerm, outDir string) error {
	now := time.Now()
	stamp := now.Format("20060102_1504")

	csvPath := filepath.Join(outDir, fmt.Sprintf("reddit_sentiment_%s.csv", now.Format(dateLayout)))
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer csvFile.Close()
	if err := export.WriteCSV(filtered, csvFile); err != nil {
		return err
	}
	slog.Info("[Dashboard] Wrote CSV export", slog.String("path", csvPath))

	snapshot, err := report.BuildSnapshot(filtered, searchTerm, now, categories)
	if err != nil {
		return err
	}

	jsonPath := filepath.Join(outDir, fmt.Sprintf("Reddit_Report_%s.json", stamp))
	jsonFile, err := os.Create(jsonPath)
	if err != nil {
		return err
	}
	defer jsonFile.Close()
	if err := report.WriteJSON(snapshot, jsonFile); err != nil {
		return err
	}
	slog.Info("[Dashboard] Wrote JSON report", slog.String("path", jsonPath))

	pdfPath := filepath.Join(outDir, fmt.Sprintf("Reddit_Report_%s.pdf", stamp))
	pdfFile, err := os.Create(pdfPath)
	if err != nil {
		return err
	}
	defer pdfFile.Close()
	if err := report.RenderPDF(snapshot, pdfFile); err != nil {
		return err
	}
	slog.Info("[Dashboard] Wrote PDF report", slog.String("path", pdfPath))

	return nil
}
