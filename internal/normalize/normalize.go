package normalize

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"redditpulse/internal/models"
	"redditpulse/internal/sentiment"
)

const cacheTTL = 24 * time.Hour

// Cache is the optional second-level store for normalized collections.
// Satisfied by clients.ValkeyCache.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Normalizer validates raw collections and derives the date and label
// columns. Results are memoized by a content hash of the input, so the
// same input never recomputes; hits and misses produce identical output.
type Normalizer struct {
	cache Cache
	mem   map[string]models.PostCollection
}

func New(cache Cache) *Normalizer {
	return &Normalizer{
		cache: cache,
		mem:   make(map[string]models.PostCollection),
	}
}

// Normalize rejects collections missing a required field, then derives
// each post's calendar date from its timestamp and its label from its
// compound score. Idempotent: normalizing twice equals normalizing once.
func (n *Normalizer) Normalize(ctx context.Context, coll models.PostCollection) (models.PostCollection, error) {
	if err := Validate(coll); err != nil {
		return nil, err
	}

	key, err := contentHash(coll)
	if err != nil {
		return nil, err
	}

	if cached, ok := n.mem[key]; ok {
		return cached.Clone(), nil
	}

	if n.cache != nil {
		if data, ok := n.cache.Get(ctx, key); ok {
			var cached models.PostCollection
			if err := json.Unmarshal(data, &cached); err == nil {
				n.mem[key] = cached
				return cached.Clone(), nil
			}
			slog.Warn("[Normalizer] Discarding undecodable cache entry",
				slog.String("key", key))
		}
	}

	out := coll.Clone()
	for i := range out {
		out[i].Date = truncateToDay(out[i].CreatedAt)
		out[i].Label = sentiment.Classify(out[i].SentimentCompound)
	}

	n.mem[key] = out
	if n.cache != nil {
		if data, err := json.Marshal(out); err == nil {
			if err := n.cache.Set(ctx, key, data, cacheTTL); err != nil {
				slog.Warn("[Normalizer] Failed to cache normalized collection",
					slog.String("error", err.Error()))
			}
		}
	}

	return out.Clone(), nil
}

// Validate enforces the required-field contract: every post needs a
// title and a creation timestamp. Compound scores are attached at ingest
// and only range-checked here.
func Validate(coll models.PostCollection) error {
	for i, p := range coll {
		if p.Title == "" {
			return models.NewValidationError("post %d is missing a title", i)
		}
		if p.CreatedAt.IsZero() {
			return models.NewValidationError("post %d is missing a creation timestamp", i)
		}
		if p.SentimentCompound < -1 || p.SentimentCompound > 1 {
			return models.NewValidationError("post %d compound score %v outside [-1, 1]", i, p.SentimentCompound)
		}
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func contentHash(coll models.PostCollection) (string, error) {
	raw, err := json.Marshal(coll)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
