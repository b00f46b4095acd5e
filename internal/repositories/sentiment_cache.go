package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-mood-journal/internal/common"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
)

// SentimentCacheRepository caches remote sentiment scores in Redis keyed by a
// hash of the normalized text.
type SentimentCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached scores
}

func NewSentimentCacheRepository(client *redis.Client, expiration time.Duration) *SentimentCacheRepository {
	return &SentimentCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// sentimentKey hashes the trimmed text. Case is preserved.
func sentimentKey(text string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(text)))
	return "sentiment:" + hex.EncodeToString(sum[:])
}

// Get returns the cached score for text, or common.ErrNotFound.
func (r *SentimentCacheRepository) Get(ctx context.Context, text string) (float64, error) {
	key := sentimentKey(text)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return 0, common.ErrNotFound
		}
		return 0, err
	}

	score, err := strconv.ParseFloat(val, 64)
	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", score,
		"error", err,
	)
	if err != nil {
		return 0, err
	}
	return score, nil
}

// Set stores the score for text with the repository expiration.
func (r *SentimentCacheRepository) Set(ctx context.Context, text string, score float64) error {
	key := sentimentKey(text)
	err := r.client.Set(ctx, key, strconv.FormatFloat(score, 'f', -1, 64), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"score", score,
		"result", "ok",
		"error", err,
	)

	return err
}
