package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-mood-journal/internal/common"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/meditation"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"github.com/sbilibin2017/gw-mood-journal/internal/sentiment"
)

var (
	ErrInvalidContent  = errors.New("journal entry must be between 10 and 10000 characters")
	ErrInvalidCategory = errors.New("emotion category must be at most 20 characters")
	ErrInvalidScore    = errors.New("sentiment score out of range")
)

const (
	DefaultTrendDays = 7
	SourceCache      = "cache"
)

// EntryWriter persists journal entries.
type EntryWriter interface {
	Create(ctx context.Context, entry *models.JournalEntryDB) error
}

// EntryReader reads journal entries.
type EntryReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, emotion *string, limit int) ([]models.JournalEntryDB, error)
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.JournalEntryDB, error)
}

// Classifier scores entry text.
type Classifier interface {
	Classify(ctx context.Context, text string) sentiment.Result
}

// ScoreCache remembers remote scores between identical entries.
type ScoreCache interface {
	Get(ctx context.Context, text string) (float64, error)
	Set(ctx context.Context, text string, score float64) error
}

// Publisher emits domain events.
type Publisher interface {
	Publish(ctx context.Context, eventType string, userID uuid.UUID, payload map[string]any)
}

// JournalService classifies, stores and aggregates journal entries.
type JournalService struct {
	writer     EntryWriter
	reader     EntryReader
	classifier Classifier
	cache      ScoreCache
	publisher  Publisher
	timeout    time.Duration
}

// NewJournalService creates a JournalService. cache may be nil. timeout bounds
// classification of a single entry; zero means no extra bound.
func NewJournalService(
	writer EntryWriter,
	reader EntryReader,
	classifier Classifier,
	cache ScoreCache,
	publisher Publisher,
	timeout time.Duration,
) *JournalService {
	return &JournalService{
		writer:     writer,
		reader:     reader,
		classifier: classifier,
		cache:      cache,
		publisher:  publisher,
		timeout:    timeout,
	}
}

// Submit validates, classifies and saves a new entry, and recommends a
// meditation for it. Invalid input is rejected before any classification.
func (s *JournalService) Submit(ctx context.Context, userID uuid.UUID, content, category string) (*models.JournalEntryDB, models.Recommendation, error) {
	text, ok := models.ValidateContent(content)
	if !ok {
		return nil, models.Recommendation{}, ErrInvalidContent
	}
	emotionCategory, ok := models.ValidateCategory(category)
	if !ok {
		return nil, models.Recommendation{}, ErrInvalidCategory
	}

	result := s.classify(ctx, text)
	if !models.ValidScore(result.Score) {
		logger.Log.Errorw("classifier returned out of range score", "score", result.Score, "source", result.Source)
		return nil, models.Recommendation{}, ErrInvalidScore
	}

	score := result.Score
	entry := &models.JournalEntryDB{
		EntryID:         uuid.New(),
		UserID:          userID,
		Content:         text,
		SentimentScore:  &score,
		Emotion:         result.Label,
		EmotionCategory: emotionCategory,
	}
	if err := s.writer.Create(ctx, entry); err != nil {
		logger.Log.Errorw("failed to save journal entry", "user_id", userID, "error", err)
		return nil, models.Recommendation{}, err
	}

	emotion := result.Label
	if emotionCategory != nil {
		emotion = *emotionCategory
	}
	rec := meditation.Recommend(score, emotion)

	s.publisher.Publish(ctx, models.EventEntryCreated, userID, map[string]any{
		"entry_id": entry.EntryID.String(),
		"score":    score,
		"emotion":  entry.Emotion,
		"source":   result.Source,
	})

	logger.Log.Infow("journal entry saved",
		"entry_id", entry.EntryID, "user_id", userID, "score", score, "emotion", entry.Emotion, "source", result.Source)
	return entry, rec, nil
}

func (s *JournalService) classify(ctx context.Context, text string) sentiment.Result {
	if s.cache != nil {
		score, err := s.cache.Get(ctx, text)
		switch {
		case err == nil && models.ValidScore(score):
			return sentiment.Result{Score: score, Label: sentiment.Label(score), Source: SourceCache}
		case err != nil && !errors.Is(err, common.ErrNotFound):
			logger.Log.Warnw("sentiment cache unavailable", "error", err)
		}
	}

	cctx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	result := s.classifier.Classify(cctx, text)

	if s.cache != nil && result.Source != sentiment.SourceKeyword && result.Source != sentiment.SourceDefault {
		if err := s.cache.Set(ctx, text, result.Score); err != nil {
			logger.Log.Warnw("failed to cache sentiment score", "error", err)
		}
	}
	return result
}

// List returns the user's entries newest first. An empty emotion lists all.
func (s *JournalService) List(ctx context.Context, userID uuid.UUID, emotion string, limit int) ([]models.JournalEntryDB, error) {
	var filter *string
	if e := strings.TrimSpace(emotion); e != "" {
		filter = &e
	}
	entries, err := s.reader.ListByUser(ctx, userID, filter, limit)
	if err != nil {
		logger.Log.Errorw("failed to list journal entries", "user_id", userID, "error", err)
		return nil, err
	}
	return entries, nil
}

// Trend aggregates the entries of the trailing window of days, oldest first.
func (s *JournalService) Trend(ctx context.Context, userID uuid.UUID, days int) (*models.MoodTrend, error) {
	if days <= 0 {
		days = DefaultTrendDays
	}
	since := time.Now().UTC().Add(-time.Duration(days) * 24 * time.Hour)

	entries, err := s.reader.ListSince(ctx, userID, since)
	if err != nil {
		logger.Log.Errorw("failed to load mood trend", "user_id", userID, "error", err)
		return nil, err
	}

	trend := &models.MoodTrend{
		Dates:      make([]string, 0, len(entries)),
		Scores:     make([]float64, 0, len(entries)),
		MoodCounts: map[string]int{},
	}
	var sum float64
	for _, e := range entries {
		score := sentiment.NeutralScore
		if e.SentimentScore != nil {
			score = *e.SentimentScore
		}
		trend.Dates = append(trend.Dates, e.CreatedAt.UTC().Format("2006-01-02"))
		trend.Scores = append(trend.Scores, score)
		trend.MoodCounts[e.Emotion]++
		sum += score
	}
	trend.TotalEntries = len(entries)
	if trend.TotalEntries > 0 {
		trend.AverageScore = math.Round(sum/float64(trend.TotalEntries)*1000) / 1000
	}
	return trend, nil
}
