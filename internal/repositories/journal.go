package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
)

const entryColumns = `entry_id, user_id, content, sentiment_score, emotion, emotion_category, created_at, updated_at`

// JournalWriteRepository handles journal entry writes
type JournalWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewJournalWriteRepository(db *sqlx.DB, txGetter TxGetter) *JournalWriteRepository {
	return &JournalWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts the entry and fills in its id and timestamps.
func (r *JournalWriteRepository) Create(ctx context.Context, entry *models.JournalEntryDB) error {
	const query = `
		INSERT INTO journal_entries (entry_id, user_id, content, sentiment_score, emotion, emotion_category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if entry.EntryID == uuid.Nil {
		entry.EntryID = uuid.New()
	}
	args := []any{entry.EntryID, entry.UserID, entry.Content, entry.SentimentScore, entry.Emotion, entry.EmotionCategory}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&entry.CreatedAt, &entry.UpdatedAt)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{entry.EntryID, entry.UserID, entry.SentimentScore, entry.Emotion},
		"result", entry.CreatedAt,
		"error", err,
	)

	return err
}

// JournalReadRepository handles journal entry reads
type JournalReadRepository struct {
	db *sqlx.DB
}

func NewJournalReadRepository(db *sqlx.DB) *JournalReadRepository {
	return &JournalReadRepository{db: db}
}

// ListByUser returns the user's entries newest first, optionally only those
// with the given emotion label. limit <= 0 means no limit.
func (r *JournalReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, emotion *string, limit int) ([]models.JournalEntryDB, error) {
	const query = `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE user_id = $1
		  AND ($2::VARCHAR IS NULL OR emotion = $2)
		ORDER BY created_at DESC
		LIMIT NULLIF($3, 0)
	`
	if limit < 0 {
		limit = 0
	}
	return r.list(ctx, query, userID, emotion, limit)
}

// ListSince returns the user's entries created at or after since, oldest first.
func (r *JournalReadRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.JournalEntryDB, error) {
	const query = `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`
	return r.list(ctx, query, userID, since)
}

func (r *JournalReadRepository) list(ctx context.Context, query string, args ...any) ([]models.JournalEntryDB, error) {
	entries := []models.JournalEntryDB{}
	err := sqlx.SelectContext(ctx, r.db, &entries, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
