package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinContentLength  = 10
	MaxContentLength  = 10000
	MaxCategoryLength = 20
)

// JournalEntryDB represents a journal entry record in the database
type JournalEntryDB struct {
	EntryID         uuid.UUID `json:"id" db:"entry_id"`
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	Content         string    `json:"content" db:"content"`
	SentimentScore  *float64  `json:"sentiment_score,omitempty" db:"sentiment_score"` // in [0, 1] when present
	Emotion         string    `json:"emotion" db:"emotion"`                           // sentiment label
	EmotionCategory *string   `json:"emotion_category,omitempty" db:"emotion_category"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// JournalRequest represents the JSON body for a new journal entry
// swagger:model JournalRequest
type JournalRequest struct {
	// required: true
	// example: Today I finally finished the project and I feel proud.
	Content string `json:"content"`

	// Optional free-form category chosen by the user
	// example: work
	EmotionCategory string `json:"emotion_category,omitempty"`
}

// Recommendation names a meditation session.
// swagger:model Recommendation
type Recommendation struct {
	// example: focus.mp3
	ID string `json:"id"`
	// example: Focus
	DisplayName string `json:"display_name"`
}

// JournalResponse is returned after an entry was saved
// swagger:model JournalResponse
type JournalResponse struct {
	Entry          JournalEntryDB `json:"entry"`
	Recommendation Recommendation `json:"recommendation"`
}

// MoodTrend aggregates a user's entries over a trailing window.
// swagger:model MoodTrend
type MoodTrend struct {
	Dates        []string       `json:"dates"`
	Scores       []float64      `json:"scores"`
	MoodCounts   map[string]int `json:"mood_counts"`
	TotalEntries int            `json:"total_entries"`
	AverageScore float64        `json:"average_score"`
}

// EntriesResponse lists journal entries newest first
// swagger:model EntriesResponse
type EntriesResponse struct {
	Entries []JournalEntryDB `json:"entries"`
}
