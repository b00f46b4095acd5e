package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"github.com/sbilibin2017/gw-mood-journal/internal/services"
)

const maxListLimit = 100

// JournalSubmitter stores a classified entry.
type JournalSubmitter interface {
	Submit(ctx context.Context, userID uuid.UUID, content, category string) (*models.JournalEntryDB, models.Recommendation, error)
}

// JournalLister lists a user's entries.
type JournalLister interface {
	List(ctx context.Context, userID uuid.UUID, emotion string, limit int) ([]models.JournalEntryDB, error)
}

// NewCreateEntryHandler returns an HTTP handler that saves a journal entry.
// @Summary Write a journal entry
// @Description Scores the entry sentiment, stores it and recommends a meditation session
// @Tags journal
// @Accept json
// @Produce json
// @Param journalRequest body models.JournalRequest true "Journal entry"
// @Success 201 {object} models.JournalResponse "Entry saved"
// @Failure 400 {object} models.ErrorResponse "Invalid entry"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /journal [post]
// @Security BearerAuth
func NewCreateEntryHandler(svc JournalSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req models.JournalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entry, rec, err := svc.Submit(r.Context(), userID, req.Content, req.EmotionCategory)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidContent),
				errors.Is(err, services.ErrInvalidCategory):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("failed to save journal entry", "user_id", userID, "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.JournalResponse{
			Entry:          *entry,
			Recommendation: rec,
		})
	}
}

// NewListEntriesHandler returns an HTTP handler listing the user's entries.
// @Summary List journal entries
// @Description Returns the user's entries newest first, optionally filtered by emotion label
// @Tags journal
// @Produce json
// @Param emotion query string false "Emotion label filter" example(Positive)
// @Param limit query int false "Maximum number of entries (1-100)"
// @Success 200 {object} models.EntriesResponse "Entries"
// @Failure 400 {object} models.ErrorResponse "Invalid limit"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /journal [get]
// @Security BearerAuth
func NewListEntriesHandler(svc JournalLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > maxListLimit {
				writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
				return
			}
			limit = n
		}

		entries, err := svc.List(r.Context(), userID, r.URL.Query().Get("emotion"), limit)
		if err != nil {
			logger.Log.Errorw("failed to list journal entries", "user_id", userID, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}
		if entries == nil {
			entries = []models.JournalEntryDB{}
		}

		writeJSON(w, http.StatusOK, models.EntriesResponse{Entries: entries})
	}
}
