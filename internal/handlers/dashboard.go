package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
)

const maxTrendDays = 365

// TrendReader aggregates entries over a trailing window.
type TrendReader interface {
	Trend(ctx context.Context, userID uuid.UUID, days int) (*models.MoodTrend, error)
}

// NewDashboardHandler returns an HTTP handler with the user's mood trend.
// @Summary Mood dashboard
// @Description Scores, dates and mood counts of the entries written in the last days (7 by default)
// @Tags journal
// @Produce json
// @Param days query int false "Window size in days (1-365)"
// @Success 200 {object} models.MoodTrend "Mood trend"
// @Failure 400 {object} models.ErrorResponse "Invalid window"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc TrendReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		days := 0
		if raw := r.URL.Query().Get("days"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > maxTrendDays {
				writeError(w, http.StatusBadRequest, "days must be between 1 and 365")
				return
			}
			days = n
		}

		trend, err := svc.Trend(r.Context(), userID, days)
		if err != nil {
			logger.Log.Errorw("failed to build mood trend", "user_id", userID, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, trend)
	}
}
