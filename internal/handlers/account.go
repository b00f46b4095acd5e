package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-mood-journal/internal/jwt"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"github.com/sbilibin2017/gw-mood-journal/internal/services"
)

// AccountDeleter removes a user and everything they wrote.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// Pinger checks the database connection.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewDeleteAccountHandler returns an HTTP handler deleting the current account.
// @Summary Delete account
// @Description Deletes the user together with all journal entries and clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} models.MessageResponse "Account deleted"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /account [delete]
// @Security BearerAuth
func NewDeleteAccountHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteAccount(r.Context(), userID); err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("failed to delete account", "user_id", userID, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Account deleted"})
	}
}

// NewHealthHandler returns an HTTP handler reporting database reachability.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.MessageResponse "ok"
// @Failure 503 {object} models.ErrorResponse "database unavailable"
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "err", err)
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "ok"})
	}
}
