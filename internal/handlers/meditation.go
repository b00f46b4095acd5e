package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/meditation"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"github.com/sbilibin2017/gw-mood-journal/internal/services"
)

// UserGetter loads the current user.
type UserGetter interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// AudioURLer resolves an audio file to a playable link.
type AudioURLer interface {
	AudioURL(ctx context.Context, file string) (string, error)
}

// NewMeditationsHandler returns an HTTP handler listing the sessions the user may play.
// @Summary List meditation sessions
// @Description Free users get the free sessions, premium users the whole catalog
// @Tags meditation
// @Produce json
// @Success 200 {object} models.MeditationsResponse "Sessions"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /meditations [get]
// @Security BearerAuth
func NewMeditationsHandler(users UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := loadUser(w, r, users)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, models.MeditationsResponse{
			IsPremium: user.IsPremium,
			Sessions:  meditation.Sessions(user.IsPremium),
		})
	}
}

// NewAudioHandler returns an HTTP handler redirecting to a meditation audio file.
// audio may be nil when no storage is configured.
// @Summary Play meditation audio
// @Description Redirects to a short lived link to the audio file. Premium sessions need a premium account.
// @Tags meditation
// @Param file path string true "Audio file name" example(breathing.mp3)
// @Success 302 "Redirect to the audio file"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Premium session"
// @Failure 404 {object} models.ErrorResponse "Unknown session"
// @Failure 503 {object} models.ErrorResponse "Audio storage not configured"
// @Router /audio/{file} [get]
// @Security BearerAuth
func NewAudioHandler(users UserGetter, audio AudioURLer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, found := meditation.Lookup(chi.URLParam(r, "file"))
		if !found {
			writeError(w, http.StatusNotFound, "Audio file not found")
			return
		}

		user, ok := loadUser(w, r, users)
		if !ok {
			return
		}
		if !meditation.Allowed(session, user.IsPremium) {
			writeError(w, http.StatusForbidden, "This session requires a premium account")
			return
		}
		if audio == nil {
			writeError(w, http.StatusServiceUnavailable, "Audio storage not configured")
			return
		}

		url, err := audio.AudioURL(r.Context(), session.ID)
		if err != nil {
			logger.Log.Errorw("failed to resolve audio url", "file", session.ID, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		http.Redirect(w, r, url, http.StatusFound)
	}
}

func loadUser(w http.ResponseWriter, r *http.Request, users UserGetter) (*models.UserDB, bool) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return nil, false
	}

	user, err := users.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserDoesNotExist) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return nil, false
		}
		logger.Log.Errorw("failed to load user", "user_id", userID, "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return nil, false
	}
	return user, true
}
