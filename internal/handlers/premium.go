package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"github.com/sbilibin2017/gw-mood-journal/internal/services"
)

// SignatureHeader carries the hex HMAC-SHA256 of the webhook body.
const SignatureHeader = "X-IntaSend-Signature"

const maxWebhookBody = 1 << 20

// CheckoutInitiator starts a premium checkout.
type CheckoutInitiator interface {
	Initiate(ctx context.Context, userID uuid.UUID) (string, error)
}

// RedirectConfirmer upgrades a user coming back from checkout.
type RedirectConfirmer interface {
	ConfirmRedirect(ctx context.Context, userID uuid.UUID, checkoutID string) (bool, error)
}

// WebhookProcessor applies a signed gateway callback.
type WebhookProcessor interface {
	HandleWebhook(ctx context.Context, rawBody []byte, signature string) (services.WebhookOutcome, error)
}

// NewCheckoutHandler returns an HTTP handler starting a premium checkout.
// @Summary Start premium checkout
// @Description Creates a hosted checkout session and redirects to it. The URL is also in the body.
// @Tags premium
// @Produce json
// @Success 200 {object} models.MessageResponse "Already premium"
// @Success 303 {object} models.CheckoutResponse "Redirect to the checkout page"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 502 {object} models.ErrorResponse "Payment initiation failed"
// @Failure 503 {object} models.ErrorResponse "Payment system not configured"
// @Router /premium/checkout [post]
// @Security BearerAuth
func NewCheckoutHandler(svc CheckoutInitiator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		checkoutURL, err := svc.Initiate(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadyPremium):
				writeJSON(w, http.StatusOK, models.MessageResponse{Message: "You are already a premium user"})
			case errors.Is(err, services.ErrPaymentNotConfigured):
				writeError(w, http.StatusServiceUnavailable, "Payment system not configured. Please try again later.")
			case errors.Is(err, services.ErrCheckoutFailed):
				logger.Log.Errorw("checkout failed", "user_id", userID, "err", err)
				writeError(w, http.StatusBadGateway, "Payment initiation failed. Please try again later.")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusUnauthorized, "Unauthorized")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		w.Header().Set("Location", checkoutURL)
		writeJSON(w, http.StatusSeeOther, models.CheckoutResponse{CheckoutURL: checkoutURL})
	}
}

// NewPremiumSuccessHandler returns the HTTP handler the gateway redirects the user to after paying.
// @Summary Confirm premium payment
// @Description Upgrades the current user once the gateway reports the checkout as COMPLETE. Repeated calls are no-ops.
// @Tags premium
// @Produce json
// @Param checkout_id query string true "Checkout session id returned by the gateway"
// @Success 200 {object} models.MessageResponse "Premium active"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 402 {object} models.ErrorResponse "Payment not completed"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Failure 502 {object} models.ErrorResponse "Payment verification failed"
// @Failure 503 {object} models.ErrorResponse "Payment system not configured"
// @Router /premium/success [get]
// @Security BearerAuth
func NewPremiumSuccessHandler(svc RedirectConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		activated, err := svc.ConfirmRedirect(r.Context(), userID, r.URL.Query().Get("checkout_id"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusUnauthorized, "Unauthorized")
			case errors.Is(err, services.ErrPaymentNotVerified):
				writeError(w, http.StatusPaymentRequired, "Payment not completed")
			case errors.Is(err, services.ErrPaymentNotConfigured):
				writeError(w, http.StatusServiceUnavailable, "Payment system not configured. Please try again later.")
			case errors.Is(err, services.ErrCheckoutFailed):
				logger.Log.Errorw("payment verification failed", "user_id", userID, "err", err)
				writeError(w, http.StatusBadGateway, "Payment verification failed. Please try again later.")
			default:
				logger.Log.Errorw("failed to confirm premium", "user_id", userID, "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		msg := "You are already a premium user"
		if activated {
			msg = "Premium activated"
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: msg})
	}
}

// NewWebhookHandler returns the HTTP handler for payment gateway callbacks.
// The signature is checked on the body bytes exactly as received.
// @Summary Payment webhook
// @Description Signed payment notification. A COMPLETE payment upgrades the user found by email.
// @Tags premium
// @Accept json
// @Produce json
// @Param X-IntaSend-Signature header string true "hex HMAC-SHA256 of the body"
// @Success 200 {object} models.MessageResponse "Processed"
// @Failure 400 {object} models.ErrorResponse "Malformed payload"
// @Failure 403 {object} models.ErrorResponse "Bad signature"
// @Failure 404 {object} models.ErrorResponse "Unknown user"
// @Router /premium/webhook [post]
func NewWebhookHandler(svc WebhookProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		outcome, err := svc.HandleWebhook(r.Context(), body, r.Header.Get(SignatureHeader))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingSignature),
				errors.Is(err, services.ErrInvalidSignature):
				writeError(w, http.StatusForbidden, "Invalid signature")
			case errors.Is(err, services.ErrMalformedEvent):
				writeError(w, http.StatusBadRequest, "Malformed payload")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("failed to process webhook", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: outcome.String()})
	}
}
