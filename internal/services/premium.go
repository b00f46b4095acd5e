package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-mood-journal/internal/common"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
)

var (
	ErrAlreadyPremium       = errors.New("user is already premium")
	ErrPaymentNotConfigured = errors.New("payment system not configured")
	ErrCheckoutFailed       = errors.New("payment initiation failed")
	ErrMissingSignature     = errors.New("missing webhook signature")
	ErrInvalidSignature     = errors.New("invalid webhook signature")
	ErrMalformedEvent       = errors.New("malformed webhook event")
	ErrUserNotFound         = errors.New("user not found")
	ErrPaymentNotVerified   = errors.New("payment not verified")
)

// WebhookOutcome tells what a verified webhook changed.
type WebhookOutcome int

const (
	WebhookIgnored WebhookOutcome = iota
	WebhookActivated
	WebhookAlreadyPremium
)

func (o WebhookOutcome) String() string {
	switch o {
	case WebhookActivated:
		return "activated"
	case WebhookAlreadyPremium:
		return "already_premium"
	}
	return "ignored"
}

// PremiumReader loads the user starting a checkout.
type PremiumReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// PremiumActivator performs the one-way premium upgrade. The bool result is
// true only for the call that made the transition.
type PremiumActivator interface {
	ActivatePremiumByEmail(ctx context.Context, email string) (*models.UserDB, bool, error)
	ActivatePremiumByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, bool, error)
}

// CheckoutGateway starts hosted checkout sessions and reports their state.
type CheckoutGateway interface {
	Configured() bool
	CreateCheckout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
	CheckoutStatus(ctx context.Context, checkoutID string) (*models.CheckoutStatus, error)
}

// PremiumOptions are the payment settings of a PremiumService.
type PremiumOptions struct {
	Amount        string
	Currency      string
	RedirectURL   string // where the gateway sends the user after paying
	CallbackURL   string // where the gateway posts webhooks
	WebhookSecret string // HMAC key for webhook signatures
}

// PremiumService drives the free to premium upgrade.
type PremiumService struct {
	reader    PremiumReader
	activator PremiumActivator
	gateway   CheckoutGateway
	publisher Publisher
	opts      PremiumOptions
}

func NewPremiumService(
	reader PremiumReader,
	activator PremiumActivator,
	gateway CheckoutGateway,
	publisher Publisher,
	opts PremiumOptions,
) *PremiumService {
	return &PremiumService{
		reader:    reader,
		activator: activator,
		gateway:   gateway,
		publisher: publisher,
		opts:      opts,
	}
}

// Initiate starts a checkout for the user and returns the hosted checkout URL.
// Premium users get ErrAlreadyPremium without any gateway call.
func (s *PremiumService) Initiate(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if errors.Is(err, common.ErrNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to load user for checkout", "user_id", userID, "error", err)
		return "", err
	}

	if user.IsPremium {
		return "", ErrAlreadyPremium
	}
	if !s.gateway.Configured() {
		logger.Log.Errorw("payment gateway keys not configured")
		return "", ErrPaymentNotConfigured
	}

	session, err := s.gateway.CreateCheckout(ctx, models.CheckoutRequest{
		Amount:      s.opts.Amount,
		Currency:    s.opts.Currency,
		Email:       user.Email,
		FirstName:   user.Username,
		LastName:    user.Username,
		RedirectURL: s.opts.RedirectURL,
		CallbackURL: s.opts.CallbackURL,
		APIRef:      user.UserID.String(),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	logger.Log.Infow("checkout initiated", "user_id", userID, "checkout_id", session.ID)
	return session.URL, nil
}

// HandleWebhook verifies a gateway callback on its raw body and applies a
// completed payment. Replays of the same event are no-ops.
func (s *PremiumService) HandleWebhook(ctx context.Context, rawBody []byte, signature string) (WebhookOutcome, error) {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		logger.Log.Warnw("webhook without signature")
		return WebhookIgnored, ErrMissingSignature
	}
	if !s.verifySignature(rawBody, signature) {
		logger.Log.Warnw("webhook signature mismatch")
		return WebhookIgnored, ErrInvalidSignature
	}

	var event models.PaymentEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		logger.Log.Warnw("invalid webhook payload", "error", err)
		return WebhookIgnored, ErrMalformedEvent
	}

	if !strings.EqualFold(event.State, models.PaymentStateComplete) {
		logger.Log.Infow("webhook ignored", "invoice_id", event.InvoiceID, "state", event.State)
		return WebhookIgnored, nil
	}

	var (
		user      *models.UserDB
		activated bool
		err       error
	)
	email := models.NormalizeEmail(event.Email)
	switch {
	case email != "":
		user, activated, err = s.activator.ActivatePremiumByEmail(ctx, email)
	case event.APIRef != "":
		id, perr := uuid.Parse(event.APIRef)
		if perr != nil {
			return WebhookIgnored, ErrMalformedEvent
		}
		user, activated, err = s.activator.ActivatePremiumByID(ctx, id)
	default:
		return WebhookIgnored, ErrMalformedEvent
	}

	if errors.Is(err, common.ErrNotFound) {
		logger.Log.Warnw("webhook for unknown user", "invoice_id", event.InvoiceID, "email", email)
		return WebhookIgnored, ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to activate premium", "invoice_id", event.InvoiceID, "error", err)
		return WebhookIgnored, err
	}

	if !activated {
		logger.Log.Infow("webhook replay for premium user", "user_id", user.UserID, "invoice_id", event.InvoiceID)
		return WebhookAlreadyPremium, nil
	}

	s.publishActivated(ctx, user, "webhook", event.InvoiceID)
	return WebhookActivated, nil
}

// ConfirmRedirect upgrades the user returning from checkout once the gateway
// reports checkoutID as COMPLETE for this user. It reports whether this call
// made the transition. Premium users return early without a gateway call.
func (s *PremiumService) ConfirmRedirect(ctx context.Context, userID uuid.UUID, checkoutID string) (bool, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if errors.Is(err, common.ErrNotFound) {
		return false, ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to load user for redirect", "user_id", userID, "error", err)
		return false, err
	}
	if user.IsPremium {
		return false, nil
	}

	checkoutID = strings.TrimSpace(checkoutID)
	if checkoutID == "" {
		logger.Log.Warnw("redirect without checkout id", "user_id", userID)
		return false, ErrPaymentNotVerified
	}
	if !s.gateway.Configured() {
		logger.Log.Errorw("payment gateway keys not configured")
		return false, ErrPaymentNotConfigured
	}

	status, err := s.gateway.CheckoutStatus(ctx, checkoutID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}
	if !strings.EqualFold(status.State, models.PaymentStateComplete) {
		logger.Log.Warnw("redirect for unpaid checkout", "user_id", userID, "checkout_id", checkoutID, "state", status.State)
		return false, ErrPaymentNotVerified
	}
	if status.APIRef != "" && status.APIRef != userID.String() {
		logger.Log.Warnw("redirect with another user's checkout", "user_id", userID, "checkout_id", checkoutID)
		return false, ErrPaymentNotVerified
	}

	user, activated, err := s.activator.ActivatePremiumByID(ctx, userID)
	if errors.Is(err, common.ErrNotFound) {
		return false, ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to activate premium", "user_id", userID, "error", err)
		return false, err
	}
	if activated {
		s.publishActivated(ctx, user, "redirect", checkoutID)
	}
	return activated, nil
}

func (s *PremiumService) verifySignature(body []byte, signature string) bool {
	if common.IsPlaceholder(s.opts.WebhookSecret) {
		logger.Log.Errorw("webhook secret not configured")
		return false
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(s.opts.WebhookSecret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

func (s *PremiumService) publishActivated(ctx context.Context, user *models.UserDB, via, invoiceID string) {
	logger.Log.Infow("user upgraded to premium", "user_id", user.UserID, "via", via)
	s.publisher.Publish(ctx, models.EventPremiumActivated, user.UserID, map[string]any{
		"via":        via,
		"invoice_id": invoiceID,
	})
}
