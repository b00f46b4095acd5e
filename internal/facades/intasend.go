package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-mood-journal/internal/common"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"golang.org/x/oauth2"
)

var (
	ErrEmptyCheckoutURL = errors.New("gateway returned no checkout url")
	ErrEmptyCheckoutID  = errors.New("checkout id is required")
)

// IntaSendCheckoutFacade starts hosted checkout sessions on the IntaSend API.
type IntaSendCheckoutFacade struct {
	client      *http.Client
	checkoutURL string
	publicKey   string
	secretKey   string
}

// NewIntaSendCheckoutFacade creates a facade that authenticates with the secret
// key as a bearer token. base may be nil.
func NewIntaSendCheckoutFacade(publicKey, secretKey, checkoutURL string, base *http.Client) *IntaSendCheckoutFacade {
	if base == nil {
		base = &http.Client{Timeout: 30 * time.Second}
	}
	return &IntaSendCheckoutFacade{
		client: &http.Client{
			Timeout: base.Timeout,
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: secretKey, TokenType: "Bearer"}),
				Base:   base.Transport,
			},
		},
		checkoutURL: checkoutURL,
		publicKey:   publicKey,
		secretKey:   secretKey,
	}
}

// Configured reports whether both API keys are set to real values.
func (f *IntaSendCheckoutFacade) Configured() bool {
	return !common.IsPlaceholder(f.publicKey) && !common.IsPlaceholder(f.secretKey)
}

// CreateCheckout posts a checkout request and returns the hosted session.
// The public key is filled in by the facade.
func (f *IntaSendCheckoutFacade) CreateCheckout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	req.PublicKey = f.publicKey

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, f.checkoutURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	raw, err := f.do(httpReq)
	if err != nil {
		logger.Log.Errorw("checkout request failed", "api_ref", req.APIRef, "error", err)
		return nil, err
	}

	var session models.CheckoutSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("checkout: decode response: %w", err)
	}
	if session.URL == "" {
		return nil, ErrEmptyCheckoutURL
	}

	logger.Log.Infow("checkout created", "api_ref", req.APIRef, "checkout_id", session.ID)
	return &session, nil
}

// CheckoutStatus fetches the session by id. The state is upper-cased.
func (f *IntaSendCheckoutFacade) CheckoutStatus(ctx context.Context, checkoutID string) (*models.CheckoutStatus, error) {
	checkoutID = strings.TrimSpace(checkoutID)
	if checkoutID == "" {
		return nil, ErrEmptyCheckoutID
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, f.checkoutURL+url.PathEscape(checkoutID)+"/", nil)
	if err != nil {
		return nil, err
	}

	raw, err := f.do(httpReq)
	if err != nil {
		logger.Log.Errorw("checkout status request failed", "checkout_id", checkoutID, "error", err)
		return nil, err
	}

	var status models.CheckoutStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("checkout status: decode response: %w", err)
	}
	status.State = strings.ToUpper(strings.TrimSpace(status.State))

	logger.Log.Infow("checkout status", "checkout_id", checkoutID, "state", status.State)
	return &status, nil
}

// do sends req and returns the body of a 2xx response.
func (f *IntaSendCheckoutFacade) do(req *http.Request) ([]byte, error) {
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(raw, 256))
	}
	return raw, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
