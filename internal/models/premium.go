package models

// CheckoutRequest is the body sent to the payment gateway checkout endpoint.
type CheckoutRequest struct {
	PublicKey   string `json:"public_key"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	RedirectURL string `json:"redirect_url"`
	CallbackURL string `json:"callback_url"`
	APIRef      string `json:"api_ref"`
}

// CheckoutSession is the gateway response to a checkout request.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CheckoutStatus is the gateway's current view of a checkout session.
type CheckoutStatus struct {
	ID     string `json:"id"`
	State  string `json:"state"`
	APIRef string `json:"api_ref"`
}

// CheckoutResponse is returned to the client after a successful checkout initiation
// swagger:model CheckoutResponse
type CheckoutResponse struct {
	// example: https://payment.intasend.com/checkout/abc123/
	CheckoutURL string `json:"checkout_url"`
}

// PaymentEvent is the verified webhook payload.
type PaymentEvent struct {
	InvoiceID string `json:"invoice_id"`
	State     string `json:"state"`
	Email     string `json:"email"`
	APIRef    string `json:"api_ref"`
}

const PaymentStateComplete = "COMPLETE"

// MeditationSession is one entry of the meditation catalog
// swagger:model MeditationSession
type MeditationSession struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Premium     bool   `json:"premium"`
}

// MeditationsResponse lists the sessions the current user may play
// swagger:model MeditationsResponse
type MeditationsResponse struct {
	IsPremium bool                `json:"is_premium"`
	Sessions  []MeditationSession `json:"sessions"`
}
