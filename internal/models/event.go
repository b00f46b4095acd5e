package models

// Event is published to the event topic after a state change.
type Event struct {
	EventID   string         `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string         `json:"type"`      // Type is "entry.created" or "premium.activated".
	UserID    string         `json:"user_id"`   // UserID is the owner of the changed state and the message key.
	Timestamp int64          `json:"timestamp"` // Timestamp is the Unix time in seconds.
	Payload   map[string]any `json:"payload,omitempty"`
}

const (
	EventEntryCreated     = "entry.created"
	EventPremiumActivated = "premium.activated"
)
