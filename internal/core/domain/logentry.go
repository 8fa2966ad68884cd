package domain

import "time"

// Audit event names recorded across the platform.
const (
	EventUserCreation    = "user_creation"
	EventLogin           = "login"
	EventProductCreation = "product_creation"
	EventProductEdit     = "product_edit"
	EventOrder           = "order"
	EventSearch          = "search"
)

// LogEntry is an append-only audit record. Seq is assigned by the audit store
// and defines a total, monotonic order; "most recent" means highest Seq.
// ProductName is empty for events not tied to a product (login, order).
type LogEntry struct {
	Seq         uint64    `json:"seq,omitempty"`
	Event       string    `json:"event"`
	Username    string    `json:"user"`
	ProductName string    `json:"name,omitempty"`
	At          time.Time `json:"at,omitempty"`
}
