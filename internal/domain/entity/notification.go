package entity

import (
	"charity_token/internal/domain/value"
)

type NotificationKind string

const (
	NotificationTokensSent      NotificationKind = "tokens_sent"
	NotificationBasisRateChange NotificationKind = "basis_rate_change"
	NotificationTokensRedeem    NotificationKind = "tokens_redeem"
)

// Notification is a fire-and-forget observability event. It is never
// consumed by the state machine itself.
type Notification struct {
	Kind NotificationKind

	// TokensSent
	Recipient value.Identity
	Tokens    uint64

	// BasisRateChange
	NewRate uint64

	// TokensRedeem
	Price       uint64
	Description string
}
