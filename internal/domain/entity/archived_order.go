package entity

import "time"

// ArchivedOrder is a fulfilled order as recorded for audit. It no longer
// lives in the pending ledger.
type ArchivedOrder struct {
	Order
	FulfilledAt time.Time `json:"fulfilled_at"`
}
