package entity

import (
	"charity_token/internal/domain/value"
)

// Order is a record of a completed redemption awaiting fulfillment. It is
// created only by a successful redemption and destroyed only when the
// administrator finishes it.
type Order struct {
	ID              value.OrderID  `json:"id"`
	Recipient       value.Identity `json:"recipient"`
	GiftDescription string         `json:"gift_description"`
}
