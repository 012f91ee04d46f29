// Package rest holds the wire types of the public HTTP surface.
package rest

import "time"

type Gift struct {
	Price       uint64 `json:"price"`
	Description string `json:"description" validate:"required"`
}

type Order struct {
	ID              string `json:"id"`
	Recipient       string `json:"recipient"`
	GiftDescription string `json:"gift_description"`
}

type Orders struct {
	Orders []Order `json:"orders"`
}

// OrderID is the result of an order search. Found false means no pending
// order matched; OrderID is empty in that case and must not be treated as a
// real identifier.
type OrderID struct {
	OrderID string `json:"order_id"`
	Found   bool   `json:"found"`
}

// SetRate carries the new basis rate. A pointer keeps zero addressable:
// zero is accepted and only fails later, on the mint path.
type SetRate struct {
	Rate *uint64 `json:"rate" validate:"required"`
}

type SendTokens struct {
	To             string `json:"to" validate:"required"`
	ReceivedAmount uint64 `json:"received_amount"`
}

type TokensSent struct {
	Tokens uint64 `json:"tokens"`
}

type RedeemTokens struct {
	GiftID *int64 `json:"gift_id" validate:"required"`
}

type Balance struct {
	Account string `json:"account"`
	Balance uint64 `json:"balance"`
}

type ArchivedOrder struct {
	ID              string    `json:"id"`
	Recipient       string    `json:"recipient"`
	GiftDescription string    `json:"gift_description"`
	FulfilledAt     time.Time `json:"fulfilled_at"`
}

type ArchivedOrders struct {
	Orders []ArchivedOrder `json:"orders"`
}

// Error is the error payload shared by all endpoints.
type Error struct {
	// Code is a stable machine-readable error code.
	Code ErrorCode `json:"code"`

	// Message is a human-readable explanation.
	Message string `json:"message"`
}

// ErrorCode is a stable machine-readable error code.
type ErrorCode string
