package value

import "github.com/google/uuid"

// OrderID identifies a pending fulfillment order. Generated once at
// insertion, never reused.
type OrderID string

func NewOrderID() OrderID {
	return OrderID(uuid.NewString())
}

func (id OrderID) String() string {
	return string(id)
}
