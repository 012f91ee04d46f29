package ledger

import (
	"charity_token/internal/domain/entity"
	"charity_token/internal/domain/value"
)

// Orders is the pending fulfillment queue. Orders keep their relative
// insertion order until removed; removal compacts the slice instead of
// swapping with the last element, so the remaining orders never reorder.
type Orders struct {
	orders []entity.Order
}

func NewOrders() *Orders {
	return &Orders{}
}

// Insert appends a new order with a freshly generated id and returns it.
func (o *Orders) Insert(recipient value.Identity, description string) entity.Order {
	order := entity.Order{
		ID:              value.NewOrderID(),
		Recipient:       recipient,
		GiftDescription: description,
	}

	o.orders = append(o.orders, order)

	return order
}

// List returns the pending orders in ledger order. The returned slice is a
// copy; the ledger keeps exclusive ownership of its orders.
func (o *Orders) List() []entity.Order {
	out := make([]entity.Order, len(o.orders))
	copy(out, o.orders)

	return out
}

// FindID scans for the first order matching recipient and description by
// content equality.
func (o *Orders) FindID(recipient value.Identity, description string) (value.OrderID, bool) {
	for _, order := range o.orders {
		if order.Recipient == recipient && order.GiftDescription == description {
			return order.ID, true
		}
	}

	return "", false
}

// Remove deletes the order with the given id, shifting every subsequent
// order one position toward the front. An unknown id is a no-op; the
// comma-ok result tells the caller whether anything was removed.
func (o *Orders) Remove(id value.OrderID) (entity.Order, bool) {
	for i, order := range o.orders {
		if order.ID != id {
			continue
		}

		copy(o.orders[i:], o.orders[i+1:])
		o.orders[len(o.orders)-1] = entity.Order{}
		o.orders = o.orders[:len(o.orders)-1]

		return order, true
	}

	return entity.Order{}, false
}

func (o *Orders) Len() int {
	return len(o.orders)
}
