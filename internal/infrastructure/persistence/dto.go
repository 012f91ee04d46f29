package persistence

import (
	"time"

	"charity_token/internal/domain/entity"
	"charity_token/internal/domain/value"
)

type fulfilledOrderSchema struct {
	ID          string    `db:"id"`
	Recipient   string    `db:"recipient"`
	Description string    `db:"description"`
	FulfilledAt time.Time `db:"fulfilled_at"`
}

func (s fulfilledOrderSchema) toDomain() entity.ArchivedOrder {
	return entity.ArchivedOrder{
		Order: entity.Order{
			ID:              value.OrderID(s.ID),
			Recipient:       value.Identity(s.Recipient),
			GiftDescription: s.Description,
		},
		FulfilledAt: s.FulfilledAt,
	}
}
