package server

import (
	"charity_token/internal/domain/entity"
	"charity_token/pkg/lox"
	"charity_token/pkg/rest"
)

func newRESTOrder(order entity.Order) rest.Order {
	return rest.Order{
		ID:              order.ID.String(),
		Recipient:       order.Recipient.String(),
		GiftDescription: order.GiftDescription,
	}
}

func newRESTOrders(orders []entity.Order) rest.Orders {
	return rest.Orders{
		Orders: lox.Map(orders, newRESTOrder),
	}
}

func newRESTArchivedOrders(orders []entity.ArchivedOrder) rest.ArchivedOrders {
	return rest.ArchivedOrders{
		Orders: lox.Map(orders, func(order entity.ArchivedOrder) rest.ArchivedOrder {
			return rest.ArchivedOrder{
				ID:              order.ID.String(),
				Recipient:       order.Recipient.String(),
				GiftDescription: order.GiftDescription,
				FulfilledAt:     order.FulfilledAt,
			}
		}),
	}
}

func newDomainGift(gift rest.Gift) entity.Gift {
	return entity.Gift{
		Price:       gift.Price,
		Description: gift.Description,
	}
}
