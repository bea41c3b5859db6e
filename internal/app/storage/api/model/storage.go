package model

import (
	"context"

	"github.com/escrima/go-orders-service/internal/app/entity"
)

type Storage interface {
	Close() error
	Ping(ctx context.Context) error

	SaveOrder(ctx context.Context, order entity.Order) error
	GetOrder(ctx context.Context, id entity.OrderID) (entity.Order, error)
	GetOrders(ctx context.Context) (entity.Orders, error)
}
