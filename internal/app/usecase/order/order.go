// Package order implements the transport-agnostic order intake and query
// operations shared by the HTTP and gRPC ingresses.
package order

import (
	"context"
	"fmt"

	"github.com/golang-module/carbon/v2"
	"github.com/google/uuid"

	"github.com/escrima/go-orders-service/internal/app/entity"
	"github.com/escrima/go-orders-service/internal/app/usecase/auth"
	"github.com/escrima/go-orders-service/internal/app/usecase/codec"
	"github.com/escrima/go-orders-service/internal/app/validator"
)

const (
	// Placeholder unit price assigned to every new order until a pricing
	// computation exists. Total is never derived from it.
	defaultOrderCost = 100.0

	creationTimeZone = "America/Argentina/Buenos_Aires"
)

type OrderRepository interface {
	SaveOrder(ctx context.Context, order entity.Order) error
	GetOrder(ctx context.Context, id entity.OrderID) (entity.Order, error)
	GetOrders(ctx context.Context) (entity.Orders, error)
}

type TokenValidator interface {
	Validate(token string) (auth.Claims, entity.User, error)
}

type CreateRequest struct {
	Items  entity.LineItems
	Status entity.OrderStatus
	Total  *float64
}

type Order struct {
	storage   OrderRepository
	validator TokenValidator
}

func New(storage OrderRepository, validator TokenValidator) Order {
	return Order{
		storage:   storage,
		validator: validator,
	}
}

// CreateOrder validates the request, assigns identity and creation metadata,
// encodes the line items into the persisted string form and writes the order
// through storage. The returned entity carries the encoded field exactly as
// persisted; views decode it again so any codec lossiness surfaces
// immediately.
func (o Order) CreateOrder(ctx context.Context, req CreateRequest, callerUserID entity.UserID) (entity.Order, error) {
	if err := validator.ValidateLineItems(req.Items); err != nil {
		return entity.Order{}, err
	}

	if err := validator.ValidateStatus(req.Status); err != nil {
		return entity.Order{}, err
	}

	status := req.Status
	if len(status) == 0 {
		status = entity.StatusConfirmedOrder
	}

	userID := callerUserID
	if !userID.Valid() {
		userID = entity.UserID(uuid.NewString())
	}

	order := entity.Order{
		ID:          entity.OrderID(uuid.NewString()),
		UserID:      userID,
		Product:     codec.Encode(req.Items),
		Status:      status,
		Cost:        defaultOrderCost,
		Total:       req.Total,
		DateCreated: carbon.Now(creationTimeZone).ToRfc3339String(),
	}

	if err := o.storage.SaveOrder(ctx, order); err != nil {
		return entity.Order{}, fmt.Errorf("error while saving order: %w", err)
	}

	return order, nil
}

// ListOrders returns every stored order without pagination.
func (o Order) ListOrders(ctx context.Context) (entity.Orders, error) {
	orders, err := o.storage.GetOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while getting orders: %w", err)
	}

	return orders, nil
}

// GetOrder is a point lookup; a miss propagates the storage sentinel.
func (o Order) GetOrder(ctx context.Context, id entity.OrderID) (entity.Order, error) {
	return o.storage.GetOrder(ctx, id)
}

// OrdersWithCost gates the cost projection behind token validation. The
// store is never touched when the credential fails.
func (o Order) OrdersWithCost(ctx context.Context, token string) (entity.Orders, error) {
	if _, _, err := o.validator.Validate(token); err != nil {
		return nil, err
	}

	return o.ListOrders(ctx)
}
