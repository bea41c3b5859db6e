package converter

import (
	"github.com/golang-module/carbon/v2"

	"github.com/escrima/go-orders-service/internal/app/entity"
	"github.com/escrima/go-orders-service/internal/app/model"
	"github.com/escrima/go-orders-service/internal/app/usecase/codec"
	"github.com/escrima/go-orders-service/internal/app/usecase/order"
)

// ConvertCreateRequestToSpec lifts the transport DTO into the intake request.
func ConvertCreateRequestToSpec(request model.CreateOrderRequest) order.CreateRequest {
	items := make(entity.LineItems, 0, len(request.Productos))
	for _, producto := range request.Productos {
		items = append(items, entity.LineItem{
			ItemID:   producto.ItemID,
			Quantity: producto.Cantidad,
		})
	}

	return order.CreateRequest{
		Items:  items,
		Status: entity.OrderStatus(request.Estado),
		Total:  request.Total,
	}
}

// ConvertOrderToResponse builds the outward view by decoding the persisted
// line-item string, so the response reflects exactly what round-trips
// through storage.
func ConvertOrderToResponse(order entity.Order) model.OrderResponse {
	items := codec.Decode(order.Product)

	productos := make([]model.LineItem, 0, len(items))
	for _, item := range items {
		productos = append(productos, model.LineItem{
			ItemID:   item.ItemID,
			Cantidad: item.Quantity,
		})
	}

	return model.OrderResponse{
		ID:            order.ID.String(),
		UserID:        order.UserID.String(),
		Productos:     productos,
		Estado:        string(order.Status),
		FechaCreacion: carbon.Parse(order.DateCreated).ToRfc3339String(),
		Total:         order.Total,
	}
}

func ConvertOrdersToResponse(orders entity.Orders) model.OrderResponses {
	responses := make(model.OrderResponses, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, ConvertOrderToResponse(order))
	}

	return responses
}

func ConvertOrdersToCostResponse(orders entity.Orders) model.CostOrderResponses {
	responses := make(model.CostOrderResponses, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, model.CostOrderResponse{
			OrderResponse: ConvertOrderToResponse(order),
			Costo:         order.Cost,
		})
	}

	return responses
}
