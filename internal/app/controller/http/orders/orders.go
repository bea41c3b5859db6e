package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	httputils "github.com/escrima/go-orders-service/internal/app/controller/http/utils"
	"github.com/escrima/go-orders-service/internal/app/converter"
	"github.com/escrima/go-orders-service/internal/app/entity"
	"github.com/escrima/go-orders-service/internal/app/model"
	err_storage "github.com/escrima/go-orders-service/internal/app/storage/api/errors"
	usecase "github.com/escrima/go-orders-service/internal/app/usecase/converter"
	err_usecase "github.com/escrima/go-orders-service/internal/app/usecase/errors"
	"github.com/escrima/go-orders-service/internal/app/usecase/order"
)

const (
	ErrOrderNotExist  = "El pedido no existe"
	ErrInvalidCreds   = "Could not validate credentials"
	ErrInvalidRequest = "wrong order format"
)

type OrderProcessor interface {
	CreateOrder(ctx context.Context, req order.CreateRequest, callerUserID entity.UserID) (entity.Order, error)
	ListOrders(ctx context.Context) (entity.Orders, error)
	GetOrder(ctx context.Context, id entity.OrderID) (entity.Order, error)
	OrdersWithCost(ctx context.Context, token string) (entity.Orders, error)
}

type Order struct {
	processor OrderProcessor
}

func New(processor OrderProcessor) Order {
	return Order{
		processor: processor,
	}
}

// CreateOrder handles POST /api/v1/pedido.
func (h *Order) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.CreateOrderRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			zap.L().Error("error while decoding create order request", zap.Error(err))
			http.Error(w, ErrInvalidRequest, http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		created, err := h.processor.CreateOrder(ctx, converter.ConvertCreateRequestToSpec(request), "")
		if err != nil {
			if err_usecase.IsValidationError(err) {
				zap.L().Info("order request rejected", zap.Error(err))
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			zap.L().Error("error while creating order", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(created))
	}
}

// GetOrders handles GET /api/v1/pedidos.
func (h *Order) GetOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		orders, err := h.processor.ListOrders(ctx)
		if err != nil {
			zap.L().Error("error while getting orders", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrdersToResponse(orders))
	}
}

// GetOrder handles GET /api/v1/pedido/{id}.
func (h *Order) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := entity.OrderID(chi.URLParam(r, "id"))
		if !orderID.Valid() {
			http.Error(w, ErrOrderNotExist, http.StatusNotFound)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		storedOrder, err := h.processor.GetOrder(ctx, orderID)
		if err != nil {
			if errors.Is(err, err_storage.ErrOrderNotFound) {
				zap.L().Info("order not found", zap.String("order_id", orderID.String()))
				http.Error(w, ErrOrderNotExist, http.StatusNotFound)
				return
			}

			zap.L().Error("error while getting order", zap.Error(err), zap.String("order_id", orderID.String()))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(storedOrder))
	}
}

// GetOrdersWithCost handles GET /api/v1/costo. Whatever the precise
// validation failure, the client sees one generic message.
func (h *Order) GetOrdersWithCost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := usecase.GetTokenFromAuthHeader(r.Header.Get(usecase.AuthHeader))
		if err != nil {
			zap.L().Info("invalid auth header in cost report request", zap.Error(err))
			http.Error(w, ErrInvalidCreds, http.StatusUnauthorized)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		orders, err := h.processor.OrdersWithCost(ctx, token)
		if err != nil {
			if err_usecase.IsAuthError(err) {
				zap.L().Info("cost report request rejected", zap.Error(err))
				http.Error(w, ErrInvalidCreds, http.StatusUnauthorized)
				return
			}

			zap.L().Error("error while getting orders with cost", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrdersToCostResponse(orders))
	}
}
