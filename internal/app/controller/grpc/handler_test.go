package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/escrima/go-orders-service/internal/app/entity"
	err_usecase "github.com/escrima/go-orders-service/internal/app/usecase/errors"
	"github.com/escrima/go-orders-service/internal/app/usecase/order"
	pb "github.com/escrima/go-orders-service/internal/proto"
)

type fakeCreator struct {
	created entity.Order
	err     error

	gotRequest order.CreateRequest
}

func (c *fakeCreator) CreateOrder(_ context.Context, req order.CreateRequest, _ entity.UserID) (entity.Order, error) {
	c.gotRequest = req

	if c.err != nil {
		return entity.Order{}, c.err
	}

	return c.created, nil
}

func TestCreateOrder(t *testing.T) {
	creator := &fakeCreator{
		created: entity.Order{
			ID:          "b1e8b9c2-0d5a-4f43-9f32-25c8a7b6e111",
			UserID:      "ac2a4811-4f10-487f-bde3-e39a14af7cd8",
			Product:     "[770e8400, 2], [990e8400, 0.5]",
			Status:      entity.StatusConfirmedOrder,
			Cost:        100,
			DateCreated: "2024-05-01T10:00:00-03:00",
		},
	}
	server := New(":0", creator)

	reply, err := server.CreateOrder(context.Background(), &pb.CreateOrderRequest{
		Productos: []*pb.ProductoPedido{
			{ProductoId: "770e8400", Cantidad: 2},
			{ProductoId: "990e8400", Cantidad: 0.5},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.LineItems{
		{ItemID: "770e8400", Quantity: 2},
		{ItemID: "990e8400", Quantity: 0.5},
	}, creator.gotRequest.Items)

	assert.Equal(t, "b1e8b9c2-0d5a-4f43-9f32-25c8a7b6e111", reply.GetId())
	assert.Equal(t, "ac2a4811-4f10-487f-bde3-e39a14af7cd8", reply.GetUsuarioId())
	assert.Equal(t, string(entity.StatusConfirmedOrder), reply.GetEstado())
	assert.Equal(t, "2024-05-01T10:00:00-03:00", reply.GetFechaCreacion())
	assert.Zero(t, reply.GetTotal())

	require.Len(t, reply.GetProductos(), 2)
	assert.Equal(t, "770e8400", reply.GetProductos()[0].GetProductoId())
	assert.Equal(t, 2.0, reply.GetProductos()[0].GetCantidad())
	assert.Equal(t, 0.5, reply.GetProductos()[1].GetCantidad())
}

func TestCreateOrderWithTotal(t *testing.T) {
	total := 250.50
	creator := &fakeCreator{
		created: entity.Order{
			ID:          "b1e8b9c2-0d5a-4f43-9f32-25c8a7b6e111",
			UserID:      "ac2a4811-4f10-487f-bde3-e39a14af7cd8",
			Product:     "[770e8400, 1]",
			Status:      entity.StatusConfirmedOrder,
			Cost:        100,
			Total:       &total,
			DateCreated: "2024-05-01T10:00:00-03:00",
		},
	}
	server := New(":0", creator)

	reply, err := server.CreateOrder(context.Background(), &pb.CreateOrderRequest{
		Productos: []*pb.ProductoPedido{
			{ProductoId: "770e8400", Cantidad: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, total, reply.GetTotal())
}

func TestCreateOrderErrors(t *testing.T) {
	tests := []struct {
		name      string
		createErr error

		wantCode codes.Code
	}{
		{
			name:      "empty line items",
			createErr: err_usecase.ErrEmptyLineItems,

			wantCode: codes.InvalidArgument,
		},
		{
			name:      "invalid quantity",
			createErr: err_usecase.ErrInvalidQuantity,

			wantCode: codes.InvalidArgument,
		},
		{
			name:      "invalid item id",
			createErr: err_usecase.ErrInvalidItemID,

			wantCode: codes.InvalidArgument,
		},
		{
			name:      "storage failure",
			createErr: errors.New("connection reset"),

			wantCode: codes.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := New(":0", &fakeCreator{err: tt.createErr})

			reply, err := server.CreateOrder(context.Background(), &pb.CreateOrderRequest{})
			require.Error(t, err)
			assert.Nil(t, reply)

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
		})
	}
}
