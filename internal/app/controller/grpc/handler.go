package grpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/escrima/go-orders-service/internal/app/entity"
	"github.com/escrima/go-orders-service/internal/app/usecase/codec"
	err_usecase "github.com/escrima/go-orders-service/internal/app/usecase/errors"
	"github.com/escrima/go-orders-service/internal/app/usecase/order"
	pb "github.com/escrima/go-orders-service/internal/proto"
)

// CreateOrder is the RPC counterpart of POST /api/v1/pedido, built directly
// atop the shared intake.
func (s *GRPCServer) CreateOrder(ctx context.Context, req *pb.CreateOrderRequest) (*pb.Order, error) {
	items := make(entity.LineItems, 0, len(req.GetProductos()))
	for _, producto := range req.GetProductos() {
		items = append(items, entity.LineItem{
			ItemID:   producto.GetProductoId(),
			Quantity: producto.GetCantidad(),
		})
	}

	created, err := s.orders.CreateOrder(ctx, order.CreateRequest{Items: items}, "")
	if err != nil {
		if err_usecase.IsValidationError(err) {
			zap.L().Info("grpc order request rejected", zap.Error(err))
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		zap.L().Error("error while creating order over grpc", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return convertOrderToReply(created), nil
}

func convertOrderToReply(created entity.Order) *pb.Order {
	items := codec.Decode(created.Product)

	productos := make([]*pb.ProductoPedido, 0, len(items))
	for _, item := range items {
		productos = append(productos, &pb.ProductoPedido{
			ProductoId: item.ItemID,
			Cantidad:   item.Quantity,
		})
	}

	reply := &pb.Order{
		Id:            created.ID.String(),
		UsuarioId:     created.UserID.String(),
		Productos:     productos,
		Estado:        string(created.Status),
		FechaCreacion: created.DateCreated,
	}

	if created.Total != nil {
		reply.Total = *created.Total
	}

	return reply
}
