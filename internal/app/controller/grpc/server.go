package grpc

import (
	"context"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/escrima/go-orders-service/internal/app/entity"
	"github.com/escrima/go-orders-service/internal/app/usecase/order"
	pb "github.com/escrima/go-orders-service/internal/proto"
)

// OrderCreator is the single core operation this ingress exposes; both
// transports share the same intake behind it.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req order.CreateRequest, callerUserID entity.UserID) (entity.Order, error)
}

type GRPCServer struct {
	pb.UnimplementedOrderServiceServer

	address string
	orders  OrderCreator
}

func New(address string, orders OrderCreator) *GRPCServer {
	return &GRPCServer{
		address: address,
		orders:  orders,
	}
}

// Run serves until the context is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer()
	pb.RegisterOrderServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		zap.L().Info("Stopping gRPC server...")
		srv.GracefulStop()
	}()

	zap.L().Info("gRPC server started", zap.String("address", s.address))

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
