package main

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/escrima/go-orders-service/internal/app/broker/kafka"
	"github.com/escrima/go-orders-service/internal/app/config"
	grpccontroller "github.com/escrima/go-orders-service/internal/app/controller/grpc"
	server "github.com/escrima/go-orders-service/internal/app/controller/http/server"
	"github.com/escrima/go-orders-service/internal/app/logger"
	storage "github.com/escrima/go-orders-service/internal/app/storage/api"
	"github.com/escrima/go-orders-service/internal/app/usecase/auth"
	"github.com/escrima/go-orders-service/internal/app/usecase/order"
	"github.com/escrima/go-orders-service/internal/app/usecase/publish"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config.LogLevel)
	if err != nil {
		panic(err)
	}

	db, err := storage.InitStorage(config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}
	defer db.Close()

	authenticator := auth.New(auth.NewStaticDirectory(), config.SecretKey, config.TokenTTL)
	orders := order.New(db, authenticator)
	gateway := publish.New(kafka.New([]string{config.BrokerAddr}, config.BrokerTopic))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	httpServer := server.New(config, authenticator, orders, gateway)
	grpcServer := grpccontroller.New(config.GRPCAddr, orders)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		httpServer.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := grpcServer.Run(ctx); err != nil {
			zap.L().Error("error while running grpc server", zap.Error(err))
			cancel()
		}
	}()

	wg.Wait()
}
