package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/escrima/go-orders-service/internal/app/config"
	"github.com/escrima/go-orders-service/internal/app/controller/http/auth"
	"github.com/escrima/go-orders-service/internal/app/controller/http/middleware/logger"
	"github.com/escrima/go-orders-service/internal/app/controller/http/orders"
	"github.com/escrima/go-orders-service/internal/app/controller/http/producer"
	"github.com/escrima/go-orders-service/internal/app/usecase/publish"
)

type HTTPServer struct {
	server *http.Server

	config config.Config

	authenticator auth.Auth
	orders        orders.Order
	producer      producer.Producer
}

func New(config config.Config, issuer auth.TokenIssuer, processor orders.OrderProcessor, gateway publish.Gateway) *HTTPServer {
	authenticator := auth.New(issuer)
	order := orders.New(processor)
	messageProducer := producer.New(gateway)

	mux := createMux(authenticator, order, messageProducer)

	server := &http.Server{
		Addr:    config.NetAddr,
		Handler: mux,
	}

	instance := &HTTPServer{
		server:        server,
		config:        config,
		authenticator: authenticator,
		orders:        order,
		producer:      messageProducer,
	}

	return instance
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) {
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("fatal error while starting server", zap.Error(err))
		}
	}()

	zap.L().Info("HTTP server started", zap.String("address", s.config.NetAddr))

	<-ctx.Done()

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")
	err := s.server.Shutdown(context.Background())
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}
}

func createMux(authenticator auth.Auth, orders orders.Order, producer producer.Producer) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)

	r.Post("/api/v1/pedido", orders.CreateOrder())
	r.Post("/api/v1/producer", producer.PublishMessage())
	r.Post("/api/v1/token", authenticator.Token())

	r.Get("/api/v1/pedidos", orders.GetOrders())
	r.Get("/api/v1/pedido/{id}", orders.GetOrder())
	r.Get("/api/v1/costo", orders.GetOrdersWithCost())

	return r
}
