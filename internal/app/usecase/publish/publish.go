// Package publish wraps the opaque broker sink behind a uniform result
// contract: a publish attempt never returns an error, only a success flag
// with a human-readable detail.
package publish

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

const successDetail = "No error"

var (
	ErrBrokerConnection = errors.New("broker connection error")
	ErrBrokerTopic      = errors.New("broker topic can not be used")
)

type Result struct {
	Success bool
	Detail  string
}

// Sink is the single capability the gateway requires from a broker client.
type Sink interface {
	Send(ctx context.Context, payload []byte) error
}

type Gateway struct {
	sink Sink
}

func New(sink Sink) Gateway {
	return Gateway{
		sink: sink,
	}
}

// Publish makes one best-effort attempt to forward the payload. Broker-side
// failures are classified into the result detail and never escalate.
func (g Gateway) Publish(ctx context.Context, payload []byte) Result {
	err := g.sink.Send(ctx, payload)
	if err == nil {
		return Result{
			Success: true,
			Detail:  successDetail,
		}
	}

	zap.L().Error("error while publishing message to broker", zap.Error(err))

	detail := err.Error()
	switch {
	case errors.Is(err, ErrBrokerConnection):
		detail = ErrBrokerConnection.Error()
	case errors.Is(err, ErrBrokerTopic):
		detail = ErrBrokerTopic.Error()
	}

	return Result{
		Success: false,
		Detail:  detail,
	}
}
