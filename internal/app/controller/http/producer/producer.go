package producer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	httputils "github.com/escrima/go-orders-service/internal/app/controller/http/utils"
	"github.com/escrima/go-orders-service/internal/app/model"
	"github.com/escrima/go-orders-service/internal/app/usecase/publish"
)

const (
	ErrDecodeJSON = "Error al decodificar formato JSON"

	// Producer payloads are opaque, but a runaway body shouldn't be.
	maxMessageSize = 1 << 20
)

type MessagePublisher interface {
	Publish(ctx context.Context, payload []byte) publish.Result
}

type Producer struct {
	gateway MessagePublisher
}

func New(gateway MessagePublisher) Producer {
	return Producer{
		gateway: gateway,
	}
}

// PublishMessage handles POST /api/v1/producer: the body must be valid JSON
// and is forwarded to the broker as-is. A malformed body is answered with an
// error payload before the broker is ever contacted; a failed publish
// attempt surfaces as a structured broker detail, not a crash.
func (h *Producer) PublishMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxMessageSize))
		if err != nil {
			zap.L().Error("error while reading producer request body", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		defer r.Body.Close()

		if !json.Valid(body) {
			zap.L().Info("producer request body is not valid json")
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{
				Error: ErrDecodeJSON,
			})
			return
		}

		result := h.gateway.Publish(r.Context(), body)
		if !result.Success {
			httputils.WriteJSON(w, http.StatusBadGateway, model.BrokerErrorResponse{
				Broker: result.Detail,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			zap.L().Error("error while writing producer response", zap.Error(err))
		}
	}
}
