package httputils

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	RequestTimeout = 3 * time.Second
)

func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		zap.L().Error("error while encoding response payload", zap.Error(err))
	}
}
