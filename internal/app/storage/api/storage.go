package storage

import (
	"fmt"

	"github.com/escrima/go-orders-service/internal/app/config"
	"github.com/escrima/go-orders-service/internal/app/storage/api/model"
	storage "github.com/escrima/go-orders-service/internal/app/storage/postgres"
)

func InitStorage(config config.Config) (model.Storage, error) {
	if len(config.DBConnect) == 0 {
		return nil, fmt.Errorf("empty database config")
	}

	return storage.NewPostgresStorage(config.DBConnect)
}
