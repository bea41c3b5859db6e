package logger

import (
	"fmt"

	"go.uber.org/zap"
)

func Initialize(logLevel string) error {
	level, err := zap.ParseAtomicLevel(logLevel)
	if err != nil {
		return fmt.Errorf("error while setting atomic level to zap logger")
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = level

	log, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("error while building zap logger")
	}

	zap.ReplaceGlobals(log)

	return nil
}
