package log

import (
	"os"

	"go.uber.org/zap"
)

var Logger *zap.Logger

func EnsureLogger() {
	if os.Getenv("ENV") == "production" {
		Logger, _ = zap.NewProduction()
		return
	}

	Logger, _ = zap.NewDevelopment()
}
