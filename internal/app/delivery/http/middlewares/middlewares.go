package middlewares

import (
	"medibook-service/internal/app/config"

	"go.uber.org/zap"
)

type Middlewares struct {
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewMiddlewares(internalConfig *config.InternalConfig, logger *zap.Logger) *Middlewares {
	return &Middlewares{
		InternalConfig: internalConfig,
		Log:            logger,
	}
}
