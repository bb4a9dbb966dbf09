package handler

import (
	"github.com/Vyshusym/image-encryption/internal/config"
	"github.com/Vyshusym/image-encryption/internal/handler/http"
	"github.com/Vyshusym/image-encryption/internal/logger"
	"github.com/Vyshusym/image-encryption/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
