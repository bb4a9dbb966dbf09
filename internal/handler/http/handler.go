package http

import (
	"github.com/Vyshusym/image-encryption/internal/config"
	"github.com/Vyshusym/image-encryption/internal/logger"
	"github.com/Vyshusym/image-encryption/internal/service"
)

type Handler struct {
	services *service.Services

	maxUploadBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadBytes: cfg.MaxUploadBytes,
		logger:         logger,
	}
}
