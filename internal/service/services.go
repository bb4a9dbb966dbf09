package service

import (
	"github.com/Vyshusym/image-encryption/internal/config"
	"github.com/Vyshusym/image-encryption/internal/crypto"
	"github.com/Vyshusym/image-encryption/internal/logger"
)

type Services struct {
	ImageCipherService ImageCipherService
	AppInfoService     AppInfoService
}

func NewServices(keyring crypto.KeyringService, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ImageCipherService: NewImageCipherService(keyring, logger),
		AppInfoService:     appInfoService,
	}, nil
}
