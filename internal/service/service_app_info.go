package service

import (
	"context"

	"github.com/MKhiriev/go-bootstrap/internal/config"
	"github.com/MKhiriev/go-bootstrap/internal/logger"
)

type appInfoService struct {
	appVersion string
	appEnv     string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		appEnv:     cfg.Env,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetAppEnv(context.Context) string {
	return s.appEnv
}
