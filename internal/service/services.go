package service

import (
	"github.com/MKhiriev/go-bootstrap/internal/config"
	"github.com/MKhiriev/go-bootstrap/internal/logger"
	"github.com/MKhiriev/go-bootstrap/internal/store"
	"github.com/MKhiriev/go-bootstrap/internal/utils"
)

type Services struct {
	ItemService    ItemService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ItemService:    NewItemService(storages.ItemRepository, utils.NewUUIDGenerator(), logger),
		AppInfoService: appInfo,
	}, nil
}
