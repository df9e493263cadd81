package service

import (
	"context"

	"github.com/MKhiriev/go-bootstrap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type ItemService interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id string) (models.Item, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppEnv(ctx context.Context) string
}

// IDGenerator produces ids for new items.
type IDGenerator interface {
	Generate() string
}
