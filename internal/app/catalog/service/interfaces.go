package service

import (
	"context"

	"devicehub/internal/app/catalog/entity"
)

// CatalogServiceInterface определяет контракт сервиса каталога
type CatalogServiceInterface interface {
	GetFilteredDevices(ctx context.Context, f entity.Filters) ([]entity.Device, error)
	GetDevice(ctx context.Context, id string) (*entity.Device, error)
	CreateDevice(ctx context.Context, req *entity.CreateDeviceRequest) (*entity.Device, error)
	UpdateDevice(ctx context.Context, id string, req *entity.UpdateDeviceRequest) (*entity.Device, error)
	DeleteDevice(ctx context.Context, id string) error
	GetBrands(ctx context.Context) ([]string, error)
	CreateComment(ctx context.Context, req *entity.CreateCommentRequest) (*entity.Comment, error)
	GetCommentsByDevice(ctx context.Context, deviceID string) ([]entity.Comment, error)
	Filters() entity.Filters
	SetFilters(req *entity.UpdateFiltersRequest) entity.Filters
	ResetFilters() entity.Filters
}
