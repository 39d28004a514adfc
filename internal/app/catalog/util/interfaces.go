package util

import (
	"context"
	"time"

	"devicehub/internal/app/catalog/entity"
)

// Store - интерфейс персистентного хранилища каталога.
// Хранит две независимые записи верхнего уровня: сериализованный
// массив устройств и сериализованный массив комментариев.
// Используется для dependency injection и упрощения тестирования.
type Store interface {
	SaveDevices(ctx context.Context, devices []entity.Device) error
	LoadDevices(ctx context.Context) ([]entity.Device, error)
	SaveComments(ctx context.Context, comments []entity.Comment) error
	LoadComments(ctx context.Context) ([]entity.Comment, error)
	Close() error
}

// BrandsCache - интерфейс кеша списка брендов для фильтра
type BrandsCache interface {
	SetBrands(ctx context.Context, brands []string, ttl time.Duration) error
	GetBrands(ctx context.Context) ([]string, error)
	DeleteBrands(ctx context.Context) error
}

// MessagePublisher - интерфейс для отправки событий в очередь (Kafka)
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}
