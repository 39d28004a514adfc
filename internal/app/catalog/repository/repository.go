package repository

import (
	"context"
	"errors"

	"devicehub/internal/app/catalog/entity"
)

var (
	// Стандартные ошибки репозитория для обработки в service layer
	ErrDeviceNotFound = errors.New("device not found")
)

// CatalogRepository - единственный владелец канонических коллекций
// устройств и комментариев. Все мутации проходят через него и
// зеркалируются в персистентное хранилище.
type CatalogRepository interface {
	// Init гидрирует коллекции из хранилища; отсутствующая коллекция
	// заполняется стартовыми данными и сразу записывается обратно.
	Init(ctx context.Context) error

	AddDevice(ctx context.Context, device *entity.Device) error
	UpdateDevice(ctx context.Context, device *entity.Device) error
	// DeleteDevice удаляет устройство и каскадом все его комментарии.
	// Возвращает количество удаленных комментариев.
	DeleteDevice(ctx context.Context, id string) (int, error)
	GetDeviceByID(ctx context.Context, id string) (*entity.Device, error)
	GetAllDevices(ctx context.Context) ([]entity.Device, error)

	AddComment(ctx context.Context, comment *entity.Comment) error
	GetCommentsByDeviceID(ctx context.Context, deviceID string) ([]entity.Comment, error)
	GetAllComments(ctx context.Context) ([]entity.Comment, error)

	// Flush повторно записывает обе коллекции в хранилище.
	// Используется периодическим снапшотом и при остановке сервиса.
	Flush(ctx context.Context) error
}
