package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"devicehub/internal/app/catalog/entity"
	"devicehub/internal/app/catalog/repository"
	"devicehub/internal/app/catalog/util"
	"devicehub/pkg/logger"
	"devicehub/pkg/metrics"
)

var (
	// Ошибки бизнес-логики для обработки в handlers
	ErrDeviceNotFound = errors.New("device not found")
	ErrSpecsMismatch  = errors.New("specs variant does not match device category")
)

// Типы событий каталога
const (
	eventDeviceCreated  = "DEVICE_CREATED"
	eventDeviceUpdated  = "DEVICE_UPDATED"
	eventDeviceDeleted  = "DEVICE_DELETED"
	eventCommentCreated = "COMMENT_CREATED"
)

const brandsCacheTTL = time.Hour

// CatalogService обрабатывает бизнес-логику каталога устройств.
// Координирует репозиторий, кеш брендов и Kafka producer.
type CatalogService struct {
	repo        repository.CatalogRepository
	brandsCache util.BrandsCache
	producer    util.MessagePublisher
	filters     *FilterStore
}

// NewCatalogService создает сервис каталога с внедрением зависимостей.
// producer может быть nil - тогда события не публикуются.
func NewCatalogService(
	repo repository.CatalogRepository,
	brandsCache util.BrandsCache,
	producer util.MessagePublisher,
) *CatalogService {
	return &CatalogService{
		repo:        repo,
		brandsCache: brandsCache,
		producer:    producer,
		filters:     NewFilterStore(),
	}
}

// === DEVICES ===

// GetFilteredDevices возвращает устройства, отфильтрованные и
// отсортированные по переданной спецификации
func (s *CatalogService) GetFilteredDevices(ctx context.Context, f entity.Filters) ([]entity.Device, error) {
	devices, err := s.repo.GetAllDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get devices: %w", err)
	}

	metrics.FilterQueries.WithLabelValues(f.SortBy, f.SortOrder).Inc()

	return FilterDevices(devices, f), nil
}

// GetDevice получает устройство по ID
func (s *CatalogService) GetDevice(ctx context.Context, id string) (*entity.Device, error) {
	device, err := s.repo.GetDeviceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return device, nil
}

// CreateDevice создает новое устройство. Репозиторий назначает ID.
// После создания инвалидируется кеш брендов и публикуется событие.
func (s *CatalogService) CreateDevice(ctx context.Context, req *entity.CreateDeviceRequest) (*entity.Device, error) {
	if err := validateSpecs(req.Category, &req.Specs); err != nil {
		return nil, err
	}

	device := &entity.Device{
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		Price:       req.Price,
		Image:       req.Image,
		ReleaseDate: req.ReleaseDate,
		Rating:      req.Rating,
		Description: req.Description,
		Review:      req.Review,
		Specs:       req.Specs,
	}

	if err := s.repo.AddDevice(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	metrics.DevicesCreated.Inc()
	s.invalidateBrands(ctx)
	s.publishDeviceEvent(ctx, eventDeviceCreated, device)

	return device, nil
}

// UpdateDevice частично обновляет устройство: переданные поля
// заменяют текущие, остальные сохраняются
func (s *CatalogService) UpdateDevice(ctx context.Context, id string, req *entity.UpdateDeviceRequest) (*entity.Device, error) {
	device, err := s.repo.GetDeviceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	if req.Name != nil {
		device.Name = *req.Name
	}
	if req.Brand != nil {
		device.Brand = *req.Brand
	}
	if req.Category != nil {
		device.Category = *req.Category
	}
	if req.Price != nil {
		device.Price = *req.Price
	}
	if req.Image != nil {
		device.Image = *req.Image
	}
	if req.ReleaseDate != nil {
		device.ReleaseDate = *req.ReleaseDate
	}
	if req.Rating != nil {
		device.Rating = *req.Rating
	}
	if req.Description != nil {
		device.Description = *req.Description
	}
	if req.Review != nil {
		device.Review = *req.Review
	}
	if req.Specs != nil {
		device.Specs = *req.Specs
	}

	// Результат слияния обязан остаться согласованным вариантом
	if err := validateSpecs(device.Category, &device.Specs); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, fmt.Errorf("failed to update device: %w", err)
	}

	metrics.DevicesUpdated.Inc()
	s.invalidateBrands(ctx)
	s.publishDeviceEvent(ctx, eventDeviceUpdated, device)

	return device, nil
}

// DeleteDevice удаляет устройство и каскадом все его комментарии
func (s *CatalogService) DeleteDevice(ctx context.Context, id string) error {
	device, err := s.repo.GetDeviceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return ErrDeviceNotFound
		}
		return fmt.Errorf("failed to get device: %w", err)
	}

	removed, err := s.repo.DeleteDevice(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return ErrDeviceNotFound
		}
		return fmt.Errorf("failed to delete device: %w", err)
	}

	metrics.DevicesDeleted.Inc()
	metrics.CommentsCascadeDeleted.Add(float64(removed))
	s.invalidateBrands(ctx)
	s.publishDeviceEvent(ctx, eventDeviceDeleted, device)

	return nil
}

// GetBrands возвращает отсортированный список уникальных брендов
// каталога с кешированием в Redis
func (s *CatalogService) GetBrands(ctx context.Context) ([]string, error) {
	// Пытаемся получить из кеша
	brands, err := s.brandsCache.GetBrands(ctx)
	if err == nil && len(brands) > 0 {
		return brands, nil
	}

	// Cache miss - вычисляем из коллекции устройств
	devices, err := s.repo.GetAllDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get devices: %w", err)
	}

	seen := make(map[string]struct{}, len(devices))
	brands = brands[:0]
	for _, d := range devices {
		if _, ok := seen[d.Brand]; ok {
			continue
		}
		seen[d.Brand] = struct{}{}
		brands = append(brands, d.Brand)
	}
	sort.Strings(brands)

	// Проблемы с кешем не критичны - данные уже вычислены
	if err := s.brandsCache.SetBrands(ctx, brands, brandsCacheTTL); err != nil {
		logger.Warn().Err(err).Msg("failed to cache brands")
	}

	return brands, nil
}

// === COMMENTS ===

// CreateComment создает комментарий к устройству. Существование
// устройства намеренно не проверяется - осиротевшие комментарии
// убираются только каскадным удалением устройства.
func (s *CatalogService) CreateComment(ctx context.Context, req *entity.CreateCommentRequest) (*entity.Comment, error) {
	comment := &entity.Comment{
		DeviceID:  req.DeviceID,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		Content:   req.Content,
		Rating:    req.Rating,
	}

	if err := s.repo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	metrics.CommentsCreated.Inc()
	s.publishCommentEvent(ctx, comment)

	return comment, nil
}

// GetCommentsByDevice возвращает комментарии устройства в порядке вставки
func (s *CatalogService) GetCommentsByDevice(ctx context.Context, deviceID string) ([]entity.Comment, error) {
	comments, err := s.repo.GetCommentsByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return comments, nil
}

// === FILTERS ===

// Filters возвращает текущую спецификацию фильтров
func (s *CatalogService) Filters() entity.Filters {
	return s.filters.Get()
}

// SetFilters выполняет частичное слияние спецификации фильтров
func (s *CatalogService) SetFilters(req *entity.UpdateFiltersRequest) entity.Filters {
	return s.filters.Set(req)
}

// ResetFilters сбрасывает спецификацию к значениям по умолчанию
func (s *CatalogService) ResetFilters() entity.Filters {
	return s.filters.Reset()
}

// === HELPERS ===

// validateSpecs проверяет, что вариант характеристик соответствует
// категории устройства. Отсутствие варианта допустимо.
func validateSpecs(category string, specs *entity.DeviceSpecs) error {
	if specs.Smartphone != nil && specs.Laptop != nil {
		return ErrSpecsMismatch
	}
	if specs.Smartphone != nil && category != entity.CategorySmartphone {
		return ErrSpecsMismatch
	}
	if specs.Laptop != nil && category != entity.CategoryLaptop {
		return ErrSpecsMismatch
	}
	return nil
}

// invalidateBrands сбрасывает кеш брендов после мутации устройств.
// Ошибка кеша логируется и не прерывает операцию.
func (s *CatalogService) invalidateBrands(ctx context.Context) {
	if err := s.brandsCache.DeleteBrands(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to invalidate brands cache")
	}
}

// publishDeviceEvent отправляет событие об устройстве в Kafka.
// Ключ сообщения - ID устройства для партиционирования.
// Ошибка публикации логируется и не прерывает операцию.
func (s *CatalogService) publishDeviceEvent(ctx context.Context, eventType string, device *entity.Device) {
	if s.producer == nil {
		return
	}

	event := entity.DeviceEvent{
		EventType: eventType,
		DeviceID:  device.ID,
		Name:      device.Name,
		Brand:     device.Brand,
		Category:  device.Category,
		Price:     device.Price,
		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal device event")
		return
	}

	if err := s.producer.PublishMessage(ctx, device.ID, data); err != nil {
		logger.Warn().Err(err).Str("event_type", eventType).Msg("failed to publish device event")
	}
}

func (s *CatalogService) publishCommentEvent(ctx context.Context, comment *entity.Comment) {
	if s.producer == nil {
		return
	}

	event := entity.CommentEvent{
		EventType: eventCommentCreated,
		CommentID: comment.ID,
		DeviceID:  comment.DeviceID,
		Rating:    comment.Rating,
		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal comment event")
		return
	}

	if err := s.producer.PublishMessage(ctx, comment.DeviceID, data); err != nil {
		logger.Warn().Err(err).Msg("failed to publish comment event")
	}
}
