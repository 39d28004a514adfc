package mocks

import (
	"context"
	"time"

	"devicehub/internal/app/catalog/entity"

	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository мок для CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Init(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogRepository) AddDevice(ctx context.Context, device *entity.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateDevice(ctx context.Context, device *entity.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteDevice(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogRepository) GetDeviceByID(ctx context.Context, id string) (*entity.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Device), args.Error(1)
}

func (m *MockCatalogRepository) GetAllDevices(ctx context.Context) ([]entity.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Device), args.Error(1)
}

func (m *MockCatalogRepository) AddComment(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetCommentsByDeviceID(ctx context.Context, deviceID string) ([]entity.Comment, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Comment), args.Error(1)
}

func (m *MockCatalogRepository) GetAllComments(ctx context.Context) ([]entity.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Comment), args.Error(1)
}

func (m *MockCatalogRepository) Flush(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockStore мок для util.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveDevices(ctx context.Context, devices []entity.Device) error {
	args := m.Called(ctx, devices)
	return args.Error(0)
}

func (m *MockStore) LoadDevices(ctx context.Context) ([]entity.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Device), args.Error(1)
}

func (m *MockStore) SaveComments(ctx context.Context, comments []entity.Comment) error {
	args := m.Called(ctx, comments)
	return args.Error(0)
}

func (m *MockStore) LoadComments(ctx context.Context) ([]entity.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Comment), args.Error(1)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockBrandsCache мок для util.BrandsCache
type MockBrandsCache struct {
	mock.Mock
}

func (m *MockBrandsCache) SetBrands(ctx context.Context, brands []string, ttl time.Duration) error {
	args := m.Called(ctx, brands, ttl)
	return args.Error(0)
}

func (m *MockBrandsCache) GetBrands(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBrandsCache) DeleteBrands(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockMessagePublisher мок для util.MessagePublisher
type MockMessagePublisher struct {
	mock.Mock
}

func (m *MockMessagePublisher) PublishMessage(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
