package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"devicehub/internal/app/catalog/entity"
	"devicehub/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

// Ключи верхнего уровня в персистентном хранилище
const (
	devicesKey     = "devices"
	commentsKey    = "comments"
	brandsCacheKey = "brands:all"
)

const serviceName = "devicehub"

// ErrStorage - единая ошибка границы хранилища. Все сбои чтения/записи
// (недоступность Redis, ошибка сериализации) транслируются в неё здесь,
// чтобы вызывающие слои зависели от одного типа ошибки.
var ErrStorage = errors.New("catalog storage unavailable")

// RedisClient - граница персистентности каталога поверх Redis.
// Помимо двух записей состояния содержит кеш списка брендов с TTL.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient создает клиент хранилища и проверяет соединение
func NewRedisClient(addr, password string, db int) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

// SaveDevices записывает полный массив устройств под ключом devices
func (r *RedisClient) SaveDevices(ctx context.Context, devices []entity.Device) error {
	return r.saveCollection(ctx, devicesKey, devices)
}

// LoadDevices читает массив устройств. Возвращает nil без ошибки,
// если запись отсутствует (признак первого запуска).
func (r *RedisClient) LoadDevices(ctx context.Context) ([]entity.Device, error) {
	var devices []entity.Device
	if err := r.loadCollection(ctx, devicesKey, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// SaveComments записывает полный массив комментариев под ключом comments
func (r *RedisClient) SaveComments(ctx context.Context, comments []entity.Comment) error {
	return r.saveCollection(ctx, commentsKey, comments)
}

// LoadComments читает массив комментариев, nil без ошибки если записи нет
func (r *RedisClient) LoadComments(ctx context.Context) ([]entity.Comment, error) {
	var comments []entity.Comment
	if err := r.loadCollection(ctx, commentsKey, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// saveCollection сериализует коллекцию и записывает её без TTL.
// Единственная точка трансляции ошибок записи в ErrStorage.
func (r *RedisClient) saveCollection(ctx context.Context, key string, collection interface{}) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal %s: %v", ErrStorage, key, err)
	}

	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpSet)
	err = r.client.Set(ctx, key, data, 0).Err()
	timer.ObserveDuration()

	if err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpSet)
		return fmt.Errorf("%w: failed to save %s: %v", ErrStorage, key, err)
	}

	return nil
}

// loadCollection читает и десериализует коллекцию.
// Отсутствие ключа не считается ошибкой - dst остается nil.
func (r *RedisClient) loadCollection(ctx context.Context, key string, dst interface{}) error {
	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpGet)
	data, err := r.client.Get(ctx, key).Bytes()
	timer.ObserveDuration()

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		metrics.RecordRedisError(serviceName, metrics.RedisOpGet)
		return fmt.Errorf("%w: failed to load %s: %v", ErrStorage, key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: failed to unmarshal %s: %v", ErrStorage, key, err)
	}

	return nil
}

// SetBrands кеширует список брендов с TTL
func (r *RedisClient) SetBrands(ctx context.Context, brands []string, ttl time.Duration) error {
	data, err := json.Marshal(brands)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal brands: %v", ErrStorage, err)
	}

	if err := r.client.Set(ctx, brandsCacheKey, data, ttl).Err(); err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpSet)
		return fmt.Errorf("%w: failed to cache brands: %v", ErrStorage, err)
	}

	return nil
}

// GetBrands читает список брендов из кеша, nil при cache miss
func (r *RedisClient) GetBrands(ctx context.Context) ([]string, error) {
	data, err := r.client.Get(ctx, brandsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCacheMiss(serviceName, "brands")
			return nil, nil
		}
		metrics.RecordRedisError(serviceName, metrics.RedisOpGet)
		return nil, fmt.Errorf("%w: failed to get brands from cache: %v", ErrStorage, err)
	}

	var brands []string
	if err := json.Unmarshal(data, &brands); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal brands: %v", ErrStorage, err)
	}

	metrics.RecordCacheHit(serviceName, "brands")
	return brands, nil
}

// DeleteBrands инвалидирует кеш брендов после мутации устройств
func (r *RedisClient) DeleteBrands(ctx context.Context) error {
	if err := r.client.Del(ctx, brandsCacheKey).Err(); err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpDel)
		return fmt.Errorf("%w: failed to invalidate brands cache: %v", ErrStorage, err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (r *RedisClient) Close() error {
	return r.client.Close()
}
