package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// HTTP метрики
// =============================================================================

// HttpRequestsTotal - счётчик всех HTTP запросов
// Labels: service, method, path, status
var HttpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"service", "method", "path", "status"},
)

// HttpRequestDuration - гистограмма времени ответа
// Пример: histogram_quantile(0.95, rate(http_request_duration_seconds_bucket[5m]))
var HttpRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"service", "method", "path"},
)

// HttpRequestsInFlight - текущее количество обрабатываемых запросов
var HttpRequestsInFlight = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Current number of HTTP requests being processed",
	},
	[]string{"service"},
)

// =============================================================================
// Redis метрики (хранилище каталога + кеш брендов)
// =============================================================================

// RedisCacheHits - попадания в кеш
var RedisCacheHits = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "redis_cache_hits_total",
		Help: "Total number of Redis cache hits",
	},
	[]string{"service", "key_prefix"},
)

// RedisCacheMisses - промахи кеша
var RedisCacheMisses = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "redis_cache_misses_total",
		Help: "Total number of Redis cache misses",
	},
	[]string{"service", "key_prefix"},
)

// RedisOperationDuration - время операций Redis
var RedisOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "redis_operation_duration_seconds",
		Help:    "Duration of Redis operations in seconds",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	},
	[]string{"service", "operation"},
)

// RedisErrors - ошибки Redis
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "redis_errors_total",
		Help: "Total number of Redis errors",
	},
	[]string{"service", "operation"},
)

// =============================================================================
// Kafka метрики
// =============================================================================

// KafkaMessagesProduced - отправленные сообщения
var KafkaMessagesProduced = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_messages_produced_total",
		Help: "Total number of Kafka messages produced",
	},
	[]string{"service", "topic"},
)

// KafkaProduceDuration - время отправки сообщения
var KafkaProduceDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "kafka_produce_duration_seconds",
		Help:    "Duration of Kafka produce operations",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	},
	[]string{"service", "topic"},
)

// KafkaErrors - ошибки Kafka
var KafkaErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_errors_total",
		Help: "Total number of Kafka errors",
	},
	[]string{"service", "topic", "operation"},
)

// =============================================================================
// Бизнес-метрики каталога
// =============================================================================

// DevicesCreated - созданные устройства
var DevicesCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "catalog_devices_created_total",
		Help: "Total number of devices created",
	},
)

// DevicesUpdated - обновленные устройства
var DevicesUpdated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "catalog_devices_updated_total",
		Help: "Total number of devices updated",
	},
)

// DevicesDeleted - удаленные устройства
var DevicesDeleted = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "catalog_devices_deleted_total",
		Help: "Total number of devices deleted",
	},
)

// CommentsCreated - созданные комментарии
var CommentsCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "catalog_comments_created_total",
		Help: "Total number of comments created",
	},
)

// CommentsCascadeDeleted - комментарии, удаленные каскадом вместе с устройством
var CommentsCascadeDeleted = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "catalog_comments_cascade_deleted_total",
		Help: "Total number of comments removed by device cascade delete",
	},
)

// FilterQueries - запросы отфильтрованного списка по ключу сортировки
var FilterQueries = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catalog_filter_queries_total",
		Help: "Total number of filtered device listings",
	},
	[]string{"sort_by", "sort_order"},
)

// SnapshotFlushes - периодические сбросы состояния в хранилище
var SnapshotFlushes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catalog_snapshot_flushes_total",
		Help: "Total number of snapshot flushes to the persistent store",
	},
	[]string{"status"}, // success, error
)
