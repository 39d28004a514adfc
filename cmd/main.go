package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devicehub/internal/app/catalog/config"
	"devicehub/internal/app/catalog/handler"
	"devicehub/internal/app/catalog/processor"
	"devicehub/internal/app/catalog/repository"
	"devicehub/internal/app/catalog/service"
	"devicehub/internal/app/catalog/util"
	"devicehub/pkg/logger"
)

func main() {
	logger.Init("devicehub", "info")

	// === ИНИЦИАЛИЗАЦИЯ КОНФИГУРАЦИИ ===
	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Перечитываем уровень логирования из конфигурации
	logger.Init("devicehub", cfg.Log.Level)

	// === ПОДКЛЮЧЕНИЕ К REDIS ===
	// Redis держит персистентные коллекции каталога и кеш брендов
	redisClient, err := util.NewRedisClient(
		cfg.Redis.Address(),
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer redisClient.Close()
	logger.Info().Msg("successfully connected to Redis")

	// === ИНИЦИАЛИЗАЦИЯ KAFKA PRODUCER ===
	// Producer отправляет события DEVICE_* и COMMENT_CREATED.
	// Без брокеров каталог работает, события не публикуются.
	var kafkaProducer util.MessagePublisher
	if cfg.Kafka.Enabled() {
		producer := util.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		kafkaProducer = producer
		logger.Info().Str("topic", cfg.Kafka.Topic).Msg("successfully initialized Kafka producer")
	} else {
		logger.Warn().Msg("Kafka brokers not configured, event publishing disabled")
	}

	// === ИНИЦИАЛИЗАЦИЯ СЛОЯ РЕПОЗИТОРИЯ ===
	// Репозиторий держит коллекции в памяти и зеркалирует их в Redis.
	// Недоступное хранилище при старте не фатально: память получает
	// стартовые данные, снапшот выровняет хранилище позже.
	catalogRepo := repository.NewCatalogRepository(redisClient)
	if err := catalogRepo.Init(context.Background()); err != nil {
		logger.Warn().Err(err).Msg("catalog initialized from fixtures, storage unavailable")
	}

	// === ИНИЦИАЛИЗАЦИЯ БИЗНЕС-ЛОГИКИ ===
	// Service layer координирует репозиторий, кеш и Kafka
	catalogService := service.NewCatalogService(catalogRepo, redisClient, kafkaProducer)

	// === ИНИЦИАЛИЗАЦИЯ HTTP HANDLERS ===
	deviceHandler := handler.NewDeviceHandler(catalogService)
	commentHandler := handler.NewCommentHandler(catalogService)
	filterHandler := handler.NewFilterHandler(catalogService)

	// === НАСТРОЙКА МАРШРУТОВ ===
	router := handler.SetupRoutes(deviceHandler, commentHandler, filterHandler)

	// === ЗАПУСК ПЛАНИРОВЩИКА СНАПШОТОВ ===
	snapshotScheduler := processor.NewSnapshotScheduler(catalogRepo)
	if err := snapshotScheduler.Start(context.Background(), cfg.Snapshot.Schedule); err != nil {
		logger.Fatal().Err(err).Msg("failed to start snapshot scheduler")
	}

	// === НАСТРОЙКА HTTP СЕРВЕРА ===
	// Production-ready настройки с таймаутами
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second, // Таймаут чтения запроса
		WriteTimeout: 15 * time.Second, // Таймаут записи ответа
		IdleTimeout:  60 * time.Second, // Таймаут idle соединений
	}

	// === ЗАПУСК HTTP СЕРВЕРА ===
	// Запускаем сервер в отдельной горутине для graceful shutdown
	go func() {
		logger.Info().Str("address", cfg.Server.Address()).Msg("starting DeviceHub")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// === GRACEFUL SHUTDOWN ===
	// Ожидаем сигнала завершения (SIGINT или SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down DeviceHub")

	snapshotScheduler.Stop()

	// Даем серверу 30 секунд на завершение текущих запросов
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	// Финальный снапшот, чтобы хранилище не отстало от памяти
	if err := catalogRepo.Flush(ctx); err != nil {
		logger.Warn().Err(err).Msg("final snapshot flush failed")
	}

	logger.Info().Msg("DeviceHub stopped gracefully")
}
