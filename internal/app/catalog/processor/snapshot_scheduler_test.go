package processor

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"devicehub/internal/app/catalog/repository/mocks"
	"devicehub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitWithWriter("devicehub-test", "error", io.Discard)
	os.Exit(m.Run())
}

func TestNewSnapshotScheduler(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.MockCatalogRepository)

	// Act
	scheduler := NewSnapshotScheduler(mockRepo)

	// Assert
	assert.NotNil(t, scheduler)
	assert.Empty(t, scheduler.GetEntries())
}

func TestStart_PerformsInitialFlush(t *testing.T) {
	mockRepo := new(mocks.MockCatalogRepository)
	mockRepo.On("Flush", mock.Anything).Return(nil)

	scheduler := NewSnapshotScheduler(mockRepo)

	err := scheduler.Start(context.Background(), "@every 1h")
	require.NoError(t, err)
	defer scheduler.Stop()

	// Первый сброс выполняется сразу, не дожидаясь расписания
	mockRepo.AssertCalled(t, "Flush", mock.Anything)
	assert.Len(t, scheduler.GetEntries(), 1)
}

func TestStart_InvalidScheduleRejected(t *testing.T) {
	mockRepo := new(mocks.MockCatalogRepository)

	scheduler := NewSnapshotScheduler(mockRepo)

	err := scheduler.Start(context.Background(), "not a schedule")

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Flush", mock.Anything)
}

func TestStart_FlushErrorDoesNotFail(t *testing.T) {
	mockRepo := new(mocks.MockCatalogRepository)
	mockRepo.On("Flush", mock.Anything).Return(errors.New("storage down"))

	scheduler := NewSnapshotScheduler(mockRepo)

	// Сбой снапшота логируется, планировщик продолжает работать
	err := scheduler.Start(context.Background(), "@every 1h")
	require.NoError(t, err)
	defer scheduler.Stop()

	assert.Len(t, scheduler.GetEntries(), 1)
}

func TestStop_WaitsForCompletion(t *testing.T) {
	mockRepo := new(mocks.MockCatalogRepository)
	mockRepo.On("Flush", mock.Anything).Return(nil)

	scheduler := NewSnapshotScheduler(mockRepo)
	require.NoError(t, scheduler.Start(context.Background(), "@every 1h"))

	scheduler.Stop()

	assert.Len(t, scheduler.GetEntries(), 1)
}
