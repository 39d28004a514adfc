package repository

import (
	"context"
	"encoding/json"
	"testing"

	"devicehub/internal/app/catalog/entity"
	"devicehub/internal/app/catalog/util"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) (CatalogRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	store, err := util.NewRedisClient(mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewCatalogRepository(store), mr
}

func TestInit_EmptyStoreSeedsFixtures(t *testing.T) {
	// Arrange
	repo, mr := setupTestRepo(t)
	ctx := context.Background()

	// Act
	err := repo.Init(ctx)

	// Assert
	require.NoError(t, err)

	devices, err := repo.GetAllDevices(ctx)
	require.NoError(t, err)
	assert.Len(t, devices, 8)

	comments, err := repo.GetAllComments(ctx)
	require.NoError(t, err)
	assert.Len(t, comments, 17)

	// Стартовые данные записаны обратно в хранилище
	assert.True(t, mr.Exists("devices"))
	assert.True(t, mr.Exists("comments"))
}

func TestInit_ExistingStoreHydratesWithoutReseed(t *testing.T) {
	repo, mr := setupTestRepo(t)
	ctx := context.Background()

	existing := []entity.Device{{ID: "custom-1", Name: "Custom Phone", Brand: "Acme", Category: entity.CategorySmartphone}}
	data, err := json.Marshal(existing)
	require.NoError(t, err)
	require.NoError(t, mr.Set("devices", string(data)))

	err = repo.Init(ctx)
	require.NoError(t, err)

	devices, err := repo.GetAllDevices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "custom-1", devices[0].ID)

	// Комментарии отсутствовали и были засеяны
	comments, err := repo.GetAllComments(ctx)
	require.NoError(t, err)
	assert.Len(t, comments, 17)
}

func TestInit_StorageDownStillSeedsMemory(t *testing.T) {
	repo, mr := setupTestRepo(t)
	ctx := context.Background()
	mr.Close()

	err := repo.Init(ctx)

	assert.ErrorIs(t, err, util.ErrStorage)

	// Память рабочая несмотря на недоступное хранилище
	devices, err := repo.GetAllDevices(ctx)
	require.NoError(t, err)
	assert.Len(t, devices, 8)
}

func TestAddDevice_AssignsUniqueIDAndPersists(t *testing.T) {
	repo, mr := setupTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	device := &entity.Device{
		Name:     "Nuevo Telefono",
		Brand:    "Acme",
		Category: entity.CategorySmartphone,
		Price:    499,
	}

	err := repo.AddDevice(ctx, device)
	require.NoError(t, err)

	assert.NotEmpty(t, device.ID)

	devices, err := repo.GetAllDevices(ctx)
	require.NoError(t, err)
	assert.Len(t, devices, 9)

	seen := make(map[string]bool)
	for _, d := range devices {
		assert.False(t, seen[d.ID], "duplicate device id %s", d.ID)
		seen[d.ID] = true
	}

	// Новый репозиторий поверх того же хранилища видит устройство
	store, err := util.NewRedisClient(mr.Addr(), "", 0)
	require.NoError(t, err)
	defer store.Close()

	repo2 := NewCatalogRepository(store)
	require.NoError(t, repo2.Init(ctx))

	persisted, err := repo2.GetDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nuevo Telefono", persisted.Name)
}

func TestUpdateDevice_ReplacesMatchingDevice(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	device, err := repo.GetDeviceByID(ctx, "1")
	require.NoError(t, err)
	device.Price = 999

	err = repo.UpdateDevice(ctx, device)
	require.NoError(t, err)

	updated, err := repo.GetDeviceByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, float64(999), updated.Price)
}

func TestUpdateDevice_UnknownIDLeavesCollectionUnchanged(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	err := repo.UpdateDevice(ctx, &entity.Device{ID: "no-such-id", Name: "Ghost"})

	assert.ErrorIs(t, err, ErrDeviceNotFound)

	devices, err := repo.GetAllDevices(ctx)
	require.NoError(t, err)
	assert.Len(t, devices, 8)
}

func TestDeleteDevice_CascadesComments(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	// У устройства 1 два комментария: c1 и c2
	removed, err := repo.DeleteDevice(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = repo.GetDeviceByID(ctx, "1")
	assert.ErrorIs(t, err, ErrDeviceNotFound)

	comments, err := repo.GetCommentsByDeviceID(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, comments)

	all, err := repo.GetAllComments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 15)
}

func TestDeleteDevice_UnknownID(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	_, err := repo.DeleteDevice(ctx, "no-such-id")

	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestAddComment_StampsIDAndCreatedAt(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	comment := &entity.Comment{
		DeviceID: "2",
		UserName: "Test User",
		Content:  "Muy buen dispositivo",
		Rating:   5,
	}

	err := repo.AddComment(ctx, comment)
	require.NoError(t, err)

	assert.NotEmpty(t, comment.ID)
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestAddComment_DoesNotValidateDeviceExistence(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	comment := &entity.Comment{
		DeviceID: "no-such-device",
		UserName: "Test User",
		Content:  "Comentario huerfano",
		Rating:   3,
	}

	err := repo.AddComment(ctx, comment)
	require.NoError(t, err)

	comments, err := repo.GetCommentsByDeviceID(ctx, "no-such-device")
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestGetCommentsByDeviceID_PreservesInsertionOrder(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	comments, err := repo.GetCommentsByDeviceID(ctx, "4")
	require.NoError(t, err)

	require.Len(t, comments, 3)
	assert.Equal(t, "c7", comments[0].ID)
	assert.Equal(t, "c8", comments[1].ID)
	assert.Equal(t, "c9", comments[2].ID)
}

func TestFlush_RewritesCollections(t *testing.T) {
	repo, mr := setupTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	// Имитируем рассинхронизацию: хранилище потеряло данные
	mr.FlushAll()
	assert.False(t, mr.Exists("devices"))

	err := repo.Flush(ctx)
	require.NoError(t, err)

	assert.True(t, mr.Exists("devices"))
	assert.True(t, mr.Exists("comments"))
}

func TestMutationAfterStorageFailure_MemoryStaysValid(t *testing.T) {
	repo, mr := setupTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	mr.Close()

	device := &entity.Device{
		Name:     "Offline Phone",
		Brand:    "Acme",
		Category: entity.CategorySmartphone,
	}

	err := repo.AddDevice(ctx, device)
	assert.ErrorIs(t, err, util.ErrStorage)

	// Мутация применена в памяти несмотря на сбой записи
	devices, err := repo.GetAllDevices(ctx)
	require.NoError(t, err)
	assert.Len(t, devices, 9)
}
