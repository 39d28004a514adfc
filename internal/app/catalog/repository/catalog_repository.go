package repository

import (
	"context"
	"sync"
	"time"

	"devicehub/internal/app/catalog/entity"
	"devicehub/internal/app/catalog/util"

	"github.com/google/uuid"
)

// catalogRepository держит канонические коллекции в памяти и
// зеркалирует каждую мутацию в персистентное хранилище целиком
// (две записи: массив устройств и массив комментариев).
//
// Мутация сначала применяется в памяти, затем выполняется запись.
// При сбое записи память остается валидной и опережает хранилище,
// ошибка поднимается как util.ErrStorage; периодический снапшот
// затем выравнивает хранилище.
type catalogRepository struct {
	mu       sync.RWMutex
	devices  []entity.Device
	comments []entity.Comment
	store    util.Store
}

// NewCatalogRepository создает репозиторий каталога поверх хранилища
func NewCatalogRepository(store util.Store) CatalogRepository {
	return &catalogRepository{store: store}
}

// Init загружает коллекции из хранилища. Отсутствующая коллекция
// (nil от хранилища) заполняется стартовыми данными и записывается
// обратно ровно один раз. При недоступности хранилища репозиторий
// все равно получает стартовые данные и остается рабочим в памяти.
func (r *catalogRepository) Init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	devices, devErr := r.store.LoadDevices(ctx)
	comments, comErr := r.store.LoadComments(ctx)

	seedDevices := devices == nil
	seedComments := comments == nil

	if seedDevices {
		devices = entity.FixtureDevices()
	}
	if seedComments {
		comments = entity.FixtureComments()
	}
	r.devices = devices
	r.comments = comments

	if devErr != nil {
		return devErr
	}
	if comErr != nil {
		return comErr
	}

	// Ровно одна запись на каждую отсутствовавшую коллекцию
	if seedDevices {
		if err := r.store.SaveDevices(ctx, r.devices); err != nil {
			return err
		}
	}
	if seedComments {
		if err := r.store.SaveComments(ctx, r.comments); err != nil {
			return err
		}
	}

	return nil
}

// AddDevice назначает новый уникальный ID и добавляет устройство.
// Содержимое полей не проверяется - валидация выполняется выше.
func (r *catalogRepository) AddDevice(ctx context.Context, device *entity.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	device.ID = r.newDeviceID()
	r.devices = append(r.devices, *device)

	return r.store.SaveDevices(ctx, r.devices)
}

// UpdateDevice заменяет устройство с совпадающим ID. Неизвестный ID
// оставляет коллекцию нетронутой и возвращает ErrDeviceNotFound.
func (r *catalogRepository) UpdateDevice(ctx context.Context, device *entity.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.devices {
		if r.devices[i].ID == device.ID {
			r.devices[i] = *device
			return r.store.SaveDevices(ctx, r.devices)
		}
	}

	return ErrDeviceNotFound
}

// DeleteDevice удаляет устройство и каскадом все комментарии с его
// deviceId, затем персистит обе коллекции.
func (r *catalogRepository) DeleteDevice(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	devices := r.devices[:0]
	for _, d := range r.devices {
		if d.ID == id {
			found = true
			continue
		}
		devices = append(devices, d)
	}
	if !found {
		return 0, ErrDeviceNotFound
	}
	r.devices = devices

	removed := 0
	comments := r.comments[:0]
	for _, c := range r.comments {
		if c.DeviceID == id {
			removed++
			continue
		}
		comments = append(comments, c)
	}
	r.comments = comments

	if err := r.store.SaveDevices(ctx, r.devices); err != nil {
		return removed, err
	}
	if err := r.store.SaveComments(ctx, r.comments); err != nil {
		return removed, err
	}

	return removed, nil
}

// GetDeviceByID возвращает копию устройства или ErrDeviceNotFound
func (r *catalogRepository) GetDeviceByID(ctx context.Context, id string) (*entity.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.devices {
		if d.ID == id {
			device := d
			return &device, nil
		}
	}

	return nil, ErrDeviceNotFound
}

// GetAllDevices возвращает копию коллекции устройств
func (r *catalogRepository) GetAllDevices(ctx context.Context) ([]entity.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	devices := make([]entity.Device, len(r.devices))
	copy(devices, r.devices)
	return devices, nil
}

// AddComment назначает новый ID и время создания и добавляет
// комментарий. Существование устройства не проверяется.
func (r *catalogRepository) AddComment(ctx context.Context, comment *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment.ID = r.newCommentID()
	comment.CreatedAt = time.Now().UTC()
	r.comments = append(r.comments, *comment)

	return r.store.SaveComments(ctx, r.comments)
}

// GetCommentsByDeviceID возвращает комментарии устройства
// в порядке вставки
func (r *catalogRepository) GetCommentsByDeviceID(ctx context.Context, deviceID string) ([]entity.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var comments []entity.Comment
	for _, c := range r.comments {
		if c.DeviceID == deviceID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

// GetAllComments возвращает копию коллекции комментариев
func (r *catalogRepository) GetAllComments(ctx context.Context) ([]entity.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comments := make([]entity.Comment, len(r.comments))
	copy(comments, r.comments)
	return comments, nil
}

// Flush повторно записывает обе коллекции в хранилище
func (r *catalogRepository) Flush(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.store.SaveDevices(ctx, r.devices); err != nil {
		return err
	}
	return r.store.SaveComments(ctx, r.comments)
}

// newDeviceID генерирует устойчивый к коллизиям идентификатор.
// Вызывается под блокировкой записи.
func (r *catalogRepository) newDeviceID() string {
	for {
		id := uuid.NewString()
		if !r.deviceIDExists(id) {
			return id
		}
	}
}

func (r *catalogRepository) newCommentID() string {
	for {
		id := uuid.NewString()
		if !r.commentIDExists(id) {
			return id
		}
	}
}

func (r *catalogRepository) deviceIDExists(id string) bool {
	for _, d := range r.devices {
		if d.ID == id {
			return true
		}
	}
	return false
}

func (r *catalogRepository) commentIDExists(id string) bool {
	for _, c := range r.comments {
		if c.ID == id {
			return true
		}
	}
	return false
}
