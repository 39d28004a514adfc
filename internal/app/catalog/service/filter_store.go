package service

import (
	"sync"

	"devicehub/internal/app/catalog/entity"
)

// FilterStore хранит текущую спецификацию фильтров списка устройств.
// Состояние живет только в памяти процесса и сбрасывается при
// перезапуске. Значения brand/category не валидируются - строка,
// не встречающаяся в каталоге, просто ничего не выберет.
type FilterStore struct {
	mu      sync.RWMutex
	current entity.Filters
}

// NewFilterStore создает хранилище с фильтрами по умолчанию
func NewFilterStore() *FilterStore {
	return &FilterStore{current: entity.DefaultFilters()}
}

// Get возвращает копию текущей спецификации
func (s *FilterStore) Get() entity.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set выполняет частичное слияние: непереданные поля сохраняют
// текущее значение. Возвращает результат слияния.
func (s *FilterStore) Set(req *entity.UpdateFiltersRequest) entity.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.SearchTerm != nil {
		s.current.SearchTerm = *req.SearchTerm
	}
	if req.Brand != nil {
		s.current.Brand = *req.Brand
	}
	if req.Category != nil {
		s.current.Category = *req.Category
	}
	if req.SortBy != nil {
		s.current.SortBy = *req.SortBy
	}
	if req.SortOrder != nil {
		s.current.SortOrder = *req.SortOrder
	}

	return s.current
}

// Reset возвращает спецификацию к значениям по умолчанию
func (s *FilterStore) Reset() entity.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = entity.DefaultFilters()
	return s.current
}
