package service

import (
	"sort"
	"strings"
	"time"

	"devicehub/internal/app/catalog/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterDevices - чистая проекция (коллекция устройств × фильтры) в
// упорядоченный срез. Исходная коллекция не мутируется.
//
// Порядок применения:
//  1. поиск по подстроке (без учета регистра) в имени, бренде и
//     описании - логическое ИЛИ по трем полям; пустой запрос означает
//     "без фильтра", а не "ничего не найдено";
//  2. точное совпадение бренда, если задан;
//  3. точное совпадение категории, если задана;
//  4. стабильная сортировка по выбранному ключу, направление
//     инвертирует компаратор.
//
// Пагинации нет - всегда возвращается полный результат.
func FilterDevices(devices []entity.Device, f entity.Filters) []entity.Device {
	filtered := make([]entity.Device, 0, len(devices))

	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))
	for _, d := range devices {
		if term != "" && !matchesSearch(d, term) {
			continue
		}
		if f.Brand != "" && d.Brand != f.Brand {
			continue
		}
		if f.Category != "" && d.Category != f.Category {
			continue
		}
		filtered = append(filtered, d)
	}

	sortDevices(filtered, f.SortBy, f.SortOrder)

	return filtered
}

func matchesSearch(d entity.Device, term string) bool {
	return strings.Contains(strings.ToLower(d.Name), term) ||
		strings.Contains(strings.ToLower(d.Brand), term) ||
		strings.Contains(strings.ToLower(d.Description), term)
}

func sortDevices(devices []entity.Device, sortBy, sortOrder string) {
	// Имена в каталоге локализованы, сравниваем их с учетом локали
	var col *collate.Collator
	if sortBy == entity.SortByName {
		col = collate.New(language.Spanish, collate.Loose)
	}

	sort.SliceStable(devices, func(i, j int) bool {
		cmp := compareDevices(devices[i], devices[j], sortBy, col)
		if sortOrder == entity.SortOrderDesc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func compareDevices(a, b entity.Device, sortBy string, col *collate.Collator) int {
	switch sortBy {
	case entity.SortByName:
		return col.CompareString(a.Name, b.Name)
	case entity.SortByPrice:
		return compareFloat(a.Price, b.Price)
	case entity.SortByRating:
		return compareFloat(a.Rating, b.Rating)
	case entity.SortByReleaseDate:
		return parseReleaseDate(a.ReleaseDate).Compare(parseReleaseDate(b.ReleaseDate))
	default:
		// Неизвестный ключ сохраняет исходный порядок
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// parseReleaseDate разбирает дату выпуска в формате YYYY-MM-DD.
// Невалидная дата сортируется как нулевое время.
func parseReleaseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
