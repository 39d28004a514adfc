package entity

import "time"

// Категории устройств в каталоге
const (
	CategorySmartphone = "smartphone"
	CategoryLaptop     = "laptop"
)

// Ключи сортировки для списка устройств
const (
	SortByName        = "name"
	SortByPrice       = "price"
	SortByRating      = "rating"
	SortByReleaseDate = "release_date"
)

// Направления сортировки
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// SmartphoneSpecs - характеристики, применимые только к смартфонам
type SmartphoneSpecs struct {
	ScreenSize string `json:"screen_size,omitempty"`
	Camera     string `json:"camera,omitempty"`
	Battery    string `json:"battery,omitempty"`
}

// LaptopSpecs - характеристики, применимые только к ноутбукам
type LaptopSpecs struct {
	Graphics    string   `json:"graphics,omitempty"`
	Ports       []string `json:"ports,omitempty"`
	Weight      string   `json:"weight,omitempty"`
	DisplayType string   `json:"display_type,omitempty"`
}

// DeviceSpecs содержит общие характеристики плюс ровно один
// вариант (Smartphone или Laptop), выбираемый по категории устройства
// при создании. Вариант, не соответствующий категории, не допускается.
type DeviceSpecs struct {
	Processor       string `json:"processor,omitempty"`
	RAM             string `json:"ram,omitempty"`
	Storage         string `json:"storage,omitempty"`
	OperatingSystem string `json:"operating_system,omitempty"`

	Smartphone *SmartphoneSpecs `json:"smartphone,omitempty"`
	Laptop     *LaptopSpecs     `json:"laptop,omitempty"`
}

// Device представляет устройство в каталоге (смартфон или ноутбук)
// ID - непрозрачная уникальная строка, назначается при создании и неизменна
type Device struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Brand       string      `json:"brand"`
	Category    string      `json:"category"`
	Price       float64     `json:"price"`
	Image       string      `json:"image"`
	ReleaseDate string      `json:"release_date"` // формат YYYY-MM-DD
	Rating      float64     `json:"rating"`
	Description string      `json:"description"`
	Review      string      `json:"review"`
	Specs       DeviceSpecs `json:"specs"`
}

// Comment представляет пользовательский отзыв о конкретном устройстве.
// DeviceID не проверяется на существование устройства при вставке,
// ссылочная целостность поддерживается только каскадным удалением.
// Комментарии никогда не обновляются после создания.
type Comment struct {
	ID        string    `json:"id"`
	DeviceID  string    `json:"device_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// Filters - активная спецификация фильтрации/сортировки списка устройств.
// Живет только в памяти процесса, никогда не персистится.
type Filters struct {
	SearchTerm string `json:"search_term"`
	Brand      string `json:"brand"`
	Category   string `json:"category"`
	SortBy     string `json:"sort_by"`
	SortOrder  string `json:"sort_order"`
}

// DefaultFilters возвращает начальную спецификацию фильтров:
// пустой поиск, без фильтров, сортировка по имени по возрастанию
func DefaultFilters() Filters {
	return Filters{
		SortBy:    SortByName,
		SortOrder: SortOrderAsc,
	}
}

// DeviceEvent представляет событие изменения устройства для Kafka
type DeviceEvent struct {
	EventType string    `json:"event_type"` // DEVICE_CREATED, DEVICE_UPDATED, DEVICE_DELETED
	DeviceID  string    `json:"device_id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// CommentEvent представляет событие создания комментария для Kafka
type CommentEvent struct {
	EventType string    `json:"event_type"` // COMMENT_CREATED
	CommentID string    `json:"comment_id"`
	DeviceID  string    `json:"device_id"`
	Rating    int       `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}
