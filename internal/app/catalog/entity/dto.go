package entity

// CreateDeviceRequest - запрос на создание устройства из админ-формы
type CreateDeviceRequest struct {
	Name        string      `json:"name" validate:"required,min=2,max=200"`
	Brand       string      `json:"brand" validate:"required,min=2,max=100"`
	Category    string      `json:"category" validate:"required,oneof=smartphone laptop"`
	Price       float64     `json:"price" validate:"gte=0"`
	Image       string      `json:"image" validate:"omitempty,max=500"`
	ReleaseDate string      `json:"release_date" validate:"required,datetime=2006-01-02"`
	Rating      float64     `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Description string      `json:"description" validate:"omitempty,max=2000"`
	Review      string      `json:"review" validate:"omitempty,max=5000"`
	Specs       DeviceSpecs `json:"specs"`
}

// UpdateDeviceRequest - запрос на частичное обновление устройства.
// Указатели отличают "поле не передано" от пустого значения,
// непереданные поля сохраняют текущее значение.
type UpdateDeviceRequest struct {
	Name        *string      `json:"name" validate:"omitempty,min=2,max=200"`
	Brand       *string      `json:"brand" validate:"omitempty,min=2,max=100"`
	Category    *string      `json:"category" validate:"omitempty,oneof=smartphone laptop"`
	Price       *float64     `json:"price" validate:"omitempty,gte=0"`
	Image       *string      `json:"image" validate:"omitempty,max=500"`
	ReleaseDate *string      `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
	Rating      *float64     `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Description *string      `json:"description" validate:"omitempty,max=2000"`
	Review      *string      `json:"review" validate:"omitempty,max=5000"`
	Specs       *DeviceSpecs `json:"specs"`
}

// CreateCommentRequest - запрос на создание комментария из формы отзыва
type CreateCommentRequest struct {
	DeviceID  string `json:"device_id" validate:"required"`
	UserName  string `json:"user_name" validate:"required,min=2,max=100"`
	UserEmail string `json:"user_email" validate:"omitempty,email"`
	Content   string `json:"content" validate:"required,min=5,max=1000"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
}

// UpdateFiltersRequest - частичное обновление спецификации фильтров.
// Brand и Category принимают любую строку, в том числе не встречающуюся
// в каталоге.
type UpdateFiltersRequest struct {
	SearchTerm *string `json:"search_term"`
	Brand      *string `json:"brand"`
	Category   *string `json:"category"`
	SortBy     *string `json:"sort_by" validate:"omitempty,oneof=name price rating release_date"`
	SortOrder  *string `json:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse - стандартный ответ об успехе
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// DeviceListResponse - ответ со списком устройств
type DeviceListResponse struct {
	Devices []Device `json:"devices"`
	Total   int      `json:"total"`
	Filters Filters  `json:"filters"`
}

// CommentListResponse - ответ со списком комментариев
type CommentListResponse struct {
	Comments []Comment `json:"comments"`
	Total    int       `json:"total"`
}

// BrandListResponse - ответ со списком брендов для фильтра
type BrandListResponse struct {
	Brands []string `json:"brands"`
	Total  int      `json:"total"`
}
