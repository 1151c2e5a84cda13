package query_available_providers

import "github.com/clarkyangjw/schedulease-web/internal/domain"

// Request модель запроса доступных мастеров.
// StartTime принимается в секундах или миллисекундах и нормализуется.
// CurrentProviderID заполняется в режиме редактирования: текущий мастер
// записи не должен пропадать из выбора из-за того, что слот занят
// самой редактируемой записью.
type Request struct {
	StartTime         int64
	ServiceID         int64
	CurrentProviderID *int64
}

// Response модель ответа со списком доступных мастеров
type Response struct {
	Providers []domain.Provider
}
