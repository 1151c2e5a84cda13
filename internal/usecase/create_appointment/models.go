package create_appointment

import "github.com/clarkyangjw/schedulease-web/internal/domain"

// Request данные для создания записи
type Request struct {
	ClientID   int64
	ProviderID int64
	ServiceID  int64
	// StartTime метка времени начала, секунды или миллисекунды
	StartTime int64
	Notes     *string
}

// Response результат создания записи
type Response struct {
	Appointment domain.Appointment
}
