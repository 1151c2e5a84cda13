package update_appointment

import "github.com/clarkyangjw/schedulease-web/internal/domain"

// Request желаемое состояние записи после редактирования
type Request struct {
	AppointmentID int64
	ClientID      int64
	ProviderID    int64
	ServiceID     int64
	// StartTime метка времени начала, секунды или миллисекунды
	StartTime          int64
	Status             string
	Notes              *string
	CancellationReason *string
}

// Response результат применения изменений
type Response struct {
	Appointment domain.Appointment
	// Replaced запись была пересоздана, идентификатор изменился
	Replaced bool
}
