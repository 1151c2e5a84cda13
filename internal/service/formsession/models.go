package formsession

import "github.com/clarkyangjw/schedulease-web/internal/domain"

// Mode режим работы формы
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Patch изменение полей формы. nil означает "поле не трогали".
// ProviderID со значением 0 снимает выбор мастера.
type Patch struct {
	ClientID           *int64
	StartTime          *string
	ServiceID          *int64
	ProviderID         *int64
	Status             *string
	Notes              *string
	CancellationReason *string
}

// Locks какие поля формы сейчас доступны для ввода.
// Поле клиента доступно всегда.
type Locks struct {
	TimeEnabled     bool
	ServiceEnabled  bool
	ProviderEnabled bool
}

// Snapshot состояние формы, отдаваемое наружу после каждой операции
type Snapshot struct {
	ID            string
	Mode          Mode
	AppointmentID int64

	ClientID           *int64
	StartTime          string
	ServiceID          *int64
	ProviderID         *int64
	Status             string
	Notes              *string
	CancellationReason *string

	Locks     Locks
	Available []domain.Provider
	// AvailabilityMessage сообщение пользователю о неудачном
	// запросе доступности, пусто когда всё в порядке
	AvailabilityMessage string
}

// SubmitResult итог успешной отправки формы
type SubmitResult struct {
	Appointment domain.Appointment
	// Replaced запись была пересоздана под новым идентификатором
	Replaced bool
}
