package formsession

import (
	"strings"
	"time"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/pkg/timeunit"
)

// form состояние одной открытой формы записи.
// Все обращения идут под локом владеющей сессии.
type form struct {
	id            string
	mode          Mode
	appointmentID int64

	clientID           *int64
	startTime          string // локальная строка минутной точности, пусто когда не выбрано
	serviceID          *int64
	providerID         *int64
	status             domain.AppointmentStatus
	notes              *string
	cancellationReason *string

	available           []domain.Provider
	availabilityMessage string

	// availabilitySeq номер последнего выданного запроса доступности.
	// Ответ с меньшим номером устарел и отбрасывается.
	availabilitySeq uint64

	updatedAt time.Time
	closed    bool
}

// newCreateForm пустая форма создания записи
func newCreateForm(id string, now time.Time) *form {
	return &form{
		id:        id,
		mode:      ModeCreate,
		status:    domain.StatusConfirmed,
		updatedAt: now,
	}
}

// newEditForm форма, заполненная из существующей записи
func newEditForm(id string, appt domain.Appointment, loc *time.Location, now time.Time) (*form, error) {
	editable, err := timeunit.ToLocalEditableString(appt.StartTime, loc)
	if err != nil {
		return nil, err
	}

	f := &form{
		id:                 id,
		mode:               ModeEdit,
		appointmentID:      appt.ID,
		startTime:          editable,
		status:             appt.Status,
		notes:              appt.Notes,
		cancellationReason: appt.CancellationReason,
		updatedAt:          now,
	}

	if appt.ClientID > 0 {
		clientID := appt.ClientID
		f.clientID = &clientID
	}
	if appt.ServiceID > 0 {
		serviceID := appt.ServiceID
		f.serviceID = &serviceID
	}
	if appt.ProviderID > 0 {
		providerID := appt.ProviderID
		f.providerID = &providerID
	}

	return f, nil
}

// locks вычисляет доступность полей из уже заполненных
func (f *form) locks() Locks {
	return Locks{
		TimeEnabled:     f.clientID != nil,
		ServiceEnabled:  f.startTime != "",
		ProviderEnabled: f.startTime != "" && f.serviceID != nil,
	}
}

// validate проверяет готовность формы к отправке.
// Возвращает ошибки по каждому незаполненному полю.
func (f *form) validate() map[string]string {
	fieldErrors := make(map[string]string)

	if f.clientID == nil {
		fieldErrors["clientId"] = MsgClientRequired
	}
	if f.startTime == "" {
		fieldErrors["startTime"] = MsgStartTimeRequired
	}
	if f.serviceID == nil {
		fieldErrors["serviceId"] = MsgServiceRequired
	}
	if f.providerID == nil {
		fieldErrors["providerId"] = MsgProviderRequired
	}
	if f.status == domain.StatusCancelled && blank(f.cancellationReason) {
		fieldErrors["cancellationReason"] = MsgReasonRequired
	}

	if len(fieldErrors) == 0 {
		return nil
	}

	return fieldErrors
}

// providerListed входит ли мастер в текущий список доступных
func (f *form) providerListed(id int64) bool {
	for _, p := range f.available {
		if p.ID == id {
			return true
		}
	}

	return false
}

func (f *form) snapshot() *Snapshot {
	available := make([]domain.Provider, len(f.available))
	copy(available, f.available)

	return &Snapshot{
		ID:                  f.id,
		Mode:                f.mode,
		AppointmentID:       f.appointmentID,
		ClientID:            f.clientID,
		StartTime:           f.startTime,
		ServiceID:           f.serviceID,
		ProviderID:          f.providerID,
		Status:              string(f.status),
		Notes:               f.notes,
		CancellationReason:  f.cancellationReason,
		Locks:               f.locks(),
		Available:           available,
		AvailabilityMessage: f.availabilityMessage,
	}
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
