package update_appointment

import (
	"strings"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
)

// desiredState запрос после нормализации времени и опциональных полей
type desiredState struct {
	ClientID           int64
	ProviderID         int64
	ServiceID          int64
	StartSeconds       int64
	Status             domain.AppointmentStatus
	Notes              *string
	CancellationReason *string
}

// changeSet итог сравнения желаемого состояния с текущим
type changeSet struct {
	// statusChanged изменился только статус или причина отмены
	statusChanged bool
	// substantiveChanged изменились клиент, мастер, услуга, время или заметки.
	// Такие изменения scheduling core не принимает через update,
	// запись пересоздаётся.
	substantiveChanged bool
}

func (c changeSet) none() bool {
	return !c.statusChanged && !c.substantiveChanged
}

func (c changeSet) statusOnly() bool {
	return c.statusChanged && !c.substantiveChanged
}

// computeChanges сравнивает текущую запись с желаемым состоянием.
// Заметки и причина отмены сравниваются после нормализации:
// пустая строка эквивалентна отсутствию значения.
func computeChanges(existing domain.Appointment, desired desiredState) changeSet {
	var changes changeSet

	if existing.ClientID != desired.ClientID ||
		existing.ProviderID != desired.ProviderID ||
		existing.ServiceID != desired.ServiceID ||
		existing.StartTime != desired.StartSeconds {
		changes.substantiveChanged = true
	}

	if !optionalEqual(normalizeOptional(existing.Notes), desired.Notes) {
		changes.substantiveChanged = true
	}

	if existing.Status != desired.Status {
		changes.statusChanged = true
	}

	if !optionalEqual(normalizeOptional(existing.CancellationReason), desired.CancellationReason) {
		changes.statusChanged = true
	}

	return changes
}

// normalizeOptional приводит пустые опциональные строки к отсутствующим
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func optionalEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}
