package update_appointment

import "errors"

var (
	// ErrInvalidRequest некорректные данные запроса
	ErrInvalidRequest = errors.New("invalid request")
	// ErrAppointmentNotFound запись не найдена в scheduling core
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrSlotConflict новое время уже занято, исходная запись не тронута
	ErrSlotConflict = errors.New("slot conflict")
	// ErrUpstreamUnavailable scheduling core недоступен
	ErrUpstreamUnavailable = errors.New("scheduling core unavailable")
	// ErrPartialFailure исходная запись удалена, создать новую не удалось
	ErrPartialFailure = errors.New("appointment replace partially failed")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
