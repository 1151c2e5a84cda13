package schedcore

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("schedcore client: appointment not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("schedcore client: client not found")

	// ErrProviderNotFound возвращается, когда мастер не найден
	ErrProviderNotFound = errors.New("schedcore client: provider not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("schedcore client: service not found")

	// ErrSlotConflict возвращается, когда слот занят (ответ 409)
	ErrSlotConflict = errors.New("schedcore client: time slot conflict")

	// ErrBadRequest возвращается, когда scheduling core отклонил запрос как некорректный
	ErrBadRequest = errors.New("schedcore client: bad request")

	// ErrUnavailable возвращается при сетевых ошибках и недоступности сервиса
	ErrUnavailable = errors.New("schedcore client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("schedcore client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("schedcore client: internal error")
)
