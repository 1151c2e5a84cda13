package create_appointment

import "errors"

var (
	// ErrInvalidRequest некорректные данные запроса
	ErrInvalidRequest = errors.New("invalid request")
	// ErrReferenceNotFound клиент, мастер или услуга не найдены в scheduling core
	ErrReferenceNotFound = errors.New("referenced entity not found")
	// ErrSlotConflict выбранное время уже занято
	ErrSlotConflict = errors.New("slot conflict")
	// ErrUpstreamUnavailable scheduling core недоступен
	ErrUpstreamUnavailable = errors.New("scheduling core unavailable")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
