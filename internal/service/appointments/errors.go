package appointments

import "errors"

var (
	// ErrInvalidInput некорректные параметры запроса
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound запись не найдена
	ErrNotFound = errors.New("appointment not found")
	// ErrUpstreamUnavailable scheduling core недоступен
	ErrUpstreamUnavailable = errors.New("scheduling core unavailable")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
