package directory

import "errors"

var (
	// ErrInvalidInput некорректные данные справочника
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound запрошенная сущность не найдена
	ErrNotFound = errors.New("not found")
	// ErrUpstreamUnavailable scheduling core недоступен
	ErrUpstreamUnavailable = errors.New("scheduling core unavailable")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
