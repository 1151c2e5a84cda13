package query_available_providers

import "errors"

var (
	// ErrUpstreamUnavailable возвращается при недоступности scheduling core.
	// Вызывающий код обязан трактовать результат как пустой (fail closed),
	// а не как "все мастера свободны".
	ErrUpstreamUnavailable = errors.New("query_available_providers: scheduling core unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("query_available_providers: internal error")
)
