package incidents

import "errors"

var (
	// ErrInvalidInput некорректные параметры запроса
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound инцидент не найден
	ErrNotFound = errors.New("incident not found")
	// ErrAlreadyAcknowledged инцидент уже подтверждён
	ErrAlreadyAcknowledged = errors.New("incident already acknowledged")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
