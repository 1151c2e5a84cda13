package formsession

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrSessionNotFound сессия формы не существует или уже закрыта
	ErrSessionNotFound = errors.New("form session not found")
	// ErrFieldLocked поле недоступно, пока не заполнены предыдущие
	ErrFieldLocked = errors.New("field is locked")
	// ErrValidation проверка полей формы не пройдена
	ErrValidation = errors.New("validation failed")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)

// Сообщения об ошибках полей, показываются пользователю как есть.
const (
	MsgClientRequired     = "Client is required"
	MsgStartTimeRequired  = "Start time is required"
	MsgStartTimeInvalid   = "Start time is not a valid date"
	MsgServiceRequired    = "Service is required"
	MsgProviderRequired   = "Provider is required"
	MsgProviderUnknown    = "Selected provider is not available for this time"
	MsgReasonRequired     = "Cancellation reason is required when cancelling"
	MsgStatusUnknown      = "Unknown appointment status"
	MsgStatusCreateLocked = "Status can only be changed for an existing appointment"
)

// ValidationError ошибки конкретных полей формы
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
