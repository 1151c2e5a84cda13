package create_appointment

import (
	"fmt"
	"strings"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
)

// validateRequest проверяет корректность данных запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: client id must be positive", ErrInvalidRequest)
	}

	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: provider id must be positive", ErrInvalidRequest)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service id must be positive", ErrInvalidRequest)
	}

	if req.StartTime <= 0 {
		return fmt.Errorf("%w: start time must be positive", ErrInvalidRequest)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidRequest, domain.MaxNotesLength)
	}

	return nil
}

// normalizeNotes приводит пустые заметки к отсутствующим
func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
