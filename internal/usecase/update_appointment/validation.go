package update_appointment

import (
	"fmt"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/pkg/timeunit"
)

// validateRequest проверяет корректность данных запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}

	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointment id must be positive", ErrInvalidRequest)
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

	status := domain.AppointmentStatus(req.Status)
	if !domain.IsValidStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, req.Status)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidRequest, domain.MaxNotesLength)
	}

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason must not exceed %d characters", ErrInvalidRequest, domain.MaxCancellationReasonLength)
	}

	return nil
}

// normalizeRequest приводит запрос к нормальной форме для сравнения.
// Причина отмены вне статуса CANCELLED отбрасывается.
func normalizeRequest(req *Request) (desiredState, error) {
	startSeconds, err := timeunit.ToSeconds(req.StartTime)
	if err != nil {
		return desiredState{}, fmt.Errorf("%w: start time: %v", ErrInvalidRequest, err)
	}

	desired := desiredState{
		ClientID:     req.ClientID,
		ProviderID:   req.ProviderID,
		ServiceID:    req.ServiceID,
		StartSeconds: startSeconds,
		Status:       domain.AppointmentStatus(req.Status),
		Notes:        normalizeOptional(req.Notes),
	}

	if desired.Status == domain.StatusCancelled {
		desired.CancellationReason = normalizeOptional(req.CancellationReason)
		if desired.CancellationReason == nil {
			return desiredState{}, fmt.Errorf("%w: cancellation reason is required for status CANCELLED", ErrInvalidRequest)
		}
	}

	return desired, nil
}
