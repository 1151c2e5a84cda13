package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/clarkyangjw/schedulease-web/internal/integrations/schedcore"
	"github.com/clarkyangjw/schedulease-web/pkg/timeunit"
)

// Usecase создание записи в scheduling core
type Usecase struct {
	schedCore SchedCoreClient
	log       Logger
}

// NewUsecase конструктор
func NewUsecase(schedCore SchedCoreClient, log Logger) *Usecase {
	return &Usecase{
		schedCore: schedCore,
		log:       log,
	}
}

// Execute создаёт запись. Время начала нормализуется к секундам
// до отправки в scheduling core.
func (uc *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	startSeconds, err := timeunit.ToSeconds(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrInvalidRequest, err)
	}

	created, err := uc.schedCore.CreateAppointment(ctx, &schedcore.CreateAppointmentRequest{
		ClientID:   req.ClientID,
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		StartTime:  startSeconds,
		Notes:      normalizeNotes(req.Notes),
	})
	if err != nil {
		return nil, uc.mapUpstreamError(err)
	}

	uc.log.Info("appointment created: id=%d client=%d provider=%d service=%d start=%d",
		created.ID, req.ClientID, req.ProviderID, req.ServiceID, startSeconds)

	return &Response{Appointment: *created.ToDomain()}, nil
}

func (uc *Usecase) mapUpstreamError(err error) error {
	switch {
	case errors.Is(err, schedcore.ErrSlotConflict):
		return fmt.Errorf("%w: %v", ErrSlotConflict, err)
	case errors.Is(err, schedcore.ErrClientNotFound),
		errors.Is(err, schedcore.ErrProviderNotFound),
		errors.Is(err, schedcore.ErrServiceNotFound),
		errors.Is(err, schedcore.ErrAppointmentNotFound):
		return fmt.Errorf("%w: %v", ErrReferenceNotFound, err)
	case errors.Is(err, schedcore.ErrBadRequest):
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	case errors.Is(err, schedcore.ErrUnavailable):
		uc.log.Error("scheduling core unavailable on create: %v", err)
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	default:
		uc.log.Error("unexpected error on create: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
