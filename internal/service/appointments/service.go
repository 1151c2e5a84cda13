package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/internal/integrations/schedcore"
	"github.com/clarkyangjw/schedulease-web/pkg/timeunit"
)

// Service чтение записей и прямые операции над ними (смена статуса,
// удаление). Редактирование через сравнение с текущим состоянием
// живёт отдельно и сюда не входит.
type Service struct {
	schedCore SchedCoreClient
	log       Logger
}

// NewService конструктор
func NewService(schedCore SchedCoreClient, log Logger) *Service {
	return &Service{
		schedCore: schedCore,
		log:       log,
	}
}

// Range записи за период. Границы принимаются в секундах или
// миллисекундах и нормализуются перед запросом.
func (s *Service) Range(ctx context.Context, start, end int64) ([]domain.Appointment, error) {
	startSeconds, err := timeunit.ToSeconds(start)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidInput, err)
	}
	endSeconds, err := timeunit.ToSeconds(end)
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrInvalidInput, err)
	}
	if endSeconds < startSeconds {
		return nil, fmt.Errorf("%w: end is before start", ErrInvalidInput)
	}

	wire, err := s.schedCore.ListAppointments(ctx, startSeconds, endSeconds)
	if err != nil {
		return nil, s.mapUpstreamError(err)
	}

	result := make([]domain.Appointment, 0, len(wire))
	for i := range wire {
		result = append(result, *wire[i].ToDomain())
	}

	return result, nil
}

// Get одна запись по id
func (s *Service) Get(ctx context.Context, id int64) (*domain.Appointment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	wire, err := s.schedCore.GetAppointment(ctx, id)
	if err != nil {
		return nil, s.mapUpstreamError(err)
	}

	return wire.ToDomain(), nil
}

// UpdateStatus прямая смена статуса записи.
// Для статуса CANCELLED причина обязательна.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string, reason *string) (*domain.Appointment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	newStatus := domain.AppointmentStatus(status)
	if !domain.IsValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	if domain.RequiresCancellationReason(newStatus) {
		if reason == nil || strings.TrimSpace(*reason) == "" {
			return nil, fmt.Errorf("%w: cancellation reason is required for status CANCELLED", ErrInvalidInput)
		}
	} else {
		reason = nil
	}

	updated, err := s.schedCore.UpdateAppointmentStatus(ctx, id, &schedcore.UpdateStatusRequest{
		Status:             string(newStatus),
		CancellationReason: reason,
	})
	if err != nil {
		return nil, s.mapUpstreamError(err)
	}

	s.log.Info("appointment status updated: id=%d status=%s", id, newStatus)

	return updated.ToDomain(), nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	if err := s.schedCore.DeleteAppointment(ctx, id); err != nil {
		return s.mapUpstreamError(err)
	}

	s.log.Info("appointment deleted: id=%d", id)

	return nil
}

func (s *Service) mapUpstreamError(err error) error {
	switch {
	case errors.Is(err, schedcore.ErrAppointmentNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, schedcore.ErrBadRequest):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, schedcore.ErrUnavailable):
		s.log.Error("scheduling core unavailable: %v", err)
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	default:
		s.log.Error("unexpected scheduling core error: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
