package incidents

import (
	"context"
	"errors"
	"fmt"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/internal/infra/storage/incident"
)

// Service учёт инцидентов замены записи: потерянная при delete+create
// запись фиксируется здесь и остаётся видимой оператору, пока тот
// не подтвердит, что воссоздал её вручную.
type Service struct {
	repo    IncidentRepository
	log     Logger
	metrics MetricsRecorder
}

// NewService конструктор
func NewService(repo IncidentRepository, log Logger, metrics MetricsRecorder) *Service {
	return &Service{
		repo:    repo,
		log:     log,
		metrics: metrics,
	}
}

// RecordReplaceFailure сохраняет данные записи, которую не удалось
// воссоздать после удаления
func (s *Service) RecordReplaceFailure(ctx context.Context, appointmentID int64, payload string, reason string) error {
	if appointmentID <= 0 {
		return fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, &domain.Incident{
		AppointmentID: appointmentID,
		Payload:       payload,
		Reason:        reason,
	})
	if err != nil {
		return fmt.Errorf("%w: record incident: %v", ErrInternal, err)
	}

	s.metrics.PartialFailureRecorded()
	s.log.Error("replace incident recorded: id=%d appointment=%d reason=%s", created.ID, appointmentID, reason)

	return nil
}

// List инциденты, по умолчанию только неподтверждённые
func (s *Service) List(ctx context.Context, includeAcknowledged bool) ([]*domain.Incident, error) {
	list, err := s.repo.List(ctx, includeAcknowledged)
	if err != nil {
		return nil, fmt.Errorf("%w: list incidents: %v", ErrInternal, err)
	}

	return list, nil
}

// Acknowledge помечает инцидент обработанным
func (s *Service) Acknowledge(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: incident id must be positive", ErrInvalidInput)
	}

	err := s.repo.Acknowledge(ctx, id)
	switch {
	case err == nil:
		s.log.Info("incident acknowledged: id=%d", id)
		return nil
	case errors.Is(err, incident.ErrIncidentNotFound):
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	case errors.Is(err, incident.ErrAlreadyAcknowledged):
		return fmt.Errorf("%w: %d", ErrAlreadyAcknowledged, id)
	default:
		return fmt.Errorf("%w: acknowledge incident: %v", ErrInternal, err)
	}
}
