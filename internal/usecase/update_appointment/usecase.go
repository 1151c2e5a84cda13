package update_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/clarkyangjw/schedulease-web/internal/integrations/schedcore"
)

// Usecase применение изменений к существующей записи.
//
// Scheduling core не принимает изменение клиента, мастера, услуги или
// времени через update: такие изменения выполняются удалением старой
// записи и созданием новой. Изменение статуса применяется отдельным
// запросом и старую запись не трогает.
type Usecase struct {
	schedCore SchedCoreClient
	incidents IncidentRecorder
	log       Logger
}

// NewUsecase конструктор
func NewUsecase(schedCore SchedCoreClient, incidents IncidentRecorder, log Logger) *Usecase {
	return &Usecase{
		schedCore: schedCore,
		incidents: incidents,
		log:       log,
	}
}

// Execute сравнивает желаемое состояние с текущим и применяет
// минимально необходимые изменения.
func (uc *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	desired, err := normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	existing, err := uc.schedCore.GetAppointment(ctx, req.AppointmentID)
	if err != nil {
		return nil, uc.mapUpstreamError(err)
	}

	changes := computeChanges(*existing.ToDomain(), desired)

	switch {
	case changes.none():
		return &Response{Appointment: *existing.ToDomain()}, nil
	case changes.statusOnly():
		return uc.updateStatus(ctx, req.AppointmentID, desired)
	default:
		return uc.replace(ctx, req.AppointmentID, desired)
	}
}

func (uc *Usecase) updateStatus(ctx context.Context, id int64, desired desiredState) (*Response, error) {
	updated, err := uc.schedCore.UpdateAppointmentStatus(ctx, id, &schedcore.UpdateStatusRequest{
		Status:             string(desired.Status),
		CancellationReason: desired.CancellationReason,
	})
	if err != nil {
		return nil, uc.mapUpstreamError(err)
	}

	uc.log.Info("appointment status updated: id=%d status=%s", id, desired.Status)

	return &Response{Appointment: *updated.ToDomain()}, nil
}

// replace удаляет старую запись и создаёт новую с теми же данными.
// После удаления исходные данные существуют только в памяти, поэтому
// неудавшееся создание повторяется один раз, а окончательная неудача
// фиксируется как инцидент.
func (uc *Usecase) replace(ctx context.Context, id int64, desired desiredState) (*Response, error) {
	if err := uc.schedCore.DeleteAppointment(ctx, id); err != nil {
		return nil, uc.mapUpstreamError(err)
	}

	createReq := &schedcore.CreateAppointmentRequest{
		ClientID:   desired.ClientID,
		ProviderID: desired.ProviderID,
		ServiceID:  desired.ServiceID,
		StartTime:  desired.StartSeconds,
		Notes:      desired.Notes,
	}

	created, createErr := uc.schedCore.CreateAppointment(ctx, createReq)
	if createErr != nil {
		uc.log.Warn("create after delete failed, retrying: appointment=%d: %v", id, createErr)
		created, createErr = uc.schedCore.CreateAppointment(ctx, createReq)
	}

	if createErr != nil {
		uc.recordIncident(ctx, id, desired, createErr)
		return nil, fmt.Errorf("%w: appointment %d deleted, create failed: %v", ErrPartialFailure, id, createErr)
	}

	uc.log.Info("appointment replaced: old=%d new=%d", id, created.ID)

	result := *created.ToDomain()

	if desired.Status != result.Status {
		patched, err := uc.schedCore.UpdateAppointmentStatus(ctx, created.ID, &schedcore.UpdateStatusRequest{
			Status:             string(desired.Status),
			CancellationReason: desired.CancellationReason,
		})
		if err != nil {
			uc.log.Warn("status not applied to replaced appointment %d: %v", created.ID, err)
		} else {
			result = *patched.ToDomain()
		}
	}

	return &Response{Appointment: result, Replaced: true}, nil
}

// recordIncident сохраняет исходные данные записи, которой больше нет
// в scheduling core. Неудача записи инцидента не скрывает исходную
// ошибку, но логируется отдельно.
func (uc *Usecase) recordIncident(ctx context.Context, id int64, desired desiredState, cause error) {
	payload, err := json.Marshal(incidentPayload{
		ClientID:           desired.ClientID,
		ProviderID:         desired.ProviderID,
		ServiceID:          desired.ServiceID,
		StartTime:          desired.StartSeconds,
		Status:             string(desired.Status),
		Notes:              desired.Notes,
		CancellationReason: desired.CancellationReason,
	})
	if err != nil {
		uc.log.Error("marshal incident payload for appointment %d: %v", id, err)
		payload = []byte("{}")
	}

	if err := uc.incidents.RecordReplaceFailure(ctx, id, string(payload), cause.Error()); err != nil {
		uc.log.Error("record replace incident for appointment %d: %v", id, err)
		return
	}

	uc.log.Error("appointment %d deleted but not recreated, incident recorded: %v", id, cause)
}

// incidentPayload данные записи на момент неудавшейся замены
type incidentPayload struct {
	ClientID           int64   `json:"clientId"`
	ProviderID         int64   `json:"providerId"`
	ServiceID          int64   `json:"serviceId"`
	StartTime          int64   `json:"startTime"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

func (uc *Usecase) mapUpstreamError(err error) error {
	switch {
	case errors.Is(err, schedcore.ErrAppointmentNotFound):
		return fmt.Errorf("%w: %v", ErrAppointmentNotFound, err)
	case errors.Is(err, schedcore.ErrSlotConflict):
		return fmt.Errorf("%w: %v", ErrSlotConflict, err)
	case errors.Is(err, schedcore.ErrBadRequest):
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	case errors.Is(err, schedcore.ErrUnavailable):
		uc.log.Error("scheduling core unavailable on update: %v", err)
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	default:
		uc.log.Error("unexpected error on update: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
