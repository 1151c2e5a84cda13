package appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/clarkyangjw/schedulease-web/internal/api/handlers"
	appointmentsService "github.com/clarkyangjw/schedulease-web/internal/service/appointments"
	createAppointment "github.com/clarkyangjw/schedulease-web/internal/usecase/create_appointment"
	queryAvailableProviders "github.com/clarkyangjw/schedulease-web/internal/usecase/query_available_providers"
	updateAppointment "github.com/clarkyangjw/schedulease-web/internal/usecase/update_appointment"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidAppointmentID = "invalid appointment id"
	msgInvalidRange         = "startTime and endTime are required positive timestamps"
	msgInvalidAppointment   = "client, provider, service and start time are required"
	msgInvalidStatus        = "unknown status, or cancellation reason missing for CANCELLED"
	msgReferenceNotFound    = "a referenced client, provider or service no longer exists, please refresh"
	msgAppointmentNotFound  = "appointment not found, please refresh"
	msgSlotConflict         = "the selected slot is no longer available, please pick another time or provider"
	msgPartialFailure       = "the original appointment was removed but the replacement could not be created; please recreate it manually"
	msgUpstreamDown         = "scheduling service is unavailable, please try again"
)

type Handler struct {
	creator      CreateAppointmentUseCase
	updater      UpdateAppointmentUseCase
	availability QueryAvailableProvidersUseCase
	service      AppointmentsService
	logger       Logger
}

func NewHandler(
	creator CreateAppointmentUseCase,
	updater UpdateAppointmentUseCase,
	availability QueryAvailableProvidersUseCase,
	service AppointmentsService,
	logger Logger,
) *Handler {
	return &Handler{
		creator:      creator,
		updater:      updater,
		availability: availability,
		service:      service,
		logger:       logger,
	}
}

// List GET /api/v1/appointments?startTime=&endTime=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	start, err1 := strconv.ParseInt(r.URL.Query().Get("startTime"), 10, 64)
	end, err2 := strconv.ParseInt(r.URL.Query().Get("endTime"), 10, 64)
	if err1 != nil || err2 != nil {
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.service.Range(r.Context(), start, end)
	if err != nil {
		h.respondServiceError(w, "GET /appointments", msgInvalidRange, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(result))
}

// AvailableProviders GET /api/v1/appointments/available-providers?startTime=&serviceId=&currentProviderId=
func (h *Handler) AvailableProviders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// отсутствующие или невалидные параметры дают пустой результат
	// без похода в scheduling core, поэтому парсинг здесь нестрогий
	startTime, _ := strconv.ParseInt(query.Get("startTime"), 10, 64)
	serviceID, _ := strconv.ParseInt(query.Get("serviceId"), 10, 64)

	req := &queryAvailableProviders.Request{
		StartTime: startTime,
		ServiceID: serviceID,
	}
	if raw := query.Get("currentProviderId"); raw != "" {
		if currentID, err := strconv.ParseInt(raw, 10, 64); err == nil && currentID > 0 {
			req.CurrentProviderID = &currentID
		}
	}

	result, err := h.availability.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, queryAvailableProviders.ErrUpstreamUnavailable) {
			h.logger.Error("GET /appointments/available-providers - Scheduling core unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamDown)
			return
		}
		h.logger.Error("GET /appointments/available-providers - Unexpected error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ProvidersFromDomain(result.Providers))
}

// Create POST /api/v1/appointments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.creator.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidRequest):
			h.logger.Warn("POST /appointments - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAppointment)
		case errors.Is(err, createAppointment.ErrReferenceNotFound):
			h.logger.Warn("POST /appointments - Reference not found: %v", err)
			handlers.RespondNotFound(w, msgReferenceNotFound)
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: client=%d provider=%d", req.ClientID, req.ProviderID)
			handlers.RespondConflict(w, msgSlotConflict)
		case errors.Is(err, createAppointment.ErrUpstreamUnavailable):
			h.logger.Error("POST /appointments - Scheduling core unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamDown)
		default:
			h.logger.Error("POST /appointments - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d", result.Appointment.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(&result.Appointment))
}

// Update PUT /api/v1/appointments/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.updater.Execute(r.Context(), req.ToUseCaseRequest(id))
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrInvalidRequest):
			h.logger.Warn("PUT /appointments/%d - Invalid request: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidAppointment)
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/%d - Appointment not found", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, updateAppointment.ErrSlotConflict):
			h.logger.Warn("PUT /appointments/%d - Slot conflict", id)
			handlers.RespondConflict(w, msgSlotConflict)
		case errors.Is(err, updateAppointment.ErrPartialFailure):
			// исходная запись уже удалена: ошибка более высокой
			// категории, чем обычный отказ сохранения
			h.logger.Error("PUT /appointments/%d - Partial failure: %v", id, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPartialFailure)
		case errors.Is(err, updateAppointment.ErrUpstreamUnavailable):
			h.logger.Error("PUT /appointments/%d - Scheduling core unavailable: %v", id, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamDown)
		default:
			h.logger.Error("PUT /appointments/%d - Unexpected error: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/%d - Appointment updated: new_id=%d replaced=%t", id, result.Appointment.ID, result.Replaced)
	handlers.RespondJSON(w, http.StatusOK, &UpdateAppointmentResponse{
		Appointment: FromDomain(&result.Appointment),
		Replaced:    result.Replaced,
	})
}

// UpdateStatus PATCH /api/v1/appointments/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/%d/status - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), id, req.Status, req.CancellationReason)
	if err != nil {
		h.respondServiceError(w, "PATCH /appointments/{id}/status", msgInvalidStatus, err)
		return
	}

	h.logger.Info("PATCH /appointments/%d/status - Status updated: %s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// Delete DELETE /api/v1/appointments/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /appointments", msgInvalidAppointmentID, err)
		return
	}

	h.logger.Info("DELETE /appointments/%d - Appointment deleted", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op, invalidInputMsg string, err error) {
	switch {
	case errors.Is(err, appointmentsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, invalidInputMsg)
	case errors.Is(err, appointmentsService.ErrNotFound):
		h.logger.Warn("%s - Appointment not found: %v", op, err)
		handlers.RespondNotFound(w, msgAppointmentNotFound)
	case errors.Is(err, appointmentsService.ErrUpstreamUnavailable):
		h.logger.Error("%s - Scheduling core unavailable: %v", op, err)
		handlers.RespondError(w, http.StatusBadGateway, msgUpstreamDown)
	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
