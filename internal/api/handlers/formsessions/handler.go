package formsessions

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clarkyangjw/schedulease-web/internal/api/handlers"
	appointmentsService "github.com/clarkyangjw/schedulease-web/internal/service/appointments"
	"github.com/clarkyangjw/schedulease-web/internal/service/formsession"
	createAppointment "github.com/clarkyangjw/schedulease-web/internal/usecase/create_appointment"
	updateAppointment "github.com/clarkyangjw/schedulease-web/internal/usecase/update_appointment"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgSessionNotFound     = "form session not found or expired"
	msgAppointmentNotFound = "appointment not found, please refresh"
	msgFieldLocked         = "this field is locked until the previous fields are filled"
	msgValidationFailed    = "the form has missing or invalid fields"
	msgReferenceNotFound   = "a referenced client, provider or service no longer exists, please refresh"
	msgSlotConflict        = "the selected slot is no longer available, please pick another time or provider"
	msgPartialFailure      = "the original appointment was removed but the replacement could not be created; please recreate it manually"
	msgUpstreamDown        = "scheduling service is unavailable, please try again"
)

type Handler struct {
	sessions     FormSessionService
	appointments AppointmentGetter
	logger       Logger
}

func NewHandler(sessions FormSessionService, appointments AppointmentGetter, logger Logger) *Handler {
	return &Handler{
		sessions:     sessions,
		appointments: appointments,
		logger:       logger,
	}
}

// Open POST /api/v1/form-sessions
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	// пустое тело равнозначно открытию формы создания
	var req OpenSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /form-sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var snapshot *formsession.Snapshot
	if req.AppointmentID != nil {
		appt, err := h.appointments.Get(r.Context(), *req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentsService.ErrNotFound) {
				h.logger.Warn("POST /form-sessions - Appointment not found: id=%d", *req.AppointmentID)
				handlers.RespondNotFound(w, msgAppointmentNotFound)
				return
			}
			h.logger.Error("POST /form-sessions - Load appointment %d: %v", *req.AppointmentID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamDown)
			return
		}

		snapshot, err = h.sessions.Open(r.Context(), appt)
		if err != nil {
			h.logger.Error("POST /form-sessions - Open edit session: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	} else {
		var err error
		snapshot, err = h.sessions.Open(r.Context(), nil)
		if err != nil {
			h.logger.Error("POST /form-sessions - Open create session: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	}

	h.logger.Info("POST /form-sessions - Session opened: id=%s mode=%s", snapshot.ID, snapshot.Mode)
	handlers.RespondJSON(w, http.StatusCreated, FromSnapshot(snapshot))
}

// Patch PATCH /api/v1/form-sessions/{id}
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req PatchSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /form-sessions/%s - Invalid request body: %v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snapshot, err := h.sessions.Apply(r.Context(), sessionID, req.ToPatch())
	if err != nil {
		var vErr *formsession.ValidationError
		switch {
		case errors.Is(err, formsession.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, formsession.ErrFieldLocked):
			h.logger.Warn("PATCH /form-sessions/%s - Field locked: %v", sessionID, err)
			handlers.RespondConflict(w, msgFieldLocked)
		case errors.As(err, &vErr):
			handlers.RespondValidationError(w, msgValidationFailed, vErr.Fields)
		default:
			h.logger.Error("PATCH /form-sessions/%s - Unexpected error: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snapshot))
}

// Submit POST /api/v1/form-sessions/{id}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	result, err := h.sessions.Submit(r.Context(), sessionID)
	if err != nil {
		h.respondSubmitError(w, sessionID, err)
		return
	}

	h.logger.Info("POST /form-sessions/%s/submit - Saved: appointment=%d replaced=%t",
		sessionID, result.Appointment.ID, result.Replaced)
	handlers.RespondJSON(w, http.StatusOK, &SubmitResponse{
		AppointmentID: result.Appointment.ID,
		StartTime:     result.Appointment.StartTime,
		Replaced:      result.Replaced,
	})
}

// Cancel DELETE /api/v1/form-sessions/{id}
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if err := h.sessions.Cancel(sessionID); err != nil {
		if errors.Is(err, formsession.ErrSessionNotFound) {
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("DELETE /form-sessions/%s - Unexpected error: %v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

func (h *Handler) respondSubmitError(w http.ResponseWriter, sessionID string, err error) {
	var vErr *formsession.ValidationError
	switch {
	case errors.Is(err, formsession.ErrSessionNotFound):
		handlers.RespondNotFound(w, msgSessionNotFound)
	case errors.As(err, &vErr):
		h.logger.Warn("POST /form-sessions/%s/submit - Validation failed: %v", sessionID, err)
		handlers.RespondValidationError(w, msgValidationFailed, vErr.Fields)
	case errors.Is(err, createAppointment.ErrReferenceNotFound),
		errors.Is(err, updateAppointment.ErrAppointmentNotFound):
		h.logger.Warn("POST /form-sessions/%s/submit - Reference not found: %v", sessionID, err)
		handlers.RespondNotFound(w, msgReferenceNotFound)
	case errors.Is(err, createAppointment.ErrSlotConflict),
		errors.Is(err, updateAppointment.ErrSlotConflict):
		h.logger.Warn("POST /form-sessions/%s/submit - Slot conflict", sessionID)
		handlers.RespondConflict(w, msgSlotConflict)
	case errors.Is(err, updateAppointment.ErrPartialFailure):
		h.logger.Error("POST /form-sessions/%s/submit - Partial failure: %v", sessionID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgPartialFailure)
	case errors.Is(err, createAppointment.ErrUpstreamUnavailable),
		errors.Is(err, updateAppointment.ErrUpstreamUnavailable):
		h.logger.Error("POST /form-sessions/%s/submit - Scheduling core unavailable: %v", sessionID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgUpstreamDown)
	default:
		h.logger.Error("POST /form-sessions/%s/submit - Unexpected error: %v", sessionID, err)
		handlers.RespondInternalError(w)
	}
}
