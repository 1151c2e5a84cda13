package incidents

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/clarkyangjw/schedulease-web/internal/api/handlers"
	incidentsService "github.com/clarkyangjw/schedulease-web/internal/service/incidents"
)

const (
	msgInvalidIncidentID   = "invalid incident id"
	msgIncidentNotFound    = "incident not found"
	msgAlreadyAcknowledged = "incident is already acknowledged"
)

type Handler struct {
	incidents IncidentsService
	logger    Logger
}

func NewHandler(incidents IncidentsService, logger Logger) *Handler {
	return &Handler{
		incidents: incidents,
		logger:    logger,
	}
}

// List GET /api/v1/incidents?includeAcknowledged=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	includeAcknowledged, _ := strconv.ParseBool(r.URL.Query().Get("includeAcknowledged"))

	list, err := h.incidents.List(r.Context(), includeAcknowledged)
	if err != nil {
		h.logger.Error("GET /incidents - Unexpected error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}

// Acknowledge POST /api/v1/incidents/{id}/ack
func (h *Handler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidIncidentID)
		return
	}

	if err := h.incidents.Acknowledge(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, incidentsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidIncidentID)
		case errors.Is(err, incidentsService.ErrNotFound):
			h.logger.Warn("POST /incidents/%d/ack - Not found", id)
			handlers.RespondNotFound(w, msgIncidentNotFound)
		case errors.Is(err, incidentsService.ErrAlreadyAcknowledged):
			h.logger.Warn("POST /incidents/%d/ack - Already acknowledged", id)
			handlers.RespondConflict(w, msgAlreadyAcknowledged)
		default:
			h.logger.Error("POST /incidents/%d/ack - Unexpected error: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /incidents/%d/ack - Acknowledged", id)
	handlers.RespondNoContent(w)
}
