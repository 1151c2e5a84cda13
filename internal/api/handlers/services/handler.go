package services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/clarkyangjw/schedulease-web/internal/api/handlers"
	"github.com/clarkyangjw/schedulease-web/internal/service/directory"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidServiceID   = "invalid service id"
	msgInvalidService     = "name, a known category and a duration in minutes are required"
	msgInvalidActiveOnly  = "activeOnly must be true or false"
	msgServiceNotFound    = "service not found"
	msgUpstreamDown       = "scheduling service is unavailable, please try again"
)

type Handler struct {
	directory DirectoryService
	logger    Logger
}

func NewHandler(directory DirectoryService, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// List GET /api/v1/services?activeOnly=&category=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var filter directory.ServicesFilter

	if raw := r.URL.Query().Get("activeOnly"); raw != "" {
		activeOnly, err := strconv.ParseBool(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidActiveOnly)
			return
		}
		filter.ActiveOnly = &activeOnly
	}

	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}

	result, err := h.directory.Services(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, "GET /services", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(result))
}

// Create POST /api/v1/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.directory.CreateService(r.Context(), req.ToInput())
	if err != nil {
		h.respondServiceError(w, "POST /services", err)
		return
	}

	h.logger.Info("POST /services - Service created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// Update PUT /api/v1/services/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.directory.UpdateService(r.Context(), id, req.ToInput())
	if err != nil {
		h.respondServiceError(w, "PUT /services", err)
		return
	}

	h.logger.Info("PUT /services/%d - Service updated", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// Delete DELETE /api/v1/services/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.directory.DeleteService(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /services", err)
		return
	}

	h.logger.Info("DELETE /services/%d - Service deleted", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, directory.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidService)
	case errors.Is(err, directory.ErrNotFound):
		h.logger.Warn("%s - Service not found: %v", op, err)
		handlers.RespondNotFound(w, msgServiceNotFound)
	case errors.Is(err, directory.ErrUpstreamUnavailable):
		h.logger.Error("%s - Scheduling core unavailable: %v", op, err)
		handlers.RespondError(w, http.StatusBadGateway, msgUpstreamDown)
	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
