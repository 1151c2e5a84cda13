package providers

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
	msgInvalidProviderID  = "invalid provider id"
	msgInvalidProvider    = "first name and last name are required, availability days must be 1..7"
	msgProviderNotFound   = "provider not found"
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

// List GET /api/v1/providers
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.directory.Providers(r.Context())
	if err != nil {
		h.respondServiceError(w, "GET /providers", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(result))
}

// Get GET /api/v1/providers/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	provider, err := h.directory.Provider(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /providers/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(provider))
}

// Create POST /api/v1/providers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.directory.CreateProvider(r.Context(), req.ToInput())
	if err != nil {
		h.respondServiceError(w, "POST /providers", err)
		return
	}

	h.logger.Info("POST /providers - Provider created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// Update PUT /api/v1/providers/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	var req ProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /providers/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.directory.UpdateProvider(r.Context(), id, req.ToInput())
	if err != nil {
		h.respondServiceError(w, "PUT /providers", err)
		return
	}

	h.logger.Info("PUT /providers/%d - Provider updated", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// Delete DELETE /api/v1/providers/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	if err := h.directory.DeleteProvider(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /providers", err)
		return
	}

	h.logger.Info("DELETE /providers/%d - Provider deleted", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, directory.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidProvider)
	case errors.Is(err, directory.ErrNotFound):
		h.logger.Warn("%s - Provider not found: %v", op, err)
		handlers.RespondNotFound(w, msgProviderNotFound)
	case errors.Is(err, directory.ErrUpstreamUnavailable):
		h.logger.Error("%s - Scheduling core unavailable: %v", op, err)
		handlers.RespondError(w, http.StatusBadGateway, msgUpstreamDown)
	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
