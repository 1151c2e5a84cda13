package clients

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
	msgInvalidClientID    = "invalid client id"
	msgInvalidClient      = "first name, last name and phone are required"
	msgClientNotFound     = "client not found"
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

// List GET /api/v1/clients
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.directory.Clients(r.Context())
	if err != nil {
		h.respondServiceError(w, "GET /clients", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(result))
}

// Create POST /api/v1/clients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.directory.CreateClient(r.Context(), req.ToInput())
	if err != nil {
		h.respondServiceError(w, "POST /clients", err)
		return
	}

	h.logger.Info("POST /clients - Client created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// Update PUT /api/v1/clients/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.directory.UpdateClient(r.Context(), id, req.ToInput())
	if err != nil {
		h.respondServiceError(w, "PUT /clients", err)
		return
	}

	h.logger.Info("PUT /clients/%d - Client updated", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// Delete DELETE /api/v1/clients/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	if err := h.directory.DeleteClient(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /clients", err)
		return
	}

	h.logger.Info("DELETE /clients/%d - Client deleted", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, directory.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidClient)
	case errors.Is(err, directory.ErrNotFound):
		h.logger.Warn("%s - Client not found: %v", op, err)
		handlers.RespondNotFound(w, msgClientNotFound)
	case errors.Is(err, directory.ErrUpstreamUnavailable):
		h.logger.Error("%s - Scheduling core unavailable: %v", op, err)
		handlers.RespondError(w, http.StatusBadGateway, msgUpstreamDown)
	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
