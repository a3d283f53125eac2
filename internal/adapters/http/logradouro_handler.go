package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"clienteapi/internal/domain"
	"clienteapi/internal/logger"
)

type LogradouroHandler struct {
	svc domain.LogradouroService
	log logger.Logger
}

func NewLogradouroHandler(svc domain.LogradouroService, log logger.Logger) *LogradouroHandler {
	return &LogradouroHandler{svc: svc, log: log}
}

func (h *LogradouroHandler) Index(w http.ResponseWriter, r *http.Request) {
	logradouros, err := h.svc.GetAll(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if logradouros == nil {
		logradouros = []*domain.Logradouro{}
	}

	writeJSON(w, http.StatusOK, logradouros)
}

func (h *LogradouroHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	logradouro, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrLogradouroNotFound) {
			writeMessage(w, http.StatusNotFound, "logradouro not found")
			return
		}
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, logradouro)
}

// ByCliente lists a cliente's logradouros; a missing cliente is a 404 even
// when the would-be result is empty.
func (h *LogradouroHandler) ByCliente(w http.ResponseWriter, r *http.Request) {
	clienteID, ok := pathID(w, r, "clienteId")
	if !ok {
		return
	}

	logradouros, err := h.svc.GetByClienteID(r.Context(), clienteID)
	if err != nil {
		if errors.Is(err, domain.ErrClienteNotFound) {
			writeMessage(w, http.StatusNotFound, "cliente not found")
			return
		}
		h.internalError(w, r, err)
		return
	}
	if logradouros == nil {
		logradouros = []*domain.Logradouro{}
	}

	writeJSON(w, http.StatusOK, logradouros)
}

func (h *LogradouroHandler) Store(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req domain.LogradouroSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := ValidateStruct(&req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	logradouro, err := h.svc.Add(r.Context(), req)
	if err != nil {
		// Attaching to a nonexistent cliente is a business error on create.
		if errors.Is(err, domain.ErrClienteNotFound) {
			writeMessage(w, http.StatusBadRequest, "cliente not found")
			return
		}
		h.internalError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/logradouros/%d", logradouro.ID))
	writeJSON(w, http.StatusCreated, logradouro)
}

func (h *LogradouroHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req domain.LogradouroSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ID != id {
		writeMessage(w, http.StatusBadRequest, "id in path does not match id in body")
		return
	}

	if errs := ValidateStruct(&req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	if err := h.svc.Update(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, domain.ErrLogradouroNotFound):
			writeMessage(w, http.StatusNotFound, "logradouro not found")
		case errors.Is(err, domain.ErrClienteNotFound):
			writeMessage(w, http.StatusNotFound, "cliente not found")
		default:
			h.internalError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LogradouroHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrLogradouroNotFound) {
			writeMessage(w, http.StatusNotFound, "logradouro not found")
			return
		}
		h.internalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LogradouroHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("logradouro: request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeMessage(w, http.StatusInternalServerError, err.Error())
}
