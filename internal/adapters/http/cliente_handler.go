package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"clienteapi/internal/domain"
	"clienteapi/internal/logger"
)

type ClienteHandler struct {
	svc domain.ClienteService
	log logger.Logger
}

func NewClienteHandler(svc domain.ClienteService, log logger.Logger) *ClienteHandler {
	return &ClienteHandler{svc: svc, log: log}
}

func (h *ClienteHandler) Index(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.svc.GetAll(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if clientes == nil {
		clientes = []*domain.Cliente{}
	}

	writeJSON(w, http.StatusOK, clientes)
}

func (h *ClienteHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	cliente, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrClienteNotFound) {
			writeMessage(w, http.StatusNotFound, "cliente not found")
			return
		}
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cliente)
}

func (h *ClienteHandler) Store(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req domain.ClienteSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := ValidateStruct(&req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	cliente, err := h.svc.Add(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyTaken) {
			writeMessage(w, http.StatusBadRequest, "email already taken")
			return
		}
		h.internalError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/clientes/%d", cliente.ID))
	writeJSON(w, http.StatusCreated, cliente)
}

func (h *ClienteHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req domain.ClienteSaveRequest
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
		case errors.Is(err, domain.ErrClienteNotFound):
			writeMessage(w, http.StatusNotFound, "cliente not found")
		case errors.Is(err, domain.ErrEmailAlreadyTaken):
			writeMessage(w, http.StatusBadRequest, "email already taken")
		default:
			h.internalError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ClienteHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrClienteNotFound) {
			writeMessage(w, http.StatusNotFound, "cliente not found")
			return
		}
		h.internalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchBySP passes the partial name through to the stored search function.
func (h *ClienteHandler) SearchBySP(w http.ResponseWriter, r *http.Request) {
	nome := r.URL.Query().Get("nome")

	clientes, err := h.svc.SearchByName(r.Context(), nome)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	if len(clientes) == 0 {
		writeMessage(w, http.StatusNotFound, "no clientes found for the given name")
		return
	}

	writeJSON(w, http.StatusOK, clientes)
}

func (h *ClienteHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("cliente: request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeMessage(w, http.StatusInternalServerError, err.Error())
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
