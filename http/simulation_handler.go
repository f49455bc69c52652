package http

import (
	"net/http"

	"creditwise/domain"
	"creditwise/service"
)

type SimulationHandler struct {
	service *service.SimulationService
}

func NewSimulationHandler(service *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{service: service}
}

func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input domain.SimulationInput
	if status, err := decodeJSON(w, r, &input); err != nil {
		writeError(w, status, err.Error())
		return
	}

	result, err := h.service.Simulate(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
