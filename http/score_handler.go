package http

import (
	"net/http"

	"creditwise/domain"
	"creditwise/service"
)

type ScoreHandler struct {
	service *service.ScoringService
}

func NewScoreHandler(service *service.ScoringService) *ScoreHandler {
	return &ScoreHandler{service: service}
}

func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input domain.CreditInput
	if status, err := decodeJSON(w, r, &input); err != nil {
		writeError(w, status, err.Error())
		return
	}

	report, err := h.service.Score(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
