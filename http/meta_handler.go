package http

import (
	"net/http"

	"creditwise/domain"
	"creditwise/service"
)

type factorsResponse struct {
	BaseScore int                   `json:"base_score"`
	MinScore  int                   `json:"min_score"`
	MaxScore  int                   `json:"max_score"`
	Factors   []domain.FactorWeight `json:"factors"`
	Gauge     []domain.GaugeStep    `json:"gauge"`
}

// Factors describes the scoring model for presentation layers.
func Factors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, factorsResponse{
		BaseScore: service.BaseScore,
		MinScore:  service.MinScore,
		MaxScore:  service.MaxScore,
		Factors:   service.FactorWeights(),
		Gauge:     service.Gauge(),
	})
}

func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
