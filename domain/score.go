package domain

// Rating is the qualitative band for a score.
type Rating struct {
	Label string `json:"band"`
	Color string `json:"color"`
}

// FactorContribution is the number of points one factor added to the base.
type FactorContribution struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
	Points int    `json:"points"`
}

// FactorWeight is a display weight of a scoring factor, in percent.
type FactorWeight struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// KeyFactor is a headline metric shown next to the score.
type KeyFactor struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Status string  `json:"status"`
}

// GaugeStep is a coloured range of the score gauge.
type GaugeStep struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Color string `json:"color"`
}

type ScoreReport struct {
	Score int `json:"score"`
	Rating
	Utilization float64              `json:"utilization"`
	Breakdown   []FactorContribution `json:"breakdown"`
	KeyFactors  []KeyFactor          `json:"key_factors"`
	Gauge       []GaugeStep          `json:"gauge"`
	Insight     string               `json:"insight,omitempty"`
}
