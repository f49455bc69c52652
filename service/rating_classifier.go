package service

import "creditwise/domain"

const (
	BandExceptional = "Exceptional"
	BandVeryGood    = "Very Good"
	BandGood        = "Good"
	BandFair        = "Fair"
	BandPoor        = "Poor"
)

type band struct {
	min    int
	rating domain.Rating
}

// Ordered from the highest threshold down; the last entry catches the rest.
var bands = []band{
	{800, domain.Rating{Label: BandExceptional, Color: "#00C851"}},
	{740, domain.Rating{Label: BandVeryGood, Color: "#90EE90"}},
	{670, domain.Rating{Label: BandGood, Color: "#33b5e5"}},
	{580, domain.Rating{Label: BandFair, Color: "#ffbb33"}},
	{MinScore, domain.Rating{Label: BandPoor, Color: "#ff4444"}},
}

var gauge = []domain.GaugeStep{
	{From: 300, To: 580, Color: "#ffcccb"},
	{From: 580, To: 670, Color: "#ffe4b5"},
	{From: 670, To: 740, Color: "#e0ffff"},
	{From: 740, To: 850, Color: "#90EE90"},
}

// RatingClassifier maps a score to its band.
type RatingClassifier struct{}

func NewRatingClassifier() *RatingClassifier {
	return &RatingClassifier{}
}

// Classify returns the first band whose threshold the score reaches.
// Scores below MinScore still map to the lowest band.
func (c *RatingClassifier) Classify(score int) domain.Rating {
	for _, b := range bands {
		if score >= b.min {
			return b.rating
		}
	}
	return bands[len(bands)-1].rating
}

// Gauge returns the coloured ranges for rendering a score gauge.
func Gauge() []domain.GaugeStep {
	out := make([]domain.GaugeStep, len(gauge))
	copy(out, gauge)
	return out
}
