package app

import "travel_docs/internal/domain"

// Weights holds the per-signal scoring weights. The defaults are the
// values tuned in production; they are configuration, not constants, so
// deployments can rebalance without a code change.
type Weights struct {
	DestinationName    int
	Country            int
	DestinationCountry int
	Title              int
	Summary            int
	HotelName          int
}

func DefaultWeights() Weights {
	return Weights{
		DestinationName:    10,
		Country:            8,
		DestinationCountry: 7,
		Title:              6,
		Summary:            4,
		HotelName:          3,
	}
}

// scoreTravel accumulates weights additively across every expanded term
// and every signal the term hits. A record matching on both title and
// country for one term outranks one matching on title alone.
func scoreTravel(rec domain.TravelRecord, terms []string, w Weights) int {
	score := 0
	for _, term := range terms {
		for _, d := range rec.Destinations {
			if WordMatch(d.Name, term) {
				score += w.DestinationName
				break
			}
		}
		for _, c := range rec.Countries {
			if WordMatch(c, term) {
				score += w.Country
				break
			}
		}
		for _, d := range rec.Destinations {
			if WordMatch(d.Country, term) {
				score += w.DestinationCountry
				break
			}
		}
		if WordMatch(rec.Title, term) {
			score += w.Title
		}
		if WordMatch(rec.AISummary, term) {
			score += w.Summary
		}
		for _, h := range rec.Hotels {
			if WordMatch(h.Name, term) {
				score += w.HotelName
				break
			}
		}
	}
	return score
}
