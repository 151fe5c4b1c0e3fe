package prize

import "math"

// Calculator derives the displayed win percentage of each prize from its
// share of the total remaining stock. Pure; no state.
type Calculator struct{}

// Calculate returns a map of prize ID to win percentage, rounded half-up
// to two decimals. When the total stock is zero every prize maps to 0.
func (Calculator) Calculate(prizes []Prize) map[string]float64 {
	result := make(map[string]float64, len(prizes))

	totalStock := 0
	for _, p := range prizes {
		totalStock += p.Stock
	}
	if totalStock == 0 {
		for _, p := range prizes {
			result[p.ID] = 0
		}
		return result
	}

	for _, p := range prizes {
		pct := float64(p.Stock) / float64(totalStock) * 100
		result[p.ID] = math.Round(pct*100) / 100
	}
	return result
}

// CalculateForPrize returns the percentage for a single prize against the
// full collection, or 0 if the prize is not part of it.
func (c Calculator) CalculateForPrize(p Prize, all []Prize) float64 {
	if pct, ok := c.Calculate(all)[p.ID]; ok {
		return pct
	}
	return 0
}
