package prize

// Prizes at or below this stock level are flagged as running low.
const lowStockThreshold = 5

// DisplayInfo is a ready-to-render prize record. Derived, never persisted:
// probability depends on every prize's stock, so it is recomputed from the
// live collection on each query.
type DisplayInfo struct {
	Prize       Prize   `json:"prize"`
	Probability float64 `json:"probability"`
	Rarity      Rarity  `json:"rarity"`
	IsLowStock  bool    `json:"isLowStock"`
}

// Stats aggregates the whole collection.
type Stats struct {
	TotalCount      int `json:"totalCount"`
	AvailableCount  int `json:"availableCount"`
	OutOfStockCount int `json:"outOfStockCount"`
	TotalStock      int `json:"totalStock"`
}

// DisplayService composes the calculator, classifier, sorter and filter
// over the live collection into view records for the rendering layer.
type DisplayService struct {
	svc        *Service
	calculator Calculator
	classifier Classifier
	sorter     *Sorter
	filter     Filter
	filters    *FilterState
}

func NewDisplayService(svc *Service, filters *FilterState) *DisplayService {
	return &DisplayService{
		svc:     svc,
		sorter:  NewSorter(),
		filters: filters,
	}
}

// DisplayInfo returns the view record for one prize, or ErrPrizeNotFound.
func (d *DisplayService) DisplayInfo(id string) (DisplayInfo, error) {
	prizes := d.svc.Prizes()
	for _, p := range prizes {
		if p.ID == id {
			probs := d.calculator.Calculate(prizes)
			return d.build(p, probs[id]), nil
		}
	}
	return DisplayInfo{}, ErrPrizeNotFound
}

// AllDisplayInfo maps every prize to its view record. Probabilities come
// from a single calculation over the collection, so they are mutually
// consistent and sum to 100 whenever any stock remains.
func (d *DisplayService) AllDisplayInfo() []DisplayInfo {
	prizes := d.svc.Prizes()
	probs := d.calculator.Calculate(prizes)

	infos := make([]DisplayInfo, len(prizes))
	for i, p := range prizes {
		infos[i] = d.build(p, probs[p.ID])
	}
	return infos
}

// Stats never fails; an empty collection yields zeros.
func (d *DisplayService) Stats() Stats {
	var stats Stats
	for _, p := range d.svc.Prizes() {
		stats.TotalCount++
		stats.TotalStock += p.Stock
		if p.Stock > 0 {
			stats.AvailableCount++
		} else {
			stats.OutOfStockCount++
		}
	}
	return stats
}

// FilteredAndSorted applies the current filter state: rarity filter, then
// stock filter, then sort. This is the single entry point for populating
// any prize list.
func (d *DisplayService) FilteredAndSorted() []DisplayInfo {
	infos := d.AllDisplayInfo()
	infos = d.filter.ByRarity(infos, d.filters.Rarity())
	infos = d.filter.ByStock(infos, d.filters.ShowOutOfStock())
	return d.sorter.Sort(infos, d.filters.SortBy(), d.filters.Order())
}

func (d *DisplayService) build(p Prize, probability float64) DisplayInfo {
	return DisplayInfo{
		Prize:       p,
		Probability: probability,
		Rarity:      d.classifier.Classify(probability),
		IsLowStock:  p.Stock <= lowStockThreshold,
	}
}
