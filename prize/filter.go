package prize

import "sync"

// RarityFilter narrows display records to one tier. RarityFilterAll shows
// everything.
type RarityFilter string

const RarityFilterAll RarityFilter = "all"

// Filter provides the two pure list predicates. Both return new slices and
// never touch their input; they compose in any order.
type Filter struct{}

// ByRarity keeps records of the given tier. "all" returns the input as is.
func (Filter) ByRarity(records []DisplayInfo, filter RarityFilter) []DisplayInfo {
	if filter == RarityFilterAll {
		return records
	}
	kept := make([]DisplayInfo, 0, len(records))
	for _, info := range records {
		if info.Rarity == Rarity(filter) {
			kept = append(kept, info)
		}
	}
	return kept
}

// ByStock drops out-of-stock records unless showOutOfStock is set.
func (Filter) ByStock(records []DisplayInfo, showOutOfStock bool) []DisplayInfo {
	if showOutOfStock {
		return records
	}
	kept := make([]DisplayInfo, 0, len(records))
	for _, info := range records {
		if info.Prize.Stock > 0 {
			kept = append(kept, info)
		}
	}
	return kept
}

// FilterState holds the kiosk's current list configuration. The display
// service reads it when building the prize list; the settings surface
// mutates it.
type FilterState struct {
	mu             sync.RWMutex
	sortBy         SortBy
	order          SortOrder
	rarity         RarityFilter
	showOutOfStock bool
}

// NewFilterState returns the default configuration: probability descending,
// all rarities, out-of-stock shown.
func NewFilterState() *FilterState {
	s := &FilterState{}
	s.Reset()
	return s
}

func (s *FilterState) SortBy() SortBy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortBy
}

func (s *FilterState) Order() SortOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.order
}

func (s *FilterState) Rarity() RarityFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rarity
}

func (s *FilterState) ShowOutOfStock() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showOutOfStock
}

func (s *FilterState) SetSortBy(by SortBy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortBy = by
}

func (s *FilterState) SetOrder(order SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = order
}

func (s *FilterState) SetRarity(filter RarityFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rarity = filter
}

func (s *FilterState) SetShowOutOfStock(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showOutOfStock = show
}

// Reset restores the default configuration.
func (s *FilterState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortBy = SortByProbability
	s.order = OrderDesc
	s.rarity = RarityFilterAll
	s.showOutOfStock = true
}
