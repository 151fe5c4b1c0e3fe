package prize

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortBy selects the field display records are ordered on.
type SortBy string

const (
	SortByProbability SortBy = "probability"
	SortByStock       SortBy = "stock"
	SortByName        SortBy = "name"
	SortByCreatedAt   SortBy = "createdAt"
)

// SortOrder is ascending or descending.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Sorter orders display records without mutating its input. Names compare
// with locale-aware collation so Japanese prize names order correctly next
// to Latin ones.
type Sorter struct {
	// collate.Collator is not safe for concurrent use: CompareString
	// mutates its internal buffers, so sorts over the shared instance
	// must serialize.
	mu       sync.Mutex
	collator *collate.Collator
}

func NewSorter() *Sorter {
	return &Sorter{collator: collate.New(language.Japanese)}
}

// Sort returns a new slice ordered by the given field and direction. The
// sort is stable: records with equal keys keep their input order, in both
// directions.
func (s *Sorter) Sort(records []DisplayInfo, by SortBy, order SortOrder) []DisplayInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := make([]DisplayInfo, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		c := s.compare(sorted[i], sorted[j], by)
		if order == OrderDesc {
			c = -c
		}
		return c < 0
	})
	return sorted
}

func (s *Sorter) compare(a, b DisplayInfo, by SortBy) int {
	switch by {
	case SortByProbability:
		return compareFloat(a.Probability, b.Probability)
	case SortByStock:
		return a.Prize.Stock - b.Prize.Stock
	case SortByName:
		return s.collator.CompareString(a.Prize.Name, b.Prize.Name)
	case SortByCreatedAt:
		return compareInt64(a.Prize.CreatedAt, b.Prize.CreatedAt)
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
