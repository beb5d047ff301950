// Package store holds the canonical in-memory dataset. It is written once at
// startup by the loader and only read afterwards.
package store

import (
	"github.com/gcouto/combustiveis-bh/internal/domain"
)

type Store interface {
	All() []*domain.FuelRecord
	Filter(sel domain.FilterSelection) []*domain.FuelRecord
	Options() FilterOptions
	Len() int
}

// FilterOptions populates the two filter dropdowns. Both lists start with
// domain.FilterAll followed by the sorted distinct values.
type FilterOptions struct {
	Semesters []string `json:"semesters"`
	Regions   []string `json:"regions"`
}

type store struct {
	records []*domain.FuelRecord
}

func NewStore(records []*domain.FuelRecord) Store {
	return &store{records: records}
}

func (s *store) Len() int {
	return len(s.records)
}

// All returns the canonical dataset in load order. Callers must not mutate
// the returned records.
func (s *store) All() []*domain.FuelRecord {
	out := make([]*domain.FuelRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Filter applies the selection and returns a fresh ordered slice of
// references into the dataset. An empty result is valid.
func (s *store) Filter(sel domain.FilterSelection) []*domain.FuelRecord {
	out := make([]*domain.FuelRecord, 0, len(s.records))
	for _, r := range s.records {
		if sel.MatchesSemester(r) && sel.MatchesRegion(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s *store) Options() FilterOptions {
	return FilterOptions{
		Semesters: withAll(distinctSorted(s.records, func(r *domain.FuelRecord) string { return r.Semester })),
		Regions:   withAll(distinctSorted(s.records, func(r *domain.FuelRecord) string { return r.Region })),
	}
}
