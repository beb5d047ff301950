package domain

import "time"

// Semester is a collection period tag in the form "YYYY/S1" or "YYYY/S2".
type Semester = string

// FuelRecord is one normalized price observation from the ANP survey.
// Records are created by the dataset loader and never mutated afterwards.
type FuelRecord struct {
	SaleDate     *time.Time        `json:"dataDaColeta"`
	SaleValue    float64           `json:"valorDeVenda"`
	Product      string            `json:"produto"`
	Brand        string            `json:"bandeira"`
	StationID    string            `json:"cnpjDaRevenda"`
	Neighborhood string            `json:"bairro"`
	Region       string            `json:"regional"`
	Semester     Semester          `json:"semestre"`
	Extra        map[string]string `json:"-"`
}

// FilterAll matches every value on a filter axis.
const FilterAll = "all"

// FilterSelection narrows the canonical dataset into the working subset.
type FilterSelection struct {
	Semester string `json:"semester" validate:"required"`
	Region   string `json:"region" validate:"required"`
}

func DefaultSelection() FilterSelection {
	return FilterSelection{Semester: FilterAll, Region: FilterAll}
}

// MatchesSemester reports whether the record passes the semester axis.
func (f FilterSelection) MatchesSemester(r *FuelRecord) bool {
	return f.Semester == FilterAll || r.Semester == f.Semester
}

// MatchesRegion reports whether the record passes the region axis.
func (f FilterSelection) MatchesRegion(r *FuelRecord) bool {
	return f.Region == FilterAll || r.Region == f.Region
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
