package store

import (
	"sort"

	"github.com/gcouto/combustiveis-bh/internal/domain"
)

func distinctSorted(records []*domain.FuelRecord, key func(*domain.FuelRecord) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, 16)
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func withAll(values []string) []string {
	return append([]string{domain.FilterAll}, values...)
}
