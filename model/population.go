package model

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Population is the arena holding every generated person, keyed by id. It
// grows only while a tree is being generated and is read-only afterwards.
type Population map[int]*Person

func (pop Population) Get(id int) (*Person, bool) {
	p, ok := pop[id]
	return p, ok
}

// IDs returns the ids of everyone in the population in ascending order,
// which is creation order.
func (pop Population) IDs() []int {
	ids := maps.Keys(pop)
	slices.Sort(ids)
	return ids
}

// Decade returns the decade bucket for a year, e.g. 1983 -> "1980s". Decade
// buckets key all of the demographic reference tables.
func Decade(year int) string {
	return fmt.Sprintf("%ds", year/10*10)
}
