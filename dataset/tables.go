package dataset

import (
	"fmt"

	"github.com/iand/kintree/model"
)

// FallbackDecade keys last-name rows that carry no decade of their own and
// is the bucket used when a birth decade has no last-name data.
const FallbackDecade = "1950s"

// RankCount is the number of buckets in the rank-to-probability table.
const RankCount = 30

// Rate holds the per-decade demographic rates.
type Rate struct {
	Birth    float64
	Marriage float64
}

// NameKey indexes the first-name distributions.
type NameKey struct {
	Decade string
	Gender model.Gender
}

// Distribution is a weighted set of names held as parallel slices.
type Distribution struct {
	Names   []string
	Weights []float64
}

// Tables holds the demographic reference data. All fields are read-only
// once loaded.
type Tables struct {
	Rates          map[string]Rate
	FirstNames     map[NameKey]Distribution
	LastNames      map[string]Distribution // weights normalized to sum to 1 per decade
	LifeExpectancy map[int]float64
}

// RatesFor returns the birth and marriage rates for a decade. A missing
// decade is a data-completeness failure.
func (t *Tables) RatesFor(decade string) (Rate, error) {
	r, ok := t.Rates[decade]
	if !ok {
		return Rate{}, fmt.Errorf("no birth and marriage rates for decade %s", decade)
	}
	return r, nil
}

// FirstNamesFor returns the first-name distribution for a decade and gender.
// A missing entry is a data-completeness failure.
func (t *Tables) FirstNamesFor(decade string, gender model.Gender) (Distribution, error) {
	d, ok := t.FirstNames[NameKey{Decade: decade, Gender: gender}]
	if !ok {
		return Distribution{}, fmt.Errorf("no first names for decade %s gender %s", decade, gender)
	}
	return d, nil
}

// LastNamesFor returns the last-name distribution for a decade, falling back
// to the fixed default decade when the requested one has no data.
func (t *Tables) LastNamesFor(decade string) (Distribution, error) {
	d, ok := t.LastNames[decade]
	if !ok {
		d, ok = t.LastNames[FallbackDecade]
	}
	if !ok {
		return Distribution{}, fmt.Errorf("no last names for decade %s or fallback %s", decade, FallbackDecade)
	}
	return d, nil
}

// LifeExpectancyFor returns the life expectancy at birth for a year,
// clamping the lookup to the range of years present in the table.
func (t *Tables) LifeExpectancyFor(year int) (float64, error) {
	if len(t.LifeExpectancy) == 0 {
		return 0, fmt.Errorf("life expectancy table is empty")
	}
	min, max := 0, 0
	first := true
	for y := range t.LifeExpectancy {
		if first {
			min, max = y, y
			first = false
			continue
		}
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	if year < min {
		year = min
	}
	if year > max {
		year = max
	}
	le, ok := t.LifeExpectancy[year]
	if !ok {
		return 0, fmt.Errorf("no life expectancy for year %d", year)
	}
	return le, nil
}
