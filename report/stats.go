package report

import (
	"strconv"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/iand/kintree/model"
)

// DefaultSimilarity is the overlap coefficient at or above which two full
// names are reported as similar.
const DefaultSimilarity = 0.8

// Total returns the number of people in the population.
func Total(pop model.Population) int {
	return len(pop)
}

// DecadeCount is the number of people born in one decade bucket.
type DecadeCount struct {
	Decade string
	Count  int
}

// ByDecade counts people by birth decade, ordered by the decade's leading
// year.
func ByDecade(pop model.Population) []DecadeCount {
	counts := make(map[string]int)
	for _, p := range pop {
		counts[model.Decade(p.YearBorn)]++
	}

	decades := maps.Keys(counts)
	slices.SortFunc(decades, func(a, b string) bool {
		return decadeYear(a) < decadeYear(b)
	})

	out := make([]DecadeCount, 0, len(decades))
	for _, d := range decades {
		out = append(out, DecadeCount{Decade: d, Count: counts[d]})
	}
	return out
}

func decadeYear(decade string) int {
	n, _ := strconv.Atoi(strings.TrimSuffix(decade, "s"))
	return n
}

// YearCount is the number of people born in one year.
type YearCount struct {
	Year  int
	Count int
}

// ByYear counts people by exact birth year, ascending.
func ByYear(pop model.Population) []YearCount {
	counts := make(map[int]int)
	for _, p := range pop {
		counts[p.YearBorn]++
	}

	years := maps.Keys(counts)
	slices.Sort(years)

	out := make([]YearCount, 0, len(years))
	for _, y := range years {
		out = append(out, YearCount{Year: y, Count: counts[y]})
	}
	return out
}

// DuplicateNames returns the full names shared by more than one person,
// sorted lexicographically.
func DuplicateNames(pop model.Population) []string {
	counts := make(map[string]int)
	for _, p := range pop {
		counts[p.FullName()]++
	}

	var dups []string
	for name, n := range counts {
		if n > 1 {
			dups = append(dups, name)
		}
	}
	slices.Sort(dups)
	return dups
}

// SimilarPair is a pair of distinct full names that are close matches.
type SimilarPair struct {
	A          string
	B          string
	Similarity float64
}

// SimilarNames returns pairs of distinct full names whose overlap
// coefficient meets the threshold, ordered by first then second name.
func SimilarNames(pop model.Population, threshold float64) []SimilarPair {
	seen := make(map[string]bool)
	for _, p := range pop {
		seen[p.FullName()] = true
	}
	names := maps.Keys(seen)
	slices.Sort(names)

	oc := metrics.NewOverlapCoefficient()

	var pairs []SimilarPair
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			sim := strutil.Similarity(names[i], names[j], oc)
			if sim >= threshold {
				pairs = append(pairs, SimilarPair{A: names[i], B: names[j], Similarity: sim})
			}
		}
	}
	return pairs
}
