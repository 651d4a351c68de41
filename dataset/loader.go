package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iand/kintree/model"
)

// Load reads the four demographic reference tables from dir. Structural
// problems such as a missing file or a malformed rank table are returned as
// errors; individual rows that cannot be parsed are skipped.
func Load(dir string) (*Tables, error) {
	t := &Tables{
		Rates:          make(map[string]Rate),
		FirstNames:     make(map[NameKey]Distribution),
		LastNames:      make(map[string]Distribution),
		LifeExpectancy: make(map[int]float64),
	}

	if err := t.readRates(filepath.Join(dir, "birth_and_marriage_rates.csv")); err != nil {
		return nil, fmt.Errorf("read birth and marriage rates: %w", err)
	}
	if err := t.readFirstNames(filepath.Join(dir, "first_names.csv")); err != nil {
		return nil, fmt.Errorf("read first names: %w", err)
	}
	if err := t.readLifeExpectancy(filepath.Join(dir, "life_expectancy.csv")); err != nil {
		return nil, fmt.Errorf("read life expectancy: %w", err)
	}
	rankProbs, err := readRankProbs(filepath.Join(dir, "rank_to_probability.csv"))
	if err != nil {
		return nil, fmt.Errorf("read rank probabilities: %w", err)
	}
	if err := t.readLastNames(dir, rankProbs); err != nil {
		return nil, fmt.Errorf("read last names: %w", err)
	}

	return t, nil
}

// rows reads a csv file and returns each record as a map keyed by the
// lower-cased header names.
func rows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // short rows are handled per table

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var recs []map[string]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		m := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(rec) {
				m[h] = rec[i]
			}
		}
		recs = append(recs, m)
	}
	return recs, nil
}

func (t *Tables) readRates(path string) error {
	recs, err := rows(path)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		birth, err1 := strconv.ParseFloat(rec["birth_rate"], 64)
		marriage, err2 := strconv.ParseFloat(rec["marriage_rate"], 64)
		if rec["decade"] == "" || err1 != nil || err2 != nil {
			slog.Debug("skipping malformed rate row", "row", rec)
			continue
		}
		t.Rates[rec["decade"]] = Rate{Birth: birth, Marriage: marriage}
	}
	return nil
}

func (t *Tables) readFirstNames(path string) error {
	recs, err := rows(path)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		freq, err := strconv.ParseFloat(rec["frequency"], 64)
		if rec["decade"] == "" || rec["name"] == "" || err != nil {
			slog.Debug("skipping malformed first name row", "row", rec)
			continue
		}
		key := NameKey{
			Decade: rec["decade"],
			Gender: model.Gender(strings.ToLower(strings.TrimSpace(rec["gender"]))),
		}
		d := t.FirstNames[key]
		d.Names = append(d.Names, rec["name"])
		d.Weights = append(d.Weights, freq)
		t.FirstNames[key] = d
	}
	return nil
}

func (t *Tables) readLifeExpectancy(path string) error {
	recs, err := rows(path)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		year, err1 := strconv.Atoi(rec["year"])
		le, err2 := strconv.ParseFloat(rec["period life expectancy at birth"], 64)
		if err1 != nil || err2 != nil {
			slog.Debug("skipping malformed life expectancy row", "row", rec)
			continue
		}
		t.LifeExpectancy[year] = le
	}
	return nil
}

// readRankProbs reads the single line of comma separated probabilities that
// maps a surname's popularity rank to its probability mass.
func readRankProbs(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	line := strings.TrimSpace(strings.SplitN(string(data), "\n", 2)[0])
	var probs []float64
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		p, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("parse probability %q: %w", field, err)
		}
		probs = append(probs, p)
	}
	if len(probs) != RankCount {
		return nil, fmt.Errorf("expected exactly %d rank probabilities, got %d", RankCount, len(probs))
	}
	return probs, nil
}

func (t *Tables) readLastNames(dir string, rankProbs []float64) error {
	var path string
	for _, candidate := range []string{"last_names.csv", "last_name.csv"} {
		p := filepath.Join(dir, candidate)
		if _, err := os.Stat(p); err == nil {
			path = p
			break
		}
	}
	if path == "" {
		return fmt.Errorf("could not find last_names.csv or last_name.csv in %s", dir)
	}

	recs, err := rows(path)
	if err != nil {
		return err
	}

	for _, rec := range recs {
		// rows may or may not carry a decade; without one, everything pools
		// under the fallback decade
		decade := rec["decade"]
		if decade == "" {
			decade = FallbackDecade
		}

		name := strings.TrimSpace(firstOf(rec, "lastname", "last_name"))
		rankStr := rec["rank"]
		if name == "" || rankStr == "" {
			slog.Debug("skipping malformed last name row", "row", rec)
			continue
		}
		rank, err := strconv.Atoi(strings.TrimSpace(rankStr))
		if err != nil {
			slog.Debug("skipping malformed last name row", "row", rec)
			continue
		}
		if rank < 1 || rank > RankCount {
			return fmt.Errorf("last name %q has rank %d outside [1,%d]", name, rank, RankCount)
		}

		d := t.LastNames[decade]
		d.Names = append(d.Names, name)
		d.Weights = append(d.Weights, rankProbs[rank-1])
		t.LastNames[decade] = d
	}

	// normalize weights so each decade's distribution sums to 1
	for decade, d := range t.LastNames {
		var total float64
		for _, w := range d.Weights {
			total += w
		}
		if total <= 0 {
			return fmt.Errorf("last name weights for decade %s sum to zero", decade)
		}
		norm := make([]float64, len(d.Weights))
		for i, w := range d.Weights {
			norm[i] = w / total
		}
		t.LastNames[decade] = Distribution{Names: d.Names, Weights: norm}
	}

	return nil
}

func firstOf(rec map[string]string, keys ...string) string {
	for _, k := range keys {
		if rec[k] != "" {
			return rec[k]
		}
	}
	return ""
}
