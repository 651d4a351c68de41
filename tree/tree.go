package tree

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/iand/kintree/dataset"
	"github.com/iand/kintree/model"
	"github.com/iand/kintree/sample"
)

// Tree is a fully generated population together with the two founders it
// grew from.
type Tree struct {
	People          model.Population
	Founders        [2]int    // ids of the two founding partners
	FounderSurnames [2]string // the forced surnames of the founders

	tables *dataset.Tables
	rng    *sample.Source
	cfg    Config
	nextID int
}

// Generate grows a complete family tree from two founding partners. All
// randomness is drawn from rng, so a Source built from a fixed seed
// reproduces an identical population.
func Generate(tables *dataset.Tables, rng *sample.Source, cfg Config) (*Tree, error) {
	t := &Tree{
		People: make(model.Population),
		tables: tables,
		rng:    rng,
		cfg:    cfg,
		nextID: 1,
	}

	if err := t.build(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) build() error {
	surname1, surname2, err := t.founderSurnames()
	if err != nil {
		return err
	}

	p1, err := t.newPerson(t.cfg.FounderYear, true, surname1)
	if err != nil {
		return fmt.Errorf("create founder: %w", err)
	}
	p2, err := t.newPerson(t.cfg.FounderYear, true, surname2)
	if err != nil {
		return fmt.Errorf("create founder: %w", err)
	}
	p1.PartnerID = p2.ID
	p2.PartnerID = p1.ID
	t.People[p1.ID] = p1
	t.People[p2.ID] = p2
	t.Founders = [2]int{p1.ID, p2.ID}
	t.FounderSurnames = [2]string{p1.LastName, p2.LastName}

	// breadth-first expansion; both members of a partnered unit are queued
	// independently so the unit key guards against generating their
	// children twice
	visited := make(map[unitKey]bool)
	queue := []int{p1.ID, p2.ID}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		p := t.People[id]

		key := t.unitKey(p)
		if visited[key] {
			continue
		}
		visited[key] = true

		if err := t.maybeAddPartner(p); err != nil {
			return err
		}

		children, err := t.makeChildren(p)
		if err != nil {
			return err
		}
		for _, c := range children {
			t.People[c.ID] = c
			queue = append(queue, c.ID)
		}
	}

	slog.Debug("generated population", "people", len(t.People), "surname1", surname1, "surname2", surname2)
	return nil
}

// founderSurnames draws two distinct surnames from the founder decade's
// distribution.
func (t *Tree) founderSurnames() (string, string, error) {
	decade := model.Decade(t.cfg.FounderYear)
	dist, err := t.tables.LastNamesFor(decade)
	if err != nil {
		return "", "", err
	}

	distinct := make(map[string]bool)
	for i, name := range dist.Names {
		if dist.Weights[i] > 0 {
			distinct[name] = true
		}
	}
	if len(distinct) < 2 {
		return "", "", fmt.Errorf("need at least two distinct last names with weight for decade %s", decade)
	}

	surname1, err := t.rng.Weighted(dist.Names, dist.Weights)
	if err != nil {
		return "", "", fmt.Errorf("founder surname: %w", err)
	}
	surname2 := surname1
	for surname2 == surname1 {
		surname2, err = t.rng.Weighted(dist.Names, dist.Weights)
		if err != nil {
			return "", "", fmt.Errorf("founder surname: %w", err)
		}
	}
	return surname1, surname2, nil
}

// unitKey canonicalizes a family unit: a person alone, or a partnered pair
// with the lower id first so both members map to the same key.
type unitKey struct {
	a, b int
}

func (t *Tree) unitKey(p *model.Person) unitKey {
	if !p.HasPartner() {
		return unitKey{a: p.ID}
	}
	if p.PartnerID < p.ID {
		return unitKey{a: p.PartnerID, b: p.ID}
	}
	return unitKey{a: p.ID, b: p.PartnerID}
}

// maybeAddPartner attaches a new partner to p with probability equal to the
// marriage rate of p's birth decade. The partner is added to the population
// but not queued: children for the unit are generated when p's unit is
// processed.
func (t *Tree) maybeAddPartner(p *model.Person) error {
	if p.HasPartner() {
		return nil
	}

	rate, err := t.tables.RatesFor(model.Decade(p.YearBorn))
	if err != nil {
		return err
	}
	if t.rng.Float64() >= rate.Marriage {
		return nil
	}

	yearBorn := clampYear(p.YearBorn+t.rng.IntBetween(-t.cfg.PartnerYearSpread, t.cfg.PartnerYearSpread), t.cfg.MinYear, t.cfg.MaxYear)
	partner, err := t.newPerson(yearBorn, false, "")
	if err != nil {
		return fmt.Errorf("create partner: %w", err)
	}
	partner.PartnerID = p.ID
	p.PartnerID = partner.ID
	t.People[partner.ID] = partner
	return nil
}

// makeChildren generates the children for p's family unit. The number of
// children ranges over the elder parent's decade birth rate plus or minus
// the configured spread, and each child is born within the child gap window
// after the elder parent's birth.
func (t *Tree) makeChildren(p *model.Person) ([]*model.Person, error) {
	parents := []*model.Person{p}
	if p.HasPartner() {
		parents = append(parents, t.People[p.PartnerID])
	}

	// ties keep the dequeued individual as elder
	elder := parents[0]
	for _, parent := range parents[1:] {
		if parent.YearBorn < elder.YearBorn {
			elder = parent
		}
	}

	rate, err := t.tables.RatesFor(model.Decade(elder.YearBorn))
	if err != nil {
		return nil, err
	}

	minKids := int(math.Ceil(rate.Birth - t.cfg.ChildRateSpread))
	if minKids < 0 {
		minKids = 0
	}
	maxKids := int(math.Ceil(rate.Birth + t.cfg.ChildRateSpread))
	if maxKids < minKids {
		maxKids = minKids
	}
	n := t.rng.IntBetween(minKids, maxKids)

	startYear := elder.YearBorn + t.cfg.ChildGapMin
	endYear := elder.YearBorn + t.cfg.ChildGapMax
	if endYear > t.cfg.MaxYear {
		endYear = t.cfg.MaxYear
	}
	if startYear > t.cfg.MaxYear {
		// no child can be born inside the simulation window, the lineage
		// ends here
		return nil, nil
	}

	descendant := false
	for _, parent := range parents {
		if parent.Descendant {
			descendant = true
		}
	}

	var children []*model.Person
	for i := 0; i < n; i++ {
		yearBorn := t.rng.IntBetween(startYear, endYear)
		child, err := t.newPerson(yearBorn, descendant, "")
		if err != nil {
			return nil, fmt.Errorf("create child: %w", err)
		}
		for _, parent := range parents {
			parent.ChildIDs = append(parent.ChildIDs, child.ID)
		}
		children = append(children, child)
	}
	return children, nil
}

func clampYear(year, min, max int) int {
	if year < min {
		return min
	}
	if year > max {
		return max
	}
	return year
}
