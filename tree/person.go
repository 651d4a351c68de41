package tree

import (
	"fmt"
	"math"

	"github.com/iand/kintree/model"
)

// newPerson creates a single fully-formed person born in yearBorn. Founders
// pass their forced surname; descendants of the founders take one of the two
// founder surnames at random; everyone else draws from the last-name
// distribution of their birth decade.
func (t *Tree) newPerson(yearBorn int, descendant bool, forcedLast string) (*model.Person, error) {
	gender := model.GenderFemale
	if t.rng.Float64() < 0.5 {
		gender = model.GenderMale
	}

	decade := model.Decade(yearBorn)
	firstDist, err := t.tables.FirstNamesFor(decade, gender)
	if err != nil {
		return nil, err
	}
	first, err := t.rng.Weighted(firstDist.Names, firstDist.Weights)
	if err != nil {
		return nil, fmt.Errorf("first name for %s %s: %w", decade, gender, err)
	}

	var last string
	switch {
	case forcedLast != "":
		last = forcedLast
	case descendant:
		last = t.FounderSurnames[t.rng.IntBetween(0, 1)]
	default:
		lastDist, err := t.tables.LastNamesFor(decade)
		if err != nil {
			return nil, err
		}
		last, err = t.rng.Weighted(lastDist.Names, lastDist.Weights)
		if err != nil {
			return nil, fmt.Errorf("last name for %s: %w", decade, err)
		}
	}

	yearDied, err := t.yearDied(yearBorn)
	if err != nil {
		return nil, err
	}

	p := &model.Person{
		ID:         t.nextID,
		FirstName:  first,
		LastName:   last,
		Gender:     gender,
		YearBorn:   yearBorn,
		YearDied:   yearDied,
		Descendant: descendant,
	}
	t.nextID++
	return p, nil
}

// yearDied derives a death year from the life expectancy at birth, perturbed
// by up to the configured spread. A negative age is clamped to zero.
func (t *Tree) yearDied(yearBorn int) (int, error) {
	le, err := t.tables.LifeExpectancyFor(yearBorn)
	if err != nil {
		return 0, err
	}
	age := int(math.Round(le)) + t.rng.IntBetween(-t.cfg.DeathAgeSpread, t.cfg.DeathAgeSpread)
	if age < 0 {
		age = 0
	}
	return yearBorn + age, nil
}
