package model

import (
	"fmt"
)

// Person is a single synthesized individual. Identity fields are fixed when
// the person is created; PartnerID and ChildIDs are filled in as the family
// graph grows. Relationships are held as ids rather than pointers so the
// cyclic partner/child graph lives entirely in the population map.
type Person struct {
	ID         int // sequential identifier, unique within a population
	FirstName  string
	LastName   string
	Gender     Gender
	YearBorn   int
	YearDied   int
	Descendant bool // true if the person descends from the two founders

	PartnerID int // id of partner, 0 if none
	ChildIDs  []int
}

func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p *Person) HasPartner() bool {
	return p.PartnerID != 0
}

// VitalYears formats the person's birth and death years in yyyy-yyyy form.
func (p *Person) VitalYears() string {
	return fmt.Sprintf("%d-%d", p.YearBorn, p.YearDied)
}
