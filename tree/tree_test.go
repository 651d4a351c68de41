package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iand/kintree/dataset"
	"github.com/iand/kintree/model"
	"github.com/iand/kintree/sample"
)

// testTables builds an in-memory set of reference tables covering every
// decade the simulation can reach.
func testTables(birthRate, marriageRate float64) *dataset.Tables {
	tables := &dataset.Tables{
		Rates:          make(map[string]dataset.Rate),
		FirstNames:     make(map[dataset.NameKey]dataset.Distribution),
		LastNames:      make(map[string]dataset.Distribution),
		LifeExpectancy: make(map[int]float64),
	}

	for year := 1950; year <= 2120; year += 10 {
		decade := model.Decade(year)
		tables.Rates[decade] = dataset.Rate{Birth: birthRate, Marriage: marriageRate}
		tables.FirstNames[dataset.NameKey{Decade: decade, Gender: model.GenderMale}] = dataset.Distribution{
			Names:   []string{"James", "Robert", "Michael"},
			Weights: []float64{5, 3, 2},
		}
		tables.FirstNames[dataset.NameKey{Decade: decade, Gender: model.GenderFemale}] = dataset.Distribution{
			Names:   []string{"Mary", "Linda", "Susan"},
			Weights: []float64{5, 3, 2},
		}
	}

	tables.LastNames[dataset.FallbackDecade] = dataset.Distribution{
		Names:   []string{"Smith", "Jones", "Taylor", "Brown"},
		Weights: []float64{0.4, 0.3, 0.2, 0.1},
	}

	for year := 1950; year <= 2120; year++ {
		tables.LifeExpectancy[year] = 65 + float64(year-1950)*0.1
	}

	return tables
}

func generate(t *testing.T, tables *dataset.Tables, seed int64, cfg Config) *Tree {
	t.Helper()
	tr, err := Generate(tables, sample.NewSource(seed), cfg)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	return tr
}

func TestGenerateInvariants(t *testing.T) {
	cfg := DefaultConfig()
	tr := generate(t, testTables(2.0, 0.8), 1, cfg)

	if len(tr.People) < 2 {
		t.Fatalf("population has %d people, want at least the two founders", len(tr.People))
	}

	for _, id := range tr.People.IDs() {
		p := tr.People[id]

		if p.YearDied < p.YearBorn {
			t.Errorf("person %d died %d before being born %d", p.ID, p.YearDied, p.YearBorn)
		}
		if p.YearBorn < cfg.MinYear || p.YearBorn > cfg.MaxYear {
			t.Errorf("person %d born %d outside [%d, %d]", p.ID, p.YearBorn, cfg.MinYear, cfg.MaxYear)
		}

		if p.HasPartner() {
			partner, ok := tr.People.Get(p.PartnerID)
			if !ok {
				t.Fatalf("person %d has unknown partner %d", p.ID, p.PartnerID)
			}
			if partner.PartnerID != p.ID {
				t.Errorf("partnership between %d and %d is not symmetric", p.ID, partner.ID)
			}
			if partner.ID == p.ID {
				t.Errorf("person %d is partnered with themselves", p.ID)
			}
		}
	}
}

func TestGenerateChildBirthWindow(t *testing.T) {
	cfg := DefaultConfig()
	tr := generate(t, testTables(2.0, 0.8), 2, cfg)

	for _, id := range tr.People.IDs() {
		p := tr.People[id]
		if len(p.ChildIDs) == 0 {
			continue
		}

		elder := p
		if p.HasPartner() {
			if partner, ok := tr.People.Get(p.PartnerID); ok && partner.YearBorn < elder.YearBorn {
				elder = partner
			}
		}

		lo := elder.YearBorn + cfg.ChildGapMin
		hi := elder.YearBorn + cfg.ChildGapMax
		if hi > cfg.MaxYear {
			hi = cfg.MaxYear
		}

		for _, cid := range p.ChildIDs {
			c, ok := tr.People.Get(cid)
			if !ok {
				t.Fatalf("person %d has unknown child %d", p.ID, cid)
			}
			if c.YearBorn < lo || c.YearBorn > hi {
				t.Errorf("child %d born %d outside window [%d, %d] of parent %d", c.ID, c.YearBorn, lo, hi, p.ID)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	tables := testTables(2.0, 0.8)
	cfg := DefaultConfig()

	tr1 := generate(t, tables, 99, cfg)
	tr2 := generate(t, tables, 99, cfg)

	if diff := cmp.Diff(tr1.People, tr2.People); diff != "" {
		t.Errorf("same seed produced different populations (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(tr1.FounderSurnames, tr2.FounderSurnames); diff != "" {
		t.Errorf("same seed produced different founder surnames (-want +got):\n%s", diff)
	}
}

func TestGenerateFounders(t *testing.T) {
	cfg := DefaultConfig()

	for seed := int64(0); seed < 20; seed++ {
		tr := generate(t, testTables(2.0, 0.8), seed, cfg)

		p1, ok := tr.People.Get(tr.Founders[0])
		if !ok {
			t.Fatalf("seed %d: founder %d not in population", seed, tr.Founders[0])
		}
		p2, ok := tr.People.Get(tr.Founders[1])
		if !ok {
			t.Fatalf("seed %d: founder %d not in population", seed, tr.Founders[1])
		}

		if p1.LastName == p2.LastName {
			t.Errorf("seed %d: founders share the surname %q", seed, p1.LastName)
		}
		if p1.PartnerID != p2.ID || p2.PartnerID != p1.ID {
			t.Errorf("seed %d: founders are not partnered with each other", seed)
		}
		if p1.YearBorn != cfg.FounderYear || p2.YearBorn != cfg.FounderYear {
			t.Errorf("seed %d: founders born %d and %d, want %d", seed, p1.YearBorn, p2.YearBorn, cfg.FounderYear)
		}
		if !p1.Descendant || !p2.Descendant {
			t.Errorf("seed %d: founders are not marked as founding lineage", seed)
		}
	}
}

func TestGenerateNoPartnersWhenMarriageRateZero(t *testing.T) {
	tr := generate(t, testTables(2.0, 0), 5, DefaultConfig())

	for _, id := range tr.People.IDs() {
		p := tr.People[id]
		if id == tr.Founders[0] || id == tr.Founders[1] {
			continue
		}
		if p.HasPartner() {
			t.Errorf("person %d has a partner despite a marriage rate of zero", p.ID)
		}
	}
}

func TestGenerateFixedChildCount(t *testing.T) {
	// with no spread around the birth rate every family unit that can still
	// produce children produces exactly ceil(rate) of them
	cfg := DefaultConfig()
	cfg.ChildRateSpread = 0

	tr := generate(t, testTables(2.0, 0.5), 11, cfg)

	seen := make(map[int]bool)
	for _, id := range tr.People.IDs() {
		p := tr.People[id]
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true

		elder := p
		if p.HasPartner() {
			partner := tr.People[p.PartnerID]
			seen[partner.ID] = true
			if partner.YearBorn < elder.YearBorn {
				elder = partner
			}
		}

		if elder.YearBorn+cfg.ChildGapMin > cfg.MaxYear {
			if len(p.ChildIDs) != 0 {
				t.Errorf("unit of person %d produced children beyond the year bound", p.ID)
			}
			continue
		}
		if len(p.ChildIDs) != 2 {
			t.Errorf("unit of person %d produced %d children, want exactly 2", p.ID, len(p.ChildIDs))
		}
	}
}

func TestGenerateScenario(t *testing.T) {
	// seed 42, birth rate 2.0 and marriage rate 1.0: the founding unit must
	// produce between ceil(0.5)=1 and ceil(3.5)=4 children and everyone who
	// can be partnered is
	tr := generate(t, testTables(2.0, 1.0), 42, DefaultConfig())

	p1 := tr.People[tr.Founders[0]]
	p2 := tr.People[tr.Founders[1]]

	if !p1.HasPartner() || !p2.HasPartner() {
		t.Fatalf("founders are not partnered")
	}
	if n := len(p1.ChildIDs); n < 1 || n > 4 {
		t.Errorf("founding unit produced %d children, want between 1 and 4", n)
	}
	if diff := cmp.Diff(p1.ChildIDs, p2.ChildIDs); diff != "" {
		t.Errorf("founders disagree on their children (-want +got):\n%s", diff)
	}
}

func TestGenerateLineageFlag(t *testing.T) {
	tr := generate(t, testTables(2.0, 1.0), 7, DefaultConfig())

	for _, id := range tr.People.IDs() {
		p := tr.People[id]
		for _, cid := range p.ChildIDs {
			c := tr.People[cid]
			if p.Descendant && !c.Descendant {
				t.Errorf("child %d of lineage parent %d is not marked as lineage", cid, id)
			}
		}
	}
}

func TestGenerateDescendantSurnames(t *testing.T) {
	tr := generate(t, testTables(2.0, 1.0), 13, DefaultConfig())

	for _, id := range tr.People.IDs() {
		p := tr.People[id]
		if !p.Descendant {
			continue
		}
		if p.LastName != tr.FounderSurnames[0] && p.LastName != tr.FounderSurnames[1] {
			t.Errorf("lineage person %d has surname %q, want one of %q or %q", p.ID, p.LastName, tr.FounderSurnames[0], tr.FounderSurnames[1])
		}
	}
}

func TestGenerateIDsAreSequential(t *testing.T) {
	tr := generate(t, testTables(2.0, 0.8), 21, DefaultConfig())

	ids := tr.People.IDs()
	for i, id := range ids {
		if id != i+1 {
			t.Fatalf("ids are not sequential from 1: %v", ids[:i+1])
		}
	}
}

func TestUnitKey(t *testing.T) {
	tr := &Tree{}

	single := &model.Person{ID: 5}
	if got, want := tr.unitKey(single), (unitKey{a: 5}); got != want {
		t.Errorf("unitKey(single) = %v, want %v", got, want)
	}

	a := &model.Person{ID: 3, PartnerID: 8}
	b := &model.Person{ID: 8, PartnerID: 3}
	if tr.unitKey(a) != tr.unitKey(b) {
		t.Errorf("unitKey is not canonical: %v != %v", tr.unitKey(a), tr.unitKey(b))
	}
}
