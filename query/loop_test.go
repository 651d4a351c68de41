package query

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iand/kintree/model"
	"github.com/iand/kintree/tree"
)

func testTree() *tree.Tree {
	people := []*model.Person{
		{ID: 1, FirstName: "James", LastName: "Smith", YearBorn: 1950, YearDied: 2021, PartnerID: 2},
		{ID: 2, FirstName: "Mary", LastName: "Jones", YearBorn: 1950, YearDied: 2025, PartnerID: 1},
		{ID: 3, FirstName: "James", LastName: "Smith", YearBorn: 1981, YearDied: 2060},
	}
	pop := make(model.Population)
	for _, p := range people {
		pop[p.ID] = p
	}
	return &tree.Tree{
		People:          pop,
		Founders:        [2]int{1, 2},
		FounderSurnames: [2]string{"Smith", "Jones"},
	}
}

func TestLoopTotal(t *testing.T) {
	var out bytes.Buffer
	if err := Loop(strings.NewReader("t\nq\n"), &out, testTree()); err != nil {
		t.Fatalf("Loop returned error: %v", err)
	}
	if !strings.Contains(out.String(), "The tree contains 3 people total") {
		t.Errorf("output missing total count:\n%s", out.String())
	}
}

func TestLoopDecades(t *testing.T) {
	var out bytes.Buffer
	if err := Loop(strings.NewReader("d\nq\n"), &out, testTree()); err != nil {
		t.Fatalf("Loop returned error: %v", err)
	}
	if !strings.Contains(out.String(), "1950s: 2") || !strings.Contains(out.String(), "1980s: 1") {
		t.Errorf("output missing decade counts:\n%s", out.String())
	}
}

func TestLoopDuplicates(t *testing.T) {
	var out bytes.Buffer
	if err := Loop(strings.NewReader("N\nq\n"), &out, testTree()); err != nil {
		t.Fatalf("Loop returned error: %v", err)
	}
	if !strings.Contains(out.String(), "There are 1 duplicate names in the tree:") {
		t.Errorf("output missing duplicate count:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "* James Smith") {
		t.Errorf("output missing duplicate name:\n%s", out.String())
	}
}

func TestLoopUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	if err := Loop(strings.NewReader("x\nq\n"), &out, testTree()); err != nil {
		t.Fatalf("Loop returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Please enter") {
		t.Errorf("output missing reprompt for unknown command:\n%s", out.String())
	}
}

func TestLoopEndOfInput(t *testing.T) {
	var out bytes.Buffer
	if err := Loop(strings.NewReader(""), &out, testTree()); err != nil {
		t.Fatalf("Loop returned error at end of input: %v", err)
	}
}
