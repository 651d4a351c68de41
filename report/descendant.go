package report

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/iand/kintree/logging"
	"github.com/iand/kintree/model"
	"github.com/iand/kintree/tree"
)

var descendantCommand = &cli.Command{
	Name:   "descendant",
	Usage:  "Print an indented tree of a person's descendants",
	Action: descendant,
	Flags: append(append([]cli.Flag{
		&cli.IntFlag{
			Name:        "person",
			Aliases:     []string{"p"},
			Usage:       "id of the person to start from (defaults to the first founder)",
			Destination: &descendantOpts.person,
		},
		&cli.IntFlag{
			Name:        "gen",
			Usage:       "number of descendant generations to print",
			Value:       3,
			Destination: &descendantOpts.generations,
		},
		&cli.IntFlag{
			Name:        "detail",
			Usage:       "level of detail to include with each person (0:names,1:names and years)",
			Value:       1,
			Destination: &descendantOpts.detail,
		},
		&cli.BoolFlag{
			Name:        "compact",
			Usage:       "Remove blank lines from output.",
			Value:       false,
			Destination: &descendantOpts.compact,
		},
	}, tree.Flags...), logging.Flags...),
}

var descendantOpts struct {
	person      int
	generations int
	detail      int
	compact     bool
}

func descendant(cc *cli.Context) error {
	logging.Setup()

	var detailFn func(*model.Person) string
	switch descendantOpts.detail {
	case 0:
		detailFn = func(p *model.Person) string { return p.FullName() }
	case 1:
		detailFn = func(p *model.Person) string { return fmt.Sprintf("%s (%s)", p.FullName(), p.VitalYears()) }
	default:
		return fmt.Errorf("unsupported detail level: %d", descendantOpts.detail)
	}

	t, err := tree.LoadAndGenerate(cc)
	if err != nil {
		return err
	}

	startID := descendantOpts.person
	if startID == 0 {
		startID = t.Founders[0]
	}
	start, ok := t.People.Get(startID)
	if !ok {
		return fmt.Errorf("no person with id %d", startID)
	}

	printDescendants(t.People, start, "", 1, detailFn, descendantOpts.compact, descendantOpts.generations)
	return nil
}

func printDescendants(pop model.Population, p *model.Person, indent string, idx int, detailFn func(*model.Person) string, compact bool, generations int) {
	fmt.Printf("%s% 2d. %s\n", indent, idx, detailFn(p))
	if !compact {
		fmt.Println()
	}

	if p.HasPartner() {
		if sp, ok := pop.Get(p.PartnerID); ok {
			fmt.Printf("%s    sp. %s\n", indent, detailFn(sp))
			if !compact {
				fmt.Println()
			}
		}
	}

	if generations <= 0 {
		return
	}
	for i, cid := range p.ChildIDs {
		c, ok := pop.Get(cid)
		if !ok {
			continue
		}
		printDescendants(pop, c, indent+"      ", i+1, detailFn, compact, generations-1)
	}
}
