package report

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/iand/kintree/logging"
	"github.com/iand/kintree/tree"
)

var Command = &cli.Command{
	Name:  "report",
	Usage: "Generate a population and print a report over it",
	Subcommands: []*cli.Command{
		summaryCommand,
		decadesCommand,
		yearsCommand,
		duplicatesCommand,
		similarCommand,
		descendantCommand,
	},
}

var summaryCommand = &cli.Command{
	Name:   "summary",
	Usage:  "Print the total population size and the founder surnames",
	Action: summary,
	Flags:  append(append([]cli.Flag{}, tree.Flags...), logging.Flags...),
}

func summary(cc *cli.Context) error {
	logging.Setup()

	t, err := tree.LoadAndGenerate(cc)
	if err != nil {
		return err
	}

	fmt.Printf("The tree contains %d people total, descended from the %s and %s families\n", Total(t.People), t.FounderSurnames[0], t.FounderSurnames[1])
	return nil
}

var decadesCommand = &cli.Command{
	Name:   "decades",
	Usage:  "Count people by decade of birth",
	Action: decades,
	Flags:  append(append([]cli.Flag{}, tree.Flags...), logging.Flags...),
}

func decades(cc *cli.Context) error {
	logging.Setup()

	t, err := tree.LoadAndGenerate(cc)
	if err != nil {
		return err
	}

	for _, dc := range ByDecade(t.People) {
		fmt.Printf("%s: %d\n", dc.Decade, dc.Count)
	}
	return nil
}

var yearsCommand = &cli.Command{
	Name:   "years",
	Usage:  "Count people by year of birth",
	Action: years,
	Flags:  append(append([]cli.Flag{}, tree.Flags...), logging.Flags...),
}

func years(cc *cli.Context) error {
	logging.Setup()

	t, err := tree.LoadAndGenerate(cc)
	if err != nil {
		return err
	}

	for _, yc := range ByYear(t.People) {
		fmt.Printf("%d: %d\n", yc.Year, yc.Count)
	}
	return nil
}

var duplicatesCommand = &cli.Command{
	Name:   "duplicates",
	Usage:  "List full names shared by more than one person",
	Action: duplicates,
	Flags:  append(append([]cli.Flag{}, tree.Flags...), logging.Flags...),
}

func duplicates(cc *cli.Context) error {
	logging.Setup()

	t, err := tree.LoadAndGenerate(cc)
	if err != nil {
		return err
	}

	dups := DuplicateNames(t.People)
	fmt.Printf("There are %d duplicate names in the tree:\n", len(dups))
	for _, name := range dups {
		fmt.Printf("* %s\n", name)
	}
	return nil
}

var similarCommand = &cli.Command{
	Name:   "similar",
	Usage:  "List pairs of distinct full names that are close matches",
	Action: similar,
	Flags: append(append([]cli.Flag{
		&cli.Float64Flag{
			Name:        "threshold",
			Value:       DefaultSimilarity,
			Usage:       "Similarity at or above which a pair of names is reported",
			Destination: &similarOpts.threshold,
		},
	}, tree.Flags...), logging.Flags...),
}

var similarOpts struct {
	threshold float64
}

func similar(cc *cli.Context) error {
	logging.Setup()

	t, err := tree.LoadAndGenerate(cc)
	if err != nil {
		return err
	}

	for _, pair := range SimilarNames(t.People, similarOpts.threshold) {
		fmt.Printf("%s ~ %s (%.2f)\n", pair.A, pair.B, pair.Similarity)
	}
	return nil
}
