package gen

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/iand/kintree/debug"
	"github.com/iand/kintree/logging"
	"github.com/iand/kintree/tree"
)

var Command = &cli.Command{
	Name:   "gen",
	Usage:  "Generate a population and print a one line summary",
	Action: gen,
	Flags: append(append([]cli.Flag{
		&cli.IntFlag{
			Name:        "dump",
			Usage:       "id of a person to dump after generation",
			Destination: &genOpts.dump,
		},
	}, tree.Flags...), logging.Flags...),
}

var genOpts struct {
	dump int
}

func gen(cc *cli.Context) error {
	logging.Setup()

	t, err := tree.LoadAndGenerate(cc)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d people descended from the %s and %s families\n", len(t.People), t.FounderSurnames[0], t.FounderSurnames[1])

	if genOpts.dump != 0 {
		p, ok := t.People.Get(genOpts.dump)
		if !ok {
			return fmt.Errorf("no person with id %d", genOpts.dump)
		}
		debug.DumpPerson(t.People, p, os.Stdout)
	}

	return nil
}
