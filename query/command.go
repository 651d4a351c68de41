package query

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/iand/kintree/logging"
	"github.com/iand/kintree/tree"
)

var Command = &cli.Command{
	Name:   "query",
	Usage:  "Generate a population and query it interactively",
	Action: run,
	Flags:  append(append([]cli.Flag{}, tree.Flags...), logging.Flags...),
}

func run(cc *cli.Context) error {
	logging.Setup()

	t, err := tree.LoadAndGenerate(cc)
	if err != nil {
		return err
	}

	return Loop(os.Stdin, os.Stdout, t)
}
