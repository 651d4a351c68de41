/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

package chart

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/iand/kintree/logging"
	"github.com/iand/kintree/tree"
)

var chartopts struct {
	person         int
	outputFilename string
}

var Command = &cli.Command{
	Name:   "chart",
	Usage:  "Create a family tree chart in Graphviz dot format",
	Action: chartCmd,
	Flags: append(append([]cli.Flag{
		&cli.IntFlag{
			Name:        "person",
			Aliases:     []string{"p"},
			Usage:       "id of person to build the chart from (defaults to the first founder)",
			Destination: &chartopts.person,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "output filename, stdout if empty",
			Destination: &chartopts.outputFilename,
		},
	}, tree.Flags...), logging.Flags...),
}

func chartCmd(cc *cli.Context) error {
	logging.Setup()

	t, err := tree.LoadAndGenerate(cc)
	if err != nil {
		return err
	}

	startID := chartopts.person
	if startID == 0 {
		startID = t.Founders[0]
	}
	start, ok := t.People.Get(startID)
	if !ok {
		return fmt.Errorf("no person with id %d", startID)
	}

	data, err := NewDotChart().Draw(t.People, start)
	if err != nil {
		return fmt.Errorf("draw chart: %w", err)
	}

	if chartopts.outputFilename == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(chartopts.outputFilename, data, 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
