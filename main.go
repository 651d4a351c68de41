/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/iand/kintree/chart"
	"github.com/iand/kintree/gen"
	"github.com/iand/kintree/query"
	"github.com/iand/kintree/report"
)

func main() {
	app := &cli.App{
		Name:     "kintree",
		HelpName: "kintree",
		Usage:    "Generate a synthetic family tree from historical demographic data",
		Commands: []*cli.Command{
			gen.Command,
			query.Command,
			report.Command,
			chart.Command,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
