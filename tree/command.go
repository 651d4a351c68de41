package tree

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/iand/kintree/dataset"
	"github.com/iand/kintree/logging"
	"github.com/iand/kintree/sample"
)

// Flags are shared by every command that generates a population.
var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:        "data",
		Aliases:     []string{"d"},
		Value:       ".",
		Usage:       "Directory containing the demographic reference tables",
		Destination: &Opts.DataDir,
	},
	&cli.Int64Flag{
		Name:        "seed",
		Aliases:     []string{"s"},
		Usage:       "Seed for the random source; omit for a non-reproducible population",
		Destination: &Opts.Seed,
	},
	&cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to a JSON file overriding the simulation parameters",
		Destination: &Opts.ConfigFile,
	},
}

var Opts struct {
	DataDir    string
	Seed       int64
	ConfigFile string
}

// LoadAndGenerate reads the reference tables and simulation config named by
// the shared flags and generates a population from them.
func LoadAndGenerate(cc *cli.Context) (*Tree, error) {
	tables, err := dataset.Load(Opts.DataDir)
	if err != nil {
		return nil, fmt.Errorf("load reference tables: %w", err)
	}

	cfg, err := LoadConfig(Opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("load simulation config: %w", err)
	}
	if logging.Opts.VeryVerbose {
		logging.Dump(cfg)
	}

	var rng *sample.Source
	if cc.IsSet("seed") {
		rng = sample.NewSource(Opts.Seed)
	} else {
		rng = sample.NewRandomSource()
	}

	t, err := Generate(tables, rng, cfg)
	if err != nil {
		return nil, fmt.Errorf("generate population: %w", err)
	}

	slog.Info("generated population", "people", len(t.People), "founders", fmt.Sprintf("%s/%s", t.FounderSurnames[0], t.FounderSurnames[1]))
	return t, nil
}
