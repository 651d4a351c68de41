package tree

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config carries the simulation parameters. Values not named in a config
// file keep their defaults.
type Config struct {
	FounderYear       int     `json:"founder_year"`        // birth year of the two founders
	MinYear           int     `json:"min_year"`            // lower bound of valid birth years
	MaxYear           int     `json:"max_year"`            // upper bound of valid birth years
	ChildGapMin       int     `json:"child_gap_min"`       // years between the elder parent's birth and the earliest child
	ChildGapMax       int     `json:"child_gap_max"`       // years between the elder parent's birth and the latest child
	PartnerYearSpread int     `json:"partner_year_spread"` // a partner is born within this many years of the individual
	DeathAgeSpread    int     `json:"death_age_spread"`    // age at death varies by up to this many years around life expectancy
	ChildRateSpread   float64 `json:"child_rate_spread"`   // child counts range over the decade birth rate plus or minus this
}

func DefaultConfig() Config {
	return Config{
		FounderYear:       1950,
		MinYear:           1950,
		MaxYear:           2120,
		ChildGapMin:       25,
		ChildGapMax:       45,
		PartnerYearSpread: 10,
		DeathAgeSpread:    10,
		ChildRateSpread:   1.5,
	}
}

// LoadConfig reads simulation parameters from a JSON file over the defaults.
// An empty filename returns the defaults.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	if filename == "" {
		return cfg, nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return cfg, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	d := json.NewDecoder(f)
	if err := d.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("read: %w", err)
	}

	return cfg, nil
}
