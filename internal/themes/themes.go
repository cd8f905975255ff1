package themes

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrNoTiers = errors.New("no tiers defined")
var ErrUnsortedTiers = errors.New("tiers not ascending by unlock score")

// Tier is one cosmetic unlock. The ranking core only reads UnlockScore;
// everything else passes through to the client untouched.
type Tier struct {
	ID           string `yaml:"id" json:"id"`
	DisplayName  string `yaml:"display_name" json:"display_name"`
	PrimaryColor string `yaml:"primary_color" json:"primary_color"`
	AccentColor  string `yaml:"accent_color" json:"accent_color"`
	UnlockScore  int    `yaml:"unlock_score" json:"unlock_score"`
}

// Default is the built-in tier table, used when no themes file is
// configured.
func Default() []Tier {
	return []Tier{
		{ID: "sunset", DisplayName: "Sunset Strip", PrimaryColor: "#ff6b35", AccentColor: "#ffd23f", UnlockScore: 500},
		{ID: "neon", DisplayName: "Neon Nights", PrimaryColor: "#39ff14", AccentColor: "#ff00ff", UnlockScore: 1200},
		{ID: "deepsea", DisplayName: "Deep Sea", PrimaryColor: "#0077be", AccentColor: "#7fdbff", UnlockScore: 2500},
		{ID: "volcanic", DisplayName: "Volcanic", PrimaryColor: "#d7263d", AccentColor: "#f46036", UnlockScore: 5000},
		{ID: "cosmic", DisplayName: "Cosmic Drift", PrimaryColor: "#2e294e", AccentColor: "#efbcd5", UnlockScore: 10000},
	}
}

// LoadFile reads a tier table from a YAML file and validates it.
func LoadFile(path string) ([]Tier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read themes file: %w", err)
	}

	var tiers []Tier
	if err := yaml.Unmarshal(data, &tiers); err != nil {
		return nil, fmt.Errorf("parse themes file: %w", err)
	}
	if err := Validate(tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}

// Validate checks the table is non-empty and strictly ascending by
// unlock score, the ordering the milestone lookups rely on.
func Validate(tiers []Tier) error {
	if len(tiers) == 0 {
		return ErrNoTiers
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].UnlockScore <= tiers[i-1].UnlockScore {
			return fmt.Errorf("%w: %q after %q", ErrUnsortedTiers, tiers[i].ID, tiers[i-1].ID)
		}
	}
	return nil
}

// Thresholds projects the table down to the unlock scores the ranking
// core consumes.
func Thresholds(tiers []Tier) []int {
	out := make([]int, len(tiers))
	for i, t := range tiers {
		out[i] = t.UnlockScore
	}
	return out
}
