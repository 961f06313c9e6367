package store

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed demo_stores.yaml
var demoStoresYAML []byte

// Fixtures supplies locally authored stores for a zip code.
type Fixtures interface {
	StoresFor(zip string) []Store
}

// NoFixtures never returns any stores.
type NoFixtures struct{}

// StoresFor implements Fixtures.
func (NoFixtures) StoresFor(string) []Store { return nil }

// FixtureSet is a static zip -> stores table.
type FixtureSet struct {
	Zips map[string][]Store `yaml:"zips"`
}

// StoresFor returns a copy of the stores registered for zip.
func (f *FixtureSet) StoresFor(zip string) []Store {
	if f == nil {
		return nil
	}
	stores := CloneAll(f.Zips[zip])
	for i := range stores {
		if stores[i].MatchedIngredients == nil {
			stores[i].MatchedIngredients = []string{}
		}
		if stores[i].MissingIngredients == nil {
			stores[i].MissingIngredients = []string{}
		}
	}
	return stores
}

// ParseFixtures decodes a YAML fixture document. Fixture stores are local demo
// entries and must not claim SNAP acceptance.
func ParseFixtures(data []byte) (*FixtureSet, error) {
	var set FixtureSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse store fixtures: %w", err)
	}
	for zip, stores := range set.Zips {
		for _, s := range stores {
			if s.ID == "" {
				return nil, fmt.Errorf("store fixture for zip %s has no id", zip)
			}
			if s.SupportsSNAP {
				return nil, fmt.Errorf("store fixture %s for zip %s cannot accept SNAP", s.ID, zip)
			}
		}
	}
	return &set, nil
}

// DemoFixtures returns the built-in demo supermarkets.
func DemoFixtures() *FixtureSet {
	set, err := ParseFixtures(demoStoresYAML)
	if err != nil {
		panic(err)
	}
	return set
}

// LoadFixtures reads fixtures from path, or the built-in set when path is empty.
func LoadFixtures(path string) (*FixtureSet, error) {
	if path == "" {
		return DemoFixtures(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store fixtures: %w", err)
	}
	return ParseFixtures(data)
}
