package main

import (
	"os"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v2"

	"github.com/zeebo/rng"
)

// configError is the class of battery file problems.
var configError = errs.Class("config")

// Battery describes a benchmark run.
type Battery struct {
	Seed       uint64   `yaml:"seed"`
	Draws      int      `yaml:"draws"`
	Batches    int      `yaml:"batches"`
	Algorithms []string `yaml:"algorithms"`
	Ops        []string `yaml:"ops"`
}

// BatteryFile is the layout of a YAML battery file.
type BatteryFile struct {
	Bench Battery `yaml:"bench"`
}

// defaultBattery times every algorithm on every op.
func defaultBattery() Battery {
	return Battery{
		Seed:       12345,
		Draws:      1 << 16,
		Batches:    32,
		Algorithms: rng.Names(),
		Ops:        opNames(),
	}
}

// ParseBatteryFile reads a YAML battery file. It supports relative and
// absolute paths and environment variables. Fields left out of the file
// keep their defaults.
func ParseBatteryFile(path string) (Battery, error) {
	if path == "" {
		return Battery{}, configError.New("no battery path specified")
	}

	contents, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return Battery{}, configError.Wrap(err)
	}

	file := BatteryFile{Bench: defaultBattery()}
	if err := yaml.Unmarshal(contents, &file); err != nil {
		return Battery{}, configError.Wrap(err)
	}
	return file.Bench, file.Bench.Validate()
}

// Validate checks that every named algorithm and op exists and that the
// counts are positive.
func (b Battery) Validate() error {
	if b.Draws <= 0 {
		return configError.New("draws must be positive: %d", b.Draws)
	}
	if b.Batches <= 0 {
		return configError.New("batches must be positive: %d", b.Batches)
	}
	for _, name := range b.Algorithms {
		if _, err := rng.Lookup(name, 0); err != nil {
			return configError.Wrap(err)
		}
	}
	for _, op := range b.Ops {
		if _, ok := ops[op]; !ok {
			return configError.New("unknown op %q", op)
		}
	}
	return nil
}
