package config

import (
	"reelquiz/internal/spec"
)

// validConfig returns a minimal config used by validation tests.
func validConfig() spec.Config {
	return spec.Config{
		Version: 1,
		Dataset: spec.DatasetConfig{
			Path: "data/movies.csv",
		},
		Output: spec.OutputConfig{
			Path: "data/questions.csv",
		},
		Generator: spec.GeneratorConfig{
			Seed:       42,
			Count:      0,
			Attributes: []string{"year", "actor", "genre", "director"},
		},
	}
}
