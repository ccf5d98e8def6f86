package config

import (
	"reelquiz/internal/quiz"
	"reelquiz/internal/spec"
)

// Normalize fills in defaults for fields the config leaves unset.
func Normalize(cfg *spec.Config) {
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = DefaultDatasetPath
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = DefaultOutputPath
	}
	if cfg.Generator.Seed == 0 {
		cfg.Generator.Seed = DefaultSeed
	}
	if len(cfg.Generator.Attributes) == 0 {
		cfg.Generator.Attributes = quiz.AttributeNames()
	}
}
