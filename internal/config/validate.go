package config

import (
	"fmt"
	"strings"

	"reelquiz/internal/dataset"
	"reelquiz/internal/quiz"
	"reelquiz/internal/spec"
)

// Validate checks a config for correctness.
func Validate(cfg *spec.Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if strings.TrimSpace(cfg.Dataset.Path) == "" {
		collector.add("dataset.path", "is required")
	}
	if strings.TrimSpace(cfg.Output.Path) == "" {
		collector.add("output.path", "is required")
	}
	if _, err := dataset.CompileFilter(cfg.Dataset.Filter); err != nil {
		collector.add("dataset.filter", err.Error())
	}

	if cfg.Generator.Seed < 0 {
		collector.add("generator.seed", "must not be negative")
	}
	if cfg.Generator.Count < 0 {
		collector.add("generator.count", "must not be negative")
	}
	validateAttributes(cfg, collector.add)

	return collector.result()
}

// validateAttributes flags unknown and duplicate question attributes.
func validateAttributes(cfg *spec.Config, add issueAdder) {
	seen := make(map[string]bool, len(cfg.Generator.Attributes))
	for i, name := range cfg.Generator.Attributes {
		field := fmt.Sprintf("generator.attributes[%d]", i)
		if _, err := quiz.ParseAttribute(name); err != nil {
			add(field, err.Error())
			continue
		}
		if seen[name] {
			add(field, fmt.Sprintf("duplicate attribute %q", name))
			continue
		}
		seen[name] = true
	}
}
