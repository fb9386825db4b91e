package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/filterbench/filterbench/internal/harness"
	"github.com/filterbench/filterbench/internal/namegen"
	"github.com/filterbench/filterbench/internal/structures"
)

type cliConfig struct {
	SpecPath   string
	Sizes      string
	Scheme     string
	Seed       uint64
	DupRate    float64
	FPRate     float64
	Structures string
	Output     string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SpecPath, "spec", "", "Path to run spec YAML (overrides the quick-mode flags)")
	flag.StringVar(&cfg.Sizes, "sizes", "10000:100", "Dataset sizes as logins:queries pairs, comma-separated")
	flag.StringVar(&cfg.Scheme, "scheme", namegen.SchemeMixed, "Naming scheme: "+strings.Join(namegen.Schemes(), ", "))
	flag.Uint64Var(&cfg.Seed, "seed", 42, "Seed for deterministic generation")
	flag.Float64Var(&cfg.DupRate, "dup-rate", 0.5, "Target fraction of queries drawn from the login set")
	flag.Float64Var(&cfg.FPRate, "fp-rate", 0.01, "Target false-positive rate for probabilistic structures")
	flag.StringVar(&cfg.Structures, "structures", strings.Join(structures.Names(), ","), "Structures to evaluate, comma-separated")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")

	flag.Parse()
	return cfg
}

func (c cliConfig) parseSizes() ([]harness.SizePair, error) {
	parts := strings.Split(c.Sizes, ",")
	pairs := make([]harness.SizePair, 0, len(parts))
	for _, p := range parts {
		logins, queries, ok := strings.Cut(strings.TrimSpace(p), ":")
		if !ok {
			return nil, fmt.Errorf("invalid size %q, want logins:queries", p)
		}
		n, err := strconv.Atoi(logins)
		if err != nil {
			return nil, fmt.Errorf("invalid login count %q: %w", logins, err)
		}
		q, err := strconv.Atoi(queries)
		if err != nil {
			return nil, fmt.Errorf("invalid query count %q: %w", queries, err)
		}
		if n < 0 || q < 0 {
			return nil, fmt.Errorf("size %q must be non-negative", p)
		}
		pairs = append(pairs, harness.SizePair{Logins: n, Queries: q})
	}
	return pairs, nil
}

func (c cliConfig) parseStructures() []string {
	parts := strings.Split(c.Structures, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}
