package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/filterbench/filterbench/internal/namegen"
)

type cliConfig struct {
	Sizes   string
	Queries int
	DupRate float64
	Seed    uint64
	Scheme  string
	OutDir  string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Sizes, "sizes", "10000,100000,1000000,10000000,100000000", "Login counts to generate, comma-separated")
	flag.IntVar(&cfg.Queries, "queries", 0, "Queries per dataset (0 = 1% of logins)")
	flag.Float64Var(&cfg.DupRate, "dup-rate", 0.5, "Target fraction of queries drawn from the login set")
	flag.Uint64Var(&cfg.Seed, "seed", 42, "Seed for deterministic generation")
	flag.StringVar(&cfg.Scheme, "scheme", namegen.SchemeMixed, "Naming scheme: "+strings.Join(namegen.Schemes(), ", "))
	flag.StringVar(&cfg.OutDir, "out", ".", "Output directory for dataset files")

	flag.Parse()
	return cfg
}

func (c cliConfig) parseSizes() ([]int, error) {
	parts := strings.Split(c.Sizes, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", p, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("size must be >= 0, got %d", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
