package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/filterbench/filterbench/internal/harness"
	"github.com/filterbench/filterbench/internal/report"
	"github.com/filterbench/filterbench/internal/runspec"
)

func main() {
	cfg := parseFlags()
	ctx := context.Background()

	var (
		runCfg     harness.Config
		structures []string
		err        error
	)
	if cfg.SpecPath != "" {
		runCfg, structures, err = configFromSpec(cfg.SpecPath)
	} else {
		runCfg, structures, err = configFromFlags(cfg)
	}
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	adapters := make([]harness.Adapter, 0, len(structures))
	for _, name := range structures {
		a, err := harness.NewStructureAdapter(name, runCfg.FPRate)
		if err != nil {
			slog.Error("Invalid structure", "structure", name, "error", err)
			os.Exit(1)
		}
		adapters = append(adapters, a)
	}

	rr, err := harness.NewRunner(runCfg, adapters).Run(ctx)
	if err != nil {
		slog.Error("Evaluation failed", "error", err)
		os.Exit(1)
	}

	rpt := report.Generate(rr)
	report.WriteTable(rpt, os.Stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(rpt, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if failed := rr.Failed(); failed > 0 {
		slog.Error("Guarantees violated", "failed", failed, "total", len(rr.Results))
		os.Exit(1)
	}
}

func configFromSpec(path string) (harness.Config, []string, error) {
	rs, err := runspec.LoadFromFile(path)
	if err != nil {
		return harness.Config{}, nil, err
	}

	runCfg := harness.Config{
		Scheme:  rs.Scheme,
		Seed:    rs.SeedValue(),
		DupRate: rs.DupRateValue(),
		FPRate:  rs.FPRate,
	}
	for _, size := range rs.Sizes {
		runCfg.Sizes = append(runCfg.Sizes, harness.SizePair{Logins: size.Logins, Queries: size.Queries})
	}
	return runCfg, rs.Structures, nil
}

func configFromFlags(cfg cliConfig) (harness.Config, []string, error) {
	sizes, err := cfg.parseSizes()
	if err != nil {
		return harness.Config{}, nil, err
	}

	return harness.Config{
		Sizes:   sizes,
		Scheme:  cfg.Scheme,
		Seed:    cfg.Seed,
		DupRate: cfg.DupRate,
		FPRate:  cfg.FPRate,
	}, cfg.parseStructures(), nil
}
