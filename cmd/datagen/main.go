package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/filterbench/filterbench/internal/csvio"
	"github.com/filterbench/filterbench/internal/dataset"
	"github.com/filterbench/filterbench/pkg/config/env"
)

func main() {
	cfg := parseFlags()

	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/datagen/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	sizes, err := cfg.parseSizes()
	if err != nil {
		slog.Error("Invalid sizes", "error", err)
		os.Exit(1)
	}

	for _, n := range sizes {
		q := cfg.Queries
		if q == 0 {
			q = n / 100
		}
		if err := writeDataset(n, q, cfg); err != nil {
			slog.Error("Dataset generation failed", "logins", n, "error", err)
			os.Exit(1)
		}
	}
}

func writeDataset(n, q int, cfg cliConfig) error {
	start := time.Now()

	s, err := dataset.NewStream(n, cfg.Scheme, cfg.Seed)
	if err != nil {
		return err
	}

	loginPath := filepath.Join(cfg.OutDir, fmt.Sprintf("logins_%d.csv", n))
	if err := writeLogins(loginPath, s); err != nil {
		return err
	}

	// Present queries sample the stream by index, so even the largest
	// login sets are never held in memory.
	s.Reset()
	qs, err := dataset.GenerateQueriesStream(s, q, cfg.DupRate, dataset.NewRNG(cfg.Seed))
	if err != nil {
		return err
	}

	queryPath := filepath.Join(cfg.OutDir, fmt.Sprintf("queries_%d.csv", q))
	if err := csvio.WriteQueriesFile(queryPath, qs); err != nil {
		return err
	}

	slog.Info("Dataset written",
		"logins", humanize.Comma(int64(n)),
		"queries", humanize.Comma(int64(q)),
		"login_file", loginPath,
		"query_file", queryPath,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

func writeLogins(path string, s *dataset.Stream) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	bar := progressbar.DefaultBytes(-1, filepath.Base(path))
	if _, err := csvio.WriteLoginStream(io.MultiWriter(f, bar), s); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	bar.Finish()

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
