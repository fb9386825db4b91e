package runspec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/filterbench/filterbench/internal/namegen"
	"github.com/filterbench/filterbench/internal/structures"
)

// Defaults applied to omitted fields, matching the standard benchmark
// configuration.
const (
	DefaultScheme  = namegen.SchemeMixed
	DefaultSeed    = uint64(42)
	DefaultDupRate = 0.5
	DefaultFPRate  = 0.01
)

func LoadFromFile(path string) (*RunSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run spec: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*RunSpec, error) {
	var s RunSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse run spec YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func validate(s *RunSpec) error {
	if len(s.Sizes) == 0 {
		return fmt.Errorf("run spec has no sizes")
	}
	for i := range s.Sizes {
		size := &s.Sizes[i]
		if size.Logins < 0 {
			return fmt.Errorf("size at index %d has negative logins", i)
		}
		if size.Queries < 0 {
			return fmt.Errorf("size at index %d has negative queries", i)
		}
		if size.Queries == 0 {
			size.Queries = size.Logins / 100
		}
	}

	if s.Scheme == "" {
		s.Scheme = DefaultScheme
	}
	if _, err := namegen.Lookup(s.Scheme); err != nil {
		return err
	}

	if dup := s.DupRateValue(); dup < 0 || dup > 1 {
		return fmt.Errorf("dup_rate must be within [0, 1], got %v", dup)
	}

	if s.FPRate == 0 {
		s.FPRate = DefaultFPRate
	}
	if s.FPRate <= 0 || s.FPRate >= 1 {
		return fmt.Errorf("fp_rate must be within (0, 1), got %v", s.FPRate)
	}

	if len(s.Structures) == 0 {
		s.Structures = structures.Names()
	}
	for _, name := range s.Structures {
		if _, err := structures.KindOf(name); err != nil {
			return err
		}
	}

	return nil
}
