// Package runspec loads the YAML run specification consumed by the
// evaluation entry point: which dataset sizes to generate, with which
// scheme and seed, and which structures to judge.
package runspec

// RunSpec is the top-level YAML document.
type RunSpec struct {
	Sizes      []Size   `yaml:"sizes"`
	Scheme     string   `yaml:"scheme"`
	Seed       *uint64  `yaml:"seed"`
	DupRate    *float64 `yaml:"dup_rate"`
	FPRate     float64  `yaml:"fp_rate"`
	Structures []string `yaml:"structures"`
}

// Size is one dataset configuration. Queries defaults to 1% of Logins
// when omitted, matching the standard benchmark shape.
type Size struct {
	Logins  int `yaml:"logins"`
	Queries int `yaml:"queries"`
}

// SeedValue returns the configured seed or the default.
func (s *RunSpec) SeedValue() uint64 {
	if s.Seed == nil {
		return DefaultSeed
	}
	return *s.Seed
}

// DupRateValue returns the configured dup rate or the default.
func (s *RunSpec) DupRateValue() float64 {
	if s.DupRate == nil {
		return DefaultDupRate
	}
	return *s.DupRate
}
