// Package structures wraps the membership-testing structures under
// evaluation behind a single interface. The structures themselves are
// third-party implementations; this package only adapts them and tags
// each with the correctness guarantee its family offers.
package structures

import "fmt"

// Kind classifies the correctness guarantee of a structure family.
type Kind string

const (
	// KindExact structures answer membership with zero error.
	KindExact Kind = "exact"
	// KindNoFalseNegative structures may report absent entries as
	// present, but never the reverse.
	KindNoFalseNegative Kind = "probabilistic_no_false_negative"
	// KindApproximate structures may err in both directions.
	KindApproximate Kind = "probabilistic_approximate"
)

// Membership answers whether a username was added to the structure.
type Membership interface {
	Add(username string)
	Contains(username string) bool
}

// Config carries the sizing hints passed to structure constructors.
type Config struct {
	// Capacity is the expected number of entries.
	Capacity int
	// FPRate is the target false-positive rate for probabilistic
	// structures; exact structures ignore it.
	FPRate float64
}

// Structure names accepted by New.
const (
	NameHashSet      = "hashset"
	NameBloom        = "bloom"
	NameBlockedBloom = "blocked-bloom"
	NameCuckoo       = "cuckoo"
)

type entry struct {
	kind  Kind
	build func(Config) (Membership, error)
}

var registry = map[string]entry{
	NameHashSet: {kind: KindExact, build: func(cfg Config) (Membership, error) {
		return newHashSet(cfg.Capacity), nil
	}},
	NameBloom: {kind: KindNoFalseNegative, build: func(cfg Config) (Membership, error) {
		if err := checkFPRate(NameBloom, cfg.FPRate); err != nil {
			return nil, err
		}
		return newBloomFilter(cfg.Capacity, cfg.FPRate), nil
	}},
	NameBlockedBloom: {kind: KindNoFalseNegative, build: func(cfg Config) (Membership, error) {
		if err := checkFPRate(NameBlockedBloom, cfg.FPRate); err != nil {
			return nil, err
		}
		return newBlockedBloom(cfg.Capacity, cfg.FPRate), nil
	}},
	NameCuckoo: {kind: KindApproximate, build: func(cfg Config) (Membership, error) {
		return newCuckooFilter(cfg.Capacity), nil
	}},
}

// Names lists the supported structure names in a stable order.
func Names() []string {
	return []string{NameHashSet, NameBloom, NameBlockedBloom, NameCuckoo}
}

// KindOf reports the guarantee kind of the named structure without
// building it.
func KindOf(name string) (Kind, error) {
	e, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("unsupported structure %q (choose from %v)", name, Names())
	}
	return e.kind, nil
}

// New builds the named membership structure sized for cfg and returns
// it together with its kind. Exact structures ignore cfg.FPRate; the
// probabilistic ones require it in (0, 1).
func New(name string, cfg Config) (Membership, Kind, error) {
	e, ok := registry[name]
	if !ok {
		return nil, "", fmt.Errorf("unsupported structure %q (choose from %v)", name, Names())
	}
	if cfg.Capacity < 0 {
		return nil, "", fmt.Errorf("structure %q: capacity must be >= 0, got %d", name, cfg.Capacity)
	}

	m, err := e.build(cfg)
	if err != nil {
		return nil, "", err
	}
	return m, e.kind, nil
}

func checkFPRate(name string, fpRate float64) error {
	if fpRate <= 0 || fpRate >= 1 {
		return fmt.Errorf("structure %q: fp_rate must be within (0, 1), got %v", name, fpRate)
	}
	return nil
}
