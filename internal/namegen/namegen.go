// Package namegen derives synthetic usernames from an index and a seed.
// Every scheme is a pure function: identical (index, seed) always yields
// the identical string, so datasets can be regenerated or streamed twice
// without storing them.
package namegen

import (
	"errors"
	"fmt"
)

// Scheme names accepted by Lookup and Name.
const (
	SchemeSequential = "sequential"
	SchemeAdjNoun    = "adjnoun"
	SchemeRandomish  = "randomish"
	SchemeMixed      = "mixed"
)

// ErrUnknownScheme is returned for a scheme name outside Schemes().
var ErrUnknownScheme = errors.New("unknown scheme")

// Func derives the username at index i. Schemes that do not use the seed
// ignore it.
type Func func(i int, seed uint64) string

var schemes = map[string]Func{
	SchemeSequential: func(i int, _ uint64) string { return SequentialName(i) },
	SchemeAdjNoun:    func(i int, _ uint64) string { return AdjNounName(i) },
	SchemeRandomish:  RandomishName,
	SchemeMixed:      MixedName,
}

// Lookup returns the naming function registered under scheme.
func Lookup(scheme string) (Func, error) {
	fn, ok := schemes[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q (choose from %v)", ErrUnknownScheme, scheme, Schemes())
	}
	return fn, nil
}

// Name derives the username at index i under the named scheme.
func Name(scheme string, i int, seed uint64) (string, error) {
	fn, err := Lookup(scheme)
	if err != nil {
		return "", err
	}
	return fn(i, seed), nil
}

// Schemes lists the supported scheme names in a stable order.
func Schemes() []string {
	return []string{SchemeSequential, SchemeAdjNoun, SchemeRandomish, SchemeMixed}
}
