// Package random provides the uniform randomness capability injected into
// bnl network construction.
package random

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/HarrisonTotty/bnl/boolop"
)

// Source produces the uniform draws consumed by randomized construction.
type Source interface {

	// Bool returns a uniformly distributed boolean.
	Bool() bool

	// Code returns a uniformly distributed operator code in [0, boolop.NumCodes).
	Code() boolop.Code
}

type source struct {
	rng  *rand.Rand
	coin distuv.Bernoulli
}

// New returns a seedable uniform Source. Two Sources built from the same
// seed produce identical draw sequences.
func New(seed uint64) Source {
	src := rand.NewSource(seed)
	return &source{
		rng:  rand.New(src),
		coin: distuv.Bernoulli{P: 0.5, Src: src},
	}
}

func (s *source) Bool() bool {
	return s.coin.Rand() != 0
}

func (s *source) Code() boolop.Code {
	return boolop.Code(s.rng.Intn(boolop.NumCodes))
}

type fixed struct {
	bools []bool
	codes []boolop.Code
	bi    int
	ci    int
}

// Fixed returns a scripted Source that replays bools and codes in order,
// cycling when a script runs out. An empty script yields false or
// boolop.False. Intended for deterministic tests.
func Fixed(bools []bool, codes []boolop.Code) Source {
	return &fixed{bools: bools, codes: codes}
}

func (f *fixed) Bool() bool {
	if len(f.bools) == 0 {
		return false
	}
	v := f.bools[f.bi%len(f.bools)]
	f.bi++
	return v
}

func (f *fixed) Code() boolop.Code {
	if len(f.codes) == 0 {
		return boolop.False
	}
	v := f.codes[f.ci%len(f.codes)]
	f.ci++
	return v
}
