// Package neuron implements the bnl neuron, the smallest evaluable element
// of a network. A neuron folds an input vector into one boolean through a
// chain of per-position operator codes, then mixes in its bias through one
// more operator.
package neuron

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"

	"github.com/HarrisonTotty/bnl/boolop"
	"github.com/HarrisonTotty/bnl/random"
)

// ErrInvalidInputLength signals an input vector too short to fold, or one
// that does not match the neuron's combinator chain. Evaluation panics with
// it: such a vector means the surrounding layer was constructed
// inconsistently, which is not recoverable at evaluation time.
var ErrInvalidInputLength = errors.New("invalid neuron input length")

// ErrInvalidCode signals an operator code outside [0, boolop.NumCodes).
var ErrInvalidCode = errors.New("operator code out of range")

// Neuron is immutable after construction.
type Neuron struct {
	bias             bool
	inputCombinators []boolop.Code
	resultCombinator boolop.Code
}

// New creates a randomized neuron for input vectors of length inputLen.
// It draws inputLen-1 input combinators, the bias, and the result combinator
// from src, in that order. inputLen must be at least 2.
func New(inputLen int, src random.Source) (*Neuron, error) {
	if inputLen < 2 {
		return nil, errors.Wrapf(ErrInvalidInputLength, "input length %d", inputLen)
	}
	ic := make([]boolop.Code, inputLen-1)
	for i := range ic {
		ic[i] = src.Code()
	}
	return &Neuron{
		bias:             src.Bool(),
		inputCombinators: ic,
		resultCombinator: src.Code(),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(inputLen int, src random.Source) *Neuron {
	n, err := New(inputLen, src)
	if err != nil {
		panic(err.Error())
	}
	return n
}

// FromParts assembles a neuron from explicit parameters. At least one input
// combinator is required and every combinator must be a valid operator code,
// so that the constant-true fallback of boolop.Compute stays unreachable
// through constructed neurons.
func FromParts(bias bool, inputCombinators []boolop.Code, resultCombinator boolop.Code) (*Neuron, error) {
	if len(inputCombinators) == 0 {
		return nil, errors.Wrap(ErrInvalidInputLength, "no input combinators")
	}
	for i, c := range inputCombinators {
		if !c.Valid() {
			return nil, errors.Wrapf(ErrInvalidCode, "input combinator %d is %d", i, c)
		}
	}
	if !resultCombinator.Valid() {
		return nil, errors.Wrapf(ErrInvalidCode, "result combinator is %d", resultCombinator)
	}
	ic := make([]boolop.Code, len(inputCombinators))
	copy(ic, inputCombinators)
	return &Neuron{bias: bias, inputCombinators: ic, resultCombinator: resultCombinator}, nil
}

// InputLen returns the input vector length this neuron folds.
func (n *Neuron) InputLen() int {
	return len(n.inputCombinators) + 1
}

// Bias returns the neuron's bias bit.
func (n *Neuron) Bias() bool {
	return n.bias
}

// InputCombinators returns a copy of the input combinator chain.
func (n *Neuron) InputCombinators() []boolop.Code {
	ic := make([]boolop.Code, len(n.inputCombinators))
	copy(ic, n.inputCombinators)
	return ic
}

// ResultCombinator returns the operator combining the folded input with the
// bias.
func (n *Neuron) ResultCombinator() boolop.Code {
	return n.resultCombinator
}

// Apply folds input and mixes in the bias.
func (n *Neuron) Apply(input []bool) bool {
	return n.ApplyResult(n.ApplyInput(input))
}

// ApplyInput folds the input vector right to left: the combinator at
// position i combines input[i] with the already-folded result of everything
// to its right. Panics with ErrInvalidInputLength when the input does not
// match the neuron's input length.
func (n *Neuron) ApplyInput(input []bool) bool {
	if len(input) < 2 || len(input) != n.InputLen() {
		panic(errors.Wrapf(ErrInvalidInputLength, "got %d, want %d", len(input), n.InputLen()))
	}
	last := len(input) - 1
	acc := boolop.Compute(input[last-1], input[last], n.inputCombinators[last-1])
	for i := last - 2; i >= 0; i-- {
		acc = boolop.Compute(input[i], acc, n.inputCombinators[i])
	}
	return acc
}

// ApplyResult combines an already-folded bit with the bias through the
// result combinator.
func (n *Neuron) ApplyResult(folded bool) bool {
	return boolop.Compute(folded, n.bias, n.resultCombinator)
}

// String renders the combinator chain, bias, and result combinator using
// operator mnemonics.
func (n *Neuron) String() string {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, c := range n.inputCombinators {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteString("] bias=")
	b.WriteString(strconv.FormatBool(n.bias))
	b.WriteByte(' ')
	b.WriteString(n.resultCombinator.String())
	return b.String()
}
