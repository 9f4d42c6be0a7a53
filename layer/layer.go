// Package layer implements a bnl layer: an ordered collection of neurons
// that all fold the same input vector, each producing one output bit.
package layer

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"

	"github.com/HarrisonTotty/bnl/neuron"
	"github.com/HarrisonTotty/bnl/random"
)

// ErrDimensionMismatch signals an input vector whose length does not match
// the declared input length. Surfaced to the caller of Apply, never
// recovered internally.
var ErrDimensionMismatch = errors.New("input vector length does not match declared input length")

// Layer is immutable after construction.
type Layer struct {
	neurons  []*neuron.Neuron
	inputLen int
}

// New creates a randomized layer of numNeurons neurons, each folding input
// vectors of length inputLen. Neurons are constructed in order, so the draw
// sequence consumed from src is reproducible.
func New(inputLen, numNeurons int, src random.Source) (*Layer, error) {
	if numNeurons < 0 {
		return nil, errors.Errorf("negative neuron count %d", numNeurons)
	}
	ns := make([]*neuron.Neuron, numNeurons)
	for i := range ns {
		n, err := neuron.New(inputLen, src)
		if err != nil {
			return nil, errors.Wrapf(err, "neuron %d", i)
		}
		ns[i] = n
	}
	return &Layer{neurons: ns, inputLen: inputLen}, nil
}

// MustNew is like New but panics on error.
func MustNew(inputLen, numNeurons int, src random.Source) *Layer {
	l, err := New(inputLen, numNeurons, src)
	if err != nil {
		panic(err.Error())
	}
	return l
}

// Apply evaluates every neuron independently against the same input vector
// and collects one bit per neuron, in neuron order.
func (l *Layer) Apply(input []bool) ([]bool, error) {
	if len(input) != l.inputLen {
		return nil, errors.Wrapf(ErrDimensionMismatch, "layer expects %d inputs, got %d", l.inputLen, len(input))
	}
	out := make([]bool, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Apply(input)
	}
	return out, nil
}

// InputLen returns the input vector length every neuron in the layer folds.
func (l *Layer) InputLen() int {
	return l.inputLen
}

// Len returns the number of neurons, which is also the output vector length.
func (l *Layer) Len() int {
	return len(l.neurons)
}

// Neuron returns the i-th neuron.
func (l *Layer) Neuron(i int) *neuron.Neuron {
	return l.neurons[i]
}

// String renders the layer one neuron per line.
func (l *Layer) String() string {
	var b bytes.Buffer
	for i, n := range l.neurons {
		if i != 0 {
			b.WriteByte('\n')
		}
		b.WriteString("  neuron ")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(": ")
		b.WriteString(n.String())
	}
	return b.String()
}
