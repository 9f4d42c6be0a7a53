// Package bnl implements the bnl network: an ordered chain of boolean-logic
// layers, each consuming the previous layer's output vector.
package bnl

import (
	"github.com/pkg/errors"

	"github.com/HarrisonTotty/bnl/layer"
	"github.com/HarrisonTotty/bnl/random"
)

// Network is immutable after construction, so concurrent Apply calls with
// distinct input vectors are safe.
type Network struct {
	layers   []*layer.Layer
	inputLen int
}

// New creates a randomized network. layerLengths[i] is the neuron count of
// layer i; layer 0 folds vectors of length inputLen, every later layer folds
// the previous layer's output.
func New(inputLen int, layerLengths []int, src random.Source) (*Network, error) {
	ls := make([]*layer.Layer, len(layerLengths))
	in := inputLen
	for i, n := range layerLengths {
		l, err := layer.New(in, n, src)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
		ls[i] = l
		in = n
	}
	return &Network{layers: ls, inputLen: inputLen}, nil
}

// MustNew is like New but panics on error.
func MustNew(inputLen int, layerLengths []int, src random.Source) *Network {
	f, err := New(inputLen, layerLengths, src)
	if err != nil {
		panic(err.Error())
	}
	return f
}

// Apply threads the input vector through every layer in order and returns
// the last layer's output. A zero-layer network returns a copy of its input.
func (f *Network) Apply(input []bool) ([]bool, error) {
	if len(input) != f.inputLen {
		return nil, errors.Wrapf(layer.ErrDimensionMismatch, "network expects %d inputs, got %d", f.inputLen, len(input))
	}
	res := make([]bool, len(input))
	copy(res, input)
	for i, l := range f.layers {
		var err error
		res, err = l.Apply(res)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
	}
	return res, nil
}

// InputLen returns the input vector length the first layer folds.
func (f *Network) InputLen() int {
	return f.inputLen
}

// OutputLen returns the output vector length: the last layer's neuron count,
// or the input length for a zero-layer network.
func (f *Network) OutputLen() int {
	if len(f.layers) == 0 {
		return f.inputLen
	}
	return f.layers[len(f.layers)-1].Len()
}

// LenLayers returns the number of layers.
func (f *Network) LenLayers() int {
	return len(f.layers)
}

// Layer returns the i-th layer.
func (f *Network) Layer(i int) *layer.Layer {
	return f.layers[i]
}
