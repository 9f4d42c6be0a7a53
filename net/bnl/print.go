package bnl

import "bytes"
import "strconv"

// String renders the network as a multi-line dump: one header line per
// layer, one line per neuron, with operator mnemonics.
func (f *Network) String() string {
	var b bytes.Buffer
	b.WriteString("network in=")
	b.WriteString(strconv.Itoa(f.inputLen))
	for i, l := range f.layers {
		b.WriteString("\nlayer ")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(" in=")
		b.WriteString(strconv.Itoa(l.InputLen()))
		b.WriteString(" neurons=")
		b.WriteString(strconv.Itoa(l.Len()))
		b.WriteByte('\n')
		b.WriteString(l.String())
	}
	return b.String()
}
