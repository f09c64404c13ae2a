package rig

import "github.com/Faultbox/daexport/pkg/collada"

// Text is the source text of a numeric array split into rows. Values the
// exporters pass through unchanged are written from it, so "1.000000" stays
// "1.000000" instead of being reformatted.
type Text [][]string

// Row returns row i, or nil if there is none.
func (t Text) Row(i int) []string {
	if i < 0 || i >= len(t) {
		return nil
	}
	return t[i]
}

// readRows parses the float array n and splits both its values and its
// tokens into rows of the given width.
func readRows(n *collada.Node, width int) ([][]float64, Text, error) {
	values, err := n.Floats()
	if err != nil {
		return nil, nil, err
	}
	rows, err := collada.Reshape(values, width)
	if err != nil {
		return nil, nil, err
	}
	text, err := collada.Reshape(n.Tokens(), width)
	if err != nil {
		return nil, nil, err
	}
	return rows, text, nil
}
