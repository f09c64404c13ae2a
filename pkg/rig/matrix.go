package rig

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/daexport/pkg/collada"
)

// MatrixSize is the number of values in a serialized 4x4 matrix.
const MatrixSize = 16

// FromRowMajor builds a matrix from 16 values listed row by row, which is
// how COLLADA and the ASCII files store them.
func FromRowMajor(v []float64) mgl64.Mat4 {
	return mgl64.Mat4FromRows(
		mgl64.Vec4{v[0], v[1], v[2], v[3]},
		mgl64.Vec4{v[4], v[5], v[6], v[7]},
		mgl64.Vec4{v[8], v[9], v[10], v[11]},
		mgl64.Vec4{v[12], v[13], v[14], v[15]},
	)
}

// RowMajor returns the matrix values row by row.
func RowMajor(m mgl64.Mat4) [MatrixSize]float64 {
	var out [MatrixSize]float64
	for r := 0; r < 4; r++ {
		row := m.Row(r)
		copy(out[r*4:], row[:])
	}
	return out
}

// parseMatrix reads a single row-major matrix from an element's text and
// returns it with its tokens. An empty element yields the identity and no
// tokens.
func parseMatrix(n *collada.Node) (mgl64.Mat4, []string, error) {
	values, err := n.Floats()
	if err != nil {
		return mgl64.Mat4{}, nil, err
	}
	if len(values) == 0 {
		return mgl64.Ident4(), nil, nil
	}
	if len(values) != MatrixSize {
		return mgl64.Mat4{}, nil, fmt.Errorf("%w: matrix has %d values, want %d", collada.ErrMalformedArray, len(values), MatrixSize)
	}
	return FromRowMajor(values), n.Tokens(), nil
}

// readMatrices reads a float array holding a stream of row-major matrices.
func readMatrices(n *collada.Node) ([]mgl64.Mat4, Text, error) {
	rows, text, err := readRows(n, MatrixSize)
	if err != nil {
		return nil, nil, err
	}
	out := make([]mgl64.Mat4, len(rows))
	for i, r := range rows {
		out[i] = FromRowMajor(r)
	}
	return out, text, nil
}
