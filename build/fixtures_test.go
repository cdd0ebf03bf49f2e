package build_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mipstruct/dwgraph/build"
	"github.com/mipstruct/dwgraph/weights"
)

// chainMatrix is the smallest overlapping system: three binary
// variables, two constraints sharing x1.
//
//	c0: x0 + x1
//	c1: x1 + x2
func chainMatrix(t *testing.T) *build.DenseMatrix {
	t.Helper()
	m := build.NewDenseMatrix()
	x0 := m.AddVariable("x0", weights.Binary)
	x1 := m.AddVariable("x1", weights.Binary)
	x2 := m.AddVariable("x2", weights.Binary)
	_, err := m.AddConstraint("c0", x0, x1)
	require.NoError(t, err)
	_, err = m.AddConstraint("c1", x1, x2)
	require.NoError(t, err)

	return m
}

// blockMatrix is perfectly separable: two constraints over disjoint
// variable pairs.
//
//	c0: x0 + x1
//	c1: x2 + x3
func blockMatrix(t *testing.T) *build.DenseMatrix {
	t.Helper()
	m := build.NewDenseMatrix()
	x0 := m.AddVariable("x0", weights.Binary)
	x1 := m.AddVariable("x1", weights.Binary)
	x2 := m.AddVariable("x2", weights.Continuous)
	x3 := m.AddVariable("x3", weights.Continuous)
	_, err := m.AddConstraint("c0", x0, x1)
	require.NoError(t, err)
	_, err = m.AddConstraint("c1", x2, x3)
	require.NoError(t, err)

	return m
}
