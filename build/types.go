package build

import (
	"errors"
	"fmt"

	"github.com/mipstruct/dwgraph/weights"
)

// Sentinel errors for builder operations.
var (
	// ErrConsIndex indicates a constraint index outside [0, NConss).
	ErrConsIndex = errors.New("build: constraint index out of range")
	// ErrVarIndex indicates a variable index outside [0, NVars).
	ErrVarIndex = errors.New("build: variable index out of range")
	// ErrBuilt indicates a second FromMatrix call on the same builder.
	ErrBuilt = errors.New("build: builder already populated")
	// ErrNotBuilt indicates a query before FromMatrix.
	ErrNotBuilt = errors.New("build: builder has no graph yet")
	// ErrIncompletePartition indicates DecompFromPartition ran while some
	// node still carries the unassigned block.
	ErrIncompletePartition = errors.New("build: partition leaves nodes unassigned")
)

// Matrix is the builders' only view of the enclosing solver: opaque
// row/column handles addressed by dense indices, per-constraint variable
// lists and per-variable kinds. Any embedding system satisfying it can
// use the builders unchanged.
//
// ConsVars reports presence, not numeric values: every listed variable
// is considered incident no matter its coefficient.
type Matrix interface {
	// NConss returns the number of constraints (rows).
	NConss() int
	// NVars returns the number of variables (columns).
	NVars() int
	// ConsVars returns the indices of the variables appearing in
	// constraint c. The slice must not be mutated by the caller.
	ConsVars(c int) []int
	// VarKind classifies variable v for the weight table.
	VarKind(v int) weights.VarKind
	// ConsName returns a diagnostic name for constraint c.
	ConsName(c int) string
	// VarName returns a diagnostic name for variable v.
	VarName(v int) string
}

// DenseMatrix is the in-memory Matrix used by tests and the CLI driver.
type DenseMatrix struct {
	consVars  [][]int
	consNames []string
	kinds     []weights.VarKind
	varNames  []string
}

// interface conformance
var _ Matrix = (*DenseMatrix)(nil)

// NewDenseMatrix allocates an empty matrix.
func NewDenseMatrix() *DenseMatrix { return &DenseMatrix{} }

// AddVariable appends a column with the given kind and returns its index.
func (m *DenseMatrix) AddVariable(name string, kind weights.VarKind) int {
	m.kinds = append(m.kinds, kind)
	m.varNames = append(m.varNames, name)

	return len(m.kinds) - 1
}

// AddConstraint appends a row listing the given variable indices and
// returns its index. Indices must refer to existing variables.
func (m *DenseMatrix) AddConstraint(name string, vars ...int) (int, error) {
	for _, v := range vars {
		if v < 0 || v >= len(m.kinds) {
			return 0, fmt.Errorf("%w: %d in constraint %q", ErrVarIndex, v, name)
		}
	}
	row := make([]int, len(vars))
	copy(row, vars)
	m.consVars = append(m.consVars, row)
	m.consNames = append(m.consNames, name)

	return len(m.consVars) - 1, nil
}

// NConss returns the number of rows.
func (m *DenseMatrix) NConss() int { return len(m.consVars) }

// NVars returns the number of columns.
func (m *DenseMatrix) NVars() int { return len(m.kinds) }

// ConsVars returns the variable indices of row c.
func (m *DenseMatrix) ConsVars(c int) []int { return m.consVars[c] }

// VarKind returns the kind of column v.
func (m *DenseMatrix) VarKind(v int) weights.VarKind { return m.kinds[v] }

// ConsName returns the name of row c.
func (m *DenseMatrix) ConsName(c int) string { return m.consNames[c] }

// VarName returns the name of column v.
func (m *DenseMatrix) VarName(v int) string { return m.varNames[v] }
