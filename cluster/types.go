package cluster

import "errors"

// Noise is the label of nodes no cluster claimed.
const Noise = -1

// Sentinel errors for clustering operations.
var (
	// ErrBadEps indicates a negative DBSCAN radius.
	ErrBadEps = errors.New("cluster: eps must be non-negative")
	// ErrBadMinPts indicates a minimum point count below one.
	ErrBadMinPts = errors.New("cluster: minPts must be at least 1")
	// ErrNoClusterSupport indicates MCL was asked to run on a backend
	// without the clustering capability.
	ErrNoClusterSupport = errors.New("cluster: backend has no clustering support")
)

// Default MCL parameters.
const (
	// DefaultMCLExpand is the matrix power of the expansion step.
	DefaultMCLExpand = 2
	// DefaultMCLInflate is the element-wise power of the inflation step.
	DefaultMCLInflate = 2.0
	// DefaultMCLMaxIters bounds the expand/inflate loop.
	DefaultMCLMaxIters = 25
	// DefaultMCLTol is the entry-change threshold declaring convergence.
	DefaultMCLTol = 1e-6
)

// MCLOptions tunes the Markov clustering loop.
type MCLOptions struct {
	// ExpandFactor is the matrix power applied per iteration.
	ExpandFactor int
	// InflateFactor is the element-wise power applied per iteration.
	InflateFactor float64
	// MaxIters bounds the iteration count.
	MaxIters int
	// Tol declares convergence once the largest entry change drops
	// below it.
	Tol float64
}

// DefaultMCLOptions returns the documented MCL defaults.
func DefaultMCLOptions() MCLOptions {
	return MCLOptions{
		ExpandFactor:  DefaultMCLExpand,
		InflateFactor: DefaultMCLInflate,
		MaxIters:      DefaultMCLMaxIters,
		Tol:           DefaultMCLTol,
	}
}
