package weights

// VarKind classifies a matrix column by the integrality of its variable.
type VarKind int

const (
	// Binary marks a {0,1} variable.
	Binary VarKind = iota
	// Integer marks a general integer variable.
	Integer
	// ImpliedInteger marks a continuous variable with implied integrality.
	ImpliedInteger
	// Continuous marks a continuous variable without implied integrality.
	Continuous
	// Unknown marks a column whose kind could not be classified.
	Unknown
)

// String returns a short human-readable kind name.
func (k VarKind) String() string {
	switch k {
	case Binary:
		return "binary"
	case Integer:
		return "integer"
	case ImpliedInteger:
		return "implied-integer"
	case Continuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// Default weights - single source of truth for the zero-option Config.
const (
	// DefaultBinaryWeight is the node weight of a binary variable column.
	DefaultBinaryWeight = 1
	// DefaultIntegerWeight is the node weight of a general integer column.
	DefaultIntegerWeight = 1
	// DefaultImpliedWeight is the node weight of an implied-integer column.
	DefaultImpliedWeight = 1
	// DefaultContinuousWeight is the node weight of a continuous column.
	DefaultContinuousWeight = 1
	// DefaultVariableWeight is the fallback weight for unclassified columns.
	DefaultVariableWeight = 1
	// DefaultConstraintWeight is the node weight of every row.
	DefaultConstraintWeight = 1
)

// Config is the immutable weight table copied by every builder.
// The zero value is NOT ready to use; construct via New.
type Config struct {
	binary     int // weight of Binary columns
	integer    int // weight of Integer columns
	implied    int // weight of ImpliedInteger columns
	continuous int // weight of Continuous columns
	variable   int // fallback weight for Unknown columns
	constraint int // weight of every row
}

// Option mutates a Config during New. Last writer wins.
type Option func(*Config)

// WithBinaryWeight sets the weight of binary variable columns.
func WithBinaryWeight(w int) Option { return func(c *Config) { c.binary = w } }

// WithIntegerWeight sets the weight of general integer columns.
func WithIntegerWeight(w int) Option { return func(c *Config) { c.integer = w } }

// WithImpliedWeight sets the weight of implied-integer columns.
func WithImpliedWeight(w int) Option { return func(c *Config) { c.implied = w } }

// WithContinuousWeight sets the weight of continuous columns.
func WithContinuousWeight(w int) Option { return func(c *Config) { c.continuous = w } }

// WithVariableWeight sets the fallback weight for unclassified columns.
func WithVariableWeight(w int) Option { return func(c *Config) { c.variable = w } }

// WithConstraintWeight sets the weight of every row.
func WithConstraintWeight(w int) Option { return func(c *Config) { c.constraint = w } }

// New resolves options against the documented defaults and returns the
// effective Config. Options apply in order; the result is a plain value
// safe to copy and share.
//
// Complexity: O(len(opts)).
func New(opts ...Option) Config {
	c := Config{
		binary:     DefaultBinaryWeight,
		integer:    DefaultIntegerWeight,
		implied:    DefaultImpliedWeight,
		continuous: DefaultContinuousWeight,
		variable:   DefaultVariableWeight,
		constraint: DefaultConstraintWeight,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Constraint returns the configured row weight. Constant for all rows.
func (c Config) Constraint() int { return c.constraint }

// Variable returns the configured weight for a column of kind k,
// falling back to the generic variable weight for unrecognized kinds.
// Pure lookup; never fails.
func (c Config) Variable(k VarKind) int {
	switch k {
	case Binary:
		return c.binary
	case Integer:
		return c.integer
	case ImpliedInteger:
		return c.implied
	case Continuous:
		return c.continuous
	default:
		return c.variable
	}
}
