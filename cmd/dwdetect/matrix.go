package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mipstruct/dwgraph/build"
	"github.com/mipstruct/dwgraph/weights"
)

// readMatrix parses the driver's line-based matrix format:
//
//	# comment
//	var <name> <binary|integer|implied|continuous>
//	cons <name> <var-name> [<var-name> ...]
//
// Variables must be declared before the constraints that use them.
// Only incidence is recorded; coefficient values have no place in the
// format because the builders never look at them.
func readMatrix(path string) (*build.DenseMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open matrix file: %w", err)
	}
	defer f.Close()

	m := build.NewDenseMatrix()
	varIdx := make(map[string]int)
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "var":
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: want 'var <name> <kind>'", line)
			}
			name := fields[1]
			if _, dup := varIdx[name]; dup {
				return nil, fmt.Errorf("line %d: duplicate variable %q", line, name)
			}
			varIdx[name] = m.AddVariable(name, parseKind(fields[2]))
		case "cons":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: want 'cons <name> [<var> ...]'", line)
			}
			vars := make([]int, 0, len(fields)-2)
			for _, vn := range fields[2:] {
				v, ok := varIdx[vn]
				if !ok {
					return nil, fmt.Errorf("line %d: unknown variable %q", line, vn)
				}
				vars = append(vars, v)
			}
			if _, err = m.AddConstraint(fields[1], vars...); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown directive %q", line, fields[0])
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("reading matrix file: %w", err)
	}

	return m, nil
}

// parseKind maps the format's kind names onto the weight table's kinds.
func parseKind(s string) weights.VarKind {
	switch strings.ToLower(s) {
	case "binary", "bin":
		return weights.Binary
	case "integer", "int":
		return weights.Integer
	case "implied", "impl":
		return weights.ImpliedInteger
	case "continuous", "cont":
		return weights.Continuous
	default:
		return weights.Unknown
	}
}
