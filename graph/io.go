package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteTo emits the adjacency-list text format consumed by external
// partitioners: a header line "<nNodes> <nEdges>" (node count includes
// declared padding), then one line per real node listing the node's
// weight (when requested) followed by 1-based neighbor indices, then
// one blank line per padding node.
//
// Requires a flushed graph; neighbor enumeration fails otherwise.
func (g *Graph[B]) WriteTo(w io.Writer, o WriteOptions) error {
	bw := bufio.NewWriter(w)
	n := g.backend.NNodes()
	if _, err := fmt.Fprintf(bw, "%d %d\n", n+g.nDummy, g.backend.NEdges()); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		nbrs, err := g.backend.Neighbors(i)
		if err != nil {
			return err
		}
		cols := make([]string, 0, len(nbrs)+1)
		if o.Weights {
			weight, werr := g.backend.NodeWeight(i)
			if werr != nil {
				return werr
			}
			cols = append(cols, strconv.Itoa(weight))
		}
		for _, j := range nbrs {
			cols = append(cols, strconv.Itoa(j+1))
		}
		if _, err = fmt.Fprintln(bw, strings.Join(cols, " ")); err != nil {
			return err
		}
	}
	for d := 0; d < g.nDummy; d++ {
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile writes the adjacency format to a fresh file at path.
func (g *Graph[B]) WriteFile(path string, o WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFileCreate, err)
	}
	defer f.Close()

	return g.WriteTo(f, o)
}

// ReadPartition reads one block id per line, in node-index order, and
// installs the result as the partition. Lines past the real node count
// (the padding nodes an external partitioner also labeled) are ignored.
// A short or malformed file yields ErrPartitionFormat.
func (g *Graph[B]) ReadPartition(r io.Reader) error {
	p, err := readPartition(r, g.backend.NNodes())
	if err != nil {
		return err
	}
	g.partition = p

	return nil
}

// ReadPartitionFile reads a partition file produced by an external
// partitioner over a graph previously written with WriteFile.
func (g *Graph[B]) ReadPartitionFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFileRead, err)
	}
	defer f.Close()

	return g.ReadPartition(f)
}

// WriteTo emits the hypergraph file variant: a header line
// "<nHyperedges> <nNodes> <hasWeights:0|1>" (node count includes
// declared padding), then one line per hyperedge listing its weight
// (when requested) followed by 1-based member-node indices.
//
// Requires a flushed hypergraph.
func (h *Hypergraph[B]) WriteTo(w io.Writer, o WriteOptions) error {
	bw := bufio.NewWriter(w)
	hasW := 0
	if o.Weights {
		hasW = 1
	}
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", len(h.hWeights), h.nNodes+h.nDummy, hasW); err != nil {
		return err
	}
	for e := range h.hWeights {
		members, err := h.HyperedgeNodes(e)
		if err != nil {
			return err
		}
		cols := make([]string, 0, len(members)+1)
		if o.Weights {
			cols = append(cols, strconv.Itoa(h.hWeights[e]))
		}
		for _, m := range members {
			cols = append(cols, strconv.Itoa(m+1))
		}
		if _, err = fmt.Fprintln(bw, strings.Join(cols, " ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile writes the hypergraph format to a fresh file at path.
func (h *Hypergraph[B]) WriteFile(path string, o WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFileCreate, err)
	}
	defer f.Close()

	return h.WriteTo(f, o)
}

// ReadPartition reads one block id per real node, in node-index order.
func (h *Hypergraph[B]) ReadPartition(r io.Reader) error {
	p, err := readPartition(r, h.nNodes)
	if err != nil {
		return err
	}
	h.partition = p

	return nil
}

// ReadPartitionFile reads a partition file for the real nodes.
func (h *Hypergraph[B]) ReadPartitionFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFileRead, err)
	}
	defer f.Close()

	return h.ReadPartition(f)
}

// readPartition parses exactly n leading integers, one per line.
func readPartition(r io.Reader, n int) ([]int, error) {
	sc := bufio.NewScanner(r)
	p := make([]int, 0, n)
	line := 0
	for len(p) < n && sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			return nil, fmt.Errorf("%w: blank line %d", ErrPartitionFormat, line)
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", ErrPartitionFormat, line, err)
		}
		p = append(p, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileRead, err)
	}
	if len(p) < n {
		return nil, fmt.Errorf("%w: want %d entries, got %d", ErrPartitionFormat, n, len(p))
	}

	return p, nil
}
