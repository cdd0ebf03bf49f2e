// dwdetect builds a graph representation of a constraint matrix, finds
// or reads a partition, and prints the decomposition it implies.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/mipstruct/dwgraph/build"
	"github.com/mipstruct/dwgraph/cluster"
	"github.com/mipstruct/dwgraph/core"
	"github.com/mipstruct/dwgraph/graph"
	"github.com/mipstruct/dwgraph/logger"
	"github.com/mipstruct/dwgraph/weights"
)

var app = cli.App{
	Name:      "dwdetect",
	HelpName:  "dwdetect",
	Usage:     "detect block structure in a constraint matrix",
	ArgsUsage: "--matrix <file>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "matrix", Usage: "matrix file (var/cons line format)", Required: true},
		&cli.StringFlag{Name: "graph", Usage: "representation: bipartite|rows|cols|hyperrows|hypercols|hyperrowcols", Value: "rows"},
		&cli.StringFlag{Name: "cluster", Usage: "clustering: mst|dbscan|mcl (projection graphs only)", Value: "mst"},
		&cli.Float64Flag{Name: "eps", Usage: "DBSCAN radius; negative derives it from the edge-weight percentile", Value: -1},
		&cli.Float64Flag{Name: "cutoff", Usage: "MST edge cutoff; negative derives it from the edge-weight percentile", Value: -1},
		&cli.IntFlag{Name: "minpts", Usage: "minimum cluster size", Value: 1},
		&cli.StringFlag{Name: "partition", Usage: "read node partition from file instead of clustering"},
		&cli.StringFlag{Name: "write-graph", Usage: "write the representation in the partitioner file format and exit"},
		&cli.BoolFlag{Name: "weights", Usage: "include weights in the written graph file"},
		&cli.IntFlag{Name: "cons-weight", Usage: "constraint node weight", Value: weights.DefaultConstraintWeight},
		&cli.IntFlag{Name: "var-weight", Usage: "generic variable node weight", Value: weights.DefaultVariableWeight},
		&cli.StringFlag{Name: "log-level", Usage: "logging level", Value: "info"},
	},
	Action: run,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "dwdetect:", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String("log-level"), "dwdetect")

	m, err := readMatrix(ctx.String("matrix"))
	if err != nil {
		return err
	}
	log.Infof("matrix: %d constraints, %d variables", m.NConss(), m.NVars())

	w := weights.New(
		weights.WithConstraintWeight(ctx.Int("cons-weight")),
		weights.WithVariableWeight(ctx.Int("var-weight")),
	)

	switch rep := ctx.String("graph"); rep {
	case "bipartite":
		b := build.NewBipartite(newWeightedBackend(ctx), w)
		if err = b.FromMatrix(m); err != nil {
			return err
		}

		return runProjection(ctx, log, m, b.Graph(), b.DecompFromPartition)
	case "rows":
		b := build.NewRows(newWeightedBackend(ctx), w)
		if err = b.FromMatrix(m); err != nil {
			return err
		}

		return runProjection(ctx, log, m, b.Graph(), b.DecompFromPartition)
	case "cols":
		b := build.NewCols(newWeightedBackend(ctx), w)
		if err = b.FromMatrix(m); err != nil {
			return err
		}

		return runProjection(ctx, log, m, b.Graph(), b.DecompFromPartition)
	case "hyperrows":
		b := build.NewHyperrows(core.NewCliqueGraph(m.NVars()+m.NConss()), w)
		if err = b.FromMatrix(m); err != nil {
			return err
		}

		return runHyper(ctx, log, m, b.Hypergraph(), b.DecompFromPartition)
	case "hypercols":
		b := build.NewHypercols(core.NewCliqueGraph(m.NConss()+m.NVars()), w)
		if err = b.FromMatrix(m); err != nil {
			return err
		}

		return runHyper(ctx, log, m, b.Hypergraph(), b.DecompFromPartition)
	case "hyperrowcols":
		b := build.NewHyperrowcols(core.NewCliqueGraph(countNonzeros(m)+m.NConss()+m.NVars()), w)
		if err = b.FromMatrix(m); err != nil {
			return err
		}

		return runHyper(ctx, log, m, b.Hypergraph(), b.DecompFromPartition)
	default:
		return fmt.Errorf("unknown graph representation %q", rep)
	}
}

// newWeightedBackend builds the generalized backend for projection
// graphs, enabling the clustering kernel only when MCL will need it.
func newWeightedBackend(ctx *cli.Context) *core.WeightedGraph {
	if ctx.String("cluster") == "mcl" {
		return core.NewWeightedGraph(core.WithClustering())
	}

	return core.NewWeightedGraph()
}

// runProjection drives the plain-graph path: optional file export, then
// a partition from file or clustering, then the decomposition.
func runProjection(
	ctx *cli.Context,
	log interface{ Infof(string, ...interface{}) },
	m *build.DenseMatrix,
	g *graph.Graph[*core.WeightedGraph],
	decomp func() (*build.Decomposition, error),
) error {
	log.Infof("graph: %d nodes, %d edges", g.NNodes(), g.NEdges())
	if path := ctx.String("write-graph"); path != "" {
		return g.WriteFile(path, graph.WriteOptions{Weights: ctx.Bool("weights")})
	}

	if path := ctx.String("partition"); path != "" {
		if err := g.ReadPartitionFile(path); err != nil {
			return err
		}
	} else {
		labels, k, err := clusterProjection(ctx, g)
		if err != nil {
			return err
		}
		log.Infof("clustering found %d clusters", k)
		if err = g.SetPartitionSlice(labels); err != nil {
			return err
		}
	}

	d, err := decomp()
	if err != nil {
		return err
	}

	return report(m, d)
}

// clusterProjection dispatches on the clustering flag. MST and DBSCAN
// interpret edge weights as distances, so the co-occurrence similarities
// the builders store are normalized and inverted first; MCL consumes the
// similarities directly through the kernel built at flush time.
func clusterProjection(ctx *cli.Context, g *graph.Graph[*core.WeightedGraph]) ([]int, int, error) {
	switch alg := ctx.String("cluster"); alg {
	case "mst":
		if err := toDistances(g); err != nil {
			return nil, 0, err
		}

		return cluster.MST(g, autoThreshold(ctx.Float64("cutoff"), g, 50), ctx.Int("minpts"))
	case "dbscan":
		if err := toDistances(g); err != nil {
			return nil, 0, err
		}

		return cluster.DBSCAN(g, autoThreshold(ctx.Float64("eps"), g, 25), ctx.Int("minpts"))
	case "mcl":
		return cluster.MCL(g, cluster.DefaultMCLOptions())
	default:
		return nil, 0, fmt.Errorf("unknown clustering %q", alg)
	}
}

// toDistances rescales similarities to [0,1] and flips them, so that
// strongly connected nodes end up close.
func toDistances(g *graph.Graph[*core.WeightedGraph]) error {
	b := g.Backend()
	if err := b.Normalize(); err != nil {
		return err
	}
	for i := 0; i < g.NNodes(); i++ {
		nbrs, err := g.Neighbors(i)
		if err != nil {
			return err
		}
		for _, j := range nbrs {
			if j <= i {
				continue
			}
			w, err := b.EdgeWeight(i, j)
			if err != nil {
				return err
			}
			if err = b.SetEdgeWeight(i, j, 1-w); err != nil {
				return err
			}
		}
	}

	return nil
}

// autoThreshold resolves a negative flag value to the q-th edge-weight
// percentile of the graph at hand.
func autoThreshold(flag float64, g *graph.Graph[*core.WeightedGraph], q float64) float64 {
	if flag >= 0 {
		return flag
	}
	p, err := g.Backend().EdgeWeightPercentile(q)
	if err != nil {
		return 0
	}

	return p
}

// runHyper drives the hypergraph path: optional file export, a
// partition read from file (hypergraphs are partitioned externally),
// metrics and the decomposition.
func runHyper(
	ctx *cli.Context,
	log interface{ Infof(string, ...interface{}) },
	m *build.DenseMatrix,
	h *graph.Hypergraph[*core.CliqueGraph],
	decomp func() (*build.Decomposition, error),
) error {
	log.Infof("hypergraph: %d nodes, %d hyperedges", h.NNodes(), h.NHyperedges())
	if path := ctx.String("write-graph"); path != "" {
		return h.WriteFile(path, graph.WriteOptions{Weights: ctx.Bool("weights")})
	}

	path := ctx.String("partition")
	if path == "" {
		return fmt.Errorf("hypergraph representations need --partition (partition them externally via --write-graph)")
	}
	if err := h.ReadPartitionFile(path); err != nil {
		return err
	}

	soed, err := cluster.Soed(h)
	if err != nil {
		return err
	}
	mincut, err := cluster.Mincut(h)
	if err != nil {
		return err
	}
	kmetric, err := cluster.KMetric(h)
	if err != nil {
		return err
	}
	fmt.Printf("scores: soed=%d mincut=%d k-1=%d\n", soed, mincut, kmetric)

	d, err := decomp()
	if err != nil {
		return err
	}

	return report(m, d)
}

// report prints the decomposition, one block per line.
func report(m *build.DenseMatrix, d *build.Decomposition) error {
	if d == nil {
		fmt.Println("no decomposition: the partition leaves a block without constraints")

		return nil
	}
	byBlock := make(map[int][]string)
	for c, b := range d.ConsToBlock {
		byBlock[b] = append(byBlock[b], m.ConsName(c))
	}
	for b := 1; b <= d.NBlocks+1; b++ {
		names := byBlock[b]
		sort.Strings(names)
		label := fmt.Sprintf("block %d", b)
		if b == d.LinkingBlock() {
			label = "linking"
		}
		fmt.Printf("%s: %v\n", label, names)
	}

	return nil
}

// countNonzeros sums the incidence list lengths.
func countNonzeros(m *build.DenseMatrix) int {
	nnz := 0
	for c := 0; c < m.NConss(); c++ {
		nnz += len(m.ConsVars(c))
	}

	return nnz
}
