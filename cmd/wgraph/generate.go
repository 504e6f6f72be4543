package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/algo"
	"github.com/katalvlaran/wgraph/builder"
)

type generateOptions struct {
	n, rows, cols int
	p             float64
	seed          int64
	minW, maxW    int
}

func (a *app) newGenerateCmd() *cobra.Command {
	var o generateOptions
	cmd := &cobra.Command{
		Use:   "generate <path|cycle|star|complete|grid|random> <graph>",
		Short: "Generate a graph topology and save it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(args[0], args[1], o)
		},
	}
	cmd.Flags().IntVarP(&o.n, "nodes", "n", 10, "Number of nodes")
	cmd.Flags().IntVar(&o.rows, "rows", 4, "Grid rows")
	cmd.Flags().IntVar(&o.cols, "cols", 4, "Grid columns")
	cmd.Flags().Float64VarP(&o.p, "probability", "p", 0.3, "Edge probability for random graphs")
	cmd.Flags().Int64Var(&o.seed, "seed", 1, "Random seed")
	cmd.Flags().IntVar(&o.minW, "min-weight", 1, "Smallest edge weight")
	cmd.Flags().IntVar(&o.maxW, "max-weight", 1, "Largest edge weight")

	return cmd
}

func (a *app) runGenerate(kind, location string, o generateOptions) error {
	var cons builder.Constructor
	switch kind {
	case "path":
		cons = builder.Path(o.n)
	case "cycle":
		cons = builder.Cycle(o.n)
	case "star":
		cons = builder.Star(o.n)
	case "complete":
		cons = builder.Complete(o.n)
	case "grid":
		cons = builder.Grid(o.rows, o.cols)
	case "random":
		cons = builder.RandomSparse(o.n, o.p)
	default:
		return fmt.Errorf("unknown topology %q", kind)
	}
	if o.minW < 0 || o.maxW < o.minW {
		return fmt.Errorf("invalid weight range [%d, %d]", o.minW, o.maxW)
	}

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(o.seed), builder.WithWeightFn(builder.IntWeightFn(o.minW, o.maxW))},
		cons)
	if err != nil {
		return err
	}

	alg := algo.New(algo.WithGraph(g), algo.WithStore(a.store))
	if err := alg.Save(location); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "generated %s with %d nodes, %d edges into %s\n", kind, g.NodeCount(), g.EdgeCount(), a.store.Path(location))

	return nil
}
