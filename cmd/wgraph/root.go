package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/algo"
	"github.com/katalvlaran/wgraph/internal/config"
	"github.com/katalvlaran/wgraph/storage"
)

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	out   io.Writer
	fs    vfs.FileSystem
	store *storage.FileStore
}

func newRootCmd(out io.Writer, fs vfs.FileSystem) *cobra.Command {
	var (
		configPath string
		level      string
	)
	a := &app{out: out, fs: fs}

	rootCmd := &cobra.Command{
		Use:           "wgraph",
		Short:         "Inspect and query undirected weighted graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = level
			}
			l, err := logging.ParseLevel(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("invalid log level %q", cfg.Log.Level)
			}
			logging.DefaultContext().AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("wgraph")))

			a.store = storage.NewFileStore(cfg.Store.Dir, a.fs)
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&level, "log-level", "L", config.DefaultLogLevel, "Log level")

	rootCmd.AddCommand(
		a.newGenerateCmd(),
		&cobra.Command{
			Use:   "import <edges-file> <graph>",
			Short: "Build a graph from a text edge list and save it",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runImport(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "info <graph>",
			Short: "Print the adjacency list of a graph and whether it has a cycle",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				alg, err := a.load(args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(a.out, alg.Graph().String())
				fmt.Fprintf(a.out, "cyclic: %t\n", alg.HasCycle())
				return nil
			},
		},
		&cobra.Command{
			Use:   "connected <graph>",
			Short: "Report whether the graph is connected",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				alg, err := a.load(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, alg.IsConnected())
				return nil
			},
		},
		&cobra.Command{
			Use:   "components <graph>",
			Short: "Print the connected components, one per line",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				alg, err := a.load(args[0])
				if err != nil {
					return err
				}
				for _, comp := range alg.Components() {
					parts := make([]string, len(comp))
					for i, k := range comp {
						parts[i] = strconv.Itoa(k)
					}
					fmt.Fprintln(a.out, strings.Join(parts, " "))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "dist <graph> <src> <dest>",
			Short: "Print the shortest-path distance between two nodes (-1 if none)",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				alg, src, dest, err := a.query(args)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, strconv.FormatFloat(alg.ShortestPathDist(src, dest), 'g', -1, 64))
				return nil
			},
		},
		&cobra.Command{
			Use:   "path <graph> <src> <dest>",
			Short: "Print a shortest path between two nodes",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				alg, src, dest, err := a.query(args)
				if err != nil {
					return err
				}
				nodes, ok := alg.ShortestPath(src, dest)
				if !ok {
					fmt.Fprintln(a.out, "no path")
					return nil
				}
				parts := make([]string, len(nodes))
				for i, n := range nodes {
					parts[i] = strconv.Itoa(n.Key)
				}
				fmt.Fprintln(a.out, strings.Join(parts, " -> "))
				return nil
			},
		},
	)

	return rootCmd
}

func (a *app) load(location string) (*algo.Algorithms, error) {
	alg := algo.New(algo.WithStore(a.store))
	if err := alg.Load(location); err != nil {
		return nil, err
	}

	return alg, nil
}

func (a *app) query(args []string) (*algo.Algorithms, int, int, error) {
	src, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, 0, 0, fmt.Errorf("invalid source key %q", args[1])
	}
	dest, err := strconv.Atoi(args[2])
	if err != nil {
		return nil, 0, 0, fmt.Errorf("invalid destination key %q", args[2])
	}
	alg, err := a.load(args[0])
	if err != nil {
		return nil, 0, 0, err
	}

	return alg, src, dest, nil
}

func (a *app) runImport(edgesFile, location string) error {
	data, err := vfs.ReadFile(a.fs, edgesFile)
	if err != nil {
		return fmt.Errorf("reading edge list: %w", err)
	}
	g, err := parseEdgeList(string(data))
	if err != nil {
		return err
	}

	alg := algo.New(algo.WithGraph(g), algo.WithStore(a.store))
	if err := alg.Save(location); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "imported %d nodes, %d edges into %s\n", g.NodeCount(), g.EdgeCount(), a.store.Path(location))

	return nil
}
