package main

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pentagonEdges = `# reference graph
0 4 8
4 3 3
3 0 7
3 1 4
3 2 2
1 0 3
2 1 1
`

func run(t *testing.T, fs vfs.FileSystem, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out, fs)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestCLI_ImportAndQuery(t *testing.T) {
	t.Setenv("WGRAPH_STORE_DIR", "/graphs")
	fs := memoryfs.New()
	require.NoError(t, vfs.WriteFile(fs, "/in/edges.txt", []byte(pentagonEdges+"9\n"), 0o600))

	out, err := run(t, fs, "import", "/in/edges.txt", "p.yaml")
	require.NoError(t, err)
	assert.Equal(t, "imported 6 nodes, 7 edges into /graphs/p.yaml\n", out)

	out, err = run(t, fs, "dist", "p.yaml", "4", "1")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)

	out, err = run(t, fs, "dist", "p.yaml", "4", "9")
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)

	out, err = run(t, fs, "path", "p.yaml", "4", "1")
	require.NoError(t, err)
	assert.Equal(t, "4 -> 3 -> 2 -> 1\n", out)

	out, err = run(t, fs, "path", "p.yaml", "0", "9")
	require.NoError(t, err)
	assert.Equal(t, "no path\n", out)

	out, err = run(t, fs, "connected", "p.yaml")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = run(t, fs, "components", "p.yaml")
	require.NoError(t, err)
	assert.Equal(t, "0 1 2 3 4\n9\n", out)

	out, err = run(t, fs, "info", "p.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Vertices: 6 Edges: 7 MC: 13\n")
	assert.Contains(t, out, "\n9:\n")
	assert.True(t, strings.HasSuffix(out, "cyclic: true\n"))
}

func TestCLI_Errors(t *testing.T) {
	t.Setenv("WGRAPH_STORE_DIR", "/graphs")
	fs := memoryfs.New()

	_, err := run(t, fs, "info", "missing.yaml")
	assert.Error(t, err)

	_, err = run(t, fs, "dist", "missing.yaml", "x", "1")
	assert.ErrorContains(t, err, "invalid source key")

	_, err = run(t, fs, "connected", "--log-level", "loud", "g.yaml")
	assert.ErrorContains(t, err, "invalid log level")

	require.NoError(t, vfs.WriteFile(fs, "/bad.txt", []byte("1 2\n"), 0o600))
	_, err = run(t, fs, "import", "/bad.txt", "g.yaml")
	assert.ErrorContains(t, err, "line 1")
}

func TestParseEdgeList(t *testing.T) {
	g, err := parseEdgeList("# c\n\n1 2 0.5\n2 1 9\n5\n")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5}, g.NodeKeys())
	assert.Equal(t, 0.5, g.EdgeWeight(1, 2), "first weight wins")

	for _, bad := range []string{"1 1 2\n", "a 2 1\n", "1 b 1\n", "1 2 w\n", "x\n", "1 2 3 4\n"} {
		_, err := parseEdgeList(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestCLI_Generate(t *testing.T) {
	t.Setenv("WGRAPH_STORE_DIR", "/graphs")
	fs := memoryfs.New()

	out, err := run(t, fs, "generate", "grid", "grid.yaml", "--rows", "3", "--cols", "4")
	require.NoError(t, err)
	assert.Equal(t, "generated grid with 12 nodes, 17 edges into /graphs/grid.yaml\n", out)

	out, err = run(t, fs, "dist", "grid.yaml", "0", "11")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = run(t, fs, "generate", "random", "r.yaml", "-n", "8", "-p", "0", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "8 nodes, 0 edges")
	out, err = run(t, fs, "connected", "r.yaml")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	_, err = run(t, fs, "generate", "torus", "t.yaml")
	assert.ErrorContains(t, err, "unknown topology")
	_, err = run(t, fs, "generate", "cycle", "c.yaml", "-n", "2")
	assert.Error(t, err)
	_, err = run(t, fs, "generate", "path", "c.yaml", "--min-weight", "5", "--max-weight", "2")
	assert.ErrorContains(t, err, "invalid weight range")

	out, err = run(t, fs, "generate", "path", "wide.yaml", "-n", "4", "--seed", "2",
		"--min-weight", "0", "--max-weight", strconv.Itoa(math.MaxInt))
	require.NoError(t, err)
	assert.Contains(t, out, "4 nodes, 3 edges")
}
