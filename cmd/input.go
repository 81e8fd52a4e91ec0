package cmd

import (
	"github.com/spf13/pflag"
)

// Input contains the flag values of every command
type Input struct {
	verbose    bool
	configPath string
	envFile    string

	graphPath string
	topology  string
	vertices  int
	seed      int64

	algorithm  string
	pace       string
	sync       bool
	outputPath string

	coloringPath string
	exportPath   string
}

// addGraphFlags registers the flags that select the input graph.
func (i *Input) addGraphFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&i.graphPath, "graph", "g", "", "graph file (YAML or JSON); overrides --topology")
	fs.StringVarP(&i.topology, "topology", "t", "", "generated topology (see `lvcolor topologies`)")
	fs.IntVarP(&i.vertices, "vertices", "n", 0, "vertex count of the generated topology")
	fs.Int64Var(&i.seed, "seed", 0, "seed for graph generation and sampling")
}
