package graphio

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/core"
)

// ErrFormat is wrapped by every malformed-document error.
var ErrFormat = errors.New("graphio: malformed document")

// GraphDoc is the on-disk form of a graph.
type GraphDoc struct {
	Vertices []VertexDoc        `yaml:"vertices"`
	Edges    [][2]core.VertexID `yaml:"edges,flow"`
}

// VertexDoc is one vertex. X and Y must be given together or not at all.
type VertexDoc struct {
	ID core.VertexID `yaml:"id"`
	X  *float64      `yaml:"x,omitempty"`
	Y  *float64      `yaml:"y,omitempty"`
}

// ReadGraph decodes a graph document from r and builds a Graph with gopts.
//
// Errors:
//   - ErrFormat for undecodable input, half-specified positions or an empty
//     vertex list.
//   - core errors (duplicate IDs, unknown edge endpoints, loops, the vertex
//     cap) wrapped with the offending entry.
func ReadGraph(r io.Reader, gopts ...core.GraphOption) (*core.Graph, error) {
	var doc GraphDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrapf(ErrFormat, "decoding graph: %v", err)
	}

	return doc.Build(gopts...)
}

// LoadGraph reads the graph document at path.
func LoadGraph(path string, gopts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening graph file")
	}
	defer f.Close()

	g, err := ReadGraph(f, gopts...)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	return g, nil
}

// Build materializes the document. Vertices without a position are placed
// with builder.CircleLayout by their index in the list.
func (d *GraphDoc) Build(gopts ...core.GraphOption) (*core.Graph, error) {
	if len(d.Vertices) == 0 {
		return nil, errors.Wrap(ErrFormat, "no vertices")
	}

	g := core.NewGraph(gopts...)
	n := len(d.Vertices)
	for i, v := range d.Vertices {
		if (v.X == nil) != (v.Y == nil) {
			return nil, errors.Wrapf(ErrFormat, "vertex %d: x and y must be given together", v.ID)
		}
		x, y := builder.CircleLayout(i, n, nil)
		if v.X != nil {
			x, y = *v.X, *v.Y
		}
		if err := g.InsertVertex(v.ID, x, y); err != nil {
			return nil, errors.Wrapf(err, "vertex #%d", i)
		}
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e[0], e[1], core.DefaultEdgeWeight); err != nil {
			return nil, errors.Wrapf(err, "edge #%d", i)
		}
	}

	return g, nil
}

// DocFromGraph captures g's vertices (sorted by ID, with positions) and
// edges.
func DocFromGraph(g *core.Graph) *GraphDoc {
	vs := g.Vertices()
	doc := &GraphDoc{Vertices: make([]VertexDoc, len(vs))}
	for i, v := range vs {
		x, y := v.X, v.Y
		doc.Vertices[i] = VertexDoc{ID: v.ID, X: &x, Y: &y}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, [2]core.VertexID{e.Source, e.Target})
	}

	return doc
}

// WriteGraph encodes g as a YAML graph document.
func WriteGraph(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(DocFromGraph(g)); err != nil {
		return errors.Wrap(err, "encoding graph")
	}

	return errors.Wrap(enc.Close(), "flushing graph")
}
