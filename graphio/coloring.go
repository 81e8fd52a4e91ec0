package graphio

import (
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
)

// ColoringDoc is the on-disk form of a (possibly partial) coloring.
type ColoringDoc struct {
	Colors map[core.VertexID]coloring.Color `yaml:"colors"`
}

// ReadColoring decodes a coloring document. Every color must belong to
// palette; an empty palette means coloring.DefaultPalette().
func ReadColoring(r io.Reader, palette coloring.Palette) (coloring.Coloring, error) {
	if len(palette) == 0 {
		palette = coloring.DefaultPalette()
	}

	var doc ColoringDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrapf(ErrFormat, "decoding coloring: %v", err)
	}

	out := make(coloring.Coloring, len(doc.Colors))
	for id, c := range doc.Colors {
		if !palette.Contains(c) {
			return nil, errors.Wrapf(ErrFormat, "vertex %d: color %q not in palette %v", id, c, palette)
		}
		out[id] = c
	}

	return out, nil
}

// LoadColoring reads the coloring document at path.
func LoadColoring(path string, palette coloring.Palette) (coloring.Coloring, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening coloring file")
	}
	defer f.Close()

	c, err := ReadColoring(f, palette)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	return c, nil
}

// WriteColoring encodes c as a coloring document with ascending vertex IDs.
func WriteColoring(w io.Writer, c coloring.Coloring) error {
	ids := make([]core.VertexID, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, id := range ids {
		var k, v yaml.Node
		if err := k.Encode(id); err != nil {
			return errors.Wrap(err, "encoding vertex id")
		}
		if err := v.Encode(c[id]); err != nil {
			return errors.Wrap(err, "encoding color")
		}
		m.Content = append(m.Content, &k, &v)
	}
	root := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "colors"}, m,
	}}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return errors.Wrap(err, "encoding coloring")
	}

	return errors.Wrap(enc.Close(), "flushing coloring")
}
