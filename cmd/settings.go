package cmd

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/config"
	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/graphio"
)

// settings loads the configuration and applies the flags the user set.
func (i *Input) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Read(i.configPath, i.envFile)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("algorithm") {
		cfg.Sampler.Algorithm = i.algorithm
	}
	if fs.Changed("pace") {
		cfg.Pacing.Pace = i.pace
	}
	if fs.Changed("graph") {
		cfg.Graph.File = i.graphPath
	}
	if fs.Changed("topology") {
		cfg.Graph.Topology = i.topology
		if !fs.Changed("graph") {
			cfg.Graph.File = ""
		}
	}
	if fs.Changed("vertices") {
		cfg.Graph.Vertices = i.vertices
	}
	if fs.Changed("seed") {
		seed := i.seed
		cfg.Sampler.Seed = &seed
	}
	if i.verbose {
		cfg.Log.Level = log.DebugLevel.String()
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	log.SetLevel(cfg.LogLevel())

	return cfg, nil
}

// loadGraph reads the configured graph file or generates the configured
// topology. The returned name describes the source for logs.
func loadGraph(cfg *config.Config) (*core.Graph, string, error) {
	if cfg.Graph.File != "" {
		g, err := graphio.LoadGraph(cfg.Graph.File)
		if err != nil {
			return nil, "", err
		}
		log.Debugf("Loaded graph from %s", cfg.Graph.File)
		return g, cfg.Graph.File, nil
	}

	name := strings.ToLower(cfg.Graph.Topology)
	con, err := builder.ByName(name, cfg.Graph.Vertices)
	if err != nil {
		return nil, "", errors.Wrap(err, "resolving topology")
	}

	seed := time.Now().UnixNano()
	if cfg.Sampler.Seed != nil {
		seed = *cfg.Sampler.Seed
	}
	bopts := []builder.BuilderOption{builder.WithSeed(seed)}
	switch name {
	case builder.TopologyRandom, builder.TopologySparse, builder.TopologyCubic:
		bopts = append(bopts, builder.WithLayout(builder.RandomLayout))
	case builder.TopologyGrid:
		bopts = append(bopts, builder.WithLayout(builder.GridLayout))
	}

	g, err := builder.BuildGraph(nil, bopts, con)
	if err != nil {
		return nil, "", errors.Wrapf(err, "building %s(%d)", name, cfg.Graph.Vertices)
	}
	log.Debugf("Generated %s graph with %d vertices", name, g.VertexCount())

	return g, name, nil
}
