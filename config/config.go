// Package config loads lvcolor run settings.
//
// Sources, lowest precedence first: Default, a YAML file, a dotenv file, the
// process environment (LVCOLOR_* variables). Command-line flags are applied
// on top by the cmd package. The dotenv file is read with godotenv.Read and
// never modifies the process environment.
package config

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/controller"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "LVCOLOR_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full run configuration.
type Config struct {
	Sampler Sampler `yaml:"sampler"`
	Pacing  Pacing  `yaml:"pacing"`
	Graph   Graph   `yaml:"graph"`
	Log     Log     `yaml:"log"`
}

// Sampler holds coloring engine settings.
type Sampler struct {
	Algorithm            string  `yaml:"algorithm"`
	Mode                 string  `yaml:"mode"`
	Iterations           int     `yaml:"iterations"`
	MaxAttempts          int     `yaml:"max_attempts"`
	TieAcceptProbability float64 `yaml:"tie_accept_probability"`
	Seed                 *int64  `yaml:"seed,omitempty"`
}

// Pacing holds the tick cadence settings.
type Pacing struct {
	Pace string        `yaml:"pace"`
	Fast time.Duration `yaml:"fast"`
	Slow time.Duration `yaml:"slow"`
}

// Graph selects the input graph: a file, or a generated topology.
type Graph struct {
	File     string `yaml:"file,omitempty"`
	Topology string `yaml:"topology"`
	Vertices int    `yaml:"vertices"`
}

// Log holds logging settings.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Sampler: Sampler{
			Algorithm:            string(controller.MonteCarlo),
			Mode:                 string(coloring.DefaultMode),
			Iterations:           coloring.DefaultIterations,
			MaxAttempts:          coloring.DefaultMaxAttempts,
			TieAcceptProbability: coloring.DefaultTieAcceptProbability,
		},
		Pacing: Pacing{
			Pace: string(controller.PaceFast),
			Fast: controller.DefaultFastInterval,
			Slow: controller.DefaultSlowInterval,
		},
		Graph: Graph{
			Topology: "random",
			Vertices: controller.DefaultMinRandomVertices,
		},
		Log: Log{Level: log.InfoLevel.String()},
	}
}

// Load is Read followed by Validate.
func Load(path, envFile string) (*Config, error) {
	cfg, err := Read(path, envFile)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Read builds a Config from the defaults, the YAML file at path, the dotenv
// file at envFile and the process environment, without validating it. Empty
// paths are skipped.
func Read(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening config file")
		}
		defer f.Close()
		if err = cfg.ReadYAML(f); err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		log.Debugf("Loaded config file %s", path)
	}

	if envFile != "" {
		env, err := godotenv.Read(envFile)
		if err != nil {
			return nil, errors.Wrapf(err, "reading env file %s", envFile)
		}
		if err = cfg.ApplyEnv(env); err != nil {
			return nil, errors.Wrapf(err, "applying %s", envFile)
		}
		log.Debugf("Loaded env file %s", envFile)
	}

	if err := cfg.ApplyEnv(Environ(os.Environ())); err != nil {
		return nil, errors.Wrap(err, "applying environment")
	}

	return cfg, nil
}

// ReadYAML overlays the YAML document read from r. Unknown keys are errors;
// an empty document leaves cfg unchanged.
func (c *Config) ReadYAML(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return errors.Wrap(err, "decoding yaml")
	}

	return nil
}

// Environ converts KEY=VALUE pairs into a map, keeping only LVCOLOR_ keys.
func Environ(pairs []string) map[string]string {
	out := make(map[string]string)
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			out[k] = v
		}
	}

	return out
}

// ApplyEnv overlays LVCOLOR_* variables from env. Keys without the prefix
// are ignored; a malformed number or duration is an error.
func (c *Config) ApplyEnv(env map[string]string) error {
	str := map[string]*string{
		"ALGORITHM": &c.Sampler.Algorithm,
		"MODE":      &c.Sampler.Mode,
		"PACE":      &c.Pacing.Pace,
		"GRAPH":     &c.Graph.File,
		"TOPOLOGY":  &c.Graph.Topology,
		"LOG_LEVEL": &c.Log.Level,
	}
	for key, dst := range str {
		if v, ok := env[EnvPrefix+key]; ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"ITERATIONS":   &c.Sampler.Iterations,
		"MAX_ATTEMPTS": &c.Sampler.MaxAttempts,
		"VERTICES":     &c.Graph.Vertices,
	}
	for key, dst := range ints {
		if v, ok := env[EnvPrefix+key]; ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return errors.Wrapf(err, "%s%s", EnvPrefix, key)
			}
			*dst = n
		}
	}

	durations := map[string]*time.Duration{
		"FAST_INTERVAL": &c.Pacing.Fast,
		"SLOW_INTERVAL": &c.Pacing.Slow,
	}
	for key, dst := range durations {
		if v, ok := env[EnvPrefix+key]; ok {
			d, err := time.ParseDuration(strings.TrimSpace(v))
			if err != nil {
				return errors.Wrapf(err, "%s%s", EnvPrefix, key)
			}
			*dst = d
		}
	}

	if v, ok := env[EnvPrefix+"TIE_ACCEPT_PROBABILITY"]; ok {
		p, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return errors.Wrapf(err, "%sTIE_ACCEPT_PROBABILITY", EnvPrefix)
		}
		c.Sampler.TieAcceptProbability = p
	}
	if v, ok := env[EnvPrefix+"SEED"]; ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%sSEED", EnvPrefix)
		}
		c.Sampler.Seed = &seed
	}

	return nil
}
