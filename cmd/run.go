package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/config"
	"github.com/katalvlaran/lvcolor/controller"
	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/graphio"
)

// eventBuffer is the subscription buffer of the live progress reader.
const eventBuffer = 256

// outcome is what a run reports at the end.
type outcome struct {
	algorithm     controller.Algorithm
	coloring      coloring.Coloring
	conflictEdges []core.EdgePair
	stats         controller.Stats
	valid         bool
	interrupted   bool
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := input.settings(cmd)
		if err != nil {
			return err
		}
		g, name, err := loadGraph(cfg)
		if err != nil {
			return err
		}

		var res outcome
		if input.sync {
			res, err = runSync(cfg, g)
		} else {
			res, err = runSession(ctx, cfg, g, name, cmd.OutOrStdout())
		}
		if err != nil {
			return err
		}
		res.print(cmd.OutOrStdout())

		if input.outputPath != "" {
			if err = writeColoring(input.outputPath, res.coloring); err != nil {
				return err
			}
			log.Infof("Wrote coloring to %s", input.outputPath)
		}

		return nil
	}
}

// runSync runs the sampler to completion without a session. With a seed it
// reproduces the first run of a seeded session.
func runSync(cfg *config.Config, g *core.Graph) (outcome, error) {
	opts := cfg.SamplerOptions()
	if cfg.Sampler.Seed != nil {
		opts = append(opts, coloring.WithSeed(coloring.DeriveSeed(*cfg.Sampler.Seed, 1)))
	}
	sampler, err := cfg.Algorithm().NewSampler(g.Snapshot(), opts...)
	if err != nil {
		return outcome{}, errors.Wrap(err, "creating sampler")
	}

	start := time.Now()
	res := sampler.Run()
	g.ApplyColoring(res.Coloring.Names())

	return outcome{
		algorithm:     cfg.Algorithm(),
		coloring:      res.Coloring,
		conflictEdges: res.ConflictEdges,
		stats: controller.Stats{
			Stats: coloring.Stats{
				Attempts:      res.Summary.Attempts,
				Conflicts:     res.Summary.Conflicts,
				MeanConflicts: res.Summary.MeanConflicts,
				SuccessRate:   res.Summary.SuccessRate,
				Progress:      1,
			},
			Elapsed: time.Since(start),
		},
		valid: res.Valid,
	}, nil
}

// runSession drives a paced session and renders progress until the run
// finishes, is discarded, or ctx is done.
func runSession(ctx context.Context, cfg *config.Config, g *core.Graph, name string, w io.Writer) (outcome, error) {
	ctx = controller.WithContextLogger(ctx, log.WithField("graph", name))
	s, err := controller.NewSession(g, cfg.SessionOptions()...)
	if err != nil {
		return outcome{}, errors.Wrap(err, "creating session")
	}
	events, unsubscribe := s.Subscribe(eventBuffer)
	defer unsubscribe()

	if err = s.Start(ctx, cfg.Algorithm(), cfg.Pace()); err != nil {
		return outcome{}, errors.Wrap(err, "starting run")
	}

	p := newProgress(w)
	res := outcome{algorithm: cfg.Algorithm()}
	absorb := func(ev controller.Event) {
		p.update(ev)
		if ev.Kind == controller.EventTick || ev.Kind == controller.EventFinished {
			res.coloring = ev.Coloring
			res.conflictEdges = ev.ConflictEdges
			res.stats = ev.Stats
			res.valid = ev.Valid
		}
	}
loop:
	for {
		select {
		case ev := <-events:
			absorb(ev)
			if st := s.State(); st == controller.Finished || st == controller.NotStarted {
				break loop
			}
		case <-ctx.Done():
			break loop
		}
	}
	// The state can run ahead of the events still buffered.
	for drained := false; !drained; {
		select {
		case ev := <-events:
			absorb(ev)
		default:
			drained = true
		}
	}
	p.done()

	res.interrupted = s.State() != controller.Finished
	s.Cancel()

	return res, nil
}

func (o outcome) print(w io.Writer) {
	if o.interrupted {
		fmt.Fprintln(w, "run interrupted; best state so far:")
	}
	fmt.Fprintf(w, "algorithm:      %s\n", o.algorithm)
	fmt.Fprintf(w, "valid:          %t\n", o.valid)
	fmt.Fprintf(w, "attempts:       %d\n", o.stats.Attempts)
	fmt.Fprintf(w, "conflicts:      %d\n", o.stats.Conflicts)
	fmt.Fprintf(w, "mean conflicts: %.3f\n", o.stats.MeanConflicts)
	fmt.Fprintf(w, "success rate:   %.2f%%\n", 100*o.stats.SuccessRate)
	fmt.Fprintf(w, "elapsed:        %s\n", o.stats.Elapsed.Round(time.Millisecond))
	for _, e := range o.conflictEdges {
		fmt.Fprintf(w, "conflict:       %d-%d\n", e.A, e.B)
	}
}

func writeColoring(path string, c coloring.Coloring) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating coloring file")
	}
	if err = graphio.WriteColoring(f, c); err != nil {
		f.Close()
		return err
	}

	return errors.Wrap(f.Close(), "closing coloring file")
}
