package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvcolor/controller"
)

// logStep is the progress increment between log lines when not on a terminal.
const logStep = 0.1

// progress renders run events: one rewritten line on a terminal, periodic
// log lines otherwise.
type progress struct {
	w      io.Writer
	tty    bool
	dirty  bool
	logged float64
}

func newProgress(w io.Writer) *progress {
	return &progress{w: w, tty: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *progress) update(ev controller.Event) {
	if ev.Kind != controller.EventTick {
		log.Debugf("run %d: %s (%s)", ev.Run, ev.Kind, ev.State)
		return
	}

	line := progressLine(ev)
	if p.tty {
		fmt.Fprintf(p.w, "\r%s", line)
		p.dirty = true
		return
	}
	if ev.Stats.Progress-p.logged >= logStep || ev.Stats.Progress >= 1 {
		p.logged = ev.Stats.Progress
		log.Info(line)
	}
}

func (p *progress) done() {
	if p.dirty {
		fmt.Fprintln(p.w)
		p.dirty = false
	}
}

func progressLine(ev controller.Event) string {
	return fmt.Sprintf("%-10s %5.1f%%  attempts %-6d conflicts %-4d mean %-7.3f success %5.1f%%",
		ev.Algorithm, 100*ev.Stats.Progress, ev.Stats.Attempts, ev.Stats.Conflicts,
		ev.Stats.MeanConflicts, 100*ev.Stats.SuccessRate)
}
