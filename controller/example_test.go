package controller_test

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/controller"
)

// ExampleSession drives a Las Vegas run on a 5-cycle with a manual scheduler.
func ExampleSession() {
	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(5))

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	sched := controller.NewManualScheduler()
	s, _ := controller.NewSession(g,
		controller.WithScheduler(sched),
		controller.WithLogger(quiet),
		controller.WithSeed(42),
	)

	_ = s.Start(context.Background(), controller.LasVegas, controller.PaceFast)
	sched.FireN(10)

	ev, _ := s.Current()
	fmt.Println(ev.Kind, s.State(), ev.Valid, len(g.Colors()))
	// Output: finished finished true 5
}
