// Package controller drives a coloring sampler against a live core.Graph.
//
// A Session owns one graph and at most one active run. Starting a run takes a
// snapshot of the graph, builds a coloring.MonteCarlo or coloring.LasVegas
// sampler over it and schedules a periodic cadence. Every tick performs one
// sampler Step, paints the best-known coloring onto the graph and publishes a
// Tick event; when the sampler is done the run moves to Finished and the
// cadence stops.
//
// State machine:
//
//	NotStarted --Start--> Running --Pause--> Paused --Resume--> Running
//	Paused --Advance--> Paused (one step)
//	Running | Paused --(sampler done)--> Finished
//	any run --(structural mutation | Start | Cancel | ctx done)--> NotStarted
//
// Structural mutations made through the Session (AddVertex, AddEdge,
// RemoveEdge, RemoveVertex, Reset, GenerateRandom) discard the run. A tick
// that observes a graph revision different from its snapshot's also discards
// it, which covers mutations made on the graph directly.
//
// Pacing comes from a Scheduler. TickerScheduler uses time.Ticker;
// ManualScheduler fires ticks on demand for tests and embedding UIs. A
// stopped cadence never reaches the session: every cadence carries a
// generation number and ticks from an older generation are ignored.
//
// Events are delivered to subscribers without blocking. A subscriber whose
// buffer is full misses the event and the loss is counted in Dropped;
// Current always returns the latest event.
//
// Logging goes through logrus. A logger passed with WithLogger wins;
// otherwise the logger stored in the Start context (see WithContextLogger)
// is used, falling back to logrus.StandardLogger().
package controller
