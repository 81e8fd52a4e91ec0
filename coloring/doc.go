// Package coloring implements randomized vertex coloring over a core.Snapshot
// with a small fixed palette (blue, red, green by default).
//
// It provides:
//
//   - Evaluate is the conflict evaluator: counts and lists edges whose two
//     endpoints carry the same color. Pure and deterministic.
//
//   - MonteCarlo is a fixed-budget sampler. Each step draws an independent,
//     uniformly random complete coloring and keeps the best one seen. Ties
//     with the incumbent replace it with probability TieAcceptProbability.
//     Runs until the iteration budget is spent, or, in StopOnValid mode,
//     until the first conflict-free sample.
//
//   - LasVegas is a randomized greedy construction. Each step shuffles the
//     vertices (Fisher–Yates) and colors them in that order, each with a
//     random color unused by its already-colored neighbors. An attempt that
//     meets a vertex with no legal color aborts without backtracking. Runs
//     until the first valid coloring or until MaxAttempts is spent.
//
// Both samplers are synchronous state machines: Step performs one bounded
// unit of work (O(V+E)) and returns the best-known state; Run loops Step to
// completion. Neither ever returns an error once constructed; invalid options
// are rejected by the constructors with ErrOptionViolation.
//
// Randomness is injected (WithRand, WithSeed). Without either, a time-seeded
// source is used.
//
// Statistics semantics:
//
//	Attempts      - samples/attempts consumed so far.
//	Conflicts     - conflicts of the best-known coloring (0 while none known).
//	MeanConflicts - mean conflict count over all attempts.
//	SuccessRate   - fraction of attempts that were conflict-free.
//	Progress      - min(Attempts/budget, 1); 1 when the budget is 0.
package coloring
