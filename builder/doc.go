// SPDX-License-Identifier: MIT
// Package builder generates reproducible planning instances for tests,
// benchmarks and the `dayplan gen` command.
//
// RandomInstance(n, opts...) samples:
//   - a directed road graph: each ordered pair (i,j), i≠j, gets an edge with
//     probability p (WithEdgeProbability), weight from WithWeightFn;
//   - scores in [1, maxScore] and durations in [0, maxDuration] for every
//     location except home, which keeps score 0 and duration 0;
//   - prerequisites: each pair (task, dependency) with dependency < task
//     (acyclic by construction) is related with probability q
//     (WithPrereqProbability); WithCyclicPrereqs lifts the ordering;
//   - a budget (WithBudget, or a size-derived default).
//
// Determinism:
//   - Trials run in a fixed order (i asc, j asc), so a fixed seed and fixed
//     options always give the same instance.
//   - A stochastic builder without WithSeed/WithRand fails with
//     ErrNeedRandSource rather than falling back to a hidden global source.
package builder
