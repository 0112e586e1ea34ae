// Package prereq answers one question for the planner: may task t be
// performed now, given the set of tasks already completed?
//
// Prerequisites are a relation requires(task, dependency). The Checker
// folds every task's dependencies into a bitmask once, so CanPerform is a
// single AND over the completed mask.
//
// Cycles are not an error. A task on a cycle, or depending on one, simply
// never becomes performable; Analyze reports those tasks up front, together
// with tasks whose location cannot be visited on a round trip from home.
package prereq
