// Package planner computes the highest-value day plan: which tasks to do,
// in which order, and how to travel between them, starting and ending at
// home (location 0) within a global time budget.
//
// Pipeline (Solve):
//
//  1. matrix.AllPairs        – shortest travel time for every ordered pair.
//  2. prereq.New             – dependency bitmask per task.
//  3. Engine.Run             – exact DP over (completed mask, location).
//  4. Engine.Select          – best state that can still get home in time.
//  5. Engine.Reconstruct     – forward action trace from parent records.
//
// DP state:
//
//	elapsed[mask][loc] = minimum time to stand at loc having completed
//	exactly the tasks in mask.
//
// Two transitions leave a state (mask, cur) with time t:
//
//	work:  cur ∉ mask and all prerequisites of cur ⊆ mask
//	       → (mask | bit(cur), cur) at t + duration[cur]
//	move:  dist[cur][next] finite
//	       → (mask, next) at t + dist[cur][next]
//
// A candidate is accepted iff it is ≤ Budget and strictly better than the
// stored time; ties keep the first parent found.
//
// Masks are processed in increasing numeric order. Work always leads to a
// larger mask, so every work predecessor is final before its successor is
// expanded. Moves stay inside the mask; they are relaxed to a fixed point
// (at most N rounds) before any work transition leaves that mask.
//
// Complexity:
//   - Time:   O(2ⁿ · n² · r) with r ≤ n relaxation rounds (usually 1–2).
//   - Memory: O(2ⁿ · n) · 10 bytes (int64 time + 2-byte parent record).
//
// The default location cap is DefaultMaxLocations; raise it with
// WithMaxLocations when the memory is available.
package planner
