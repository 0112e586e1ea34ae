// Package dayplan picks the most valuable errands you can finish before you
// have to be back home.
//
// 🚀 What is dayplan?
//
//	An exact planner for small orienteering problems with precedence:
//		• Locations joined by one-way roads with travel times
//		• A task per location with a score and a duration
//		• "task x requires task y" prerequisites
//		• One time budget for the whole round trip from home
//
//	It returns the highest achievable total score, the plan that reaches it
//	(moves and work steps with start/end times) and the completed tasks.
//
// ✨ How it works
//
//   - All-pairs shortest travel times (Dijkstra from every source, or Floyd–Warshall)
//   - Dynamic programming over (completed-set bitmask, current location)
//   - Moves inside one bitmask relaxed to a fixed point before its supersets
//   - Parent records walked back to print the plan
//
// Packages:
//
//	core/     — location graph with non-negative travel times
//	dijkstra/ — single-source shortest paths with predecessor vectors
//	matrix/   — all-pairs distance table and routes
//	prereq/   — prerequisite bitmasks and structural analysis
//	planner/  — DP engine, optimal-state selection, reconstruction, Solve
//	builder/  — seeded random instances
//	input/    — text and JSON instance formats
//	report/   — text and JSON rendering
//	store/    — SQLite plan history
//	config/   — CLI configuration files
//	cmd/dayplan — the command-line tool
//
// Exponential in the number of locations: practical up to about 20.
//
//	go install github.com/katalvlaran/dayplan/cmd/dayplan@latest
package dayplan
