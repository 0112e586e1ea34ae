// SPDX-License-Identifier: MIT
// Package input decodes and encodes planning instances.
//
// Two formats are supported.
//
// Text, whitespace separated, line breaks insignificant:
//
//	N M T
//	s_0 … s_{N-1}        task scores
//	d_0 … d_{N-1}        task durations
//	a b t                M roads, a→b in t time units
//	K
//	x y                  K prerequisites, task x requires task y
//
// JSON, see Document:
//
//	{"budget": 20, "scores": [0, 10], "durations": [0, 5],
//	 "roads": [{"from": 0, "to": 1, "time": 2}],
//	 "prerequisites": [{"task": 1, "requires": 0}]}
//
// N is capped at planner.HardMaxLocations before anything is allocated.
//
// Decoders build the graph with multi-edges and loops allowed, so any road
// list the solver accepts round-trips. Range and sign violations surface as
// the core/prereq sentinel errors wrapped with the offending record.
package input
