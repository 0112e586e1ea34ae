package planner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dayplan/core"
	"github.com/katalvlaran/dayplan/matrix"
	"github.com/katalvlaran/dayplan/prereq"
)

// Home is the location every plan starts and ends at.
const Home = 0

// Inf is the elapsed time of a state that is not reachable within budget.
const Inf = matrix.Inf

const (
	// DefaultMaxLocations keeps the DP tables around 200 MiB.
	DefaultMaxLocations = 20

	// HardMaxLocations is the widest instance WithMaxLocations accepts.
	HardMaxLocations = 30
)

// Sentinel errors.
var (
	ErrNilInstance       = errors.New("planner: instance is nil")
	ErrNilGraph          = errors.New("planner: instance graph is nil")
	ErrDimensionMismatch = errors.New("planner: scores/durations length differs from location count")
	ErrNegativeValue     = errors.New("planner: negative score, duration or budget")
	ErrTooManyLocations  = errors.New("planner: too many locations for the state table")
	ErrTableMismatch     = errors.New("planner: distance table or checker order differs from instance")
	ErrEngineNotRun      = errors.New("planner: engine has not been run")
	ErrStateOutOfRange   = errors.New("planner: state out of range or unreachable")
	ErrBrokenChain       = errors.New("planner: parent chain does not lead back to the initial state")
)

// Instance is one planning problem. It is read-only for the planner.
type Instance struct {
	// Graph holds the locations and roads; Graph.Order() is N.
	Graph *core.Graph

	// Scores[i] is the value of the task at location i.
	Scores []int64

	// Durations[i] is the time the task at location i takes.
	Durations []int64

	// Budget is the inclusive upper bound on total time, return trip included.
	Budget int64

	// Prerequisites lists requires(task, dependency) pairs.
	Prerequisites []prereq.Relation
}

// Order returns the number of locations, 0 for an instance without graph.
func (in *Instance) Order() int {
	if in == nil || in.Graph == nil {
		return 0
	}

	return in.Graph.Order()
}

// ActionKind tells a work step from a move step.
type ActionKind uint8

const (
	// None marks the initial state in parent records.
	None ActionKind = iota

	// Work performs the task at the current location.
	Work

	// Move travels between two locations along a shortest route.
	Move
)

// String returns "none", "work" or "move".
func (k ActionKind) String() string {
	switch k {
	case None:
		return "none"
	case Work:
		return "work"
	case Move:
		return "move"
	default:
		return fmt.Sprintf("ActionKind(%d)", uint8(k))
	}
}

// MarshalText encodes the kind by name.
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *ActionKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "none":
		*k = None
	case "work":
		*k = Work
	case "move":
		*k = Move
	default:
		return fmt.Errorf("planner: unknown action kind %q", b)
	}

	return nil
}

// Action is one step of a plan.
type Action struct {
	Kind ActionKind `json:"kind"`

	// From and To are the endpoints of a move; both equal the location for work.
	From int `json:"from"`
	To   int `json:"to"`

	// Start and End are elapsed times since leaving home.
	Start int64 `json:"start"`
	End   int64 `json:"end"`

	// Mask is the completed-task set after the action.
	Mask uint64 `json:"mask"`

	// Return marks the trip home appended after the optimal state.
	Return bool `json:"return,omitempty"`

	// Via lists the locations of the concrete route of a move, endpoints
	// included. Only filled with WithRoutes.
	Via []int `json:"via,omitempty"`
}

// Location is where a work action happens (To for moves).
func (a Action) Location() int {
	return a.To
}

// String renders the action in one line.
func (a Action) String() string {
	if a.Kind == Work {
		return fmt.Sprintf("work at %d [%d→%d]", a.To, a.Start, a.End)
	}

	return fmt.Sprintf("move %d→%d [%d→%d]", a.From, a.To, a.Start, a.End)
}

// CompletedTask describes one task of the plan.
type CompletedTask struct {
	Location int   `json:"location"`
	Score    int64 `json:"score"`
	Duration int64 `json:"duration"`
}

// Stats reports the size of the explored state space.
type Stats struct {
	Locations   int    `json:"locations"`
	States      uint64 `json:"states"`
	Reached     uint64 `json:"reached"`
	Relaxations uint64 `json:"relaxations"`
	MoveRounds  uint64 `json:"move_rounds"`
}

// Plan is the result of Solve.
type Plan struct {
	// Score is the total value of the completed tasks; 0 when nothing fits.
	Score int64 `json:"score"`

	// TotalTime is the elapsed time of the whole plan, return trip included.
	TotalTime int64 `json:"total_time"`

	// Budget echoes the instance budget.
	Budget int64 `json:"budget"`

	// Mask is the set of completed tasks.
	Mask uint64 `json:"mask"`

	// End is the location of the optimal state before the return trip.
	End int `json:"end"`

	// Actions is the forward-chronological trace; empty when Score is 0.
	Actions []Action `json:"actions"`

	// Completed lists the tasks in Mask by ascending location.
	Completed []CompletedTask `json:"completed"`

	Stats Stats `json:"stats"`
}

// Empty reports whether the plan completes no task of positive value.
func (p *Plan) Empty() bool {
	return p == nil || p.Score == 0
}

// RelaxEvent describes one accepted improvement of a DP state.
type RelaxEvent struct {
	Mask     uint64
	Location int
	Old      int64 // Inf on first reach
	New      int64
	Kind     ActionKind
	From     int
}
