package prereq

import "errors"

// MaxTasks is the widest task set a completed mask can hold.
const MaxTasks = 64

// Sentinel errors.
var (
	// ErrTooManyTasks indicates more tasks than a uint64 mask can hold.
	ErrTooManyTasks = errors.New("prereq: too many tasks for a 64-bit mask")

	// ErrTooFewTasks indicates a checker over zero tasks.
	ErrTooFewTasks = errors.New("prereq: need at least one task")

	// ErrTaskOutOfRange indicates a relation referencing an unknown task.
	ErrTaskOutOfRange = errors.New("prereq: task index out of range")

	// ErrNilChecker indicates a nil *Checker was passed to Analyze.
	ErrNilChecker = errors.New("prereq: checker is nil")
)

// Relation states that Task cannot be completed before Dependency.
type Relation struct {
	Task       int
	Dependency int
}
