package report

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/dayplan/planner"
)

// JSON writes p as indented JSON.
func JSON(w io.Writer, p *planner.Plan) error {
	if p == nil {
		return ErrNilPlan
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(p)
}
