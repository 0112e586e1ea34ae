// SPDX-License-Identifier: MIT

package input

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/dayplan/core"
	"github.com/katalvlaran/dayplan/planner"
	"github.com/katalvlaran/dayplan/prereq"
)

// Document is the JSON form of an instance. The location count is
// len(Scores).
type Document struct {
	Budget        int64          `json:"budget"`
	Scores        []int64        `json:"scores"`
	Durations     []int64        `json:"durations"`
	Roads         []Road         `json:"roads"`
	Prerequisites []Prerequisite `json:"prerequisites,omitempty"`
}

// Road is one directed edge.
type Road struct {
	From int   `json:"from"`
	To   int   `json:"to"`
	Time int64 `json:"time"`
}

// Prerequisite says Task requires Requires.
type Prerequisite struct {
	Task     int `json:"task"`
	Requires int `json:"requires"`
}

// ParseJSON decodes one Document and builds the instance.
func ParseJSON(r io.Reader) (*planner.Instance, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return doc.Instance()
}

// Instance converts the document.
func (d *Document) Instance() (*planner.Instance, error) {
	n := len(d.Scores)
	if n < 1 || n > planner.HardMaxLocations || len(d.Durations) != n {
		return nil, fmt.Errorf("%w: scores=%d (max %d) durations=%d", ErrShape, n, planner.HardMaxLocations, len(d.Durations))
	}

	g, err := core.NewGraph(n, core.WithMultiEdges(), core.WithLoops())
	if err != nil {
		return nil, err
	}
	for i, r := range d.Roads {
		if err = g.AddEdge(r.From, r.To, r.Time); err != nil {
			return nil, fmt.Errorf("input: road %d (%d→%d): %w", i, r.From, r.To, err)
		}
	}

	in := &planner.Instance{
		Graph:     g,
		Scores:    append([]int64(nil), d.Scores...),
		Durations: append([]int64(nil), d.Durations...),
		Budget:    d.Budget,
	}
	for i, p := range d.Prerequisites {
		if p.Task < 0 || p.Task >= n || p.Requires < 0 || p.Requires >= n {
			return nil, fmt.Errorf("input: prerequisite %d (%d %d): %w", i, p.Task, p.Requires, prereq.ErrTaskOutOfRange)
		}
		in.Prerequisites = append(in.Prerequisites, prereq.Relation{Task: p.Task, Dependency: p.Requires})
	}

	return in, nil
}

// NewDocument captures in as a Document.
func NewDocument(in *planner.Instance) (*Document, error) {
	if in == nil || in.Graph == nil {
		return nil, ErrNilInstance
	}
	d := &Document{
		Budget:    in.Budget,
		Scores:    append([]int64(nil), in.Scores...),
		Durations: append([]int64(nil), in.Durations...),
		Roads:     []Road{},
	}
	for _, e := range in.Graph.Edges() {
		d.Roads = append(d.Roads, Road{From: e.From, To: e.To, Time: e.Weight})
	}
	for _, r := range in.Prerequisites {
		d.Prerequisites = append(d.Prerequisites, Prerequisite{Task: r.Task, Requires: r.Dependency})
	}

	return d, nil
}

// WriteJSON encodes in as an indented Document.
func WriteJSON(w io.Writer, in *planner.Instance) error {
	d, err := NewDocument(in)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(d)
}

// Digest is a stable hex SHA-256 of the canonical JSON form of in. Equal
// instances (same road order included) share a digest.
func Digest(in *planner.Instance) (string, error) {
	d, err := NewDocument(in)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("input: digest: %w", err)
	}
	sum := sha256.Sum256(b)

	return hex.EncodeToString(sum[:]), nil
}
