// SPDX-License-Identifier: MIT

package input

import "errors"

var (
	// ErrSyntax indicates a token that is not an integer or a truncated document.
	ErrSyntax = errors.New("input: syntax error")

	// ErrShape indicates counts that disagree with each other (N < 1, M < 0, K < 0,
	// or vector lengths different from N).
	ErrShape = errors.New("input: inconsistent sizes")

	// ErrTrailingData indicates tokens after the last prerequisite.
	ErrTrailingData = errors.New("input: unexpected trailing data")

	// ErrNilInstance is returned by the encoders for a nil instance or graph.
	ErrNilInstance = errors.New("input: nil instance")
)
