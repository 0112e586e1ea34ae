// Package report renders plans and prerequisite reports for people (Text,
// Check) and for programs (JSON).
//
// Text styling goes through a lipgloss renderer bound to the output writer,
// so colors only appear on terminals that support them; WithPlain disables
// styling altogether.
package report
