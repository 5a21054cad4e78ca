// Package errs defines the error kinds tabframe reports across construction
// and access operations, grounded on the teacher's ConstraintError.
package errs

import (
	"fmt"
	"strings"
)

// Kind classifies a failure so callers can pattern-match instead of parsing
// error strings.
type Kind string

const (
	KindSchemaViolation      Kind = "schema_violation"
	KindParseFailure         Kind = "parse_failure"
	KindIndexConstruction    Kind = "index_construction"
	KindExpressionValidation Kind = "expression_validation"
	KindRangeViolation       Kind = "range_violation"
	KindNullPolicyViolation  Kind = "null_policy_violation"
	KindStaleIndex           Kind = "stale_index"
)

// Error is the single error type used across the module. It carries enough
// context for both a human-readable message and a structured diagnostic.
type Error struct {
	Op       string // operation that failed, e.g. "Frame.AppendRowStrings"
	Kind     Kind
	Table    string
	Column   string
	Value    any
	Reason   string
	RowIndex int // -1 if not applicable
}

func (e *Error) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%s: %s", e.Op, e.Kind))
	if e.Table != "" {
		if e.Column != "" {
			parts = append(parts, fmt.Sprintf("%s.%s", e.Table, e.Column))
		} else {
			parts = append(parts, e.Table)
		}
	} else if e.Column != "" {
		parts = append(parts, e.Column)
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.RowIndex >= 0 {
		parts = append(parts, fmt.Sprintf("at row %d", e.RowIndex))
	}
	return strings.Join(parts, " - ")
}

func New(op string, kind Kind, reason string) *Error {
	return &Error{Op: op, Kind: kind, Reason: reason, RowIndex: -1}
}

func (e *Error) WithColumn(name string) *Error {
	e.Column = name
	return e
}

func (e *Error) WithTable(name string) *Error {
	e.Table = name
	return e
}

func (e *Error) WithValue(v any) *Error {
	e.Value = v
	return e
}

func (e *Error) WithRow(i int) *Error {
	e.RowIndex = i
	return e
}

// Is supports errors.Is(err, errs.Sentinel(errs.KindX)) style checks: two
// *Error values match when their Kinds are equal.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinel returns a comparable *Error carrying only a Kind, useful with
// errors.Is.
func Sentinel(k Kind) *Error {
	return &Error{Kind: k, RowIndex: -1}
}
