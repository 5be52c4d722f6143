// Package errors provides structured issue and error types for Inkgraph.
//
// This package defines machine-readable issue codes that enable:
//   - Consistent error reporting across library and API consumers
//   - Programmatic branching on validation failures
//   - Aggregation of every problem found in a single pass
//
// # Issue Codes
//
// Issue codes describe structural problems with a diff or an element
// collection:
//   - invalid-diff: the diff itself is malformed
//   - invalid-element: an element is missing required fields (e.g. id)
//   - missing-element: a remove/modify target does not exist
//   - duplicate-id: an id collides with an existing or same-batch element
//   - immutable-id: a modify attempted to change an element's id
//   - dangling-reference: the resulting collection references a missing id
//
// # Usage
//
//	issues := []errors.Issue{errors.NewIssue(errors.CodeMissingElement, "x", "no such element")}
//	err := errors.NewValidationError(issues)
//	var verr *errors.ValidationError
//	if stderrors.As(err, &verr) {
//	    // inspect verr.Issues
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable issue code.
type Code string

// Issue codes reported by diff validation and post-apply integrity checks.
const (
	CodeInvalidDiff       Code = "invalid-diff"
	CodeInvalidElement    Code = "invalid-element"
	CodeMissingElement    Code = "missing-element"
	CodeDuplicateID       Code = "duplicate-id"
	CodeImmutableID       Code = "immutable-id"
	CodeDanglingReference Code = "dangling-reference"
)

// Issue describes a single validation problem. ElementID is empty for
// problems that are not attributable to one element (e.g. a malformed diff).
type Issue struct {
	Code      Code   `json:"code"`
	ElementID string `json:"elementId,omitempty"`
	Message   string `json:"message"`
}

// NewIssue creates an issue with a formatted message.
func NewIssue(code Code, elementID, format string, args ...any) Issue {
	return Issue{
		Code:      code,
		ElementID: elementID,
		Message:   fmt.Sprintf(format, args...),
	}
}

// String renders the issue as "code (elementId): message".
func (i Issue) String() string {
	if i.ElementID != "" {
		return fmt.Sprintf("%s (%s): %s", i.Code, i.ElementID, i.Message)
	}
	return fmt.Sprintf("%s: %s", i.Code, i.Message)
}

// ValidationError aggregates every issue found while validating a diff or
// the collection produced by applying it. Issues are reported as a whole so
// callers can surface all problems at once instead of fixing them one by one.
type ValidationError struct {
	Issues []Issue
}

// NewValidationError wraps a non-empty issue list. Returns nil when the
// list is empty, so it can be returned directly from validation passes.
func NewValidationError(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return e.Issues[0].String()
	}
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("%d issues: %s", len(e.Issues), strings.Join(parts, "; "))
}

// IssuesOf extracts the issue list from an error chain.
// Returns nil if no ValidationError is present.
func IssuesOf(err error) []Issue {
	var e *ValidationError
	if errors.As(err, &e) {
		return e.Issues
	}
	return nil
}

// HasCode reports whether any issue in the error chain carries the code.
func HasCode(err error, code Code) bool {
	for _, issue := range IssuesOf(err) {
		if issue.Code == code {
			return true
		}
	}
	return false
}
