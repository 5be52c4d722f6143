// Package modify applies add/remove/modify diffs to a persisted element
// collection with fail-atomic validation.
//
// Apply never mutates the caller's collection. Validation runs in phases:
// the diff schema first, then preconditions against the current collection,
// then (after applying) referential integrity of the resulting collection.
// Any issue in any phase discards the whole edit and reports every problem
// found, never a partial application.
package modify

import (
	"encoding/json"

	"github.com/inkgraph/inkgraph/pkg/element"
	ierr "github.com/inkgraph/inkgraph/pkg/errors"
)

// Modification patches a single element. Changes shallow-merges over the
// target; the id and type keys are immutable and skipped during the merge.
type Modification struct {
	ID      string          `json:"id"`
	Changes element.Element `json:"changes"`
}

// Diff is an edit request against an element collection.
type Diff struct {
	Add    []element.Element `json:"add,omitempty"`
	Remove []string          `json:"remove,omitempty"`
	Modify []Modification    `json:"modify,omitempty"`
}

// Empty reports whether the diff contains no operations.
func (d Diff) Empty() bool {
	return len(d.Add) == 0 && len(d.Remove) == 0 && len(d.Modify) == 0
}

// ParseDiff decodes a JSON diff. Malformed JSON or a JSON shape that does
// not match the diff schema is reported as an invalid-diff issue rather
// than a bare decoding error, so boundary callers get the same issue
// taxonomy as Apply.
func ParseDiff(data []byte) (Diff, error) {
	var d Diff
	if err := json.Unmarshal(data, &d); err != nil {
		return Diff{}, ierr.NewValidationError([]ierr.Issue{
			ierr.NewIssue(ierr.CodeInvalidDiff, "", "malformed diff: %v", err),
		})
	}
	return d, nil
}

// =============================================================================
// Phase 1: Diff Schema
// =============================================================================

// validateSchema checks that the diff's own entries are well formed.
func validateSchema(d Diff) []ierr.Issue {
	var issues []ierr.Issue
	for i, skel := range d.Add {
		if skel == nil {
			issues = append(issues, ierr.NewIssue(ierr.CodeInvalidDiff, "",
				"add[%d] is null", i))
			continue
		}
		if element.ID(skel) == "" {
			issues = append(issues, ierr.NewIssue(ierr.CodeInvalidElement, "",
				"add[%d] is missing an id", i))
		}
		if element.TypeOf(skel) == "" {
			issues = append(issues, ierr.NewIssue(ierr.CodeInvalidElement, element.ID(skel),
				"add[%d] is missing a type", i))
		}
	}
	for i, id := range d.Remove {
		if id == "" {
			issues = append(issues, ierr.NewIssue(ierr.CodeInvalidDiff, "",
				"remove[%d] has an empty id", i))
		}
	}
	for i, mod := range d.Modify {
		if mod.ID == "" {
			issues = append(issues, ierr.NewIssue(ierr.CodeInvalidDiff, "",
				"modify[%d] has an empty id", i))
		}
	}
	return issues
}

// =============================================================================
// Phase 2: Preconditions
// =============================================================================

// validatePreconditions checks the diff against the current collection:
// remove/modify targets must exist, add ids must be free (an id removed in
// the same batch counts as free), and modify must not change an id.
func validatePreconditions(elements []element.Element, d Diff) []ierr.Issue {
	existing := make(map[string]bool, len(elements))
	for _, e := range elements {
		existing[element.ID(e)] = true
	}
	removed := make(map[string]bool, len(d.Remove))
	for _, id := range d.Remove {
		removed[id] = true
	}

	var issues []ierr.Issue
	for _, id := range d.Remove {
		if id != "" && !existing[id] {
			issues = append(issues, ierr.NewIssue(ierr.CodeMissingElement, id,
				"cannot remove %q: no such element", id))
		}
	}
	for _, mod := range d.Modify {
		if mod.ID == "" {
			continue
		}
		if !existing[mod.ID] {
			issues = append(issues, ierr.NewIssue(ierr.CodeMissingElement, mod.ID,
				"cannot modify %q: no such element", mod.ID))
			continue
		}
		if newID, ok := mod.Changes["id"].(string); ok && newID != mod.ID {
			issues = append(issues, ierr.NewIssue(ierr.CodeImmutableID, mod.ID,
				"cannot change id of %q to %q", mod.ID, newID))
		}
	}
	batch := make(map[string]bool, len(d.Add))
	for _, skel := range d.Add {
		id := element.ID(skel)
		if id == "" {
			continue
		}
		if existing[id] && !removed[id] {
			issues = append(issues, ierr.NewIssue(ierr.CodeDuplicateID, id,
				"cannot add %q: id already exists", id))
		}
		if batch[id] {
			issues = append(issues, ierr.NewIssue(ierr.CodeDuplicateID, id,
				"cannot add %q: id duplicated within the diff", id))
		}
		batch[id] = true
	}
	return issues
}
