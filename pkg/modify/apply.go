package modify

import (
	"github.com/inkgraph/inkgraph/pkg/element"
	ierr "github.com/inkgraph/inkgraph/pkg/errors"
)

// Changes records which elements an applied diff actually touched. A modify
// whose merged result deep-equals the original is a no-op and does not
// appear in ModifiedIDs, so retried diffs report stable change sets.
type Changes struct {
	AddedIDs    []string `json:"addedIds"`
	RemovedIDs  []string `json:"removedIds"`
	ModifiedIDs []string `json:"modifiedIds"`
}

// Result is the outcome of a successfully applied diff.
type Result struct {
	Elements []element.Element `json:"elements"`
	Changes  Changes           `json:"changes"`
}

// Apply applies a diff to an element collection and returns the new
// collection. The input is deep-cloned first and is never mutated, even on
// failure. On any validation issue Apply returns a *errors.ValidationError
// carrying every issue found in the failing phase.
//
// Operations apply in fixed order: remove, then modify, then add. The order
// is observable — an add may legally reuse an id freed by a remove in the
// same diff.
func Apply(elements []element.Element, diff Diff) (*Result, error) {
	if issues := validateSchema(diff); len(issues) > 0 {
		return nil, ierr.NewValidationError(issues)
	}
	if issues := validatePreconditions(elements, diff); len(issues) > 0 {
		return nil, ierr.NewValidationError(issues)
	}

	work := element.CloneAll(elements)
	changes := Changes{
		AddedIDs:    []string{},
		RemovedIDs:  []string{},
		ModifiedIDs: []string{},
	}

	work, changes.RemovedIDs = applyRemoves(work, diff.Remove)

	for _, mod := range diff.Modify {
		if applyModify(work, mod) {
			changes.ModifiedIDs = append(changes.ModifiedIDs, mod.ID)
		}
	}

	alloc := element.NewIndexAllocator(work)
	for _, skel := range diff.Add {
		work = append(work, element.Synthesize(skel, alloc.Next()))
		changes.AddedIDs = append(changes.AddedIDs, element.ID(skel))
	}

	if issues := validateIntegrity(work); len(issues) > 0 {
		return nil, ierr.NewValidationError(issues)
	}
	return &Result{Elements: work, Changes: changes}, nil
}

func applyRemoves(work []element.Element, ids []string) ([]element.Element, []string) {
	removed := make(map[string]bool, len(ids))
	for _, id := range ids {
		removed[id] = true
	}
	kept := work[:0]
	for _, e := range work {
		if !removed[element.ID(e)] {
			kept = append(kept, e)
		}
	}
	return kept, append([]string{}, ids...)
}

// applyModify merges the patch into the target in place and reports whether
// the element actually changed.
func applyModify(work []element.Element, mod Modification) bool {
	target := findByID(work, mod.ID)
	if target == nil {
		return false
	}
	before := element.Clone(target)
	mergeChanges(target, mod.Changes)
	if shouldFlipPoints(before, target, mod.Changes) {
		reversePoints(target)
	}
	return !element.Equal(before, target)
}

// mergeChanges shallow-merges the patch. Values are cloned on the way in so
// the result never aliases the caller's diff. The id and type keys are
// immutable and silently skipped.
func mergeChanges(target element.Element, patch element.Element) {
	for k, v := range patch {
		if k == "id" || k == "type" {
			continue
		}
		target[k] = element.CloneValue(v)
	}
}

func findByID(work []element.Element, id string) element.Element {
	for _, e := range work {
		if element.ID(e) == id {
			return e
		}
	}
	return nil
}

// =============================================================================
// Binding Auto-Flip
// =============================================================================

// shouldFlipPoints detects a pure binding swap on an arrow: the patch does
// not touch points, and after the merge the start/end binding targets are
// exactly the reverse of what they were. Reversing the existing points then
// keeps the drawn direction consistent with the new bindings. This is a
// targeted heuristic, not geometry recomputation.
func shouldFlipPoints(before, after element.Element, patch element.Element) bool {
	if !element.IsLinear(after) {
		return false
	}
	if _, ok := patch["points"]; ok {
		return false
	}
	oldStart, oldEnd := bindingTarget(before, "startBinding", "start"), bindingTarget(before, "endBinding", "end")
	newStart, newEnd := bindingTarget(after, "startBinding", "start"), bindingTarget(after, "endBinding", "end")
	if oldStart == "" || oldEnd == "" || oldStart == oldEnd {
		return false
	}
	return newStart == oldEnd && newEnd == oldStart
}

// bindingTarget resolves the element id an endpoint is bound to, accepting
// both the startBinding/endBinding form and the legacy start/end form that
// carries the id directly. The same pair of forms is honored by the
// integrity phase.
func bindingTarget(e element.Element, key, legacyKey string) string {
	if b, ok := e[key].(map[string]any); ok {
		if id, _ := b["elementId"].(string); id != "" {
			return id
		}
	}
	if b, ok := e[legacyKey].(map[string]any); ok {
		if id, _ := b["id"].(string); id != "" {
			return id
		}
	}
	return ""
}

func reversePoints(e element.Element) {
	points, ok := e["points"].([]any)
	if !ok {
		return
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
