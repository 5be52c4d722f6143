package modify

import (
	"github.com/inkgraph/inkgraph/pkg/element"
	ierr "github.com/inkgraph/inkgraph/pkg/errors"
)

// =============================================================================
// Phase 3: Post-Apply Integrity
// =============================================================================

// validateIntegrity re-validates the entire resulting collection: every id
// must be unique and every cross-element reference must resolve. Checked
// reference fields are startBinding/endBinding (and the legacy start/end
// forms), containerId, and boundElements entries.
func validateIntegrity(elements []element.Element) []ierr.Issue {
	var issues []ierr.Issue

	ids := make(map[string]bool, len(elements))
	for _, e := range elements {
		id := element.ID(e)
		if id == "" {
			issues = append(issues, ierr.NewIssue(ierr.CodeInvalidElement, "",
				"element is missing an id"))
			continue
		}
		if ids[id] {
			issues = append(issues, ierr.NewIssue(ierr.CodeDuplicateID, id,
				"id %q appears more than once", id))
		}
		ids[id] = true
	}

	for _, e := range elements {
		id := element.ID(e)
		for _, ref := range referencedIDs(e) {
			if !ids[ref.target] {
				issues = append(issues, ierr.NewIssue(ierr.CodeDanglingReference, id,
					"%s references missing element %q", ref.field, ref.target))
			}
		}
	}
	return issues
}

type reference struct {
	field  string
	target string
}

// referencedIDs collects every element id the element points at.
func referencedIDs(e element.Element) []reference {
	var refs []reference
	add := func(field, target string) {
		if target != "" {
			refs = append(refs, reference{field: field, target: target})
		}
	}

	for _, key := range []string{"startBinding", "endBinding"} {
		if b, ok := e[key].(map[string]any); ok {
			target, _ := b["elementId"].(string)
			add(key, target)
		}
	}
	// Legacy bindings carry the id directly under start/end.
	for _, key := range []string{"start", "end"} {
		if b, ok := e[key].(map[string]any); ok {
			target, _ := b["id"].(string)
			add(key, target)
		}
	}
	if target, ok := e["containerId"].(string); ok {
		add("containerId", target)
	}
	if bound, ok := e["boundElements"].([]any); ok {
		for _, entry := range bound {
			if b, ok := entry.(map[string]any); ok {
				target, _ := b["id"].(string)
				add("boundElements", target)
			}
		}
	}
	return refs
}
