package checks

import (
	"fmt"
	"strings"

	"readmefirst/internal/data"
	"readmefirst/internal/rules"
)

// MarkerReferencedRule fires when Marker exists but the README never
// mentions Needle. This is a plain substring search, looser than section
// detection.
type MarkerReferencedRule struct {
	RuleID  string
	Marker  data.MarkerFile
	Needle  string
	Penalty int
}

func (r *MarkerReferencedRule) ID() string {
	return r.RuleID
}

func (r *MarkerReferencedRule) Title() string {
	return string(r.Marker) + " is referenced in README"
}

func (r *MarkerReferencedRule) Description() string {
	return fmt.Sprintf("When %s exists at the repository root, verifies that the README mentions %q anywhere in its text.", r.Marker, r.Needle)
}

func (r *MarkerReferencedRule) Points() int {
	return r.Penalty
}

func (r *MarkerReferencedRule) Evaluate(in rules.Input) (rules.Finding, bool) {
	if !in.Markers.Has(r.Marker) {
		return rules.Finding{}, false
	}
	if strings.Contains(in.ReadmeText, r.Needle) {
		return rules.Finding{}, false
	}
	return rules.Finding{Kind: rules.KindUndocumented, Item: string(r.Marker)}, true
}
