package checks

import (
	"fmt"
	"strings"

	"readmefirst/internal/data"
	"readmefirst/internal/readme"
	"readmefirst/internal/rules"
)

// SectionDocumentedRule fires when the README does not cover Section.
type SectionDocumentedRule struct {
	RuleID  string
	Section data.Section
	Item    string
	Penalty int
}

func (r *SectionDocumentedRule) ID() string {
	return r.RuleID
}

func (r *SectionDocumentedRule) Title() string {
	return "README documents " + string(r.Section)
}

func (r *SectionDocumentedRule) Description() string {
	return fmt.Sprintf("Verifies that the README covers %s. Matches any of these whole words (case-insensitive): %s.",
		r.Section, strings.Join(keywordsFor(r.Section), ", "))
}

func (r *SectionDocumentedRule) Points() int {
	return r.Penalty
}

func (r *SectionDocumentedRule) Evaluate(in rules.Input) (rules.Finding, bool) {
	if in.Sections.Has(r.Section) {
		return rules.Finding{}, false
	}
	return rules.Finding{Kind: rules.KindEssential, Item: r.Item}, true
}

func keywordsFor(sec data.Section) []string {
	for _, sk := range readme.SectionTable {
		if sk.Section == sec {
			return sk.Keywords
		}
	}
	return nil
}
