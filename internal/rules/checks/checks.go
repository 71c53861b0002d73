// Package checks holds the deduction rules that make up the first-run score.
//
// The rule set is a plain table so each rule can be listed, audited and
// tested on its own. Table order is scoring order.
package checks

import (
	"readmefirst/internal/data"
	"readmefirst/internal/rules"
)

var sectionRules = []*SectionDocumentedRule{
	{
		RuleID:  "installation-documented",
		Section: data.SectionInstallation,
		Item:    "Installation instructions",
		Penalty: 15,
	},
	{
		RuleID:  "usage-documented",
		Section: data.SectionUsage,
		Item:    "Run / usage command",
		Penalty: 15,
	},
	{
		RuleID:  "example-documented",
		Section: data.SectionExample,
		Item:    "Example output",
		Penalty: 10,
	},
	{
		RuleID:  "prerequisites-documented",
		Section: data.SectionPrerequisites,
		Item:    "Prerequisites/requirements section",
		Penalty: 10,
	},
}

var markerRules = []*MarkerReferencedRule{
	{
		RuleID:  "requirements-txt-referenced",
		Marker:  data.MarkerRequirementsTxt,
		Needle:  "requirements",
		Penalty: 5,
	},
	{
		// Any "env" substring counts, so "environment" alone satisfies it.
		RuleID:  "env-example-referenced",
		Marker:  data.MarkerEnvExample,
		Needle:  "env",
		Penalty: 5,
	},
}

// All returns the deduction rules in scoring order.
func All() []rules.Rule {
	out := make([]rules.Rule, 0, len(sectionRules)+len(markerRules))
	for _, r := range sectionRules {
		out = append(out, r)
	}
	for _, r := range markerRules {
		out = append(out, r)
	}
	return out
}

func init() {
	for _, r := range All() {
		rules.Register(r)
	}
}
