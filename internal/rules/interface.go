package rules

import "readmefirst/internal/data"

// Rule is one fixed deduction in the first-run score.
type Rule interface {
	ID() string
	Title() string
	Description() string

	// Points is subtracted from the score when the rule fires.
	Points() int

	// Evaluate reports whether the deduction applies and what it reports.
	// Rules MUST NOT perform I/O; Input carries everything they may look at.
	Evaluate(in Input) (Finding, bool)
}

// Input is what the scorer sees of a repository.
type Input struct {
	HasReadme bool
	// ReadmeText is the lowercased README content.
	ReadmeText string
	Sections   data.SectionSet
	Markers    data.MarkerSet
}

// InputFromSnapshot combines a snapshot with the sections detected in its
// README.
func InputFromSnapshot(s *data.Snapshot, sections data.SectionSet) Input {
	if s == nil {
		return Input{}
	}
	return Input{
		HasReadme:  s.HasReadme,
		ReadmeText: s.ReadmeText,
		Sections:   sections,
		Markers:    s.Markers,
	}
}
