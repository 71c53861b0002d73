package rules

// FindingKind says which report list a finding belongs to.
type FindingKind string

const (
	// KindEssential is a required documentation item that is missing.
	KindEssential FindingKind = "essential"
	// KindUndocumented is a marker file present on disk but never mentioned.
	KindUndocumented FindingKind = "undocumented"
)

// Finding is what a fired rule contributes to the report.
type Finding struct {
	Kind FindingKind
	Item string
}

// Deduction records one fired rule.
type Deduction struct {
	RuleID string `json:"rule_id"`
	Points int    `json:"points"`
	Item   string `json:"item"`
}

// Rating is the qualitative label attached to a score.
type Rating string

const (
	RatingUserHostile       Rating = "User-hostile"
	RatingNeedsWork         Rating = "Needs Work"
	RatingDeveloperFriendly Rating = "Developer-friendly"
)

// RatingFor maps a score to its label: <50 hostile, 50-79 needs work,
// >=80 friendly.
func RatingFor(score int) Rating {
	switch {
	case score < 50:
		return RatingUserHostile
	case score < 80:
		return RatingNeedsWork
	default:
		return RatingDeveloperFriendly
	}
}

// Report is the scorer's result. It is never mutated after Score returns.
type Report struct {
	Score        int         `json:"score"`
	Rating       Rating      `json:"rating"`
	Essentials   []string    `json:"essentials"`
	Undocumented []string    `json:"undocumented"`
	Deductions   []Deduction `json:"deductions,omitempty"`
}
