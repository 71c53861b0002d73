package rules

const (
	// MaxScore is the starting score before deductions.
	MaxScore = 100

	// NoReadmeEssential is the only essential reported when there is no README.
	NoReadmeEssential = "No README file found"
)

// Score applies set, in order, to in.
//
// Without a README the result is always 0 with a single essential and no
// other rule is consulted.
func Score(in Input, set []Rule) Report {
	if !in.HasReadme {
		return Report{
			Score:        0,
			Rating:       RatingFor(0),
			Essentials:   []string{NoReadmeEssential},
			Undocumented: []string{},
		}
	}

	rep := Report{
		Essentials:   []string{},
		Undocumented: []string{},
	}
	score := MaxScore
	for _, r := range set {
		f, ok := r.Evaluate(in)
		if !ok {
			continue
		}
		score -= r.Points()
		rep.Deductions = append(rep.Deductions, Deduction{RuleID: r.ID(), Points: r.Points(), Item: f.Item})
		switch f.Kind {
		case KindUndocumented:
			rep.Undocumented = append(rep.Undocumented, f.Item)
		default:
			rep.Essentials = append(rep.Essentials, f.Item)
		}
	}

	rep.Score = max(score, 0)
	rep.Rating = RatingFor(rep.Score)
	return rep
}

// Evaluate scores in against every registered rule.
func Evaluate(in Input) Report {
	return Score(in, List())
}
