package readme

import (
	"regexp"

	"readmefirst/internal/data"
)

// SectionKeywords ties a section to the words that, found as whole words,
// mark it as documented.
type SectionKeywords struct {
	Section  data.Section
	Keywords []string
}

// SectionTable is the detection rule set, in detection order.
var SectionTable = []SectionKeywords{
	{Section: data.SectionInstallation, Keywords: []string{"install", "setup"}},
	{Section: data.SectionUsage, Keywords: []string{"usage", "run"}},
	{Section: data.SectionPrerequisites, Keywords: []string{"requirements", "prerequisites"}},
	{Section: data.SectionExample, Keywords: []string{"example", "output", "demo"}},
}

// wordChars are the characters that continue a word: Unicode letters and
// numbers plus underscore. Combining marks end a word.
const wordChars = `\p{L}\p{N}_`

var keywordPatterns = compileKeywordPatterns(SectionTable)

func compileKeywordPatterns(table []SectionKeywords) map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp)
	for _, sk := range table {
		for _, kw := range sk.Keywords {
			out[kw] = wholeWordPattern(kw)
		}
	}
	return out
}

func wholeWordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^` + wordChars + `])` + regexp.QuoteMeta(word) + `(?:$|[^` + wordChars + `])`)
}

// ContainsWord reports whether word occurs in text delimited by word
// boundaries on both sides.
func ContainsWord(text, word string) bool {
	re, ok := keywordPatterns[word]
	if !ok {
		re = wholeWordPattern(word)
	}
	return re.MatchString(text)
}

// DetectSections returns the sections documented in text.
//
// text must already be lowercased (see Normalize).
func DetectSections(text string) data.SectionSet {
	found := data.NewSectionSet()
	if text == "" {
		return found
	}
	for _, sk := range SectionTable {
		for _, kw := range sk.Keywords {
			if ContainsWord(text, kw) {
				found[sk.Section] = struct{}{}
				break
			}
		}
	}
	return found
}
