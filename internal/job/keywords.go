package job

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// rankKeywords builds the ranked keyword list from the extracted skill
// groups. Frequency is the literal substring occurrence count in the
// lowercased text. The sort is stable, so equally frequent terms keep their
// extraction order: required skills first, then tools, then soft skills.
func rankKeywords(parsed *types.ParsedJobDescription, normalized string) []types.Keyword {
	keywords := []types.Keyword{}
	add := func(terms []string, category types.KeywordCategory) {
		for _, term := range terms {
			keywords = append(keywords, types.Keyword{
				Term:      term,
				Frequency: strings.Count(normalized, term),
				Category:  category,
			})
		}
	}
	add(parsed.RequiredSkills, types.CategoryTechnical)
	add(parsed.Tools, types.CategoryTool)
	add(parsed.SoftSkills, types.CategorySoft)

	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Frequency > keywords[j].Frequency
	})
	return keywords
}
