package ats

import (
	"fmt"
	"math"

	"github.com/jonathan/ats-scorer/internal/types"
)

// buildSuggestions assembles the improvement list in a fixed priority order:
// missing keywords, critical format issues, title and experience gaps, then
// lower-value format warnings and recommendations. Output order is part of
// the contract.
func buildSuggestions(keywords types.KeywordMatchResult, format types.FormatCheckResult,
	titleScore, experienceScore int, job *types.JobRequirements) []types.Suggestion {
	suggestions := []types.Suggestion{}

	if len(keywords.Missing) > 0 {
		impact := int(math.Round(5.0 / float64(len(keywords.Missing)) * 10))
		for _, kw := range firstN(keywords.Missing, 5) {
			suggestions = append(suggestions, types.Suggestion{
				Priority:        types.PriorityHigh,
				Category:        types.SuggestionKeyword,
				Issue:           fmt.Sprintf("Missing keyword: %q", kw),
				Action:          fmt.Sprintf("Add %q to your skills or experience sections if you have this competency", kw),
				EstimatedImpact: fmt.Sprintf("+%d points", impact),
			})
		}
	}

	for _, issue := range format.Issues {
		if issue.Type != types.IssueCritical {
			continue
		}
		suggestions = append(suggestions, types.Suggestion{
			Priority:        types.PriorityHigh,
			Category:        types.SuggestionFormat,
			Issue:           issue.Message,
			Action:          fmt.Sprintf("Fix this issue in %s", orResume(issue.Location)),
			EstimatedImpact: "+3-5 points",
		})
	}

	if titleScore < 50 {
		suggestions = append(suggestions, types.Suggestion{
			Priority:        types.PriorityMedium,
			Category:        types.SuggestionContent,
			Issue:           "Job title does not closely match target position",
			Action:          fmt.Sprintf("Consider tailoring your most recent title to better match %q", job.Title),
			EstimatedImpact: "+5-8 points",
		})
	}

	if experienceScore < 70 {
		suggestions = append(suggestions, types.Suggestion{
			Priority:        types.PriorityMedium,
			Category:        types.SuggestionExperience,
			Issue:           "Experience may not fully meet requirements",
			Action:          "Highlight relevant projects, certifications, or transferable skills",
			EstimatedImpact: "+3-5 points",
		})
	}

	warnings := 0
	for _, issue := range format.Issues {
		if issue.Type != types.IssueWarning || warnings >= 3 {
			continue
		}
		warnings++
		suggestions = append(suggestions, types.Suggestion{
			Priority:        types.PriorityLow,
			Category:        types.SuggestionFormat,
			Issue:           issue.Message,
			Action:          fmt.Sprintf("Consider addressing this in %s", orResume(issue.Location)),
			EstimatedImpact: "+1-2 points",
		})
	}

	for _, rec := range firstN(format.Recommendations, 2) {
		suggestions = append(suggestions, types.Suggestion{
			Priority:        types.PriorityLow,
			Category:        types.SuggestionStructure,
			Issue:           "Improvement opportunity",
			Action:          rec,
			EstimatedImpact: "+1-2 points",
		})
	}

	return suggestions
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func orResume(location string) string {
	if location == "" {
		return "your resume"
	}
	return location
}
