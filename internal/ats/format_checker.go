package ats

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/patterns"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Sub-check budgets. The six checks sum to 100.
const (
	contactBudget    = 20
	experienceBudget = 25
	educationBudget  = 15
	skillsBudget     = 20
	summaryBudget    = 10
	structureBudget  = 10
)

// CheckFormat evaluates the structural completeness of a parsed resume. Six
// independent sub-checks each score a fixed budget; deductions within a check
// never push it below zero, and the total is clamped to [0, 100]. Issues and
// recommendations accumulate in check order, so output order is stable.
func CheckFormat(resume *types.ResumeContent) types.FormatCheckResult {
	result := types.FormatCheckResult{
		Issues:          []types.FormatIssue{},
		Recommendations: []string{},
	}

	score := checkContact(resume, &result)
	score += checkExperience(resume, &result)
	score += checkEducation(resume, &result)
	score += checkSkills(resume, &result)
	score += checkSummary(resume, &result)
	score += checkStructure(resume, &result)

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	result.Score = score
	return result
}

func checkContact(resume *types.ResumeContent, result *types.FormatCheckResult) int {
	score := contactBudget
	contact := resume.ContactInfo

	if contact.FullName == "" || contact.FullName == types.UnknownName {
		result.Issues = append(result.Issues, types.FormatIssue{
			Type:     types.IssueCritical,
			Message:  "Name is missing or could not be parsed",
			Location: "Contact Information",
		})
		score -= 5
	}
	if contact.Email == "" || !strings.Contains(contact.Email, "@") {
		result.Issues = append(result.Issues, types.FormatIssue{
			Type:     types.IssueCritical,
			Message:  "Valid email address is required",
			Location: "Contact Information",
		})
		score -= 5
	}
	if contact.Phone == "" {
		result.Issues = append(result.Issues, types.FormatIssue{
			Type:     types.IssueWarning,
			Message:  "Phone number is recommended",
			Location: "Contact Information",
		})
		score -= 2
	}
	if contact.LinkedIn == "" {
		result.Recommendations = append(result.Recommendations,
			"Add LinkedIn profile URL to improve professional presence")
		score--
	}
	if contact.Location == "" {
		result.Issues = append(result.Issues, types.FormatIssue{
			Type:     types.IssueInfo,
			Message:  "Consider adding city/state location",
			Location: "Contact Information",
		})
		score--
	}

	return clampZero(score)
}

func checkExperience(resume *types.ResumeContent, result *types.FormatCheckResult) int {
	if len(resume.Experience) == 0 {
		result.Issues = append(result.Issues, types.FormatIssue{
			Type:     types.IssueCritical,
			Message:  "Work experience section is missing or empty",
			Location: "Experience",
		})
		return 0
	}

	score := experienceBudget
	for i, entry := range resume.Experience {
		name := entry.Company
		if name == "" {
			name = fmt.Sprintf("entry %d", i+1)
		}

		if entry.Title == "" || entry.Title == types.UnknownTitle {
			result.Issues = append(result.Issues, types.FormatIssue{
				Type:     types.IssueWarning,
				Message:  fmt.Sprintf("Job title missing for experience entry %d", i+1),
				Location: "Experience",
			})
			score -= 2
		}
		if entry.Company == "" || entry.Company == types.UnknownCompany {
			result.Issues = append(result.Issues, types.FormatIssue{
				Type:     types.IssueWarning,
				Message:  fmt.Sprintf("Company name missing for experience entry %d", i+1),
				Location: "Experience",
			})
			score -= 2
		}

		if len(entry.Bullets) == 0 {
			result.Issues = append(result.Issues, types.FormatIssue{
				Type:     types.IssueWarning,
				Message:  fmt.Sprintf("No bullet points for experience at %s", name),
				Location: "Experience",
			})
			score -= 3
		} else {
			short := 0
			quantified := false
			for _, bullet := range entry.Bullets {
				if len(bullet) < 30 {
					short++
				}
				if patterns.Quantified.MatchString(bullet) {
					quantified = true
				}
			}
			if short > len(entry.Bullets)/2 {
				result.Recommendations = append(result.Recommendations,
					fmt.Sprintf("Expand bullet points for %s with more detail and metrics", name))
				score--
			}
			if !quantified {
				result.Recommendations = append(result.Recommendations,
					fmt.Sprintf("Add quantified achievements (numbers, percentages) for %s", name))
				score--
			}
		}

		if entry.StartDate == "" {
			result.Issues = append(result.Issues, types.FormatIssue{
				Type:     types.IssueInfo,
				Message:  fmt.Sprintf("Missing start date for %s", name),
				Location: "Experience",
			})
			score--
		}
	}

	return clampZero(score)
}

func checkEducation(resume *types.ResumeContent, result *types.FormatCheckResult) int {
	if len(resume.Education) == 0 {
		result.Issues = append(result.Issues, types.FormatIssue{
			Type:     types.IssueWarning,
			Message:  "Education section is missing",
			Location: "Education",
		})
		return 5
	}

	score := educationBudget
	for _, entry := range resume.Education {
		if entry.Institution == "" || entry.Institution == types.UnknownInstitution {
			result.Issues = append(result.Issues, types.FormatIssue{
				Type:     types.IssueWarning,
				Message:  "Institution name is missing",
				Location: "Education",
			})
			score -= 3
		}
		if entry.Degree == "" || entry.Degree == types.UnknownDegree {
			result.Issues = append(result.Issues, types.FormatIssue{
				Type:     types.IssueWarning,
				Message:  "Degree information is missing",
				Location: "Education",
			})
			score -= 3
		}
	}

	return clampZero(score)
}

func checkSkills(resume *types.ResumeContent, result *types.FormatCheckResult) int {
	if len(resume.Skills) == 0 {
		result.Issues = append(result.Issues, types.FormatIssue{
			Type:     types.IssueCritical,
			Message:  "Skills section is missing - critical for ATS matching",
			Location: "Skills",
		})
		return 0
	}

	score := skillsBudget
	if len(resume.Skills) < 5 {
		result.Issues = append(result.Issues, types.FormatIssue{
			Type:     types.IssueWarning,
			Message:  "Skills section has fewer than 5 skills",
			Location: "Skills",
		})
		result.Recommendations = append(result.Recommendations,
			"Add more relevant skills to improve keyword matching")
		score -= 5
	}
	if len(resume.Skills) > 30 {
		result.Issues = append(result.Issues, types.FormatIssue{
			Type:     types.IssueInfo,
			Message:  "Skills section may be too long - consider prioritizing top skills",
			Location: "Skills",
		})
		score -= 2
	}

	return clampZero(score)
}

func checkSummary(resume *types.ResumeContent, result *types.FormatCheckResult) int {
	if resume.Summary == "" {
		result.Issues = append(result.Issues, types.FormatIssue{
			Type:     types.IssueInfo,
			Message:  "Professional summary is missing",
			Location: "Summary",
		})
		result.Recommendations = append(result.Recommendations,
			"Add a 2-3 sentence professional summary highlighting key qualifications")
		return 5
	}

	score := summaryBudget
	if len(resume.Summary) < 50 {
		result.Issues = append(result.Issues, types.FormatIssue{
			Type:     types.IssueWarning,
			Message:  "Professional summary is too short",
			Location: "Summary",
		})
		score -= 3
	}
	if len(resume.Summary) > 500 {
		result.Issues = append(result.Issues, types.FormatIssue{
			Type:     types.IssueInfo,
			Message:  "Professional summary may be too long",
			Location: "Summary",
		})
		result.Recommendations = append(result.Recommendations,
			"Shorten summary to 2-3 impactful sentences")
		score -= 2
	}

	return clampZero(score)
}

func checkStructure(resume *types.ResumeContent, result *types.FormatCheckResult) int {
	score := structureBudget

	present := 0
	if resume.ContactInfo.Email != "" {
		present++
	}
	hasExperience := len(resume.Experience) > 0
	hasEducation := len(resume.Education) > 0
	if hasExperience {
		present++
	}
	if hasEducation {
		present++
	}
	if len(resume.Skills) > 0 {
		present++
	}

	if present < 3 {
		result.Issues = append(result.Issues, types.FormatIssue{
			Type:     types.IssueCritical,
			Message:  "Resume is missing critical sections",
			Location: "Structure",
		})
		score -= 5
	}
	if !hasExperience && !hasEducation {
		result.Issues = append(result.Issues, types.FormatIssue{
			Type:     types.IssueCritical,
			Message:  "Resume needs at least experience or education section",
			Location: "Structure",
		})
		score -= 5
	}

	return clampZero(score)
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
