// Package ats computes ATS compatibility scores for a structured resume
// against structured job requirements. All scoring is deterministic and
// side-effect free; the only injectable behavior is the semantic similarity
// strategy, which defaults to a constant pending AI enhancement.
package ats

import (
	"math"
	"strings"

	"github.com/jonathan/ats-scorer/internal/patterns"
	"github.com/jonathan/ats-scorer/internal/types"
)

// variationSimilarity is the fixed similarity credited when a keyword is
// found only via a known abbreviation or variant.
const variationSimilarity = 0.7

// MatchKeywords compares the job's combined keyword set against the resume's
// full text. Each keyword lands in exactly one of matched, partial, or
// missing. Matching is case-insensitive literal containment; multi-word
// keywords get partial credit proportional to the fraction of their words
// present, and known abbreviations count as partial matches with a fixed
// similarity.
func MatchKeywords(resume *types.ResumeContent, job *types.JobRequirements) types.KeywordMatchResult {
	resumeText := strings.ToLower(buildResumeText(resume))
	keywords := combineKeywords(job)

	result := types.KeywordMatchResult{
		Matched: []string{},
		Missing: []string{},
		Partial: []types.PartialMatch{},
	}

	for _, keyword := range keywords {
		lower := strings.ToLower(keyword)

		if strings.Contains(resumeText, lower) {
			result.Matched = append(result.Matched, keyword)
			continue
		}

		if partial, ok := partialWordMatch(resumeText, keyword, lower); ok {
			result.Partial = append(result.Partial, partial)
			continue
		}
		if found, ok := variationMatch(resumeText, lower); ok {
			result.Partial = append(result.Partial, types.PartialMatch{
				Keyword:    keyword,
				Found:      found,
				Similarity: variationSimilarity,
			})
			continue
		}

		result.Missing = append(result.Missing, keyword)
	}

	result.Score = keywordScore(len(result.Matched), result.Partial, len(keywords))
	return result
}

// buildResumeText concatenates every textual field of the resume in a fixed
// order. The order does not affect containment checks but keeps the function
// deterministic and debuggable.
func buildResumeText(r *types.ResumeContent) string {
	var parts []string
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}

	add(r.ContactInfo.FullName)
	add(r.Summary)
	for _, exp := range r.Experience {
		add(exp.Title)
		add(exp.Company)
		parts = append(parts, exp.Bullets...)
	}
	for _, edu := range r.Education {
		add(edu.Institution)
		add(edu.Degree)
		add(edu.Field)
	}
	parts = append(parts, r.Skills...)
	for _, cert := range r.Certifications {
		add(cert.Name)
		add(cert.Issuer)
	}
	for _, project := range r.Projects {
		add(project.Name)
		add(project.Description)
		parts = append(parts, project.Technologies...)
	}
	add(r.RawText)

	return strings.Join(parts, " ")
}

// combineKeywords merges the job's skill groups and ranked keywords into one
// deduplicated list, preserving first-seen order across groups.
func combineKeywords(job *types.JobRequirements) []string {
	seen := make(map[string]struct{})
	var combined []string
	add := func(terms ...string) {
		for _, term := range terms {
			key := strings.ToLower(term)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			combined = append(combined, term)
		}
	}

	add(job.RequiredSkills...)
	add(job.PreferredSkills...)
	add(job.Tools...)
	add(job.SoftSkills...)
	add(job.Certifications...)
	for _, kw := range job.Keywords {
		add(kw.Term)
	}
	return combined
}

// partialWordMatch gives a multi-word keyword credit for the fraction of its
// words present in the resume text, when at least half are present.
func partialWordMatch(resumeText, keyword, lower string) (types.PartialMatch, bool) {
	words := patterns.Whitespace.Split(lower, -1)
	if len(words) < 2 {
		return types.PartialMatch{}, false
	}

	var found []string
	for _, word := range words {
		if strings.Contains(resumeText, word) {
			found = append(found, word)
		}
	}
	fraction := float64(len(found)) / float64(len(words))
	if fraction < 0.5 {
		return types.PartialMatch{}, false
	}
	return types.PartialMatch{
		Keyword:    keyword,
		Found:      strings.Join(found, " "),
		Similarity: fraction,
	}, true
}

// variationMatch looks the keyword up in the abbreviation table in both
// directions: a canonical keyword matches when any of its variants appears in
// the resume, and a variant keyword matches when its canonical form appears.
func variationMatch(resumeText, lower string) (string, bool) {
	for _, v := range patterns.KeywordVariations {
		if v.Canonical == lower {
			for _, variant := range v.Variants {
				if strings.Contains(resumeText, variant) {
					return variant, true
				}
			}
		}
	}
	for _, v := range patterns.KeywordVariations {
		for _, variant := range v.Variants {
			if variant == lower && strings.Contains(resumeText, v.Canonical) {
				return v.Canonical, true
			}
		}
	}
	return "", false
}

func keywordScore(matched int, partial []types.PartialMatch, total int) int {
	if total == 0 {
		return 100
	}
	credit := float64(matched)
	for _, p := range partial {
		credit += p.Similarity
	}
	return int(math.Round(math.Min(100, credit/float64(total)*100)))
}
