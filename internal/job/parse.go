// Package job parses raw job description text into structured requirements.
// Like the resume parser it is deterministic and never fails: every field
// extraction falls back to a placeholder or empty value.
package job

import (
	"strconv"
	"strings"

	"github.com/jonathan/ats-scorer/internal/patterns"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Metadata carries caller-supplied overrides for fields the posting text may
// state unreliably, such as the title scraped from a careers page.
type Metadata struct {
	Title   string
	Company string
}

// Parse parses a job description. The metadata, when non-nil, overrides the
// title and company inferred from the text.
func Parse(text string, meta *Metadata) *types.ParsedJobDescription {
	normalized := strings.ToLower(text)

	parsed := &types.ParsedJobDescription{
		Title:            extractTitle(text),
		ExperienceYears:  extractExperienceYears(text),
		Education:        extractEducation(text),
		EmploymentType:   extractEmploymentType(text),
		Location:         extractLocation(text),
		RequiredSkills:   matchVocabulary(normalized, patterns.TechnicalSkills),
		PreferredSkills:  []string{},
		Tools:            matchVocabulary(normalized, patterns.CommonTools),
		SoftSkills:       matchVocabulary(normalized, patterns.SoftSkills),
		Certifications:   extractCertifications(normalized),
		Responsibilities: extractResponsibilities(text),
	}
	parsed.Keywords = rankKeywords(parsed, normalized)

	if meta != nil {
		if meta.Title != "" {
			parsed.Title = meta.Title
		}
		if meta.Company != "" {
			parsed.Company = meta.Company
		}
	}
	return parsed
}

// extractTitle takes the first plausible title among the first five non-empty
// lines: between 6 and 99 characters and not containing an email marker.
func extractTitle(text string) string {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		count++
		if count > 5 {
			break
		}
		if len(line) > 5 && len(line) < 100 && !strings.Contains(line, "@") {
			return line
		}
	}
	return types.UnknownPosition
}

// extractExperienceYears tries the year pattern families in order; the first
// family with any match decides the result. Only the range family sets Max.
func extractExperienceYears(text string) types.ExperienceYears {
	for _, re := range patterns.ExperienceYearPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		years := types.ExperienceYears{}
		if n, err := strconv.Atoi(m[1]); err == nil {
			years.Min = &n
		}
		if len(m) > 2 && m[2] != "" {
			if n, err := strconv.Atoi(m[2]); err == nil {
				years.Max = &n
			}
		}
		return years
	}
	return types.ExperienceYears{}
}

func extractEducation(text string) string {
	for _, re := range patterns.EducationPatterns {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

func extractEmploymentType(text string) string {
	m := patterns.EmploymentType.FindString(text)
	if m == "" {
		return ""
	}
	return patterns.HyphenSpaces.ReplaceAllString(strings.ToLower(m), "-")
}

func extractLocation(text string) string {
	if m := patterns.LocationLabel.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return patterns.LocationCityST.FindString(text)
}

// matchVocabulary returns the vocabulary terms contained in the lowercased
// text, in vocabulary order.
func matchVocabulary(normalized string, vocab []string) []string {
	found := []string{}
	for _, term := range vocab {
		if strings.Contains(normalized, term) {
			found = append(found, term)
		}
	}
	return found
}

func extractCertifications(normalized string) []string {
	certs := []string{}
	for _, re := range patterns.CertificationPatterns {
		for _, m := range re.FindAllStringSubmatch(normalized, -1) {
			certs = append(certs, strings.TrimSpace(m[1]))
		}
	}
	return certs
}

// extractResponsibilities collects the bulleted lines between a
// responsibilities-style heading and the next requirements-style heading.
func extractResponsibilities(text string) []string {
	responsibilities := []string{}
	inSection := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if patterns.ResponsibilitiesStart.MatchString(trimmed) {
			inSection = true
			continue
		}
		if inSection && patterns.ResponsibilitiesEnd.MatchString(trimmed) {
			break
		}
		if inSection && patterns.BulletPrefix.MatchString(trimmed) {
			responsibilities = append(responsibilities, patterns.BulletPrefix.ReplaceAllString(trimmed, ""))
		}
	}
	return responsibilities
}
