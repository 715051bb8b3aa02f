// Package resume parses free-form resume text into structured content.
// Parsing is deterministic: the same input always yields the same output,
// and extraction never fails outright. Fields that cannot be extracted get
// documented placeholder values and the confidence score reflects how much
// was actually found.
package resume

import (
	"strings"

	"github.com/jonathan/ats-scorer/internal/extract"
	"github.com/jonathan/ats-scorer/internal/patterns"
	"github.com/jonathan/ats-scorer/internal/types"
)

const contactSearchLimit = 1000

// Parse parses raw resume text. The input is normalized before section
// detection so that callers do not have to pre-process uploads.
func Parse(rawText string) *types.ParsedResume {
	text := extract.Normalize(rawText)
	sections := splitSections(text)

	content := types.ResumeContent{
		ContactInfo:    parseContact(sections, text),
		Summary:        sections["summary"],
		Experience:     parseExperience(sections["experience"]),
		Education:      parseEducation(sections["education"]),
		Skills:         parseSkills(sections["skills"]),
		Certifications: parseCertifications(sections["certifications"]),
		Projects:       parseProjects(sections["projects"]),
		RawText:        text,
	}

	return &types.ParsedResume{
		Content:     content,
		RawSections: sections,
		Confidence:  confidence(&content),
	}
}

// parseContact pulls contact fields from the header section, or from the
// beginning of the document when no header section was detected.
func parseContact(sections map[string]string, text string) types.ContactInfo {
	searchText := sections["header"]
	if searchText == "" {
		runes := []rune(text)
		if len(runes) > contactSearchLimit {
			runes = runes[:contactSearchLimit]
		}
		searchText = string(runes)
	}

	info := types.ContactInfo{
		FullName: types.UnknownName,
		Email:    types.PlaceholderEmail,
	}

	// The name is the first short line that is not an email, phone, or URL.
	for _, line := range strings.Split(searchText, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 2 || len(line) >= 60 {
			continue
		}
		if patterns.Email.MatchString(line) || patterns.Phone.MatchString(line) || patterns.URL.MatchString(line) {
			continue
		}
		info.FullName = line
		break
	}

	if m := patterns.Email.FindString(searchText); m != "" {
		info.Email = m
	}
	info.Phone = patterns.Phone.FindString(searchText)

	if m := patterns.LinkedIn.FindStringSubmatch(searchText); m != nil {
		info.LinkedIn = "https://linkedin.com/in/" + m[1]
	}
	for _, u := range patterns.URL.FindAllString(searchText, -1) {
		if !strings.Contains(u, "linkedin.com") {
			info.Website = u
			break
		}
	}

	return info
}

// parseExperience splits the experience section into blank-line-separated
// blocks, one entry per block. Within a block the first line is the title,
// the second the company, and bulleted lines become achievement bullets.
func parseExperience(section string) []types.ExperienceEntry {
	if section == "" {
		return nil
	}

	var entries []types.ExperienceEntry
	for _, block := range patterns.BlankLineRun.Split(section, -1) {
		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}

		dates := patterns.Date.FindAllString(block, -1)

		entry := types.ExperienceEntry{
			Title:   stripFirstBullet(lines[0]),
			Company: types.UnknownCompany,
			Current: patterns.PresentMarker.MatchString(block),
		}
		if len(lines) > 1 {
			entry.Company = stripFirstBullet(lines[1])
		}
		if len(dates) > 0 {
			entry.StartDate = dates[0]
		}
		if len(dates) > 1 {
			entry.EndDate = dates[1]
		}

		for _, line := range lines {
			if patterns.BulletPrefix.MatchString(line) {
				entry.Bullets = append(entry.Bullets, patterns.BulletPrefix.ReplaceAllString(line, ""))
			}
		}

		entries = append(entries, entry)
	}
	return entries
}

func parseEducation(section string) []types.EducationEntry {
	if section == "" {
		return nil
	}

	var entries []types.EducationEntry
	for _, block := range patterns.BlankLineRun.Split(section, -1) {
		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}

		entry := types.EducationEntry{
			Institution: lines[0],
			Degree:      types.UnknownDegree,
		}
		if len(lines) > 1 {
			entry.Degree = lines[1]
		}
		if dates := patterns.Date.FindAllString(block, -1); len(dates) > 0 {
			entry.GraduationDate = dates[0]
		}

		entries = append(entries, entry)
	}
	return entries
}

// parseSkills splits the skills section on the common delimiter characters
// and keeps plausible tokens, deduplicated in encounter order.
func parseSkills(section string) []string {
	if section == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var skills []string
	for _, token := range patterns.SkillDelimiters.Split(section, -1) {
		token = strings.TrimSpace(token)
		if len(token) <= 1 || len(token) >= 50 {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		skills = append(skills, token)
	}
	return skills
}

func parseCertifications(section string) []types.Certification {
	if section == "" {
		return nil
	}

	// Lines are taken as-is apart from the date token; bullet markers stay
	// part of the name.
	var certs []types.Certification
	for _, line := range nonEmptyLines(section) {
		cert := types.Certification{
			Name: strings.TrimSpace(patterns.Date.ReplaceAllString(line, "")),
			Date: patterns.Date.FindString(line),
		}
		if cert.Name == "" {
			continue
		}
		certs = append(certs, cert)
	}
	return certs
}

func parseProjects(section string) []types.Project {
	if section == "" {
		return nil
	}

	var projects []types.Project
	for _, block := range patterns.BlankLineRun.Split(section, -1) {
		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}

		project := types.Project{Name: stripFirstBullet(lines[0])}
		if project.Name == "" {
			project.Name = types.UnknownProject
		}
		if len(lines) > 1 {
			project.Description = strings.Join(lines[1:], " ")
		}
		if u := patterns.URL.FindString(block); u != "" {
			project.URL = u
		}

		projects = append(projects, project)
	}
	return projects
}

// confidence scores extraction completeness on a 0-100 scale. Each field
// family contributes a fixed number of points when populated.
func confidence(c *types.ResumeContent) int {
	score := 0
	if c.ContactInfo.FullName != types.UnknownName {
		score += 15
	}
	if c.ContactInfo.Email != types.PlaceholderEmail {
		score += 15
	}
	if c.ContactInfo.Phone != "" {
		score += 5
	}
	if c.ContactInfo.LinkedIn != "" {
		score += 5
	}
	if len(c.Summary) > 50 {
		score += 10
	}
	if len(c.Experience) > 0 {
		score += 20
	}
	if len(c.Education) > 0 {
		score += 15
	}
	if len(c.Skills) > 3 {
		score += 10
	}
	if len(c.Certifications) > 0 {
		score += 5
	}
	if score > 100 {
		score = 100
	}
	return score
}

func nonEmptyLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// stripFirstBullet removes the first bullet marker occurrence from a line.
func stripFirstBullet(line string) string {
	loc := patterns.BulletChar.FindStringIndex(line)
	if loc != nil {
		line = line[:loc[0]] + line[loc[1]:]
	}
	return strings.TrimSpace(line)
}
