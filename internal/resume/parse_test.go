package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

const sampleResume = `John Doe
john.doe@example.com
(555) 123-4567
linkedin.com/in/johndoe
https://johndoe.dev

Summary
Senior software engineer with eight years of experience building distributed
systems and leading small teams across the full delivery lifecycle.

Experience

Senior Software Engineer
Acme Corp
Jan 2020 - Present
• Led migration of monolith to microservices, reducing deploy time by 80%
• Mentored 4 junior engineers

Software Engineer
Globex Inc
Jun 2016 - Dec 2019
- Built REST APIs in Go serving 10M requests/day

Education

State University
Bachelor of Science in Computer Science
2016

Skills
Go, Python, PostgreSQL; Docker | Kubernetes, Go

Certifications
AWS Certified Solutions Architect 2021
`

func TestParseSections(t *testing.T) {
	parsed := Parse(sampleResume)

	require.Contains(t, parsed.RawSections, "header")
	require.Contains(t, parsed.RawSections, "summary")
	require.Contains(t, parsed.RawSections, "experience")
	require.Contains(t, parsed.RawSections, "education")
	require.Contains(t, parsed.RawSections, "skills")
	require.Contains(t, parsed.RawSections, "certifications")
}

func TestParseContact(t *testing.T) {
	contact := Parse(sampleResume).Content.ContactInfo

	assert.Equal(t, "John Doe", contact.FullName)
	assert.Equal(t, "john.doe@example.com", contact.Email)
	assert.Equal(t, "(555) 123-4567", contact.Phone)
	assert.Equal(t, "https://linkedin.com/in/johndoe", contact.LinkedIn)
	assert.Equal(t, "https://johndoe.dev", contact.Website)
}

func TestParseContactWithoutContactHeader(t *testing.T) {
	// Lines before the first recognized section header form the implicit
	// header section and are searched for contact details.
	contact := Parse("Jane Smith\njane@work.io\nExperience\n\nEngineer\nAcme\n2020").Content.ContactInfo

	assert.Equal(t, "Jane Smith", contact.FullName)
	assert.Equal(t, "jane@work.io", contact.Email)
}

func TestParseContactPlaceholders(t *testing.T) {
	// The only header line is a URL, so no name or email can be extracted.
	contact := Parse("https://example.com\nExperience\n\nEngineer\nAcme").Content.ContactInfo

	assert.Equal(t, types.UnknownName, contact.FullName)
	assert.Equal(t, types.PlaceholderEmail, contact.Email)
	assert.Empty(t, contact.Phone)
}

func TestParseExperience(t *testing.T) {
	entries := Parse(sampleResume).Content.Experience
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Senior Software Engineer", first.Title)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Jan 2020", first.StartDate)
	assert.True(t, first.Current)
	require.Len(t, first.Bullets, 2)
	assert.Equal(t, "Led migration of monolith to microservices, reducing deploy time by 80%", first.Bullets[0])

	second := entries[1]
	assert.Equal(t, "Software Engineer", second.Title)
	assert.Equal(t, "Globex Inc", second.Company)
	assert.Equal(t, "Jun 2016", second.StartDate)
	assert.Equal(t, "Dec 2019", second.EndDate)
	assert.False(t, second.Current)
	require.Len(t, second.Bullets, 1)
}

func TestParseExperienceSingleLineBlock(t *testing.T) {
	entries := parseExperience("Freelance Consultant")
	require.Len(t, entries, 1)
	assert.Equal(t, "Freelance Consultant", entries[0].Title)
	assert.Equal(t, types.UnknownCompany, entries[0].Company)
}

func TestParseEducation(t *testing.T) {
	entries := Parse(sampleResume).Content.Education
	require.Len(t, entries, 1)
	assert.Equal(t, "State University", entries[0].Institution)
	assert.Equal(t, "Bachelor of Science in Computer Science", entries[0].Degree)
	assert.Equal(t, "2016", entries[0].GraduationDate)
}

func TestParseSkillsDeduplicates(t *testing.T) {
	skills := Parse(sampleResume).Content.Skills
	assert.Equal(t, []string{"Go", "Python", "PostgreSQL", "Docker", "Kubernetes"}, skills)
}

func TestParseCertifications(t *testing.T) {
	certs := Parse(sampleResume).Content.Certifications
	require.Len(t, certs, 1)
	assert.Equal(t, "AWS Certified Solutions Architect", certs[0].Name)
	assert.Equal(t, "2021", certs[0].Date)
}

func TestParseCertificationsKeepBulletMarkers(t *testing.T) {
	certs := Parse("Certifications\n- CKA Dec 2022\n").Content.Certifications
	require.Len(t, certs, 1)
	assert.Equal(t, "- CKA", certs[0].Name)
	assert.Equal(t, "Dec 2022", certs[0].Date)
}

func TestConfidence(t *testing.T) {
	parsed := Parse(sampleResume)
	// name 15 + email 15 + phone 5 + linkedin 5 + summary 10 +
	// experience 20 + education 15 + skills 10 + certifications 5
	assert.Equal(t, 100, parsed.Confidence)

	empty := Parse("just a short note")
	assert.Less(t, empty.Confidence, 30)
}

func TestParseDeterministic(t *testing.T) {
	a := Parse(sampleResume)
	b := Parse(sampleResume)
	assert.Equal(t, a, b)
}

func TestParseNormalizedInputRoundTrip(t *testing.T) {
	// Parsing already-normalized text must equal parsing the raw original.
	raw := "John Doe\r\n\r\n\r\njohn.doe@example.com\r\n\r\nSkills\r\nGo,  Python"
	a := Parse(raw)
	b := Parse(a.Content.RawText)
	assert.Equal(t, a, b)
}
