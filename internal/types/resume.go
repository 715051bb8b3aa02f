// Package types provides type definitions for structured data used throughout the ATS scorer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Placeholder values used when the resume parser cannot extract a field.
// Downstream checks compare against these to detect parse failures, so they
// must stay distinguishable from real parsed values.
const (
	UnknownName        = "Unknown"
	PlaceholderEmail   = "unknown@email.com"
	UnknownTitle       = "Unknown Title"
	UnknownCompany     = "Unknown Company"
	UnknownInstitution = "Unknown Institution"
	UnknownDegree      = "Unknown Degree"
	UnknownProject     = "Unknown Project"
)

// ContactInfo holds the contact fields extracted from a resume header.
type ContactInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ExperienceEntry represents a single work experience block.
// Entries are immutable once produced by the parser.
type ExperienceEntry struct {
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date,omitempty"`
	Current   bool     `json:"current,omitempty"`
	Bullets   []string `json:"bullets"`
}

// EducationEntry represents a single education block.
type EducationEntry struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
}

// Certification represents a named certification with optional issuer and date.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Project represents a personal or professional project.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// ResumeContent is the canonical structured resume consumed by the keyword
// matcher and the format checker.
type ResumeContent struct {
	ContactInfo    ContactInfo       `json:"contact_info"`
	Summary        string            `json:"summary,omitempty"`
	Experience     []ExperienceEntry `json:"experience,omitempty"`
	Education      []EducationEntry  `json:"education,omitempty"`
	Skills         []string          `json:"skills,omitempty"`
	Certifications []Certification   `json:"certifications,omitempty"`
	Projects       []Project         `json:"projects,omitempty"`
	RawText        string            `json:"raw_text,omitempty"`
}

// ParsedResume is the result of parsing free-form resume text: the structured
// content, the raw text of each detected section (for diagnostics), and a
// 0-100 confidence estimate of how completely extraction succeeded.
type ParsedResume struct {
	Content     ResumeContent     `json:"content"`
	RawSections map[string]string `json:"raw_sections"`
	Confidence  int               `json:"confidence"`
}
