// Package patterns holds the shared regular expressions and vocabularies used
// by the resume and job description parsers. Everything here is an immutable
// package-level value. Where enumeration order matters for determinism
// (section detection, pattern families, vocabularies feeding keyword ranking)
// the tables are ordered slices, never maps.
package patterns

import "regexp"

// SectionPattern pairs a canonical section name with the header pattern that
// detects it. Patterns match a full line after punctuation stripping.
type SectionPattern struct {
	Name string
	Re   *regexp.Regexp
}

// SectionPatterns is evaluated top to bottom with first-match-wins semantics.
// The order is behaviorally significant and must not change.
var SectionPatterns = []SectionPattern{
	{"contact", regexp.MustCompile(`(?i)^(contact|personal)\s*(info|information|details)?$`)},
	{"summary", regexp.MustCompile(`(?i)^(summary|profile|objective|professional\s+summary|about(\s+me)?|overview)$`)},
	{"experience", regexp.MustCompile(`(?i)^(experience|work\s+(experience|history)|employment|professional\s+experience)$`)},
	{"education", regexp.MustCompile(`(?i)^(education|academic|qualifications|degrees?)$`)},
	{"skills", regexp.MustCompile(`(?i)^(skills|technical\s+skills|competencies|expertise|core\s+competencies)$`)},
	{"certifications", regexp.MustCompile(`(?i)^(certifications?|licenses?|credentials|professional\s+certifications?)$`)},
	{"projects", regexp.MustCompile(`(?i)^(projects|personal\s+projects|portfolio)$`)},
	{"awards", regexp.MustCompile(`(?i)^(awards|achievements|honors|accomplishments)$`)},
}

// HeaderPunct strips the punctuation allowed around section headers before matching.
var HeaderPunct = regexp.MustCompile(`[:\-_|]`)

// Contact info patterns.
var (
	Email    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	Phone    = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	LinkedIn = regexp.MustCompile(`(?i)(?:linkedin\.com/in/|linkedin:?\s*)([a-zA-Z0-9-]+)`)
	URL      = regexp.MustCompile("https?://[^\\s<>\"{}|\\\\^`\\[\\]]+")
)

// Date matches month-name+year ("Jan 2020", "September 2019"), numeric M/YYYY,
// a bare 4-digit year, or the literals Present/Current.
var Date = regexp.MustCompile(`(?i)(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+)?\d{4}|\d{1,2}/\d{4}|Present|Current`)

// Bullet marker patterns shared by the parsers.
var (
	BulletChar   = regexp.MustCompile(`[•\-*]`)
	BulletPrefix = regexp.MustCompile(`^[•\-*]\s*`)
)

// SkillDelimiters splits a skills section into individual skill tokens.
var SkillDelimiters = regexp.MustCompile(`[,;|•\-\n]`)

// ExperienceYearPatterns are tried in order; the first family producing any
// match wins. Only the range pattern has a second capture group.
var ExperienceYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s+)?(?:experience|exp)`),
	regexp.MustCompile(`(?i)(?:minimum|at least)\s*(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:to|-)\s*(\d+)\s*(?:years?|yrs?)`),
}

// EducationPatterns are tried in order: Bachelor's, Master's/MBA, PhD, Associate's.
var EducationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:bachelor'?s?|bs|ba)\s*(?:degree)?(?:\s+in\s+[\w\s]+)?`),
	regexp.MustCompile(`(?i)(?:master'?s?|ms|ma|mba)\s*(?:degree)?(?:\s+in\s+[\w\s]+)?`),
	regexp.MustCompile(`(?i)(?:ph\.?d\.?|doctorate)`),
	regexp.MustCompile(`(?i)(?:associate'?s?)\s*(?:degree)?`),
}

// EmploymentType matches the common employment arrangements, hyphen/space-insensitive.
var EmploymentType = regexp.MustCompile(`(?i)\b(full[-\s]?time|part[-\s]?time|contract|freelance|remote|hybrid|on[-\s]?site)\b`)

// HyphenSpaces collapses hyphen/space runs when normalizing employment types.
var HyphenSpaces = regexp.MustCompile(`[-\s]+`)

// Location patterns: an explicit "location:" style label, else a "City, ST" form.
var (
	LocationLabel  = regexp.MustCompile(`(?i)(?:location|based in|office in|located in)[:\s]+([^.\n]+)`)
	LocationCityST = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z]{2}`)
)

// CertificationPatterns extract certification mentions from lowercased job text.
var CertificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(aws\s+certified\s+[\w\s]+)`),
	regexp.MustCompile(`(?i)\b(pmp|scrum master|csm)\b`),
	regexp.MustCompile(`(?i)\b(cpa|cfa|cissp)\b`),
}

// Responsibility section boundaries for job descriptions.
var (
	ResponsibilitiesStart = regexp.MustCompile(`(?i)responsibilities|duties|what you('ll| will) do`)
	ResponsibilitiesEnd   = regexp.MustCompile(`(?i)requirements|qualifications|skills`)
)

// Whitespace splits strings on whitespace runs.
var Whitespace = regexp.MustCompile(`\s+`)

// Quantified detects a number (optionally a percentage) inside a bullet.
var Quantified = regexp.MustCompile(`\d+%?`)

// Year extracts a 4-digit year from a free-text date.
var Year = regexp.MustCompile(`\d{4}`)

// PresentMarker detects an ongoing position.
var PresentMarker = regexp.MustCompile(`(?i)present|current`)

// BlankLineRun splits section text into blocks on runs of blank lines.
var BlankLineRun = regexp.MustCompile(`\n{2,}`)

// TechnicalSkills is the closed technical vocabulary tested by literal
// substring containment against lowercased job text. Order matters: it is the
// encounter order used for keyword ranking tie-breaks.
var TechnicalSkills = []string{
	"javascript", "typescript", "python", "java", "c++", "c#", "go", "rust", "ruby",
	"react", "angular", "vue", "next.js", "node.js", "express", "fastify",
	"sql", "postgresql", "mysql", "mongodb", "redis", "elasticsearch",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"git", "ci/cd", "jenkins", "github actions",
	"machine learning", "deep learning", "nlp", "computer vision",
	"rest", "graphql", "api", "microservices",
	"agile", "scrum", "kanban",
}

// SoftSkills is the closed soft-skill vocabulary.
var SoftSkills = []string{
	"communication", "leadership", "teamwork", "problem solving", "critical thinking",
	"time management", "adaptability", "collaboration", "creativity", "attention to detail",
	"interpersonal", "analytical", "organizational", "decision making", "conflict resolution",
}

// CommonTools is the closed tools vocabulary.
var CommonTools = []string{
	"jira", "confluence", "slack", "teams", "figma", "sketch", "photoshop",
	"tableau", "power bi", "excel", "salesforce", "hubspot",
	"postman", "swagger", "datadog", "splunk", "grafana",
}

// Variation maps a canonical term to its common abbreviations and variants.
// The matcher checks the table bidirectionally: a canonical keyword matches
// any of its variants in resume text, and a variant keyword matches its
// canonical form.
type Variation struct {
	Canonical string
	Variants  []string
}

// KeywordVariations is the fixed abbreviation/variant table, checked in order.
var KeywordVariations = []Variation{
	{"javascript", []string{"js", "ecmascript"}},
	{"typescript", []string{"ts"}},
	{"python", []string{"py"}},
	{"postgresql", []string{"postgres", "psql"}},
	{"mongodb", []string{"mongo"}},
	{"kubernetes", []string{"k8s"}},
	{"node.js", []string{"nodejs", "node"}},
	{"react.js", []string{"reactjs", "react"}},
	{"vue.js", []string{"vuejs", "vue"}},
	{"next.js", []string{"nextjs", "next"}},
	{"machine learning", []string{"ml"}},
	{"artificial intelligence", []string{"ai"}},
	{"natural language processing", []string{"nlp"}},
	{"continuous integration", []string{"ci"}},
	{"continuous deployment", []string{"cd"}},
	{"ci/cd", []string{"cicd", "ci cd"}},
}
