package types

// KeywordCategory classifies a keyword extracted from a job description.
type KeywordCategory string

// Keyword categories.
const (
	CategoryTechnical     KeywordCategory = "technical"
	CategorySoft          KeywordCategory = "soft"
	CategoryTool          KeywordCategory = "tool"
	CategoryCertification KeywordCategory = "certification"
	CategoryGeneral       KeywordCategory = "general"
)

// UnknownPosition is the job title placeholder when none can be extracted.
const UnknownPosition = "Unknown Position"

// ExperienceYears holds the required experience range extracted from a job
// posting. Nil means the bound was not stated. Min <= Max when both are set.
type ExperienceYears struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// Keyword is a ranked matching unit extracted from a job description.
// Frequency is the number of occurrences in the source text.
type Keyword struct {
	Term      string          `json:"term"`
	Frequency int             `json:"frequency"`
	Category  KeywordCategory `json:"category"`
}

// JobRequirements is the structured form of a job description. It is both the
// output of the job description parser and the input to the scorer.
type JobRequirements struct {
	Title            string          `json:"title"`
	Company          string          `json:"company,omitempty"`
	Location         string          `json:"location,omitempty"`
	EmploymentType   string          `json:"employment_type,omitempty"`
	ExperienceYears  ExperienceYears `json:"experience_years"`
	Education        string          `json:"education,omitempty"`
	RequiredSkills   []string        `json:"required_skills"`
	PreferredSkills  []string        `json:"preferred_skills"`
	Tools            []string        `json:"tools"`
	SoftSkills       []string        `json:"soft_skills"`
	Certifications   []string        `json:"certifications"`
	Keywords         []Keyword       `json:"keywords"`
	Responsibilities []string        `json:"responsibilities"`
}

// ParsedJobDescription is the parser-facing name for JobRequirements.
type ParsedJobDescription = JobRequirements
