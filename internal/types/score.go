package types

// Classification is the coarse label derived from the overall score.
type Classification string

// Score classifications, from best to worst.
const (
	ClassificationExcellent Classification = "excellent"
	ClassificationGood      Classification = "good"
	ClassificationFair      Classification = "fair"
	ClassificationPoor      Classification = "poor"
	ClassificationCritical  Classification = "critical"
)

// SuggestionPriority orders suggestions by urgency.
type SuggestionPriority string

// Suggestion priorities.
const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)

// SuggestionCategory groups suggestions by the aspect of the resume they address.
type SuggestionCategory string

// Suggestion categories.
const (
	SuggestionKeyword    SuggestionCategory = "keyword"
	SuggestionFormat     SuggestionCategory = "format"
	SuggestionExperience SuggestionCategory = "experience"
	SuggestionStructure  SuggestionCategory = "structure"
	SuggestionContent    SuggestionCategory = "content"
)

// Suggestion is a single actionable improvement for a resume.
type Suggestion struct {
	Priority        SuggestionPriority `json:"priority"`
	Category        SuggestionCategory `json:"category"`
	Issue           string             `json:"issue"`
	Action          string             `json:"action"`
	EstimatedImpact string             `json:"estimated_impact"`
}

// ScoreComponent is one weighted factor of the overall ATS score.
type ScoreComponent struct {
	Score         int     `json:"score"`
	Weight        float64 `json:"weight"`
	WeightedScore float64 `json:"weighted_score"`
	Details       string  `json:"details"`
}

// ScoreBreakdown holds the five components of the weighted score.
type ScoreBreakdown struct {
	KeywordScore    ScoreComponent `json:"keyword_score"`
	TitleScore      ScoreComponent `json:"title_score"`
	ExperienceScore ScoreComponent `json:"experience_score"`
	FormatScore     ScoreComponent `json:"format_score"`
	SemanticScore   ScoreComponent `json:"semantic_score"`
}

// ATSScoreResult is the full output of scoring a resume against a job.
type ATSScoreResult struct {
	OverallScore    int            `json:"overall_score"`
	Classification  Classification `json:"classification"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	MatchedKeywords []string       `json:"matched_keywords"`
	MissingKeywords []string       `json:"missing_keywords"`
	Suggestions     []Suggestion   `json:"suggestions"`
}

// IssueType is the severity of a format issue.
type IssueType string

// Format issue severities.
const (
	IssueCritical IssueType = "critical"
	IssueWarning  IssueType = "warning"
	IssueInfo     IssueType = "info"
)

// FormatIssue is a single defect found by the format checker.
type FormatIssue struct {
	Type     IssueType `json:"type"`
	Message  string    `json:"message"`
	Location string    `json:"location,omitempty"`
}

// FormatCheckResult is the output of the resume format checker.
type FormatCheckResult struct {
	Score           int           `json:"score"`
	Issues          []FormatIssue `json:"issues"`
	Recommendations []string      `json:"recommendations"`
}

// PartialMatch records a keyword inferred present via word overlap or a known
// abbreviation rather than a verbatim occurrence.
type PartialMatch struct {
	Keyword    string  `json:"keyword"`
	Found      string  `json:"found"`
	Similarity float64 `json:"similarity"`
}

// KeywordMatchResult is the output of matching job keywords against a resume.
type KeywordMatchResult struct {
	Score   int            `json:"score"`
	Matched []string       `json:"matched"`
	Missing []string       `json:"missing"`
	Partial []PartialMatch `json:"partial"`
}
