// Package enhance layers optional AI-generated improvement suggestions and a
// semantic similarity estimate on top of the deterministic score. Every
// failure here is recoverable: callers fall back to the deterministic result.
package enhance

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/ats"
	"github.com/jonathan/ats-scorer/internal/llm"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Service generates enhancement suggestions via an LLM.
type Service struct {
	client llm.Client
}

// NewService creates an enhancement service backed by the given LLM client.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

type suggestionsResponse struct {
	Suggestions []types.Suggestion `json:"suggestions"`
}

// Enhance asks the LLM for tailored suggestions given a scored resume/job
// pair. The response is schema-validated before use; a validation failure
// surfaces as a *ParseError and never corrupts the deterministic score.
func (s *Service) Enhance(ctx context.Context, resume *types.ResumeContent, job *types.JobRequirements,
	score *types.ATSScoreResult) ([]types.Suggestion, error) {
	prompt := buildSuggestionsPrompt(resume, job, score)

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Operation: "suggestions", Err: err}
	}

	if err := validateAgainst(suggestionsSchema, raw, "suggestions"); err != nil {
		return nil, err
	}

	var resp suggestionsResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, &ParseError{Operation: "suggestions", Err: err}
	}
	return resp.Suggestions, nil
}

type similarityResponse struct {
	Similarity int `json:"similarity"`
}

// SemanticSimilarity estimates how semantically aligned a resume is with a
// job description, as a 0-100 integer.
func (s *Service) SemanticSimilarity(ctx context.Context, resume *types.ResumeContent, job *types.JobRequirements) (int, error) {
	prompt := buildSimilarityPrompt(resume, job)

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return 0, &APICallError{Operation: "similarity", Err: err}
	}

	if err := validateAgainst(similaritySchema, raw, "similarity"); err != nil {
		return 0, err
	}

	var resp similarityResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return 0, &ParseError{Operation: "similarity", Err: err}
	}
	return resp.Similarity, nil
}

// SemanticScorer adapts the service to the scoring engine's semantic
// strategy interface.
type SemanticScorer struct {
	service *Service
}

var _ ats.SemanticScorer = (*SemanticScorer)(nil)

// NewSemanticScorer wraps the service for use with ats.WithSemanticScorer.
func NewSemanticScorer(service *Service) *SemanticScorer {
	return &SemanticScorer{service: service}
}

// Score implements ats.SemanticScorer. Errors propagate so the scoring
// engine applies its constant fallback.
func (s *SemanticScorer) Score(ctx context.Context, resume *types.ResumeContent, job *types.JobRequirements) (int, error) {
	return s.service.SemanticSimilarity(ctx, resume, job)
}

func buildSuggestionsPrompt(resume *types.ResumeContent, job *types.JobRequirements, score *types.ATSScoreResult) string {
	var b strings.Builder
	b.WriteString("You are an ATS optimization expert. Given the resume summary, job requirements, ")
	b.WriteString("and current score below, produce targeted improvement suggestions.\n\n")
	fmt.Fprintf(&b, "Job title: %s\n", job.Title)
	fmt.Fprintf(&b, "Required skills: %s\n", strings.Join(job.RequiredSkills, ", "))
	fmt.Fprintf(&b, "Overall score: %d (%s)\n", score.OverallScore, score.Classification)
	fmt.Fprintf(&b, "Missing keywords: %s\n", strings.Join(score.MissingKeywords, ", "))
	fmt.Fprintf(&b, "Resume summary: %s\n", resume.Summary)
	b.WriteString("\nRespond with JSON: {\"suggestions\": [{\"priority\": \"high|medium|low\", ")
	b.WriteString("\"category\": \"keyword|format|experience|structure|content\", ")
	b.WriteString("\"issue\": \"...\", \"action\": \"...\", \"estimated_impact\": \"...\"}]}")
	return b.String()
}

func buildSimilarityPrompt(resume *types.ResumeContent, job *types.JobRequirements) string {
	var b strings.Builder
	b.WriteString("Rate the semantic similarity between this resume and job description ")
	b.WriteString("on a 0-100 scale, considering transferable skills and related technologies.\n\n")
	fmt.Fprintf(&b, "Job title: %s\n", job.Title)
	fmt.Fprintf(&b, "Required skills: %s\n", strings.Join(job.RequiredSkills, ", "))
	fmt.Fprintf(&b, "Resume summary: %s\n", resume.Summary)
	fmt.Fprintf(&b, "Resume skills: %s\n", strings.Join(resume.Skills, ", "))
	b.WriteString("\nRespond with JSON: {\"similarity\": <integer>}")
	return b.String()
}
