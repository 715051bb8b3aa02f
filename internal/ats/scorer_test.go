package ats

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

func testJob() *types.JobRequirements {
	min := 5
	return &types.JobRequirements{
		Title:           "Senior Platform Engineer",
		ExperienceYears: types.ExperienceYears{Min: &min},
		RequiredSkills:  []string{"go", "python", "kubernetes"},
		Tools:           []string{"jira"},
	}
}

func TestCalculateScoreBounds(t *testing.T) {
	cases := []*types.ResumeContent{
		testResume(),
		{},
		{ContactInfo: types.ContactInfo{FullName: "Jane Doe", Email: "jane@x.com"}},
	}
	for _, resume := range cases {
		result := CalculateATSScore(resume, testJob())
		assert.GreaterOrEqual(t, result.OverallScore, 0)
		assert.LessOrEqual(t, result.OverallScore, 100)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	a := CalculateATSScore(testResume(), testJob())
	b := CalculateATSScore(testResume(), testJob())
	assert.Equal(t, a, b)
}

func TestCalculateWeights(t *testing.T) {
	result := CalculateATSScore(testResume(), testJob())
	b := result.Breakdown

	assert.InDelta(t, 0.40, b.KeywordScore.Weight, 1e-9)
	assert.InDelta(t, 0.15, b.TitleScore.Weight, 1e-9)
	assert.InDelta(t, 0.20, b.ExperienceScore.Weight, 1e-9)
	assert.InDelta(t, 0.15, b.FormatScore.Weight, 1e-9)
	assert.InDelta(t, 0.10, b.SemanticScore.Weight, 1e-9)

	total := b.KeywordScore.Weight + b.TitleScore.Weight + b.ExperienceScore.Weight +
		b.FormatScore.Weight + b.SemanticScore.Weight
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestTitleScoreExactMatchShortCircuits(t *testing.T) {
	resume := testResume()
	resume.Experience[0].Title = "SENIOR PLATFORM ENGINEER"

	result := CalculateATSScore(resume, testJob())
	assert.Equal(t, 100, result.Breakdown.TitleScore.Score)
}

func TestTitleScoreWordOverlap(t *testing.T) {
	resume := testResume()
	resume.Experience[0].Title = "Platform Engineer"

	// 2 of 3 job title words present: round(66.67) = 67.
	result := CalculateATSScore(resume, testJob())
	assert.Equal(t, 67, result.Breakdown.TitleScore.Score)
}

func TestTitleScoreNoExperience(t *testing.T) {
	resume := testResume()
	resume.Experience = nil

	result := CalculateATSScore(resume, testJob())
	assert.Equal(t, 0, result.Breakdown.TitleScore.Score)
}

func TestExperienceScoreNoRequirement(t *testing.T) {
	job := testJob()
	job.ExperienceYears = types.ExperienceYears{}

	result := CalculateATSScore(testResume(), job)
	assert.Equal(t, neutralExperienceScore, result.Breakdown.ExperienceScore.Score)
}

func TestExperienceScoreMeetsMinimum(t *testing.T) {
	// Ongoing role since 2018 comfortably exceeds 5 required years.
	result := CalculateATSScore(testResume(), testJob())
	assert.Equal(t, 100, result.Breakdown.ExperienceScore.Score)
}

func TestExperienceScoreBelowMinimum(t *testing.T) {
	resume := testResume()
	resume.Experience = []types.ExperienceEntry{
		{Title: "Engineer", Company: "Acme", StartDate: "2022", EndDate: "2024"},
	}
	min := 10
	job := testJob()
	job.ExperienceYears = types.ExperienceYears{Min: &min}

	result := CalculateATSScore(resume, job)
	assert.Equal(t, 20, result.Breakdown.ExperienceScore.Score)
}

func TestExperienceScoreUnparseableDatesCountOneYear(t *testing.T) {
	resume := testResume()
	resume.Experience = []types.ExperienceEntry{
		{Title: "Engineer", Company: "Acme", StartDate: "a while ago", EndDate: "recently"},
	}
	min := 4
	job := testJob()
	job.ExperienceYears = types.ExperienceYears{Min: &min}

	result := CalculateATSScore(resume, job)
	assert.Equal(t, 25, result.Breakdown.ExperienceScore.Score)
}

func TestExperienceScoreCurrentUsesThisYear(t *testing.T) {
	resume := testResume()
	start := time.Now().Year() - 3
	resume.Experience = []types.ExperienceEntry{
		{Title: "Engineer", Company: "Acme", StartDate: strconv.Itoa(start), Current: true},
	}
	min := 6
	job := testJob()
	job.ExperienceYears = types.ExperienceYears{Min: &min}

	result := CalculateATSScore(resume, job)
	assert.Equal(t, 50, result.Breakdown.ExperienceScore.Score)
}

func TestClassification(t *testing.T) {
	tests := []struct {
		score    int
		expected types.Classification
	}{
		{95, types.ClassificationExcellent},
		{90, types.ClassificationExcellent},
		{89, types.ClassificationGood},
		{75, types.ClassificationGood},
		{74, types.ClassificationFair},
		{60, types.ClassificationFair},
		{59, types.ClassificationPoor},
		{40, types.ClassificationPoor},
		{39, types.ClassificationCritical},
		{0, types.ClassificationCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, classify(tt.score), "score %d", tt.score)
	}
}

func TestSuggestionsOrder(t *testing.T) {
	resume := &types.ResumeContent{
		ContactInfo: types.ContactInfo{FullName: "Jane Doe", Email: "jane@x.com"},
	}
	result := CalculateATSScore(resume, testJob())
	require.NotEmpty(t, result.Suggestions)

	// Missing-keyword suggestions come first, capped at five.
	first := result.Suggestions[0]
	assert.Equal(t, types.PriorityHigh, first.Priority)
	assert.Equal(t, types.SuggestionKeyword, first.Category)
	assert.Contains(t, first.Issue, "Missing keyword:")

	// Priorities never increase along the list.
	rank := map[types.SuggestionPriority]int{
		types.PriorityHigh:   0,
		types.PriorityMedium: 1,
		types.PriorityLow:    2,
	}
	for i := 1; i < len(result.Suggestions); i++ {
		assert.GreaterOrEqual(t, rank[result.Suggestions[i].Priority], rank[result.Suggestions[i-1].Priority])
	}
}

func TestSuggestionsMissingKeywordImpact(t *testing.T) {
	resume := &types.ResumeContent{Summary: "nothing relevant here"}
	job := &types.JobRequirements{Title: "Engineer", RequiredSkills: []string{"cobol", "fortran"}}

	result := CalculateATSScore(resume, job)
	require.NotEmpty(t, result.Suggestions)
	// round(5 / 2 × 10) = 25
	assert.Equal(t, "+25 points", result.Suggestions[0].EstimatedImpact)
}

type failingSemantic struct{}

func (failingSemantic) Score(context.Context, *types.ResumeContent, *types.JobRequirements) (int, error) {
	return 0, errors.New("service unavailable")
}

type fixedSemantic int

func (f fixedSemantic) Score(context.Context, *types.ResumeContent, *types.JobRequirements) (int, error) {
	return int(f), nil
}

func TestSemanticScorerFallback(t *testing.T) {
	scorer := NewScorer(WithSemanticScorer(failingSemantic{}))
	result := scorer.Calculate(context.Background(), testResume(), testJob())
	assert.Equal(t, DefaultSemanticScore, result.Breakdown.SemanticScore.Score)
}

func TestSemanticScorerInjection(t *testing.T) {
	scorer := NewScorer(WithSemanticScorer(fixedSemantic(90)))
	result := scorer.Calculate(context.Background(), testResume(), testJob())
	assert.Equal(t, 90, result.Breakdown.SemanticScore.Score)
}
