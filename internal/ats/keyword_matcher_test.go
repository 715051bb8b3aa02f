package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

func testResume() *types.ResumeContent {
	return &types.ResumeContent{
		ContactInfo: types.ContactInfo{FullName: "Jane Doe", Email: "jane@x.com"},
		Summary:     "Engineer with production experience running services on k8s and AWS.",
		Experience: []types.ExperienceEntry{
			{
				Title:     "Senior Platform Engineer",
				Company:   "Acme Corp",
				StartDate: "2018",
				Current:   true,
				Bullets:   []string{"Built Go services handling 10M requests per day"},
			},
		},
		Education: []types.EducationEntry{
			{Institution: "State University", Degree: "BS Computer Science"},
		},
		Skills: []string{"Go", "Python", "PostgreSQL", "Docker", "Terraform"},
	}
}

func TestMatchKeywordsEmptyJob(t *testing.T) {
	job := &types.JobRequirements{
		RequiredSkills:  []string{},
		PreferredSkills: []string{},
		Tools:           []string{},
		SoftSkills:      []string{},
		Certifications:  []string{},
		Keywords:        []types.Keyword{},
	}

	result := MatchKeywords(testResume(), job)
	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
}

func TestMatchKeywordsExactMatches(t *testing.T) {
	job := &types.JobRequirements{RequiredSkills: []string{"go", "python", "cobol"}}

	result := MatchKeywords(testResume(), job)
	assert.Equal(t, []string{"go", "python"}, result.Matched)
	assert.Equal(t, []string{"cobol"}, result.Missing)
	// 2 of 3 matched, round(66.67) = 67
	assert.Equal(t, 67, result.Score)
}

func TestMatchKeywordsVariation(t *testing.T) {
	// "kubernetes" absent literally, "k8s" present in summary.
	job := &types.JobRequirements{RequiredSkills: []string{"kubernetes"}}

	result := MatchKeywords(testResume(), job)
	assert.Empty(t, result.Missing)
	require.Len(t, result.Partial, 1)
	assert.Equal(t, "kubernetes", result.Partial[0].Keyword)
	assert.Equal(t, "k8s", result.Partial[0].Found)
	assert.InDelta(t, 0.7, result.Partial[0].Similarity, 1e-9)
	assert.Equal(t, 70, result.Score)
}

func TestMatchKeywordsVariationReverse(t *testing.T) {
	// Job asks for the abbreviation, the resume spells it out.
	resume := &types.ResumeContent{Summary: "Deployed workloads to kubernetes clusters"}
	job := &types.JobRequirements{RequiredSkills: []string{"k8s"}}

	result := MatchKeywords(resume, job)
	require.Len(t, result.Partial, 1)
	assert.Equal(t, "kubernetes", result.Partial[0].Found)
}

func TestMatchKeywordsMultiWordPartial(t *testing.T) {
	resume := &types.ResumeContent{Summary: "Applied machine vision techniques in production"}
	job := &types.JobRequirements{RequiredSkills: []string{"machine learning"}}

	result := MatchKeywords(resume, job)
	require.Len(t, result.Partial, 1)
	assert.Equal(t, "machine", result.Partial[0].Found)
	assert.InDelta(t, 0.5, result.Partial[0].Similarity, 1e-9)
}

func TestMatchKeywordsMultiWordBelowThresholdUsesVariations(t *testing.T) {
	// No words of "machine learning" present, but the "ml" abbreviation is.
	resume := &types.ResumeContent{Summary: "Shipped several ml models"}
	job := &types.JobRequirements{RequiredSkills: []string{"machine learning"}}

	result := MatchKeywords(resume, job)
	require.Len(t, result.Partial, 1)
	assert.Equal(t, "ml", result.Partial[0].Found)
	assert.InDelta(t, 0.7, result.Partial[0].Similarity, 1e-9)
}

func TestMatchKeywordsDeduplicatesAcrossGroups(t *testing.T) {
	job := &types.JobRequirements{
		RequiredSkills: []string{"go"},
		Tools:          []string{"go"},
		Keywords:       []types.Keyword{{Term: "go", Frequency: 3, Category: types.CategoryTechnical}},
	}

	result := MatchKeywords(testResume(), job)
	assert.Equal(t, []string{"go"}, result.Matched)
	assert.Equal(t, 100, result.Score)
}

func TestMatchKeywordsCaseInsensitive(t *testing.T) {
	job := &types.JobRequirements{RequiredSkills: []string{"POSTGRESQL"}}

	result := MatchKeywords(testResume(), job)
	assert.Equal(t, []string{"POSTGRESQL"}, result.Matched)
}

func TestMatchKeywordsScoreBounds(t *testing.T) {
	job := &types.JobRequirements{
		RequiredSkills: []string{"go", "python", "postgresql", "docker", "terraform"},
	}

	result := MatchKeywords(testResume(), job)
	assert.Equal(t, 100, result.Score)
	assert.Len(t, result.Matched, 5)
}
