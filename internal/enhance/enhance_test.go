package enhance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/llm"
	"github.com/jonathan/ats-scorer/internal/types"
)

// stubClient returns canned responses without network access.
type stubClient struct {
	response string
	err      error
}

func (s *stubClient) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func testInputs() (*types.ResumeContent, *types.JobRequirements, *types.ATSScoreResult) {
	resume := &types.ResumeContent{
		Summary: "Platform engineer focused on reliability",
		Skills:  []string{"Go", "Kubernetes"},
	}
	job := &types.JobRequirements{
		Title:          "Senior Platform Engineer",
		RequiredSkills: []string{"go", "terraform"},
	}
	score := &types.ATSScoreResult{
		OverallScore:    68,
		Classification:  types.ClassificationFair,
		MissingKeywords: []string{"terraform"},
	}
	return resume, job, score
}

func TestEnhanceParsesValidResponse(t *testing.T) {
	client := &stubClient{response: `{
		"suggestions": [
			{"priority": "high", "category": "keyword",
			 "issue": "Terraform missing", "action": "Add Terraform modules you maintained",
			 "estimated_impact": "+5 points"}
		]
	}`}

	resume, job, score := testInputs()
	suggestions, err := NewService(client).Enhance(context.Background(), resume, job, score)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, types.PriorityHigh, suggestions[0].Priority)
	assert.Equal(t, types.SuggestionKeyword, suggestions[0].Category)
}

func TestEnhanceRejectsSchemaViolation(t *testing.T) {
	// "urgent" is not a valid priority.
	client := &stubClient{response: `{
		"suggestions": [{"priority": "urgent", "category": "keyword", "issue": "x", "action": "y"}]
	}`}

	resume, job, score := testInputs()
	_, err := NewService(client).Enhance(context.Background(), resume, job, score)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "suggestions", parseErr.Operation)
}

func TestEnhanceRejectsMalformedJSON(t *testing.T) {
	client := &stubClient{response: `not json at all`}

	resume, job, score := testInputs()
	_, err := NewService(client).Enhance(context.Background(), resume, job, score)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestEnhanceWrapsAPIError(t *testing.T) {
	cause := errors.New("quota exceeded")
	client := &stubClient{err: cause}

	resume, job, score := testInputs()
	_, err := NewService(client).Enhance(context.Background(), resume, job, score)

	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.ErrorIs(t, err, cause)
}

func TestSemanticSimilarity(t *testing.T) {
	client := &stubClient{response: `{"similarity": 82}`}

	resume, job, _ := testInputs()
	similarity, err := NewService(client).SemanticSimilarity(context.Background(), resume, job)
	require.NoError(t, err)
	assert.Equal(t, 82, similarity)
}

func TestSemanticSimilarityOutOfRange(t *testing.T) {
	client := &stubClient{response: `{"similarity": 140}`}

	resume, job, _ := testInputs()
	_, err := NewService(client).SemanticSimilarity(context.Background(), resume, job)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestSemanticScorerAdapter(t *testing.T) {
	scorer := NewSemanticScorer(NewService(&stubClient{response: `{"similarity": 55}`}))

	resume, job, _ := testInputs()
	score, err := scorer.Score(context.Background(), resume, job)
	require.NoError(t, err)
	assert.Equal(t, 55, score)
}
