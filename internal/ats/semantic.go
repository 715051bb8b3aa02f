package ats

import (
	"context"

	"github.com/jonathan/ats-scorer/internal/types"
)

// DefaultSemanticScore is the neutral semantic similarity used when no
// AI-backed scorer is configured.
const DefaultSemanticScore = 70

// SemanticScorer produces a 0-100 semantic similarity between a resume and a
// job description. Implementations may call external services; the scorer
// falls back to DefaultSemanticScore when Score returns an error.
type SemanticScorer interface {
	Score(ctx context.Context, resume *types.ResumeContent, job *types.JobRequirements) (int, error)
}

// constantSemantic is the default strategy: a fixed placeholder similarity.
type constantSemantic struct{}

func (constantSemantic) Score(context.Context, *types.ResumeContent, *types.JobRequirements) (int, error) {
	return DefaultSemanticScore, nil
}
