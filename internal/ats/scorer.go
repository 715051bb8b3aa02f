package ats

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/ats-scorer/internal/patterns"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Component weights. They sum to 1.0.
const (
	keywordWeight    = 0.40
	titleWeight      = 0.15
	experienceWeight = 0.20
	formatWeight     = 0.15
	semanticWeight   = 0.10
)

// neutralExperienceScore is used when the job states no experience requirement.
const neutralExperienceScore = 75

// Scorer combines the keyword matcher, format checker, title relevance, and
// experience adequacy into a weighted overall score. The zero-value
// configuration uses the constant semantic strategy.
type Scorer struct {
	semantic SemanticScorer
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithSemanticScorer replaces the constant semantic strategy, typically with
// an AI-backed similarity scorer.
func WithSemanticScorer(s SemanticScorer) Option {
	return func(sc *Scorer) {
		if s != nil {
			sc.semantic = s
		}
	}
}

// NewScorer creates a Scorer.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{semantic: constantSemantic{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalculateATSScore scores a resume against job requirements with the default
// constant semantic strategy.
func CalculateATSScore(resume *types.ResumeContent, job *types.JobRequirements) *types.ATSScoreResult {
	return NewScorer().Calculate(context.Background(), resume, job)
}

// Calculate produces the full score result. It never fails: a semantic
// scorer error falls back to the neutral constant.
func (s *Scorer) Calculate(ctx context.Context, resume *types.ResumeContent, job *types.JobRequirements) *types.ATSScoreResult {
	keywords := MatchKeywords(resume, job)
	format := CheckFormat(resume)
	titleScore := scoreTitle(resume, job)
	experienceScore := scoreExperience(resume, job)

	semanticScore, err := s.semantic.Score(ctx, resume, job)
	if err != nil {
		semanticScore = DefaultSemanticScore
	}

	breakdown := types.ScoreBreakdown{
		KeywordScore: component(keywords.Score, keywordWeight,
			fmt.Sprintf("Matched %d of %d keywords", len(keywords.Matched), len(keywords.Matched)+len(keywords.Missing))),
		TitleScore:      component(titleScore, titleWeight, "Job title relevance"),
		ExperienceScore: component(experienceScore, experienceWeight, "Experience alignment"),
		FormatScore: component(format.Score, formatWeight,
			fmt.Sprintf("%d formatting issues found", len(format.Issues))),
		SemanticScore: component(semanticScore, semanticWeight, "Semantic similarity (AI-enhanced)"),
	}

	overall := int(math.Round(breakdown.KeywordScore.WeightedScore +
		breakdown.TitleScore.WeightedScore +
		breakdown.ExperienceScore.WeightedScore +
		breakdown.FormatScore.WeightedScore +
		breakdown.SemanticScore.WeightedScore))

	return &types.ATSScoreResult{
		OverallScore:    overall,
		Classification:  classify(overall),
		Breakdown:       breakdown,
		MatchedKeywords: keywords.Matched,
		MissingKeywords: keywords.Missing,
		Suggestions:     buildSuggestions(keywords, format, titleScore, experienceScore, job),
	}
}

func component(score int, weight float64, details string) types.ScoreComponent {
	return types.ScoreComponent{
		Score:         score,
		Weight:        weight,
		WeightedScore: float64(score) * weight,
		Details:       details,
	}
}

func classify(overall int) types.Classification {
	switch {
	case overall >= 90:
		return types.ClassificationExcellent
	case overall >= 75:
		return types.ClassificationGood
	case overall >= 60:
		return types.ClassificationFair
	case overall >= 40:
		return types.ClassificationPoor
	default:
		return types.ClassificationCritical
	}
}

// scoreTitle measures how closely any experience title matches the job title.
// An exact case-insensitive match short-circuits to 100; otherwise the best
// entry's word-overlap fraction decides.
func scoreTitle(resume *types.ResumeContent, job *types.JobRequirements) int {
	if len(resume.Experience) == 0 {
		return 0
	}
	jobTitle := strings.ToLower(job.Title)
	jobWords := patterns.Whitespace.Split(jobTitle, -1)

	best := 0.0
	for _, entry := range resume.Experience {
		title := strings.ToLower(entry.Title)
		if title == jobTitle {
			return 100
		}

		titleWords := make(map[string]struct{})
		for _, w := range patterns.Whitespace.Split(title, -1) {
			titleWords[w] = struct{}{}
		}
		overlap := 0
		for _, w := range jobWords {
			if _, ok := titleWords[w]; ok {
				overlap++
			}
		}
		if fraction := float64(overlap) / float64(len(jobWords)); fraction > best {
			best = fraction
		}
	}
	return int(math.Round(best * 100))
}

// scoreExperience compares total years of experience on the resume against
// the job's stated minimum. Entries without parseable years count as one
// year each.
func scoreExperience(resume *types.ResumeContent, job *types.JobRequirements) int {
	if job.ExperienceYears.Min == nil {
		return neutralExperienceScore
	}
	if len(resume.Experience) == 0 {
		return 0
	}

	total := 0
	now := time.Now().Year()
	for _, entry := range resume.Experience {
		start, startOK := firstYear(entry.StartDate)
		end := now
		endOK := entry.Current
		if !endOK {
			end, endOK = firstYear(entry.EndDate)
		}
		if startOK && endOK {
			total += end - start
		} else {
			total++
		}
	}

	minYears := *job.ExperienceYears.Min
	if total >= minYears {
		return 100
	}
	return int(math.Round(float64(total) / float64(minYears) * 100))
}

func firstYear(date string) (int, bool) {
	m := patterns.Year.FindString(date)
	if m == "" {
		return 0, false
	}
	year, err := strconv.Atoi(m)
	return year, err == nil
}
