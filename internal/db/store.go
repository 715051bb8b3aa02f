package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/ats-scorer/internal/types"
)

// SaveResume stores a parsed resume for a user and returns its ID.
func (db *DB) SaveResume(ctx context.Context, userID uuid.UUID, parsed *types.ParsedResume) (uuid.UUID, error) {
	payload, err := json.Marshal(parsed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, parsed, confidence)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, payload, parsed.Confidence,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume loads a parsed resume by ID, or nil when absent.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*types.ParsedResume, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT parsed FROM resumes WHERE id = $1`, id,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	var parsed types.ParsedResume
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
	}
	return &parsed, nil
}

// SaveJobAnalysis stores parsed job requirements and returns their ID.
func (db *DB) SaveJobAnalysis(ctx context.Context, userID uuid.UUID, job *types.JobRequirements) (uuid.UUID, error) {
	payload, err := json.Marshal(job)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal job analysis: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO job_analyses (user_id, requirements)
		 VALUES ($1, $2)
		 RETURNING id`,
		userID, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job analysis: %w", err)
	}
	return id, nil
}

// GetJobAnalysis loads stored job requirements by ID, or nil when absent.
func (db *DB) GetJobAnalysis(ctx context.Context, id uuid.UUID) (*types.JobRequirements, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT requirements FROM job_analyses WHERE id = $1`, id,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job analysis: %w", err)
	}

	var job types.JobRequirements
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job analysis: %w", err)
	}
	return &job, nil
}

// SaveScore stores a score result for a resume/job pair and returns its ID.
func (db *DB) SaveScore(ctx context.Context, resumeID, jobID uuid.UUID, result *types.ATSScoreResult) (uuid.UUID, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal score: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO ats_scores (resume_id, job_id, result, overall_score)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		resumeID, jobID, payload, result.OverallScore,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save score: %w", err)
	}
	return id, nil
}

// GetScore loads a stored score result by ID, or nil when absent.
func (db *DB) GetScore(ctx context.Context, id uuid.UUID) (*types.ATSScoreResult, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT result FROM ats_scores WHERE id = $1`, id,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	var result types.ATSScoreResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score: %w", err)
	}
	return &result, nil
}

// ListScores returns the stored scores for a resume, newest first.
func (db *DB) ListScores(ctx context.Context, resumeID uuid.UUID) ([]*types.ATSScoreResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT result FROM ats_scores WHERE resume_id = $1 ORDER BY created_at DESC`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	defer rows.Close()

	var results []*types.ATSScoreResult
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		var result types.ATSScoreResult
		if err := json.Unmarshal(payload, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score: %w", err)
		}
		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read score rows: %w", err)
	}
	return results, nil
}
