package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/ats-scorer/internal/job"
	"github.com/jonathan/ats-scorer/internal/resume"
	"github.com/jonathan/ats-scorer/internal/types"
)

// ParseResumeResponse is the response for POST /parse-resume. ResumeID is set
// only when the caller was authenticated and the result was persisted.
type ParseResumeResponse struct {
	ResumeID *uuid.UUID          `json:"resume_id,omitempty"`
	Resume   *types.ParsedResume `json:"resume"`
}

// AnalyzeJobResponse is the response for POST /analyze-job.
type AnalyzeJobResponse struct {
	JobID        *uuid.UUID             `json:"job_id,omitempty"`
	Requirements *types.JobRequirements `json:"requirements"`
}

// ScoreResponse is the response for POST /score.
type ScoreResponse struct {
	ScoreID uuid.UUID             `json:"score_id"`
	Result  *types.ATSScoreResult `json:"result"`
}

// handleParseResume parses raw resume text. Authenticated requests also
// persist the result and receive its ID.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req types.ParseResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	parsed := resume.Parse(req.RawText)
	resp := ParseResumeResponse{Resume: parsed}

	if userID, ok := s.authUserID(r); ok {
		id, err := s.db.SaveResume(r.Context(), userID, parsed)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume: "+err.Error())
			return
		}
		resp.ResumeID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAnalyzeJob parses a job description into structured requirements.
func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var meta *job.Metadata
	if req.Title != "" || req.Company != "" {
		meta = &job.Metadata{Title: req.Title, Company: req.Company}
	}

	requirements := job.Parse(req.RawDescription, meta)
	resp := AnalyzeJobResponse{Requirements: requirements}

	if userID, ok := s.authUserID(r); ok {
		id, err := s.db.SaveJobAnalysis(r.Context(), userID, requirements)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save job analysis: "+err.Error())
			return
		}
		resp.JobID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleScore scores a stored resume against a stored job analysis and
// persists the result. When an enhancement service is configured, AI
// suggestions are appended to the deterministic ones.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume_id")
		return
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job_id")
		return
	}

	ctx := r.Context()

	parsed, err := s.db.GetResume(ctx, resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if parsed == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	requirements, err := s.db.GetJobAnalysis(ctx, jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if requirements == nil {
		s.errorResponse(w, http.StatusNotFound, "Job analysis not found")
		return
	}

	result := s.scorer.Calculate(ctx, &parsed.Content, requirements)

	// AI suggestions are best-effort; a failure never blocks the score
	if s.enhancer != nil {
		if extra, err := s.enhancer.Enhance(ctx, &parsed.Content, requirements, result); err == nil {
			result.Suggestions = append(result.Suggestions, extra...)
		}
	}

	scoreID, err := s.db.SaveScore(ctx, resumeID, jobID, result)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save score: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ScoreResponse{ScoreID: scoreID, Result: result})
}

// handleGetResume retrieves a stored parsed resume by ID.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	parsed, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if parsed == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, parsed)
}

// handleGetJobAnalysis retrieves stored job requirements by ID.
func (s *Server) handleGetJobAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job analysis ID")
		return
	}

	requirements, err := s.db.GetJobAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if requirements == nil {
		s.errorResponse(w, http.StatusNotFound, "Job analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, requirements)
}

// handleGetScore retrieves a stored score result by ID.
func (s *Server) handleGetScore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid score ID")
		return
	}

	result, err := s.db.GetScore(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "Score not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleListScores lists stored scores for a resume, newest first.
func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	results, err := s.db.ListScores(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"scores": results,
		"count":  len(results),
	})
}

// authUserID returns the user ID from a valid bearer token, if present.
func (s *Server) authUserID(r *http.Request) (uuid.UUID, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return uuid.Nil, false
	}

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
