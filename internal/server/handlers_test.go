package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/ats"
)

var testUserID = uuid.New()

// newTestServer builds a server without a database connection. Handlers
// validate input before touching the database, so validation paths and
// anonymous parsing are testable without one.
func newTestServer() *Server {
	return &Server{
		scorer:     ats.NewScorer(),
		jwtService: newTestJWTService("test-secret"),
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestHandleParseResumeInvalidBody(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/parse-resume", strings.NewReader("{broken"))
	w := httptest.NewRecorder()

	s.handleParseResume(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleParseResumeEmptyText(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/parse-resume", strings.NewReader(`{"raw_text":""}`))
	w := httptest.NewRecorder()

	s.handleParseResume(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleParseResumeAnonymous(t *testing.T) {
	s := newTestServer()

	body := `{"raw_text":"Jane Doe\njane@example.com\n\nSkills\nGo, Python, SQL"}`
	req := httptest.NewRequest(http.MethodPost, "/parse-resume", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleParseResume(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ParseResumeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.ResumeID, "anonymous requests are not persisted")
	require.NotNil(t, resp.Resume)
	assert.Equal(t, "Jane Doe", resp.Resume.Content.ContactInfo.FullName)
	assert.Contains(t, resp.Resume.Content.Skills, "Go")
}

func TestHandleAnalyzeJobTooShort(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/analyze-job",
		strings.NewReader(`{"raw_description":"too short"}`))
	w := httptest.NewRecorder()

	s.handleAnalyzeJob(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAnalyzeJobAnonymous(t *testing.T) {
	s := newTestServer()

	description := "Senior Platform Engineer\nWe need 5+ years of experience building services in Go and Kubernetes."
	payload, err := json.Marshal(map[string]string{
		"raw_description": description,
		"company":         "Acme",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/analyze-job", strings.NewReader(string(payload)))
	w := httptest.NewRecorder()

	s.handleAnalyzeJob(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeJobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.JobID)
	require.NotNil(t, resp.Requirements)
	assert.Equal(t, "Acme", resp.Requirements.Company)
	assert.Contains(t, resp.Requirements.RequiredSkills, "go")
}

func TestHandleScoreInvalidIDs(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/score",
		strings.NewReader(`{"resume_id":"not-a-uuid","job_id":"also-not"}`))
	w := httptest.NewRecorder()

	s.handleScore(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetResumeInvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/resumes/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetResume(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetJobAnalysisInvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/jobs/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetJobAnalysis(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetScoreInvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/scores/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetScore(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleListScoresInvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/resumes/not-a-uuid/scores", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleListScores(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthUserID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/parse-resume", nil)
	_, ok := s.authUserID(req)
	assert.False(t, ok, "no header")

	req.Header.Set("Authorization", "Bearer garbage")
	_, ok = s.authUserID(req)
	assert.False(t, ok, "invalid token")

	token, err := s.jwtService.GenerateToken(testUserID)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	userID, ok := s.authUserID(req)
	require.True(t, ok)
	assert.Equal(t, testUserID, userID)
}
