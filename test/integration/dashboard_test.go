package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats_backend/internal/auth"
	"ats_backend/internal/models"
	"ats_backend/test/helpers"
)

func TestEmployerDashboard(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	employer := helpers.CreateAndLoginEmployer(t, ts)
	candidateA := helpers.CreateAndLoginCandidate(t, ts)
	candidateB := helpers.CreateAndLoginCandidate(t, ts)

	job := helpers.CreateTestJob(t, ts.DB, employer.ID, helpers.UniqueName("Dashboard Role"), models.JobStatusActive)
	helpers.CreateTestApplication(t, ts.DB, job.ID, candidateA.ID, nil, models.ApplicationStatusPending)
	helpers.CreateTestApplication(t, ts.DB, job.ID, candidateB.ID, nil, models.ApplicationStatusShortlisted)

	res, body := ts.SendRequest(t, http.MethodGet, "/employer-dashboard/", employer.Access, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var dashboard struct {
		Jobs         []map[string]interface{} `json:"jobs"`
		Applications []map[string]interface{} `json:"applications"`
		Stats        struct {
			Total       int64 `json:"total_applications"`
			Pending     int64 `json:"pending_applications"`
			Reviewed    int64 `json:"reviewed_applications"`
			Shortlisted int64 `json:"shortlisted_applications"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &dashboard))

	require.Len(t, dashboard.Jobs, 1)
	assert.Equal(t, job.Title, dashboard.Jobs[0]["title"])
	assert.Len(t, dashboard.Applications, 2)
	assert.EqualValues(t, 2, dashboard.Stats.Total)
	assert.EqualValues(t, 1, dashboard.Stats.Pending)
	assert.EqualValues(t, 0, dashboard.Stats.Reviewed)
	assert.EqualValues(t, 1, dashboard.Stats.Shortlisted)
}

func TestEmployerDashboard_WrongRole(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	candidate := helpers.CreateAndLoginCandidate(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/employer-dashboard/", candidate.Access, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "Access denied")
}

func TestEmployerDashboard_NoProfile(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	username := helpers.UniqueName("noprofile")
	hash, err := auth.HashPassword("super_password123")
	require.NoError(t, err)
	user := &models.User{
		Username:     username,
		Email:        username + "@test.com",
		PasswordHash: hash,
	}
	require.NoError(t, ts.DB.Create(user).Error)

	res, body := ts.SendRequest(t, http.MethodPost, "/login/", "", map[string]interface{}{
		"username": username,
		"password": "super_password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var login struct {
		Access string `json:"access"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))

	res, body = ts.SendRequest(t, http.MethodGet, "/employer-dashboard/", login.Access, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "User profile not found")
}

func TestCandidateDashboard(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	employer := helpers.CreateAndLoginEmployer(t, ts)
	candidate := helpers.CreateAndLoginCandidate(t, ts)

	jobA := helpers.CreateTestJob(t, ts.DB, employer.ID, helpers.UniqueName("First Role"), models.JobStatusActive)
	jobB := helpers.CreateTestJob(t, ts.DB, employer.ID, helpers.UniqueName("Second Role"), models.JobStatusActive)
	resume := helpers.CreateTestResume(t, ts.DB, candidate.ID, helpers.UniqueName("Dashboard Resume"))

	helpers.CreateTestApplication(t, ts.DB, jobA.ID, candidate.ID, &resume.ID, models.ApplicationStatusPending)
	helpers.CreateTestApplication(t, ts.DB, jobB.ID, candidate.ID, &resume.ID, models.ApplicationStatusInterview)

	res, body := ts.SendRequest(t, http.MethodGet, "/candidate-dashboard/", candidate.Access, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var dashboard struct {
		Applications []map[string]interface{} `json:"applications"`
		Resumes      []map[string]interface{} `json:"resumes"`
		Stats        struct {
			Total     int64 `json:"total_applications"`
			Pending   int64 `json:"pending_applications"`
			Reviewed  int64 `json:"reviewed_applications"`
			Interview int64 `json:"interview_applications"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &dashboard))

	assert.Len(t, dashboard.Applications, 2)
	require.Len(t, dashboard.Resumes, 1)
	assert.Equal(t, resume.Title, dashboard.Resumes[0]["title"])
	assert.EqualValues(t, 2, dashboard.Stats.Total)
	assert.EqualValues(t, 1, dashboard.Stats.Pending)
	assert.EqualValues(t, 0, dashboard.Stats.Reviewed)
	assert.EqualValues(t, 1, dashboard.Stats.Interview)
}

func TestCandidateDashboard_WrongRole(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	employer := helpers.CreateAndLoginEmployer(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/candidate-dashboard/", employer.Access, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "Access denied")
}
