package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats_backend/internal/models"
	"ats_backend/test/helpers"
)

func TestApplicationCreate(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	employer := helpers.CreateAndLoginEmployer(t, ts)
	candidate := helpers.CreateAndLoginCandidate(t, ts)

	job := helpers.CreateTestJob(t, ts.DB, employer.ID, helpers.UniqueName("Open Role"), models.JobStatusActive)
	resume := helpers.CreateTestResume(t, ts.DB, candidate.ID, helpers.UniqueName("Attached Resume"))

	res, body := ts.SendRequest(t, http.MethodPost, "/applications/", candidate.Access, map[string]interface{}{
		"job":          job.ID,
		"resume":       resume.ID,
		"cover_letter": "I would love this role.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, job.Title, created["job_title"])
	assert.Equal(t, "Test User", created["candidate_name"])
	assert.Equal(t, resume.Title, created["resume_title"])
}

func TestApplicationCreate_EmployerApplicant(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	posting := helpers.CreateAndLoginEmployer(t, ts)
	applicant := helpers.CreateAndLoginEmployer(t, ts)

	job := helpers.CreateTestJob(t, ts.DB, posting.ID, helpers.UniqueName("Cross Role"), models.JobStatusActive)

	res, body := ts.SendRequest(t, http.MethodPost, "/applications/", applicant.Access, map[string]interface{}{
		"job": job.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, job.Title, created["job_title"])

	// the posting employer sees the application under their job
	res, body = ts.SendRequest(t, http.MethodGet, "/applications/", posting.Access, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, created["id"])
}

func TestApplicationCreate_JobMustExist(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	candidate := helpers.CreateAndLoginCandidate(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/applications/", candidate.Access, map[string]interface{}{
		"job": uuid.NewString(),
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Job not found")
}

func TestApplicationVisibility(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	employer := helpers.CreateAndLoginEmployer(t, ts)
	otherEmployer := helpers.CreateAndLoginEmployer(t, ts)
	candidate := helpers.CreateAndLoginCandidate(t, ts)
	stranger := helpers.CreateAndLoginCandidate(t, ts)

	job := helpers.CreateTestJob(t, ts.DB, employer.ID, helpers.UniqueName("Watched Role"), models.JobStatusActive)
	application := helpers.CreateTestApplication(t, ts.DB, job.ID, candidate.ID, nil, models.ApplicationStatusPending)

	// the candidate sees their application
	res, body := ts.SendRequest(t, http.MethodGet, "/applications/", candidate.Access, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, application.ID)

	// the posting employer sees it too
	res, body = ts.SendRequest(t, http.MethodGet, "/applications/", employer.Access, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, application.ID)

	// an unrelated employer and an unrelated candidate do not
	res, body = ts.SendRequest(t, http.MethodGet, "/applications/", otherEmployer.Access, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, application.ID)

	res, body = ts.SendRequest(t, http.MethodGet, "/applications/", stranger.Access, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, application.ID)
}

func TestApplicationUpdate_EmployerSetsStatus(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	employer := helpers.CreateAndLoginEmployer(t, ts)
	candidate := helpers.CreateAndLoginCandidate(t, ts)

	job := helpers.CreateTestJob(t, ts.DB, employer.ID, helpers.UniqueName("Reviewed Role"), models.JobStatusActive)
	application := helpers.CreateTestApplication(t, ts.DB, job.ID, candidate.ID, nil, models.ApplicationStatusPending)

	res, body := ts.SendRequest(t, http.MethodPatch, "/applications/"+application.ID+"/", employer.Access, map[string]interface{}{
		"status":         "shortlisted",
		"employer_notes": "Strong fit, schedule interview",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"status":"shortlisted"`)
	assert.Contains(t, body, "Strong fit")
}

func TestApplicationUpdate_ScopedOut(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	employer := helpers.CreateAndLoginEmployer(t, ts)
	candidate := helpers.CreateAndLoginCandidate(t, ts)
	stranger := helpers.CreateAndLoginCandidate(t, ts)

	job := helpers.CreateTestJob(t, ts.DB, employer.ID, helpers.UniqueName("Private Role"), models.JobStatusActive)
	application := helpers.CreateTestApplication(t, ts.DB, job.ID, candidate.ID, nil, models.ApplicationStatusPending)

	// writes flow through the same visibility scope as reads
	res, _ := ts.SendRequest(t, http.MethodPatch, "/applications/"+application.ID+"/", stranger.Access, map[string]interface{}{
		"status": "hired",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/applications/"+application.ID+"/", stranger.Access, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestApplicationWithInvalidStatus(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	employer := helpers.CreateAndLoginEmployer(t, ts)
	candidate := helpers.CreateAndLoginCandidate(t, ts)

	job := helpers.CreateTestJob(t, ts.DB, employer.ID, helpers.UniqueName("Strict Role"), models.JobStatusActive)
	application := helpers.CreateTestApplication(t, ts.DB, job.ID, candidate.ID, nil, models.ApplicationStatusPending)

	res, body := ts.SendRequest(t, http.MethodPatch, "/applications/"+application.ID+"/", employer.Access, map[string]interface{}{
		"status": "teleported",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}
