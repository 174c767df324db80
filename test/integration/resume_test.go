package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats_backend/internal/models"
	"ats_backend/test/helpers"
)

func TestResumeUpload(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	candidate := helpers.CreateAndLoginCandidate(t, ts)

	title := helpers.UniqueName("My Resume")
	res, body := ts.SendMultipart(t, "/resumes/", candidate.Access,
		map[string]string{"title": title},
		"file", "resume.pdf", "application/pdf", []byte("%PDF-1.4 fake resume content"))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, title, created["title"])
	assert.Equal(t, candidate.ID, created["candidate"])
	assert.Equal(t, "Test User", created["candidate_name"])
	assert.Equal(t, true, created["is_active"])
	assert.NotEmpty(t, created["file"])
}

func TestResumeUpload_RejectsUnsupportedType(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	candidate := helpers.CreateAndLoginCandidate(t, ts)

	res, body := ts.SendMultipart(t, "/resumes/", candidate.Access,
		map[string]string{"title": "Nope"},
		"file", "resume.exe", "application/x-msdownload", []byte("MZ"))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestResumeUpload_RequiresFile(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	candidate := helpers.CreateAndLoginCandidate(t, ts)

	res, body := ts.SendMultipart(t, "/resumes/", candidate.Access,
		map[string]string{"title": "No file"},
		"wrong_field", "resume.pdf", "application/pdf", []byte("%PDF"))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestResumeVisibility(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	owner := helpers.CreateAndLoginCandidate(t, ts)
	stranger := helpers.CreateAndLoginCandidate(t, ts)
	employer := helpers.CreateAndLoginEmployer(t, ts)
	admin := helpers.CreateAndLoginAdmin(t, ts)

	resume := helpers.CreateTestResume(t, ts.DB, owner.ID, helpers.UniqueName("Visible Resume"))
	job := helpers.CreateTestJob(t, ts.DB, employer.ID, helpers.UniqueName("Hiring"), models.JobStatusActive)

	// the owner sees it
	res, body := ts.SendRequest(t, http.MethodGet, "/resumes/", owner.Access, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, resume.Title)

	// another candidate does not
	res, body = ts.SendRequest(t, http.MethodGet, "/resumes/", stranger.Access, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, resume.Title)

	// an employer does not either, until the resume is attached to an
	// application for one of their jobs
	res, body = ts.SendRequest(t, http.MethodGet, "/resumes/", employer.Access, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, resume.Title)

	helpers.CreateTestApplication(t, ts.DB, job.ID, owner.ID, &resume.ID, models.ApplicationStatusPending)

	res, body = ts.SendRequest(t, http.MethodGet, "/resumes/", employer.Access, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, resume.Title)

	// admins see everything
	res, body = ts.SendRequest(t, http.MethodGet, "/resumes/", admin.Access, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, resume.Title)

	// detail access follows the same scope
	res, _ = ts.SendRequest(t, http.MethodGet, "/resumes/"+resume.ID+"/", stranger.Access, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestResumeDelete_DetachesApplications(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	candidate := helpers.CreateAndLoginCandidate(t, ts)
	employer := helpers.CreateAndLoginEmployer(t, ts)

	resume := helpers.CreateTestResume(t, ts.DB, candidate.ID, helpers.UniqueName("Ephemeral"))
	job := helpers.CreateTestJob(t, ts.DB, employer.ID, helpers.UniqueName("Some Job"), models.JobStatusActive)
	application := helpers.CreateTestApplication(t, ts.DB, job.ID, candidate.ID, &resume.ID, models.ApplicationStatusPending)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/resumes/"+resume.ID+"/", candidate.Access, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	// the application survives with its resume reference cleared
	var reloaded models.Application
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", application.ID).Error)
	assert.Nil(t, reloaded.ResumeID)
}

func TestResumeUpdate_ToggleActive(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	candidate := helpers.CreateAndLoginCandidate(t, ts)
	resume := helpers.CreateTestResume(t, ts.DB, candidate.ID, helpers.UniqueName("Toggling"))

	res, body := ts.SendRequest(t, http.MethodPatch, "/resumes/"+resume.ID+"/", candidate.Access, map[string]interface{}{
		"is_active": false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"is_active":false`)
}
