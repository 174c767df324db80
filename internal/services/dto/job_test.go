package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats_backend/internal/models"
)

func TestNewJobResponse_DerivedFields(t *testing.T) {
	job := &models.Job{
		EmployerID: "emp-1",
		Title:      "Backend Engineer",
		Status:     models.JobStatusActive,
		Employer: &models.User{
			Username:  "boss",
			FirstName: "Dana",
			LastName:  "Satpaeva",
			Profile:   &models.UserProfile{Role: models.RoleEmployer, CompanyName: "Acme LLP"},
		},
	}

	resp := NewJobResponse(job)
	assert.Equal(t, "emp-1", resp.Employer)
	assert.Equal(t, "Dana Satpaeva", resp.EmployerName)
	require.NotNil(t, resp.CompanyName)
	assert.Equal(t, "Acme LLP", *resp.CompanyName)
}

func TestNewJobResponse_NoEmployerProfile(t *testing.T) {
	job := &models.Job{
		EmployerID: "emp-1",
		Title:      "Backend Engineer",
		Employer:   &models.User{Username: "boss"},
	}

	resp := NewJobResponse(job)
	assert.Equal(t, "boss", resp.EmployerName)
	assert.Nil(t, resp.CompanyName, "company_name must be null without a profile")
}

func TestNewApplicationResponse_OptionalResume(t *testing.T) {
	app := &models.Application{
		JobID:       "job-1",
		CandidateID: "cand-1",
		Status:      models.ApplicationStatusPending,
		Job:         &models.Job{Title: "Backend Engineer"},
		Candidate:   &models.User{Username: "aizhan"},
	}

	resp := NewApplicationResponse(app)
	assert.Equal(t, "Backend Engineer", resp.JobTitle)
	assert.Equal(t, "aizhan", resp.CandidateName)
	assert.Nil(t, resp.Resume)
	assert.Nil(t, resp.ResumeTitle)

	resumeID := "res-1"
	app.ResumeID = &resumeID
	app.Resume = &models.Resume{Title: "CV 2026"}

	resp = NewApplicationResponse(app)
	require.NotNil(t, resp.ResumeTitle)
	assert.Equal(t, "CV 2026", *resp.ResumeTitle)
}
