package dto

import (
	"time"

	"ats_backend/internal/models"
)

type CreateApplicationRequest struct {
	Job         string  `json:"job" validate:"required"`
	Resume      *string `json:"resume"`
	CoverLetter string  `json:"cover_letter"`
}

type UpdateApplicationRequest struct {
	Status        *models.ApplicationStatus `json:"status" validate:"omitempty,oneof=pending reviewed shortlisted rejected interview offered hired"`
	Resume        *string                   `json:"resume"`
	CoverLetter   *string                   `json:"cover_letter"`
	EmployerNotes *string                   `json:"employer_notes"`
}

// ApplicationResponse carries an application plus derived job_title,
// candidate_name and resume_title fields.
type ApplicationResponse struct {
	ID              string                   `json:"id"`
	Job             string                   `json:"job"`
	JobTitle        string                   `json:"job_title"`
	Candidate       string                   `json:"candidate"`
	CandidateName   string                   `json:"candidate_name"`
	Resume          *string                  `json:"resume"`
	ResumeTitle     *string                  `json:"resume_title"`
	CoverLetter     string                   `json:"cover_letter"`
	Status          models.ApplicationStatus `json:"status"`
	ApplicationDate time.Time                `json:"application_date"`
	LastUpdated     time.Time                `json:"last_updated"`
	EmployerNotes   string                   `json:"employer_notes"`
}

func NewApplicationResponse(application *models.Application) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:              application.ID,
		Job:             application.JobID,
		Candidate:       application.CandidateID,
		Resume:          application.ResumeID,
		CoverLetter:     application.CoverLetter,
		Status:          application.Status,
		ApplicationDate: application.CreatedAt,
		LastUpdated:     application.UpdatedAt,
		EmployerNotes:   application.EmployerNotes,
	}
	if application.Job != nil {
		resp.JobTitle = application.Job.Title
	}
	if application.Candidate != nil {
		resp.CandidateName = application.Candidate.FullName()
	}
	if application.Resume != nil {
		title := application.Resume.Title
		resp.ResumeTitle = &title
	}
	return resp
}

func NewApplicationResponseList(applications []models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(applications))
	for i := range applications {
		out = append(out, *NewApplicationResponse(&applications[i]))
	}
	return out
}
