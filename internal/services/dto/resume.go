package dto

import (
	"time"

	"ats_backend/internal/models"
)

// CreateResumeRequest arrives as multipart form data; the file itself is
// handled separately by the handler.
type CreateResumeRequest struct {
	Title string `form:"title" validate:"required"`
}

type UpdateResumeRequest struct {
	Title    *string `json:"title"`
	IsActive *bool   `json:"is_active"`
}

type ResumeResponse struct {
	ID            string    `json:"id"`
	Candidate     string    `json:"candidate"`
	CandidateName string    `json:"candidate_name"`
	Title         string    `json:"title"`
	File          string    `json:"file"`
	UploadDate    time.Time `json:"upload_date"`
	IsActive      bool      `json:"is_active"`
}

func NewResumeResponse(resume *models.Resume) *ResumeResponse {
	resp := &ResumeResponse{
		ID:         resume.ID,
		Candidate:  resume.CandidateID,
		Title:      resume.Title,
		File:       resume.FileURL,
		UploadDate: resume.CreatedAt,
		IsActive:   resume.IsActive,
	}
	if resume.Candidate != nil {
		resp.CandidateName = resume.Candidate.FullName()
	}
	return resp
}

func NewResumeResponseList(resumes []models.Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(resumes))
	for i := range resumes {
		out = append(out, *NewResumeResponse(&resumes[i]))
	}
	return out
}
