package dto

import (
	"time"

	"ats_backend/internal/models"
)

type CreateJobRequest struct {
	Title        string           `json:"title" validate:"required"`
	Description  string           `json:"description"`
	Requirements string           `json:"requirements"`
	Location     string           `json:"location"`
	SalaryRange  string           `json:"salary_range"`
	JobType      string           `json:"job_type"`
	Status       models.JobStatus `json:"status" validate:"omitempty,oneof=active inactive filled expired"`
	Deadline     *time.Time       `json:"deadline"`
}

type UpdateJobRequest struct {
	Title        *string           `json:"title"`
	Description  *string           `json:"description"`
	Requirements *string           `json:"requirements"`
	Location     *string           `json:"location"`
	SalaryRange  *string           `json:"salary_range"`
	JobType      *string           `json:"job_type"`
	Status       *models.JobStatus `json:"status" validate:"omitempty,oneof=active inactive filled expired"`
	Deadline     *time.Time        `json:"deadline"`
}

// JobResponse carries a posting plus the derived employer_name and
// company_name fields resolved from the employer's profile.
type JobResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Employer     string           `json:"employer"`
	EmployerName string           `json:"employer_name"`
	CompanyName  *string          `json:"company_name"`
	Description  string           `json:"description"`
	Requirements string           `json:"requirements"`
	Location     string           `json:"location"`
	SalaryRange  string           `json:"salary_range"`
	JobType      string           `json:"job_type"`
	Status       models.JobStatus `json:"status"`
	PostedDate   time.Time        `json:"posted_date"`
	Deadline     *time.Time       `json:"deadline"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func NewJobResponse(job *models.Job) *JobResponse {
	resp := &JobResponse{
		ID:           job.ID,
		Title:        job.Title,
		Employer:     job.EmployerID,
		Description:  job.Description,
		Requirements: job.Requirements,
		Location:     job.Location,
		SalaryRange:  job.SalaryRange,
		JobType:      job.JobType,
		Status:       job.Status,
		PostedDate:   job.PostedDate,
		Deadline:     job.Deadline,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}
	if job.Employer != nil {
		resp.EmployerName = job.Employer.FullName()
		if job.Employer.Profile != nil {
			name := job.Employer.Profile.CompanyName
			resp.CompanyName = &name
		}
	}
	return resp
}

func NewJobResponseList(jobs []models.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, *NewJobResponse(&jobs[i]))
	}
	return out
}
