package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ats_backend/internal/logger"
	"ats_backend/internal/models"
	"ats_backend/internal/repositories"
	"ats_backend/internal/services/dto"
	"ats_backend/pkg/apperrors"
)

type JobService interface {
	List(ctx context.Context, status string) ([]dto.JobResponse, error)
	Get(ctx context.Context, id string) (*dto.JobResponse, error)
	Create(ctx context.Context, employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filters repositories.SearchFilters) ([]dto.JobResponse, error)
}

type jobService struct {
	jobs repositories.JobRepository
}

func NewJobService(jobs repositories.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

// List returns all postings. Jobs are globally visible, anonymous callers
// included.
func (s *jobService) List(ctx context.Context, status string) ([]dto.JobResponse, error) {
	jobs, err := s.jobs.FindAll(ctx, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponseList(jobs), nil
}

func (s *jobService) Get(ctx context.Context, id string) (*dto.JobResponse, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

// Create posts a job owned by the calling user.
func (s *jobService) Create(ctx context.Context, employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	status := req.Status
	if status == "" {
		status = models.JobStatusActive
	}

	job := &models.Job{
		EmployerID:   employerID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		SalaryRange:  req.SalaryRange,
		JobType:      req.JobType,
		Status:       status,
		PostedDate:   time.Now(),
		Deadline:     req.Deadline,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job posted", "job_id", job.ID, "employer_id", employerID)

	created, err := s.jobs.FindByID(ctx, job.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(created), nil
}

// Update edits a posting. Postings are not scoped per viewer, so any
// authenticated caller may edit any job.
func (s *jobService) Update(ctx context.Context, id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.SalaryRange != nil {
		job.SalaryRange = *req.SalaryRange
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	if _, err := s.jobs.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "job deleted", "job_id", id)
	return nil
}

// Search lists active postings matching the filters. Open to anonymous
// callers.
func (s *jobService) Search(ctx context.Context, filters repositories.SearchFilters) ([]dto.JobResponse, error) {
	jobs, err := s.jobs.Search(ctx, filters)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponseList(jobs), nil
}
