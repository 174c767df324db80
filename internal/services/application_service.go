package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ats_backend/internal/auth"
	"ats_backend/internal/logger"
	"ats_backend/internal/models"
	"ats_backend/internal/repositories"
	"ats_backend/internal/services/dto"
	"ats_backend/pkg/apperrors"
)

type ApplicationService interface {
	List(ctx context.Context, viewerID string) ([]dto.ApplicationResponse, error)
	Get(ctx context.Context, viewerID, id string) (*dto.ApplicationResponse, error)
	Create(ctx context.Context, viewerID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	Update(ctx context.Context, viewerID, id string, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error)
	Delete(ctx context.Context, viewerID, id string) error
}

type applicationService struct {
	applications repositories.ApplicationRepository
	jobs         repositories.JobRepository
	resumes      repositories.ResumeRepository
	profiles     repositories.ProfileRepository
}

func NewApplicationService(
	applications repositories.ApplicationRepository,
	jobs repositories.JobRepository,
	resumes repositories.ResumeRepository,
	profiles repositories.ProfileRepository,
) ApplicationService {
	return &applicationService{
		applications: applications,
		jobs:         jobs,
		resumes:      resumes,
		profiles:     profiles,
	}
}

func (s *applicationService) List(ctx context.Context, viewerID string) ([]dto.ApplicationResponse, error) {
	v := resolveViewer(ctx, s.profiles, viewerID)
	applications, err := s.applications.FindVisible(ctx, v)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponseList(applications), nil
}

func (s *applicationService) Get(ctx context.Context, viewerID, id string) (*dto.ApplicationResponse, error) {
	v := resolveViewer(ctx, s.profiles, viewerID)
	application, err := s.applications.FindVisibleByID(ctx, v, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponse(application), nil
}

// Create submits an application by the calling user for an existing job.
func (s *applicationService) Create(ctx context.Context, viewerID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if _, err := s.jobs.FindByID(ctx, req.Job); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	v := resolveViewer(ctx, s.profiles, viewerID)
	if req.Resume != nil {
		if _, err := s.resumes.FindVisibleByID(ctx, v, *req.Resume); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrResumeNotFound
			}
			return nil, apperrors.InternalError(err)
		}
	}

	application := &models.Application{
		JobID:       req.Job,
		CandidateID: viewerID,
		ResumeID:    req.Resume,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application submitted", "application_id", application.ID, "job_id", req.Job)

	// Reload as the row's candidate so the caller's own role never hides
	// the application they just submitted.
	creator := auth.Viewer{UserID: viewerID, Role: models.RoleCandidate}
	created, err := s.applications.FindVisibleByID(ctx, creator, application.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponse(created), nil
}

// Update edits an application the viewer can see. There is no status
// transition graph: any listed status may be set directly.
func (s *applicationService) Update(ctx context.Context, viewerID, id string, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error) {
	v := resolveViewer(ctx, s.profiles, viewerID)
	application, err := s.applications.FindVisibleByID(ctx, v, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Status != nil {
		application.Status = *req.Status
	}
	if req.Resume != nil {
		if _, err := s.resumes.FindVisibleByID(ctx, v, *req.Resume); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrResumeNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		application.ResumeID = req.Resume
	}
	if req.CoverLetter != nil {
		application.CoverLetter = *req.CoverLetter
	}
	if req.EmployerNotes != nil {
		application.EmployerNotes = *req.EmployerNotes
	}

	if err := s.applications.Update(ctx, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.applications.FindVisibleByID(ctx, v, application.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponse(updated), nil
}

func (s *applicationService) Delete(ctx context.Context, viewerID, id string) error {
	v := resolveViewer(ctx, s.profiles, viewerID)
	application, err := s.applications.FindVisibleByID(ctx, v, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}
	if err := s.applications.Delete(ctx, application.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
