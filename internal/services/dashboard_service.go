package services

import (
	"context"

	"ats_backend/internal/auth"
	"ats_backend/internal/models"
	"ats_backend/internal/repositories"
	"ats_backend/internal/services/dto"
	"ats_backend/pkg/apperrors"
)

type DashboardService interface {
	Employer(ctx context.Context, viewerID string) (*dto.EmployerDashboardResponse, error)
	Candidate(ctx context.Context, viewerID string) (*dto.CandidateDashboardResponse, error)
}

type dashboardService struct {
	profiles     repositories.ProfileRepository
	jobs         repositories.JobRepository
	resumes      repositories.ResumeRepository
	applications repositories.ApplicationRepository
}

func NewDashboardService(
	profiles repositories.ProfileRepository,
	jobs repositories.JobRepository,
	resumes repositories.ResumeRepository,
	applications repositories.ApplicationRepository,
) DashboardService {
	return &dashboardService{
		profiles:     profiles,
		jobs:         jobs,
		resumes:      resumes,
		applications: applications,
	}
}

// Employer builds the employer dashboard: the caller's postings, applications
// to them, and status counts. A missing profile is 404, a wrong role 403.
func (s *dashboardService) Employer(ctx context.Context, viewerID string) (*dto.EmployerDashboardResponse, error) {
	profile, err := s.profiles.FindByUserID(ctx, viewerID)
	if err != nil {
		return nil, apperrors.ErrProfileNotFound
	}
	if profile.Role != models.RoleEmployer {
		return nil, apperrors.ErrForbidden
	}

	v := auth.Viewer{UserID: viewerID, Role: profile.Role, HasProfile: true}

	jobs, err := s.jobs.FindByEmployer(ctx, viewerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	applications, err := s.applications.FindVisible(ctx, v)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := dto.EmployerStats{}
	if stats.TotalApplications, err = s.applications.CountVisible(ctx, v); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PendingApplications, err = s.applications.CountVisibleByStatus(ctx, v, models.ApplicationStatusPending); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ReviewedApplications, err = s.applications.CountVisibleByStatus(ctx, v, models.ApplicationStatusReviewed); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ShortlistedApplications, err = s.applications.CountVisibleByStatus(ctx, v, models.ApplicationStatusShortlisted); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.EmployerDashboardResponse{
		Jobs:         dto.NewJobResponseList(jobs),
		Applications: dto.NewApplicationResponseList(applications),
		Stats:        stats,
	}, nil
}

// Candidate builds the candidate dashboard: the caller's applications,
// resumes, and status counts.
func (s *dashboardService) Candidate(ctx context.Context, viewerID string) (*dto.CandidateDashboardResponse, error) {
	profile, err := s.profiles.FindByUserID(ctx, viewerID)
	if err != nil {
		return nil, apperrors.ErrProfileNotFound
	}
	if profile.Role != models.RoleCandidate {
		return nil, apperrors.ErrForbidden
	}

	v := auth.Viewer{UserID: viewerID, Role: profile.Role, HasProfile: true}

	applications, err := s.applications.FindVisible(ctx, v)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resumes, err := s.resumes.FindVisible(ctx, v)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := dto.CandidateStats{}
	if stats.TotalApplications, err = s.applications.CountVisible(ctx, v); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PendingApplications, err = s.applications.CountVisibleByStatus(ctx, v, models.ApplicationStatusPending); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ReviewedApplications, err = s.applications.CountVisibleByStatus(ctx, v, models.ApplicationStatusReviewed); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.InterviewApplications, err = s.applications.CountVisibleByStatus(ctx, v, models.ApplicationStatusInterview); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CandidateDashboardResponse{
		Applications: dto.NewApplicationResponseList(applications),
		Resumes:      dto.NewResumeResponseList(resumes),
		Stats:        stats,
	}, nil
}
