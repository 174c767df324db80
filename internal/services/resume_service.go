package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ats_backend/internal/auth"
	"ats_backend/internal/logger"
	"ats_backend/internal/models"
	"ats_backend/internal/repositories"
	"ats_backend/internal/services/dto"
	"ats_backend/internal/storage"
	"ats_backend/pkg/apperrors"
)

// UploadLimits constrains accepted resume files.
type UploadLimits struct {
	MaxSize      int64
	AllowedTypes []string
}

type ResumeService interface {
	List(ctx context.Context, viewerID string) ([]dto.ResumeResponse, error)
	Get(ctx context.Context, viewerID, id string) (*dto.ResumeResponse, error)
	Create(ctx context.Context, viewerID string, req *dto.CreateResumeRequest, file *multipart.FileHeader) (*dto.ResumeResponse, error)
	Update(ctx context.Context, viewerID, id string, req *dto.UpdateResumeRequest) (*dto.ResumeResponse, error)
	Delete(ctx context.Context, viewerID, id string) error
}

type resumeService struct {
	resumes  repositories.ResumeRepository
	profiles repositories.ProfileRepository
	store    storage.Storage
	limits   UploadLimits
}

func NewResumeService(
	resumes repositories.ResumeRepository,
	profiles repositories.ProfileRepository,
	store storage.Storage,
	limits UploadLimits,
) ResumeService {
	return &resumeService{
		resumes:  resumes,
		profiles: profiles,
		store:    store,
		limits:   limits,
	}
}

func (s *resumeService) List(ctx context.Context, viewerID string) ([]dto.ResumeResponse, error) {
	v := resolveViewer(ctx, s.profiles, viewerID)
	resumes, err := s.resumes.FindVisible(ctx, v)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewResumeResponseList(resumes), nil
}

func (s *resumeService) Get(ctx context.Context, viewerID, id string) (*dto.ResumeResponse, error) {
	v := resolveViewer(ctx, s.profiles, viewerID)
	resume, err := s.resumes.FindVisibleByID(ctx, v, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResumeNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewResumeResponse(resume), nil
}

// Create validates and stores the uploaded file, then records the resume
// owned by the calling user.
func (s *resumeService) Create(ctx context.Context, viewerID string, req *dto.CreateResumeRequest, file *multipart.FileHeader) (*dto.ResumeResponse, error) {
	if file == nil {
		return nil, apperrors.ValidationError(map[string]string{"file": "This field is required."})
	}
	if file.Size > s.limits.MaxSize {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("File too large: maximum size is %d bytes", s.limits.MaxSize))
	}

	contentType := file.Header.Get("Content-Type")
	if !s.typeAllowed(contentType) {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("Unsupported file type: %s", contentType))
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("resumes/%s%s", uuid.NewString(), ext)

	if err := s.store.Save(ctx, key, src, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resume := &models.Resume{
		CandidateID: viewerID,
		Title:       req.Title,
		FilePath:    key,
		FileURL:     url,
		IsActive:    true,
	}
	if err := s.resumes.Create(ctx, resume); err != nil {
		// best effort: don't leave an orphaned blob behind
		_ = s.store.Delete(ctx, key)
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "resume uploaded", "resume_id", resume.ID, "size", file.Size)

	v := auth.Viewer{UserID: viewerID, Role: models.RoleCandidate}
	created, err := s.resumes.FindVisibleByID(ctx, v, resume.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewResumeResponse(created), nil
}

func (s *resumeService) Update(ctx context.Context, viewerID, id string, req *dto.UpdateResumeRequest) (*dto.ResumeResponse, error) {
	v := resolveViewer(ctx, s.profiles, viewerID)
	resume, err := s.resumes.FindVisibleByID(ctx, v, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResumeNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		resume.Title = *req.Title
	}
	if req.IsActive != nil {
		resume.IsActive = *req.IsActive
	}

	if err := s.resumes.Update(ctx, resume); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewResumeResponse(resume), nil
}

// Delete removes the record and, best effort, the stored file.
func (s *resumeService) Delete(ctx context.Context, viewerID, id string) error {
	v := resolveViewer(ctx, s.profiles, viewerID)
	resume, err := s.resumes.FindVisibleByID(ctx, v, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrResumeNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.resumes.Delete(ctx, resume.ID); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.store.Delete(ctx, resume.FilePath); err != nil {
		logger.CtxWarn(ctx, "failed to delete resume file", "path", resume.FilePath, "error", err.Error())
	}
	return nil
}

func (s *resumeService) typeAllowed(contentType string) bool {
	for _, allowed := range s.limits.AllowedTypes {
		if strings.EqualFold(contentType, allowed) {
			return true
		}
	}
	return false
}
