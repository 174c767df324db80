package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ats_backend/internal/repositories"
	"ats_backend/internal/services/dto"
	"ats_backend/pkg/apperrors"
)

type ProfileService interface {
	List(ctx context.Context, viewerID string) ([]dto.ProfileResponse, error)
	Get(ctx context.Context, viewerID, id string) (*dto.ProfileResponse, error)
	Update(ctx context.Context, viewerID, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	Delete(ctx context.Context, viewerID, id string) error
}

type profileService struct {
	profiles repositories.ProfileRepository
}

func NewProfileService(profiles repositories.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) List(ctx context.Context, viewerID string) ([]dto.ProfileResponse, error) {
	v := resolveViewer(ctx, s.profiles, viewerID)
	profiles, err := s.profiles.FindVisible(ctx, v)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponseList(profiles), nil
}

func (s *profileService) Get(ctx context.Context, viewerID, id string) (*dto.ProfileResponse, error) {
	v := resolveViewer(ctx, s.profiles, viewerID)
	profile, err := s.profiles.FindVisibleByID(ctx, v, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

// Update edits contact fields on a profile the viewer can see. The role
// stays fixed.
func (s *profileService) Update(ctx context.Context, viewerID, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	v := resolveViewer(ctx, s.profiles, viewerID)
	profile, err := s.profiles.FindVisibleByID(ctx, v, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

func (s *profileService) Delete(ctx context.Context, viewerID, id string) error {
	v := resolveViewer(ctx, s.profiles, viewerID)
	profile, err := s.profiles.FindVisibleByID(ctx, v, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return apperrors.InternalError(err)
	}
	if err := s.profiles.Delete(ctx, profile.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
