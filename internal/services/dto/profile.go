package dto

import (
	"time"

	"ats_backend/internal/models"
)

type UserSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ProfileResponse struct {
	ID          string       `json:"id"`
	User        *UserSummary `json:"user"`
	Role        models.Role  `json:"role"`
	CompanyName string       `json:"company_name"`
	PhoneNumber string       `json:"phone_number"`
	Address     string       `json:"address"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// UpdateProfileRequest updates contact fields. The role is fixed at
// registration and cannot be changed here.
type UpdateProfileRequest struct {
	CompanyName *string `json:"company_name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

func NewUserSummary(user *models.User) *UserSummary {
	if user == nil {
		return nil
	}
	return &UserSummary{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func NewProfileResponse(profile *models.UserProfile) *ProfileResponse {
	return &ProfileResponse{
		ID:          profile.ID,
		User:        NewUserSummary(profile.User),
		Role:        profile.Role,
		CompanyName: profile.CompanyName,
		PhoneNumber: profile.PhoneNumber,
		Address:     profile.Address,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}

func NewProfileResponseList(profiles []models.UserProfile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, *NewProfileResponse(&profiles[i]))
	}
	return out
}
