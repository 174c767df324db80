package services

import (
	"context"

	"ats_backend/internal/auth"
	"ats_backend/internal/models"
	"ats_backend/internal/repositories"
)

// resolveViewer loads the caller's role from their profile. A missing profile
// or a lookup failure degrades the caller to a plain candidate rather than
// failing the request.
func resolveViewer(ctx context.Context, profiles repositories.ProfileRepository, userID string) auth.Viewer {
	profile, err := profiles.FindByUserID(ctx, userID)
	if err != nil {
		return auth.Viewer{UserID: userID, Role: models.RoleCandidate}
	}
	return auth.Viewer{UserID: userID, Role: profile.Role, HasProfile: true}
}
