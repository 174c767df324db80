package auth

import "ats_backend/internal/models"

// Viewer is the request-bound identity every access-control decision keys on.
// HasProfile is false when the role lookup failed; such callers are treated
// as plain candidates by the resource scopes.
type Viewer struct {
	UserID     string
	Role       models.Role
	HasProfile bool
}

func (v Viewer) IsAdmin() bool {
	return v.HasProfile && v.Role == models.RoleAdmin
}

func (v Viewer) IsEmployer() bool {
	return v.HasProfile && v.Role == models.RoleEmployer
}
