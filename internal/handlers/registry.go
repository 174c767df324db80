package handlers

import (
	"ats_backend/internal/services"
	"ats_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	Profile     *ProfileHandler
	Job         *JobHandler
	Resume      *ResumeHandler
	Application *ApplicationHandler
	Dashboard   *DashboardHandler
}

func NewAppHandlers(v *validator.Validator, svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		Auth:        NewAuthHandler(base, svc.Auth),
		Profile:     NewProfileHandler(base, svc.Profile),
		Job:         NewJobHandler(base, svc.Job),
		Resume:      NewResumeHandler(base, svc.Resume),
		Application: NewApplicationHandler(base, svc.Application),
		Dashboard:   NewDashboardHandler(base, svc.Dashboard),
	}
}
