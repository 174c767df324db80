package services

// ServiceContainer bundles every service for wiring into handlers.
type ServiceContainer struct {
	Auth        AuthService
	Profile     ProfileService
	Job         JobService
	Resume      ResumeService
	Application ApplicationService
	Dashboard   DashboardService
}
