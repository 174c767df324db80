package dto

type EmployerStats struct {
	TotalApplications       int64 `json:"total_applications"`
	PendingApplications     int64 `json:"pending_applications"`
	ReviewedApplications    int64 `json:"reviewed_applications"`
	ShortlistedApplications int64 `json:"shortlisted_applications"`
}

type EmployerDashboardResponse struct {
	Jobs         []JobResponse         `json:"jobs"`
	Applications []ApplicationResponse `json:"applications"`
	Stats        EmployerStats         `json:"stats"`
}

type CandidateStats struct {
	TotalApplications     int64 `json:"total_applications"`
	PendingApplications   int64 `json:"pending_applications"`
	ReviewedApplications  int64 `json:"reviewed_applications"`
	InterviewApplications int64 `json:"interview_applications"`
}

type CandidateDashboardResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Resumes      []ResumeResponse      `json:"resumes"`
	Stats        CandidateStats        `json:"stats"`
}
