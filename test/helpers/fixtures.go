package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ats_backend/internal/models"
)

var userSeq atomic.Int64

// UniqueName returns a name unlikely to collide across parallel tests.
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixNano(), userSeq.Add(1))
}

// Account is a registered and logged-in test user.
type Account struct {
	ID       string
	Username string
	Email    string
	Password string
	Access   string
	Refresh  string
}

// CreateAndLoginUser registers a user with the given role through the API and
// logs them in.
func CreateAndLoginUser(t *testing.T, ts *TestServer, role models.Role) *Account {
	t.Helper()

	username := UniqueName(string(role))
	email := username + "@test.com"
	password := "super_password123"

	registerBody := map[string]interface{}{
		"username":   username,
		"password":   password,
		"password2":  password,
		"email":      email,
		"first_name": "Test",
		"last_name":  "User",
		"role":       string(role),
	}
	if role == models.RoleEmployer {
		registerBody["company_name"] = "Test Company Inc."
	}

	regRes, regBody := ts.SendRequest(t, http.MethodPost, "/register/", "", registerBody)
	require.Equal(t, http.StatusCreated, regRes.StatusCode, "registration should succeed: "+regBody)

	loginBody := map[string]interface{}{
		"username": username,
		"password": password,
	}
	logRes, logBodyStr := ts.SendRequest(t, http.MethodPost, "/login/", "", loginBody)
	require.Equal(t, http.StatusOK, logRes.StatusCode, "login should succeed: "+logBodyStr)

	var login struct {
		Refresh string `json:"refresh"`
		Access  string `json:"access"`
		UserID  string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(logBodyStr), &login))
	require.NotEmpty(t, login.Access)

	return &Account{
		ID:       login.UserID,
		Username: username,
		Email:    email,
		Password: password,
		Access:   login.Access,
		Refresh:  login.Refresh,
	}
}

func CreateAndLoginEmployer(t *testing.T, ts *TestServer) *Account {
	return CreateAndLoginUser(t, ts, models.RoleEmployer)
}

func CreateAndLoginCandidate(t *testing.T, ts *TestServer) *Account {
	return CreateAndLoginUser(t, ts, models.RoleCandidate)
}

func CreateAndLoginAdmin(t *testing.T, ts *TestServer) *Account {
	return CreateAndLoginUser(t, ts, models.RoleAdmin)
}

// CreateTestJob inserts a posting directly into the database.
func CreateTestJob(t *testing.T, db *gorm.DB, employerID, title string, status models.JobStatus) *models.Job {
	t.Helper()

	job := &models.Job{
		EmployerID:   employerID,
		Title:        title,
		Description:  "Test description",
		Requirements: "Test requirements",
		Location:     "Almaty",
		JobType:      "Full-time",
		Status:       status,
		PostedDate:   time.Now(),
	}
	require.NoError(t, db.Create(job).Error, "failed to create test job")
	return job
}

// CreateTestResume inserts a resume record directly into the database.
func CreateTestResume(t *testing.T, db *gorm.DB, candidateID, title string) *models.Resume {
	t.Helper()

	resume := &models.Resume{
		CandidateID: candidateID,
		Title:       title,
		FilePath:    "resumes/" + UniqueName("file") + ".pdf",
		FileURL:     "/files/resumes/test.pdf",
		IsActive:    true,
	}
	require.NoError(t, db.Create(resume).Error, "failed to create test resume")
	return resume
}

// CreateTestApplication inserts an application directly into the database.
func CreateTestApplication(t *testing.T, db *gorm.DB, jobID, candidateID string, resumeID *string, status models.ApplicationStatus) *models.Application {
	t.Helper()

	application := &models.Application{
		JobID:       jobID,
		CandidateID: candidateID,
		ResumeID:    resumeID,
		CoverLetter: "Test cover letter",
		Status:      status,
	}
	require.NoError(t, db.Create(application).Error, "failed to create test application")
	return application
}
