package repositories

import (
	"context"

	"gorm.io/gorm"

	"ats_backend/internal/auth"
	"ats_backend/internal/models"
)

type ResumeRepository interface {
	Create(ctx context.Context, resume *models.Resume) error
	FindVisible(ctx context.Context, v auth.Viewer) ([]models.Resume, error)
	FindVisibleByID(ctx context.Context, v auth.Viewer, id string) (*models.Resume, error)
	Update(ctx context.Context, resume *models.Resume) error
	Delete(ctx context.Context, id string) error
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// resumeScope limits resumes per viewer: candidates see their own,
// employers see resumes attached to applications for their postings,
// admins see everything.
func resumeScope(v auth.Viewer) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case v.IsAdmin():
			return db
		case v.IsEmployer():
			return db.
				Distinct("resumes.*").
				Joins("JOIN applications ON applications.resume_id = resumes.id").
				Joins("JOIN jobs ON jobs.id = applications.job_id").
				Where("jobs.employer_id = ?", v.UserID)
		default:
			return db.Where("resumes.candidate_id = ?", v.UserID)
		}
	}
}

func (r *resumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	return r.db.WithContext(ctx).Create(resume).Error
}

func (r *resumeRepository) FindVisible(ctx context.Context, v auth.Viewer) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.WithContext(ctx).
		Scopes(resumeScope(v)).
		Preload("Candidate").
		Order("resumes.created_at DESC").
		Find(&resumes).Error
	return resumes, err
}

func (r *resumeRepository) FindVisibleByID(ctx context.Context, v auth.Viewer, id string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.WithContext(ctx).
		Scopes(resumeScope(v)).
		Preload("Candidate").
		First(&resume, "resumes.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepository) Update(ctx context.Context, resume *models.Resume) error {
	return r.db.WithContext(ctx).Save(resume).Error
}

// Delete removes a resume, detaching it from applications that reference it.
func (r *resumeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Application{}).
			Where("resume_id = ?", id).
			Update("resume_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Resume{}, "id = ?", id).Error
	})
}
