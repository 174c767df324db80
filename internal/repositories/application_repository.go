package repositories

import (
	"context"

	"gorm.io/gorm"

	"ats_backend/internal/auth"
	"ats_backend/internal/models"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	FindVisible(ctx context.Context, v auth.Viewer) ([]models.Application, error)
	FindVisibleByID(ctx context.Context, v auth.Viewer, id string) (*models.Application, error)
	CountVisible(ctx context.Context, v auth.Viewer) (int64, error)
	CountVisibleByStatus(ctx context.Context, v auth.Viewer, status models.ApplicationStatus) (int64, error)
	Update(ctx context.Context, application *models.Application) error
	Delete(ctx context.Context, id string) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// applicationScope limits applications per viewer: candidates see their own,
// employers see applications for their postings, admins see everything.
func applicationScope(v auth.Viewer) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case v.IsAdmin():
			return db
		case v.IsEmployer():
			return db.
				Joins("JOIN jobs ON jobs.id = applications.job_id").
				Where("jobs.employer_id = ?", v.UserID)
		default:
			return db.Where("applications.candidate_id = ?", v.UserID)
		}
	}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) FindVisible(ctx context.Context, v auth.Viewer) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Scopes(applicationScope(v)).
		Preload("Job").
		Preload("Candidate").
		Preload("Resume").
		Order("applications.created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) FindVisibleByID(ctx context.Context, v auth.Viewer, id string) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Scopes(applicationScope(v)).
		Preload("Job").
		Preload("Candidate").
		Preload("Resume").
		First(&application, "applications.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) CountVisible(ctx context.Context, v auth.Viewer) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Scopes(applicationScope(v)).
		Count(&count).Error
	return count, err
}

func (r *applicationRepository) CountVisibleByStatus(ctx context.Context, v auth.Viewer, status models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Scopes(applicationScope(v)).
		Where("applications.status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *applicationRepository) Update(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id).Error
}
