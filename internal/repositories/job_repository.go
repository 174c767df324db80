package repositories

import (
	"context"

	"gorm.io/gorm"

	"ats_backend/internal/models"
)

// SearchFilters narrows the public job search. Zero values mean "no filter".
type SearchFilters struct {
	Search   string // matched against title, description and requirements
	Location string
	JobType  string
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindAll(ctx context.Context, status string) ([]models.Job, error)
	FindByID(ctx context.Context, id string) (*models.Job, error)
	FindByEmployer(ctx context.Context, employerID string) ([]models.Job, error)
	Search(ctx context.Context, filters SearchFilters) ([]models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id string) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// FindAll returns postings regardless of viewer. An optional exact status
// filter narrows the list.
func (r *jobRepository) FindAll(ctx context.Context, status string) ([]models.Job, error) {
	query := r.db.WithContext(ctx).
		Preload("Employer").
		Preload("Employer.Profile")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var jobs []models.Job
	err := query.Order("posted_date DESC").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Preload("Employer").
		Preload("Employer.Profile").
		First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindByEmployer(ctx context.Context, employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Preload("Employer").
		Preload("Employer.Profile").
		Where("employer_id = ?", employerID).
		Order("posted_date DESC").
		Find(&jobs).Error
	return jobs, err
}

// Search returns active postings matching the filters. Text filters use
// case-insensitive substring matching.
func (r *jobRepository) Search(ctx context.Context, filters SearchFilters) ([]models.Job, error) {
	query := r.db.WithContext(ctx).
		Preload("Employer").
		Preload("Employer.Profile").
		Where("status = ?", models.JobStatusActive)

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR requirements ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filters.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filters.Location+"%")
	}
	if filters.JobType != "" {
		query = query.Where("job_type = ?", filters.JobType)
	}

	var jobs []models.Job
	err := query.Order("posted_date DESC").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Delete removes a posting and its applications in one transaction.
func (r *jobRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, "id = ?", id).Error
	})
}
