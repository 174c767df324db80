package repositories

import (
	"context"

	"gorm.io/gorm"

	"ats_backend/internal/auth"
	"ats_backend/internal/models"
)

type ProfileRepository interface {
	WithTx(tx *gorm.DB) ProfileRepository
	Create(ctx context.Context, profile *models.UserProfile) error
	FindByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
	FindVisible(ctx context.Context, v auth.Viewer) ([]models.UserProfile, error)
	FindVisibleByID(ctx context.Context, v auth.Viewer, id string) (*models.UserProfile, error)
	Update(ctx context.Context, profile *models.UserProfile) error
	Delete(ctx context.Context, id string) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) WithTx(tx *gorm.DB) ProfileRepository {
	return &profileRepository{db: tx}
}

// profileScope limits profiles to what the viewer may see: admins see
// everything, everyone else sees only their own profile.
func profileScope(v auth.Viewer) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if v.IsAdmin() {
			return db
		}
		return db.Where("user_profiles.user_id = ?", v.UserID)
	}
}

func (r *profileRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindVisible(ctx context.Context, v auth.Viewer) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := r.db.WithContext(ctx).
		Scopes(profileScope(v)).
		Preload("User").
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) FindVisibleByID(ctx context.Context, v auth.Viewer, id string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.WithContext(ctx).
		Scopes(profileScope(v)).
		Preload("User").
		First(&profile, "user_profiles.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.UserProfile{}, "id = ?", id).Error
}
