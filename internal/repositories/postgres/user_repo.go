package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hireloop/recruitd/internal/models"
	"github.com/hireloop/recruitd/internal/utils"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *models.User) error
	FindApplicantByID(ctx context.Context, id uint) (*models.User, error)
	ListApplicants(ctx context.Context) ([]models.ResumeSummary, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ?", email).
		Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &u, err
}

func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

// Create persists the user and, for applicants, the cascade-created profile in
// the same unit.
func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) FindApplicantByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ? AND role = ?", id, models.RoleApplicant).
		Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &u, err
}

func (r *userRepo) ListApplicants(ctx context.Context) ([]models.ResumeSummary, error) {
	out := []models.ResumeSummary{}
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.id, users.name, users.email, profiles.resume_file_address, profiles.skills, profiles.education, profiles.experience, profiles.phone").
		Joins("LEFT JOIN profiles ON profiles.user_id = users.id").
		Where("users.role = ?", models.RoleApplicant).
		Scan(&out).Error
	return out, err
}
