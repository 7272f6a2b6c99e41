package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hireloop/recruitd/internal/models"
	"github.com/hireloop/recruitd/internal/utils"
)

type JobRepository interface {
	Create(ctx context.Context, j *models.Job) error
	FindWithPoster(ctx context.Context, id uint) (*models.Job, error)
	ListApplicantsForJob(ctx context.Context, jobID uint) ([]models.ApplicantSummary, error)
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, j *models.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jobRepo) FindWithPoster(ctx context.Context, id uint) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).
		Preload("PostedBy").
		Where("id = ?", id).
		Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) ListApplicantsForJob(ctx context.Context, jobID uint) ([]models.ApplicantSummary, error) {
	out := []models.ApplicantSummary{}
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Select("users.id, users.name, users.email, users.profile_headline, profiles.resume_file_address, profiles.skills, profiles.education, profiles.experience, profiles.phone").
		Joins("JOIN users ON users.id = applications.applicant_id").
		Joins("LEFT JOIN profiles ON profiles.user_id = users.id").
		Where("applications.job_id = ?", jobID).
		Scan(&out).Error
	return out, err
}
