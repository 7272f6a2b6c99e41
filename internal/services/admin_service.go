package services

import (
	"context"
	"errors"
	"time"

	"github.com/hireloop/recruitd/internal/models"
	pgrepo "github.com/hireloop/recruitd/internal/repositories/postgres"
	"github.com/hireloop/recruitd/internal/utils"
)

type CreateJobInput struct {
	Title       string
	Description string
	CompanyName string
}

type JobWithApplicants struct {
	Job        *models.Job               `json:"job"`
	Applicants []models.ApplicantSummary `json:"applicants"`
}

type AdminService interface {
	CreateJob(ctx context.Context, adminEmail string, in CreateJobInput) (*models.Job, error)
	GetJobWithApplicants(ctx context.Context, adminEmail string, jobID uint) (*JobWithApplicants, error)
	ListResumes(ctx context.Context, adminEmail string) ([]models.ResumeSummary, error)
	GetApplicant(ctx context.Context, adminEmail string, userID uint) (*models.ApplicantDetail, error)
}

type adminService struct {
	users pgrepo.UserRepository
	jobs  pgrepo.JobRepository
}

func NewAdminService(users pgrepo.UserRepository, jobs pgrepo.JobRepository) AdminService {
	return &adminService{users: users, jobs: jobs}
}

// requireAdmin re-fetches the caller by the verified email claim and re-checks
// the stored role, on top of the middleware gate.
func (s *adminService) requireAdmin(ctx context.Context, op, email string) (*models.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "unauthorized", nil)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up caller", err)
	}
	if u.Role != models.RoleAdmin {
		return nil, utils.E(utils.CodeUnauthorized, op, "unauthorized", nil)
	}
	return u, nil
}

func (s *adminService) CreateJob(ctx context.Context, adminEmail string, in CreateJobInput) (*models.Job, error) {
	const op = "AdminService.CreateJob"

	admin, err := s.requireAdmin(ctx, op, adminEmail)
	if err != nil {
		return nil, err
	}

	j := &models.Job{
		Title:             in.Title,
		Description:       in.Description,
		CompanyName:       in.CompanyName,
		PostedOn:          time.Now().UTC(),
		TotalApplications: 0,
		PostedByID:        admin.ID,
	}

	if err := s.jobs.Create(ctx, j); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create job", err)
	}

	j.PostedBy = admin
	return j, nil
}

func (s *adminService) GetJobWithApplicants(ctx context.Context, adminEmail string, jobID uint) (*JobWithApplicants, error) {
	const op = "AdminService.GetJobWithApplicants"

	if _, err := s.requireAdmin(ctx, op, adminEmail); err != nil {
		return nil, err
	}

	j, err := s.jobs.FindWithPoster(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}

	applicants, err := s.jobs.ListApplicantsForJob(ctx, jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applicants", err)
	}

	return &JobWithApplicants{Job: j, Applicants: applicants}, nil
}

func (s *adminService) ListResumes(ctx context.Context, adminEmail string) ([]models.ResumeSummary, error) {
	const op = "AdminService.ListResumes"

	if _, err := s.requireAdmin(ctx, op, adminEmail); err != nil {
		return nil, err
	}

	resumes, err := s.users.ListApplicants(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applicants", err)
	}
	return resumes, nil
}

func (s *adminService) GetApplicant(ctx context.Context, adminEmail string, userID uint) (*models.ApplicantDetail, error) {
	const op = "AdminService.GetApplicant"

	if _, err := s.requireAdmin(ctx, op, adminEmail); err != nil {
		return nil, err
	}

	u, err := s.users.FindApplicantByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "applicant not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get applicant", err)
	}

	detail := &models.ApplicantDetail{
		ApplicantSummary: models.ApplicantSummary{
			ID:              u.ID,
			Name:            u.Name,
			Email:           u.Email,
			ProfileHeadline: u.ProfileHeadline,
		},
		Address: u.Address,
	}
	if u.Profile != nil {
		detail.ResumeFileAddress = u.Profile.ResumeFileAddress
		detail.Skills = u.Profile.Skills
		detail.Education = u.Profile.Education
		detail.Experience = u.Profile.Experience
		detail.Phone = u.Profile.Phone
	}
	return detail, nil
}
