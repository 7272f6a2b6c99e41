package services

import (
	"context"

	"github.com/hireloop/recruitd/internal/models"
	"github.com/hireloop/recruitd/internal/utils"
)

// In-memory stand-ins for the postgres repositories.

type fakeUserRepo struct {
	byEmail map[string]*models.User
	nextID  uint
	creates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	u.ID = f.nextID
	f.nextID++
	if u.Profile != nil {
		u.Profile.UserID = u.ID
	}
	f.byEmail[u.Email] = u
	f.creates++
	return nil
}

func (f *fakeUserRepo) FindApplicantByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id && u.Role == models.RoleApplicant {
			return u, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeUserRepo) ListApplicants(_ context.Context) ([]models.ResumeSummary, error) {
	out := []models.ResumeSummary{}
	for _, u := range f.byEmail {
		if u.Role != models.RoleApplicant {
			continue
		}
		s := models.ResumeSummary{ID: u.ID, Name: u.Name, Email: u.Email}
		if u.Profile != nil {
			s.ResumeFileAddress = u.Profile.ResumeFileAddress
			s.Skills = u.Profile.Skills
			s.Education = u.Profile.Education
			s.Experience = u.Profile.Experience
			s.Phone = u.Profile.Phone
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeJobRepo struct {
	jobs       map[uint]*models.Job
	applicants map[uint][]models.ApplicantSummary
	nextID     uint
	creates    int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs:       map[uint]*models.Job{},
		applicants: map[uint][]models.ApplicantSummary{},
		nextID:     1,
	}
}

func (f *fakeJobRepo) Create(_ context.Context, j *models.Job) error {
	j.ID = f.nextID
	f.nextID++
	f.jobs[j.ID] = j
	f.creates++
	return nil
}

func (f *fakeJobRepo) FindWithPoster(_ context.Context, id uint) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) ListApplicantsForJob(_ context.Context, jobID uint) ([]models.ApplicantSummary, error) {
	if l, ok := f.applicants[jobID]; ok {
		return l, nil
	}
	return []models.ApplicantSummary{}, nil
}
