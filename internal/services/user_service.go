package services

import (
	"context"
	"errors"

	"github.com/hireloop/recruitd/internal/models"
	pgrepo "github.com/hireloop/recruitd/internal/repositories/postgres"
	"github.com/hireloop/recruitd/internal/utils"
)

// TokenIssuer is satisfied by auth.TokenManager.
type TokenIssuer interface {
	Issue(u *models.User) (string, error)
}

type SignupInput struct {
	Name            string
	Email           string
	Password        string
	Address         string
	Role            models.UserRole
	ProfileHeadline string

	// Applicant-only profile fields.
	ResumeFileAddress string
	Skills            string
	Education         string
	Experience        string
}

// ProfileView is what an authenticated user sees of their own record.
type ProfileView struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Address         string `json:"address"`
	ProfileHeadline string `json:"profile_headline"`
	Skills          string `json:"skills"`
	Education       string `json:"education"`
	Experience      string `json:"experience"`
}

type UserService interface {
	Signup(ctx context.Context, in SignupInput) error
	Login(ctx context.Context, email, password string) (string, error)
	GetProfile(ctx context.Context, email string) (*ProfileView, error)
}

type userService struct {
	users      pgrepo.UserRepository
	tokens     TokenIssuer
	bcryptCost int
}

func NewUserService(users pgrepo.UserRepository, tokens TokenIssuer, bcryptCost int) UserService {
	return &userService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

func (s *userService) Signup(ctx context.Context, in SignupInput) error {
	const op = "UserService.Signup"

	if in.Role != models.RoleApplicant && in.Role != models.RoleAdmin {
		return utils.E(utils.CodeInvalidArgument, op, "role must be Applicant or Admin", nil)
	}

	exists, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to check email", err)
	}
	if exists {
		return utils.E(utils.CodeInvalidArgument, op, "user with this email already exists", nil)
	}

	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	u := &models.User{
		Name:            in.Name,
		Email:           in.Email,
		PasswordHash:    hash,
		Address:         in.Address,
		Role:            in.Role,
		ProfileHeadline: in.ProfileHeadline,
	}

	// Applicants get a profile in the same write. Phone is always reset to
	// empty at signup.
	if in.Role == models.RoleApplicant {
		u.Profile = &models.Profile{
			ResumeFileAddress: in.ResumeFileAddress,
			Skills:            in.Skills,
			Education:         in.Education,
			Experience:        in.Experience,
			Phone:             "",
		}
	}

	if err := s.users.Create(ctx, u); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return nil
}

// Login verifies the credentials and returns a signed bearer token. A missing
// user and a wrong password fail identically.
func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	const op = "UserService.Login"

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	if err := utils.CheckPassword(u.PasswordHash, password); err != nil {
		return "", utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
	}

	tok, err := s.tokens.Issue(u)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return tok, nil
}

func (s *userService) GetProfile(ctx context.Context, email string) (*ProfileView, error) {
	const op = "UserService.GetProfile"

	if email == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email is required", nil)
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}

	view := &ProfileView{
		Name:            u.Name,
		Email:           u.Email,
		Address:         u.Address,
		ProfileHeadline: u.ProfileHeadline,
	}
	// Admins carry no profile row.
	if u.Profile != nil {
		view.Skills = u.Profile.Skills
		view.Education = u.Profile.Education
		view.Experience = u.Profile.Experience
	}
	return view, nil
}
