package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hireloop/recruitd/config"
	"github.com/hireloop/recruitd/internal/auth"
	"github.com/hireloop/recruitd/internal/models"
	"github.com/hireloop/recruitd/internal/utils"
)

func newTokenManager() *auth.TokenManager {
	return auth.NewTokenManager(&config.Config{
		JWTSecret:   "test-secret",
		JWTIssuer:   "recruitd",
		JWTAudience: "recruitd-clients",
		TokenTTL:    time.Hour,
	})
}

func applicantInput(email string) SignupInput {
	return SignupInput{
		Name:              "Jane Doe",
		Email:             email,
		Password:          "pw",
		Address:           "1 Main St",
		Role:              models.RoleApplicant,
		ProfileHeadline:   "Backend engineer",
		ResumeFileAddress: "https://cdn.test/resume.pdf",
		Skills:            "Go, SQL",
		Education:         "BSc",
		Experience:        "5y",
	}
}

func TestSignupApplicantCreatesProfile(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, newTokenManager(), bcrypt.MinCost)

	require.NoError(t, svc.Signup(context.Background(), applicantInput("a@x.com")))

	u, err := users.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, models.RoleApplicant, u.Role)
	require.NotNil(t, u.Profile)
	require.Equal(t, u.ID, u.Profile.UserID)
	require.Equal(t, "Go, SQL", u.Profile.Skills)
	require.Equal(t, "", u.Profile.Phone)

	// Password stored as a verifiable hash, never plaintext.
	require.NotEqual(t, "pw", u.PasswordHash)
	require.NoError(t, utils.CheckPassword(u.PasswordHash, "pw"))
}

func TestSignupAdminHasNoProfile(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, newTokenManager(), bcrypt.MinCost)

	require.NoError(t, svc.Signup(context.Background(), SignupInput{
		Name: "Root", Email: "root@x.com", Password: "pw", Role: models.RoleAdmin,
	}))

	u, err := users.FindByEmail(context.Background(), "root@x.com")
	require.NoError(t, err)
	require.Nil(t, u.Profile)
}

func TestSignupDuplicateEmailWritesNothing(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, newTokenManager(), bcrypt.MinCost)

	require.NoError(t, svc.Signup(context.Background(), applicantInput("a@x.com")))
	require.Equal(t, 1, users.creates)

	err := svc.Signup(context.Background(), applicantInput("a@x.com"))
	require.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	require.Equal(t, 1, users.creates)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, newTokenManager(), bcrypt.MinCost)

	in := applicantInput("a@x.com")
	in.Role = "Superuser"
	err := svc.Signup(context.Background(), in)
	require.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	require.Equal(t, 0, users.creates)
}

func TestLoginIssuesTokenWithStoredRole(t *testing.T) {
	users := newFakeUserRepo()
	tm := newTokenManager()
	svc := NewUserService(users, tm, bcrypt.MinCost)

	require.NoError(t, svc.Signup(context.Background(), applicantInput("a@x.com")))

	tok, err := svc.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)

	claims, err := tm.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, models.RoleApplicant, claims.Role)
}

func TestLoginFailsUniformly(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, newTokenManager(), bcrypt.MinCost)

	require.NoError(t, svc.Signup(context.Background(), applicantInput("a@x.com")))

	_, wrongPw := svc.Login(context.Background(), "a@x.com", "wrong")
	_, noUser := svc.Login(context.Background(), "nobody@x.com", "pw")

	require.True(t, utils.IsCode(wrongPw, utils.CodeUnauthorized))
	require.True(t, utils.IsCode(noUser, utils.CodeUnauthorized))

	// No information leak distinguishing the two causes.
	require.Equal(t, wrongPw.Error(), noUser.Error())
}

func TestGetProfileResolvesCallerNotFirstRow(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, newTokenManager(), bcrypt.MinCost)

	require.NoError(t, svc.Signup(context.Background(), applicantInput("first@x.com")))
	second := applicantInput("second@x.com")
	second.Name = "John Roe"
	second.Skills = "Rust"
	require.NoError(t, svc.Signup(context.Background(), second))

	view, err := svc.GetProfile(context.Background(), "second@x.com")
	require.NoError(t, err)
	require.Equal(t, "second@x.com", view.Email)
	require.Equal(t, "John Roe", view.Name)
	require.Equal(t, "Rust", view.Skills)
}

func TestGetProfileAdminHasEmptyProfileFields(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, newTokenManager(), bcrypt.MinCost)

	require.NoError(t, svc.Signup(context.Background(), SignupInput{
		Name: "Root", Email: "root@x.com", Password: "pw", Role: models.RoleAdmin,
		ProfileHeadline: "Hiring manager",
	}))

	view, err := svc.GetProfile(context.Background(), "root@x.com")
	require.NoError(t, err)
	require.Equal(t, "Hiring manager", view.ProfileHeadline)
	require.Empty(t, view.Skills)
	require.Empty(t, view.Education)
	require.Empty(t, view.Experience)
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), newTokenManager(), bcrypt.MinCost)
	_, err := svc.GetProfile(context.Background(), "ghost@x.com")
	require.True(t, utils.IsCode(err, utils.CodeNotFound))
}
