package services

import (
	"errors"
	"testing"
	"time"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) (AuthService, *email.Dispatcher, *fakeProvider) {
	mailer, provider := newTestMailer()
	svc := NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewProfileRepository(db),
		repositories.NewRefreshTokenRepository(db),
		mailer,
	)
	return svc, mailer, provider
}

func registerRequest(emailAddr string, role models.UserRole) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:     emailAddr,
		Password:  "strongpass",
		Role:      role,
		FirstName: "Alice",
		LastName:  "Doe",
	}
}

func TestRegisterJobSeeker(t *testing.T) {
	db := setupTestDB(t)
	svc, mailer, provider := newAuthService(db)

	profile, err := svc.Register(registerRequest("seeker@example.com", models.UserRoleJobSeeker))
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleJobSeeker, profile.Role)
	assert.False(t, profile.IsEmailVerified)
	assert.NotNil(t, profile.Experience)

	var seekerProfile models.JobSeekerProfile
	require.NoError(t, db.First(&seekerProfile, "user_id = ?", profile.ID).Error)

	mailer.Wait()
	sent := provider.byKind(email.TemplateEmailVerification)
	require.Len(t, sent, 1)
	assert.Equal(t, "seeker@example.com", sent[0].To)
	assert.NotEmpty(t, sent[0].Token)
}

func TestRegisterEmployerDefaultCompanyName(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newAuthService(db)

	profile, err := svc.Register(registerRequest("boss@example.com", models.UserRoleEmployer))
	require.NoError(t, err)
	assert.Equal(t, "Alice's Company", profile.CompanyName)
}

func TestRegisterAdminHasNoProfileRow(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newAuthService(db)

	profile, err := svc.Register(registerRequest("root@example.com", models.UserRoleAdmin))
	require.NoError(t, err)

	var seekerCount, employerCount int64
	db.Model(&models.JobSeekerProfile{}).Where("user_id = ?", profile.ID).Count(&seekerCount)
	db.Model(&models.EmployerProfile{}).Where("user_id = ?", profile.ID).Count(&employerCount)
	assert.Zero(t, seekerCount)
	assert.Zero(t, employerCount)
}

type failingProfileRepo struct {
	repositories.ProfileRepository
}

func (failingProfileRepo) CreateJobSeekerProfile(*models.JobSeekerProfile) error {
	return errors.New("profile store unavailable")
}

func TestRegisterRollsBackUserWhenProfileFails(t *testing.T) {
	db := setupTestDB(t)
	mailer, _ := newTestMailer()
	svc := NewAuthService(
		repositories.NewUserRepository(db),
		failingProfileRepo{repositories.NewProfileRepository(db)},
		repositories.NewRefreshTokenRepository(db),
		mailer,
	)

	_, err := svc.Register(registerRequest("flaky@example.com", models.UserRoleJobSeeker))
	require.Error(t, err)

	var count int64
	db.Model(&models.User{}).Where("email = ?", "flaky@example.com").Count(&count)
	assert.EqualValues(t, 0, count)

	// The rollback frees the email for a retry.
	_, err = svc.Register(registerRequest("flaky@example.com", models.UserRoleEmployer))
	require.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newAuthService(db)

	_, err := svc.Register(registerRequest("dup@example.com", models.UserRoleJobSeeker))
	require.NoError(t, err)

	_, err = svc.Register(registerRequest("dup@example.com", models.UserRoleEmployer))
	assert.ErrorIs(t, err, appErrors.ErrEmailAlreadyExists)
}

func TestRegisterInvalidRole(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newAuthService(db)

	req := registerRequest("odd@example.com", models.UserRole("superuser"))
	_, err := svc.Register(req)
	assert.ErrorIs(t, err, appErrors.ErrInvalidUserRole)
}

func TestRegisterWeakPassword(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newAuthService(db)

	req := registerRequest("weak@example.com", models.UserRoleJobSeeker)
	req.Password = "short"
	_, err := svc.Register(req)
	assert.ErrorIs(t, err, appErrors.ErrWeakPassword)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newAuthService(db)

	_, err := svc.Register(registerRequest("login@example.com", models.UserRoleJobSeeker))
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "login@example.com", Password: "strongpass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "login@example.com", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newAuthService(db)

	_, err := svc.Register(registerRequest("login2@example.com", models.UserRoleJobSeeker))
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "login2@example.com", Password: "wrongpass1"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newAuthService(db)

	_, err := svc.Login(&dto.LoginRequest{Email: "ghost@example.com", Password: "whatever12"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestRefreshTokenRotation(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newAuthService(db)

	_, err := svc.Register(registerRequest("rotate@example.com", models.UserRoleJobSeeker))
	require.NoError(t, err)
	resp, err := svc.Login(&dto.LoginRequest{Email: "rotate@example.com", Password: "strongpass"})
	require.NoError(t, err)

	next, err := svc.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, next.RefreshToken)

	// The rotated-out token is dead.
	_, err = svc.RefreshToken(resp.RefreshToken)
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newAuthService(db)

	_, err := svc.Register(registerRequest("bye@example.com", models.UserRoleJobSeeker))
	require.NoError(t, err)
	resp, err := svc.Login(&dto.LoginRequest{Email: "bye@example.com", Password: "strongpass"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(resp.RefreshToken))

	_, err = svc.RefreshToken(resp.RefreshToken)
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestVerifyEmail(t *testing.T) {
	db := setupTestDB(t)
	svc, mailer, provider := newAuthService(db)

	profile, err := svc.Register(registerRequest("verify@example.com", models.UserRoleJobSeeker))
	require.NoError(t, err)

	mailer.Wait()
	sent := provider.byKind(email.TemplateEmailVerification)
	require.Len(t, sent, 1)

	require.NoError(t, svc.VerifyEmail(sent[0].Token))

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", profile.ID).Error)
	assert.True(t, user.IsEmailVerified)
}

func TestVerifyEmailInvalidToken(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newAuthService(db)

	err := svc.VerifyEmail("not-a-token")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestPasswordResetFlow(t *testing.T) {
	db := setupTestDB(t)
	svc, mailer, provider := newAuthService(db)

	_, err := svc.Register(registerRequest("reset@example.com", models.UserRoleJobSeeker))
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset("reset@example.com"))
	mailer.Wait()

	sent := provider.byKind(email.TemplatePasswordReset)
	require.Len(t, sent, 1)
	token := sent[0].Token

	require.NoError(t, svc.ResetPassword(token, "freshpass99"))

	// Old password rejected, new one accepted.
	_, err = svc.Login(&dto.LoginRequest{Email: "reset@example.com", Password: "strongpass"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
	_, err = svc.Login(&dto.LoginRequest{Email: "reset@example.com", Password: "freshpass99"})
	assert.NoError(t, err)

	// The token is single-use.
	err = svc.ResetPassword(token, "anotherpass1")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestPasswordResetUnknownEmailReportsSuccess(t *testing.T) {
	db := setupTestDB(t)
	svc, mailer, provider := newAuthService(db)

	assert.NoError(t, svc.RequestPasswordReset("nobody@example.com"))
	mailer.Wait()
	assert.Empty(t, provider.byKind(email.TemplatePasswordReset))
}

func TestPasswordResetExpiredToken(t *testing.T) {
	db := setupTestDB(t)
	svc, mailer, provider := newAuthService(db)

	_, err := svc.Register(registerRequest("late@example.com", models.UserRoleJobSeeker))
	require.NoError(t, err)
	require.NoError(t, svc.RequestPasswordReset("late@example.com"))
	mailer.Wait()

	sent := provider.byKind(email.TemplatePasswordReset)
	require.Len(t, sent, 1)

	expired := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "late@example.com").
		Update("reset_token_exp", expired).Error)

	err = svc.ResetPassword(sent[0].Token, "freshpass99")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}
