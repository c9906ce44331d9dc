package services

import (
	"encoding/json"
	"fmt"
	"time"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"github.com/google/uuid"
)

const (
	refreshTokenTTL = 30 * 24 * time.Hour
	resetTokenTTL   = 24 * time.Hour
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.ProfileDTO, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
	VerifyEmail(token string) error
	RequestPasswordReset(emailAddr string) error
	ResetPassword(token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	mailer           *email.Dispatcher
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	mailer *email.Dispatcher,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		refreshTokenRepo: refreshTokenRepo,
		mailer:           mailer,
	}
}

// Register creates the user, the profile row matching the role, and
// dispatches the verification email.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.ProfileDTO, error) {
	if req.Role == "" {
		req.Role = models.UserRoleJobSeeker
	}
	if !req.Role.IsValid() {
		return nil, appErrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	verificationToken := uuid.NewString()

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hash,
		Role:              req.Role,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		PhoneNumber:       req.PhoneNumber,
		IsEmailVerified:   false,
		VerificationToken: verificationToken,
	}

	if err := s.userRepo.Create(user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	profile, err := s.createRoleProfile(user, req)
	if err != nil {
		if delErr := s.userRepo.Delete(user.ID); delErr != nil {
			logger.WithError(delErr).Warn("could not roll back user after profile creation failure", "user_id", user.ID)
		}
		return nil, appErrors.InternalError(err)
	}

	s.mailer.DispatchVerification(user.Email, verificationToken)

	return profile, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.UserToDTO(user),
	}, nil
}

// RefreshToken rotates the refresh token and issues a fresh access token.
func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.AuthResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		s.refreshTokenRepo.Delete(token.Token)
		return nil, appErrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	if err := s.refreshTokenRepo.Delete(token.Token); err != nil {
		return nil, appErrors.InternalError(err)
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	newRefreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         dto.UserToDTO(user),
	}, nil
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if _, err := s.refreshTokenRepo.FindByToken(refreshToken); err != nil {
		return appErrors.ErrInvalidToken
	}
	return s.refreshTokenRepo.Delete(refreshToken)
}

// VerifyEmail consumes a single-use token. Verifying an already-verified
// account is a no-op success.
func (s *AuthServiceImpl) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if appErrors.Is(err, repositories.ErrTokenNotFound) {
			return appErrors.ErrInvalidToken
		}
		return appErrors.InternalError(err)
	}

	if user.IsEmailVerified {
		return nil
	}

	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

// RequestPasswordReset always reports success so callers cannot probe which
// emails are registered. A token is created and mailed only for real accounts.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return appErrors.InternalError(err)
	}

	resetToken := uuid.NewString()
	expiresAt := time.Now().Add(resetTokenTTL)

	if err := s.userRepo.SetResetToken(user.ID, resetToken, expiresAt); err != nil {
		return appErrors.InternalError(err)
	}

	s.mailer.DispatchPasswordReset(user.Email, resetToken)

	return nil
}

func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		if appErrors.Is(err, repositories.ErrTokenNotFound) {
			return appErrors.ErrInvalidToken
		}
		return appErrors.InternalError(err)
	}

	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return appErrors.ErrInvalidToken
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return appErrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return appErrors.InternalError(err)
	}

	// UpdatePassword also clears the reset token, making it single-use.
	if err := s.userRepo.UpdatePassword(user.ID, hash); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) createRefreshToken(userID string) (string, error) {
	token := &models.RefreshToken{
		UserID:    userID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.refreshTokenRepo.Create(token); err != nil {
		return "", err
	}
	return token.Token, nil
}

// createRoleProfile creates the profile row matching the user's role.
// Admins have no profile row.
func (s *AuthServiceImpl) createRoleProfile(user *models.User, req *dto.RegisterRequest) (*dto.ProfileDTO, error) {
	out := &dto.ProfileDTO{UserDTO: dto.UserToDTO(user)}

	switch user.Role {
	case models.UserRoleJobSeeker:
		skills := req.Skills
		if skills == nil {
			skills = []string{}
		}
		skillsJSON, err := json.Marshal(skills)
		if err != nil {
			return nil, err
		}
		profile := &models.JobSeekerProfile{
			UserID:     user.ID,
			Skills:     skillsJSON,
			Experience: req.Experience,
		}
		if err := s.profileRepo.CreateJobSeekerProfile(profile); err != nil {
			return nil, err
		}
		experience := profile.Experience
		out.Skills = skills
		out.Experience = &experience

	case models.UserRoleEmployer:
		companyName := req.CompanyName
		if companyName == "" {
			companyName = fmt.Sprintf("%s's Company", user.FirstName)
		}
		profile := &models.EmployerProfile{
			UserID:      user.ID,
			CompanyName: companyName,
			Website:     req.Website,
		}
		if err := s.profileRepo.CreateEmployerProfile(profile); err != nil {
			return nil, err
		}
		out.CompanyName = profile.CompanyName
		out.Website = profile.Website

	case models.UserRoleAdmin:
		// no profile row
	}

	return out, nil
}
