package services

import (
	"encoding/json"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

type ProfileService interface {
	GetProfile(userID string) (*dto.ProfileDTO, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileDTO, error)
}

type ProfileServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewProfileService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{userRepo: userRepo, profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) GetProfile(userID string) (*dto.ProfileDTO, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	return s.buildProfile(user)
}

// UpdateProfile applies the fields matching the user's role and ignores the
// rest; a seeker sending company_name does not grow an employer profile.
func (s *ProfileServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileDTO, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, appErrors.InternalError(err)
	}

	switch user.Role {
	case models.UserRoleJobSeeker:
		if err := s.updateSeekerProfile(userID, req); err != nil {
			return nil, err
		}
	case models.UserRoleEmployer:
		if err := s.updateEmployerProfile(userID, req); err != nil {
			return nil, err
		}
	}

	return s.buildProfile(user)
}

func (s *ProfileServiceImpl) updateSeekerProfile(userID string, req *dto.UpdateProfileRequest) error {
	if req.Skills == nil && req.Resume == nil && req.Experience == nil {
		return nil
	}
	profile, err := s.profileRepo.FindJobSeekerProfile(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return appErrors.ErrProfileNotFound
		}
		return appErrors.InternalError(err)
	}
	if req.Skills != nil {
		skillsJSON, err := json.Marshal(*req.Skills)
		if err != nil {
			return appErrors.InternalError(err)
		}
		profile.Skills = skillsJSON
	}
	if req.Resume != nil {
		profile.Resume = *req.Resume
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}
	if err := s.profileRepo.UpdateJobSeekerProfile(profile); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *ProfileServiceImpl) updateEmployerProfile(userID string, req *dto.UpdateProfileRequest) error {
	if req.CompanyName == nil && req.Website == nil && req.Bio == nil {
		return nil
	}
	profile, err := s.profileRepo.FindEmployerProfile(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return appErrors.ErrProfileNotFound
		}
		return appErrors.InternalError(err)
	}
	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if err := s.profileRepo.UpdateEmployerProfile(profile); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *ProfileServiceImpl) buildProfile(user *models.User) (*dto.ProfileDTO, error) {
	out := &dto.ProfileDTO{UserDTO: dto.UserToDTO(user)}

	switch user.Role {
	case models.UserRoleJobSeeker:
		profile, err := s.profileRepo.FindJobSeekerProfile(user.ID)
		if err != nil {
			if appErrors.Is(err, repositories.ErrProfileNotFound) {
				return out, nil
			}
			return nil, appErrors.InternalError(err)
		}
		skills := []string{}
		if len(profile.Skills) > 0 {
			if err := json.Unmarshal(profile.Skills, &skills); err != nil {
				return nil, appErrors.InternalError(err)
			}
		}
		experience := profile.Experience
		out.Skills = skills
		out.Resume = profile.Resume
		out.Experience = &experience

	case models.UserRoleEmployer:
		profile, err := s.profileRepo.FindEmployerProfile(user.ID)
		if err != nil {
			if appErrors.Is(err, repositories.ErrProfileNotFound) {
				return out, nil
			}
			return nil, appErrors.InternalError(err)
		}
		out.CompanyName = profile.CompanyName
		out.Website = profile.Website
		out.Bio = profile.Bio
	}

	return out, nil
}

func (s *ProfileServiceImpl) findUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}
