package services

import (
	"jobboard_backend/internal/access"
	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

type ApplicationService interface {
	SubmitApplication(role models.UserRole, actorID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationDTO, error)
	GetApplication(role models.UserRole, actorID, applicationID string) (*dto.ApplicationDTO, error)
	UpdateApplicationStatus(role models.UserRole, actorID, applicationID string, status models.ApplicationStatus) (*dto.ApplicationDTO, error)
	ListApplications(role models.UserRole, actorID string) ([]dto.ApplicationDTO, error)
	ListJobApplications(role models.UserRole, actorID, jobID string) ([]dto.ApplicationDTO, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	mailer          *email.Dispatcher
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	mailer *email.Dispatcher,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		mailer:          mailer,
	}
}

// SubmitApplication creates an application for the acting job seeker. At most
// one application per (job, seeker) pair exists; a second attempt is a
// conflict even when two requests race, thanks to the unique index.
func (s *ApplicationServiceImpl) SubmitApplication(role models.UserRole, actorID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationDTO, error) {
	if role != models.UserRoleJobSeeker {
		return nil, appErrors.NewForbiddenError("Only job seekers can apply to job postings")
	}

	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	// No activity gate: a posting that was deactivated after the seeker saw
	// it still accepts applications.
	if actorID == job.EmployerID {
		return nil, appErrors.ErrCannotApplyToOwnJob
	}

	hasApplied, err := s.applicationRepo.ExistsForJobAndSeeker(job.ID, actorID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if !access.CanApply(role, actorID, job, hasApplied) {
		return nil, appErrors.ErrApplicationExists
	}

	app := &models.JobApplication{
		JobID:       job.ID,
		JobSeekerID: actorID,
		Status:      models.ApplicationStatusSubmitted,
	}
	if err := s.applicationRepo.Create(app); err != nil {
		if appErrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, appErrors.ErrApplicationExists
		}
		return nil, appErrors.InternalError(err)
	}

	created, err := s.applicationRepo.FindByID(app.ID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	if created.JobSeeker != nil {
		s.mailer.DispatchApplicationSubmitted(created.JobSeeker.Email, job.Title)
	}

	out := dto.ApplicationToDTO(created)
	return &out, nil
}

// GetApplication returns one application. Unlike job postings, a denied read
// here is reported as forbidden with a role-specific message: the caller
// already proved the application exists by naming its id.
func (s *ApplicationServiceImpl) GetApplication(role models.UserRole, actorID, applicationID string) (*dto.ApplicationDTO, error) {
	app, err := s.findApplication(applicationID)
	if err != nil {
		return nil, err
	}
	if !access.CanViewApplication(role, actorID, app) {
		return nil, s.viewDenied(role)
	}
	out := dto.ApplicationToDTO(app)
	return &out, nil
}

// UpdateApplicationStatus moves the application to the given status. The
// acceptance email fires only on the transition into accepted, after the new
// status is durably stored; re-asserting accepted sends nothing.
func (s *ApplicationServiceImpl) UpdateApplicationStatus(role models.UserRole, actorID, applicationID string, status models.ApplicationStatus) (*dto.ApplicationDTO, error) {
	if !status.IsValid() {
		return nil, appErrors.ErrInvalidApplicationState
	}

	app, err := s.findApplication(applicationID)
	if err != nil {
		return nil, err
	}
	if !access.CanMutateApplicationStatus(role, actorID, app) {
		return nil, appErrors.NewForbiddenError("Only the employer who posted the job can update application status")
	}

	becameAccepted := status == models.ApplicationStatusAccepted && app.Status != models.ApplicationStatusAccepted

	if err := s.applicationRepo.UpdateStatus(app.ID, status); err != nil {
		if appErrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, appErrors.ErrApplicationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if becameAccepted && app.JobSeeker != nil && app.Job != nil {
		s.mailer.DispatchApplicationAccepted(app.JobSeeker.Email, app.Job.Title)
	}

	app.Status = status
	out := dto.ApplicationToDTO(app)
	return &out, nil
}

// ListApplications returns the applications visible to the actor: admins see
// all, employers see applications to their postings, seekers see their own.
func (s *ApplicationServiceImpl) ListApplications(role models.UserRole, actorID string) ([]dto.ApplicationDTO, error) {
	var (
		apps []models.JobApplication
		err  error
	)
	switch role {
	case models.UserRoleAdmin:
		apps, err = s.applicationRepo.ListAll()
	case models.UserRoleEmployer:
		apps, err = s.applicationRepo.ListByEmployer(actorID)
	case models.UserRoleJobSeeker:
		apps, err = s.applicationRepo.ListBySeeker(actorID)
	default:
		return []dto.ApplicationDTO{}, nil
	}
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return dto.ApplicationsToDTO(apps), nil
}

// ListJobApplications returns every application to one posting, for the
// posting's owner or an admin. A posting the actor does not own degrades to
// an empty list, like the other listing endpoints.
func (s *ApplicationServiceImpl) ListJobApplications(role models.UserRole, actorID, jobID string) ([]dto.ApplicationDTO, error) {
	if role == models.UserRoleJobSeeker {
		return nil, appErrors.NewForbiddenError("Only employers can view applications for a job posting")
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if !access.CanMutateJob(role, actorID, job) {
		return []dto.ApplicationDTO{}, nil
	}

	apps, err := s.applicationRepo.ListByJob(jobID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return dto.ApplicationsToDTO(apps), nil
}

func (s *ApplicationServiceImpl) findApplication(id string) (*models.JobApplication, error) {
	app, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, appErrors.ErrApplicationNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return app, nil
}

func (s *ApplicationServiceImpl) viewDenied(role models.UserRole) error {
	if role == models.UserRoleEmployer {
		return appErrors.NewForbiddenError("You can only view applications for your own job postings")
	}
	return appErrors.NewForbiddenError("You can only view your own applications")
}
