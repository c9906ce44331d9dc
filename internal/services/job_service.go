package services

import (
	"context"
	"encoding/json"
	"time"

	"jobboard_backend/internal/access"
	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/cache"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

const (
	activeJobsCacheKey = "jobs:active"
	activeJobsCacheTTL = 15 * time.Minute
)

type JobService interface {
	ListJobs(ctx context.Context, role models.UserRole, actorID string, filter repositories.JobFilter) ([]dto.JobDTO, error)
	GetJob(role models.UserRole, actorID, jobID string) (*dto.JobDTO, error)
	CreateJob(ctx context.Context, role models.UserRole, actorID string, req *dto.CreateJobRequest) (*dto.JobDTO, error)
	UpdateJob(ctx context.Context, role models.UserRole, actorID, jobID string, req *dto.UpdateJobRequest) (*dto.JobDTO, error)
	DeleteJob(ctx context.Context, role models.UserRole, actorID, jobID string) error
}

type JobServiceImpl struct {
	jobRepo      repositories.JobRepository
	locationRepo repositories.LocationRepository
	cache        cache.Cache
}

func NewJobService(
	jobRepo repositories.JobRepository,
	locationRepo repositories.LocationRepository,
	c cache.Cache,
) JobService {
	return &JobServiceImpl{
		jobRepo:      jobRepo,
		locationRepo: locationRepo,
		cache:        c,
	}
}

// ListJobs returns postings scoped by role: employers see their own postings
// (active or not), everyone else sees active postings only. The unfiltered
// active listing is served from cache; any filter bypasses it.
func (s *JobServiceImpl) ListJobs(ctx context.Context, role models.UserRole, actorID string, filter repositories.JobFilter) ([]dto.JobDTO, error) {
	if access.JobListScope(role) == access.ScopeOwned {
		jobs, err := s.jobRepo.ListByEmployer(actorID, filter)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		return dto.JobsToDTO(jobs), nil
	}

	unfiltered := filter == (repositories.JobFilter{})
	if unfiltered {
		if cached, ok := s.cacheGet(ctx); ok {
			return cached, nil
		}
	}

	jobs, err := s.jobRepo.ListActive(filter)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	out := dto.JobsToDTO(jobs)

	if unfiltered {
		s.cacheSet(ctx, out)
	}
	return out, nil
}

// GetJob returns one posting. Postings the actor may not see are reported as
// not found rather than forbidden so their existence does not leak.
func (s *JobServiceImpl) GetJob(role models.UserRole, actorID, jobID string) (*dto.JobDTO, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if !access.CanViewJob(role, actorID, job) {
		return nil, appErrors.ErrJobNotFound
	}
	out := dto.JobToDTO(job)
	return &out, nil
}

func (s *JobServiceImpl) CreateJob(ctx context.Context, role models.UserRole, actorID string, req *dto.CreateJobRequest) (*dto.JobDTO, error) {
	if !access.CanCreateJob(role) {
		return nil, appErrors.NewForbiddenError("only employers can create job postings")
	}
	if !req.Category.IsValid() {
		return nil, appErrors.ErrInvalidJobCategory
	}
	if !req.JobType.IsValid() {
		return nil, appErrors.ErrInvalidJobType
	}

	// Creation requires the full triple; only updates may leave it untouched.
	if req.LocationCountry == "" || req.LocationCity == "" || req.LocationAddress == "" {
		return nil, appErrors.ErrIncompleteLocation
	}
	locationID, err := s.resolveLocation(req.LocationCountry, req.LocationCity, req.LocationAddress)
	if err != nil {
		return nil, err
	}

	job := &models.JobPosting{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		JobType:     req.JobType,
		Salary:      req.Salary,
		EmployerID:  actorID,
		LocationID:  locationID,
		IsActive:    true,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, appErrors.InternalError(err)
	}

	s.invalidateCache(ctx)

	created, err := s.jobRepo.FindByID(job.ID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	out := dto.JobToDTO(created)
	return &out, nil
}

func (s *JobServiceImpl) UpdateJob(ctx context.Context, role models.UserRole, actorID, jobID string, req *dto.UpdateJobRequest) (*dto.JobDTO, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	// Denied mutations report not found, same as denied reads.
	if !access.CanMutateJob(role, actorID, job) {
		return nil, appErrors.ErrJobNotFound
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, appErrors.ErrInvalidJobCategory
		}
		job.Category = *req.Category
	}
	if req.JobType != nil {
		if !req.JobType.IsValid() {
			return nil, appErrors.ErrInvalidJobType
		}
		job.JobType = *req.JobType
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	if req.LocationCountry != nil || req.LocationCity != nil || req.LocationAddress != nil {
		if req.LocationCountry == nil || req.LocationCity == nil || req.LocationAddress == nil {
			return nil, appErrors.ErrIncompleteLocation
		}
		locationID, err := s.resolveLocation(*req.LocationCountry, *req.LocationCity, *req.LocationAddress)
		if err != nil {
			return nil, err
		}
		job.LocationID = locationID
	}

	if err := s.jobRepo.Update(job); err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	s.invalidateCache(ctx)

	updated, err := s.jobRepo.FindByID(job.ID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	out := dto.JobToDTO(updated)
	return &out, nil
}

// DeleteJob removes the posting and its applications.
func (s *JobServiceImpl) DeleteJob(ctx context.Context, role models.UserRole, actorID, jobID string) error {
	job, err := s.findJob(jobID)
	if err != nil {
		return err
	}
	if !access.CanMutateJob(role, actorID, job) {
		return appErrors.ErrJobNotFound
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		return appErrors.InternalError(err)
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *JobServiceImpl) findJob(jobID string) (*models.JobPosting, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

// resolveLocation maps the flat location fields to a deduplicated Location
// row.
func (s *JobServiceImpl) resolveLocation(country, city, address string) (*string, error) {
	location, err := s.locationRepo.GetOrCreate(country, city, address)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return &location.ID, nil
}

// Cache failures are logged and otherwise ignored; the database stays the
// source of truth.

func (s *JobServiceImpl) cacheGet(ctx context.Context) ([]dto.JobDTO, bool) {
	raw, ok, err := s.cache.Get(ctx, activeJobsCacheKey)
	if err != nil {
		logger.WithError(err).Warn("job cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var jobs []dto.JobDTO
	if err := json.Unmarshal([]byte(raw), &jobs); err != nil {
		logger.WithError(err).Warn("job cache entry malformed")
		return nil, false
	}
	return jobs, true
}

func (s *JobServiceImpl) cacheSet(ctx context.Context, jobs []dto.JobDTO) {
	raw, err := json.Marshal(jobs)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, activeJobsCacheKey, string(raw), activeJobsCacheTTL); err != nil {
		logger.WithError(err).Warn("job cache write failed")
	}
}

func (s *JobServiceImpl) invalidateCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, activeJobsCacheKey); err != nil {
		logger.WithError(err).Warn("job cache invalidation failed")
	}
}
