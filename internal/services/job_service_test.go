package services

import (
	"context"
	"testing"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/cache"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createJobRequest(title string) *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:           title,
		Description:     "desc",
		Category:        models.JobCategoryTech,
		JobType:         models.JobTypeRemote,
		Salary:          4200,
		LocationCountry: "Kazakhstan",
		LocationCity:    "Almaty",
		LocationAddress: "Abay Ave 1",
	}
}

func TestCreateJob(t *testing.T) {
	db := setupTestDB(t)
	svc := newJobService(db, cache.NewMemoryCache())
	employer := seedUser(t, db, "boss@example.com", models.UserRoleEmployer)

	job, err := svc.CreateJob(context.Background(), models.UserRoleEmployer, employer.ID, createJobRequest("Backend Engineer"))
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.True(t, job.IsActive, "new postings start active")
	require.NotNil(t, job.Employer)
	assert.Equal(t, employer.ID, job.Employer.ID)
}

func TestCreateJobDeniedForSeeker(t *testing.T) {
	db := setupTestDB(t)
	svc := newJobService(db, cache.NewMemoryCache())
	seeker := seedUser(t, db, "seeker@example.com", models.UserRoleJobSeeker)

	_, err := svc.CreateJob(context.Background(), models.UserRoleJobSeeker, seeker.ID, createJobRequest("Nope"))

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestCreateJobInvalidEnums(t *testing.T) {
	db := setupTestDB(t)
	svc := newJobService(db, cache.NewMemoryCache())
	employer := seedUser(t, db, "boss@example.com", models.UserRoleEmployer)

	req := createJobRequest("Bad Category")
	req.Category = models.JobCategory("astrology")
	_, err := svc.CreateJob(context.Background(), models.UserRoleEmployer, employer.ID, req)
	assert.ErrorIs(t, err, appErrors.ErrInvalidJobCategory)

	req = createJobRequest("Bad Type")
	req.JobType = models.JobType("gig")
	_, err = svc.CreateJob(context.Background(), models.UserRoleEmployer, employer.ID, req)
	assert.ErrorIs(t, err, appErrors.ErrInvalidJobType)
}

func TestCreateJobRequiresFullLocation(t *testing.T) {
	db := setupTestDB(t)
	svc := newJobService(db, cache.NewMemoryCache())
	employer := seedUser(t, db, "boss@example.com", models.UserRoleEmployer)

	req := createJobRequest("Partial Location")
	req.LocationAddress = ""
	_, err := svc.CreateJob(context.Background(), models.UserRoleEmployer, employer.ID, req)
	assert.ErrorIs(t, err, appErrors.ErrIncompleteLocation)

	req = createJobRequest("No Location")
	req.LocationCountry = ""
	req.LocationCity = ""
	req.LocationAddress = ""
	_, err = svc.CreateJob(context.Background(), models.UserRoleEmployer, employer.ID, req)
	assert.ErrorIs(t, err, appErrors.ErrIncompleteLocation)

	req = createJobRequest("Full Location")
	req.LocationCity = "Paris"
	req.LocationCountry = "France"
	req.LocationAddress = "1 rue de Rivoli"
	job, err := svc.CreateJob(context.Background(), models.UserRoleEmployer, employer.ID, req)
	require.NoError(t, err)
	require.NotNil(t, job.Location)
	assert.Equal(t, "Paris", job.Location.City)
}

func TestCreateJobDeduplicatesLocations(t *testing.T) {
	db := setupTestDB(t)
	svc := newJobService(db, cache.NewMemoryCache())
	employer := seedUser(t, db, "boss@example.com", models.UserRoleEmployer)

	for _, title := range []string{"First", "Second"} {
		req := createJobRequest(title)
		req.LocationCountry = "Kazakhstan"
		req.LocationCity = "Almaty"
		req.LocationAddress = "Abay Ave 1"
		_, err := svc.CreateJob(context.Background(), models.UserRoleEmployer, employer.ID, req)
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.Location{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "equal triples share one location row")
}

func TestListJobsScopes(t *testing.T) {
	db := setupTestDB(t)
	svc := newJobService(db, cache.NewMemoryCache())
	owner := seedUser(t, db, "owner@example.com", models.UserRoleEmployer)
	rival := seedUser(t, db, "rival@example.com", models.UserRoleEmployer)
	seeker := seedUser(t, db, "seeker@example.com", models.UserRoleJobSeeker)

	seedJob(t, db, owner.ID, "Owner Active", true)
	seedJob(t, db, owner.ID, "Owner Inactive", false)
	seedJob(t, db, rival.ID, "Rival Active", true)

	// The employer sees every own posting and nothing else.
	jobs, err := svc.ListJobs(context.Background(), models.UserRoleEmployer, owner.ID, repositories.JobFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.Equal(t, owner.ID, j.Employer.ID)
	}

	// The seeker sees active postings from every employer.
	jobs, err = svc.ListJobs(context.Background(), models.UserRoleJobSeeker, seeker.ID, repositories.JobFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.True(t, j.IsActive)
	}
}

func TestListJobsFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := newJobService(db, cache.NewMemoryCache())
	owner := seedUser(t, db, "owner@example.com", models.UserRoleEmployer)
	seeker := seedUser(t, db, "seeker@example.com", models.UserRoleJobSeeker)

	seedJob(t, db, owner.ID, "Go Developer", true)
	seedJob(t, db, owner.ID, "Nurse", true)

	jobs, err := svc.ListJobs(context.Background(), models.UserRoleJobSeeker, seeker.ID, repositories.JobFilter{Title: "Go"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Go Developer", jobs[0].Title)
}

func TestListJobsUsesCache(t *testing.T) {
	db := setupTestDB(t)
	c := cache.NewMemoryCache()
	svc := newJobService(db, c)
	owner := seedUser(t, db, "owner@example.com", models.UserRoleEmployer)
	seeker := seedUser(t, db, "seeker@example.com", models.UserRoleJobSeeker)

	seedJob(t, db, owner.ID, "Cached Job", true)

	jobs, err := svc.ListJobs(context.Background(), models.UserRoleJobSeeker, seeker.ID, repositories.JobFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	// A posting created behind the service's back stays invisible until the
	// cache entry goes away.
	seedJob(t, db, owner.ID, "Fresh Job", true)

	jobs, err = svc.ListJobs(context.Background(), models.UserRoleJobSeeker, seeker.ID, repositories.JobFilter{})
	require.NoError(t, err)
	assert.Len(t, jobs, 1, "stale list served from cache")

	require.NoError(t, c.Delete(context.Background(), "jobs:active"))

	jobs, err = svc.ListJobs(context.Background(), models.UserRoleJobSeeker, seeker.ID, repositories.JobFilter{})
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestJobWritesInvalidateCache(t *testing.T) {
	db := setupTestDB(t)
	c := cache.NewMemoryCache()
	svc := newJobService(db, c)
	owner := seedUser(t, db, "owner@example.com", models.UserRoleEmployer)
	seeker := seedUser(t, db, "seeker@example.com", models.UserRoleJobSeeker)

	seedJob(t, db, owner.ID, "Original", true)

	jobs, err := svc.ListJobs(context.Background(), models.UserRoleJobSeeker, seeker.ID, repositories.JobFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	_, err = svc.CreateJob(context.Background(), models.UserRoleEmployer, owner.ID, createJobRequest("Second"))
	require.NoError(t, err)

	jobs, err = svc.ListJobs(context.Background(), models.UserRoleJobSeeker, seeker.ID, repositories.JobFilter{})
	require.NoError(t, err)
	assert.Len(t, jobs, 2, "create must drop the cached list")
}

func TestGetJobHidesInactiveFromSeeker(t *testing.T) {
	db := setupTestDB(t)
	svc := newJobService(db, cache.NewMemoryCache())
	owner := seedUser(t, db, "owner@example.com", models.UserRoleEmployer)
	seeker := seedUser(t, db, "seeker@example.com", models.UserRoleJobSeeker)

	job := seedJob(t, db, owner.ID, "Paused", false)

	_, err := svc.GetJob(models.UserRoleJobSeeker, seeker.ID, job.ID)
	assert.ErrorIs(t, err, appErrors.ErrJobNotFound, "denied reads look like missing postings")

	got, err := svc.GetJob(models.UserRoleEmployer, owner.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)

	got, err = svc.GetJob(models.UserRoleAdmin, "any", job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
}

func TestUpdateJobDeniedAsNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newJobService(db, cache.NewMemoryCache())
	owner := seedUser(t, db, "owner@example.com", models.UserRoleEmployer)
	rival := seedUser(t, db, "rival@example.com", models.UserRoleEmployer)

	job := seedJob(t, db, owner.ID, "Mine", true)

	title := "Stolen"
	_, err := svc.UpdateJob(context.Background(), models.UserRoleEmployer, rival.ID, job.ID, &dto.UpdateJobRequest{Title: &title})
	assert.ErrorIs(t, err, appErrors.ErrJobNotFound)
}

func TestUpdateJob(t *testing.T) {
	db := setupTestDB(t)
	svc := newJobService(db, cache.NewMemoryCache())
	owner := seedUser(t, db, "owner@example.com", models.UserRoleEmployer)

	job := seedJob(t, db, owner.ID, "Before", true)

	title := "After"
	inactive := false
	updated, err := svc.UpdateJob(context.Background(), models.UserRoleEmployer, owner.ID, job.ID, &dto.UpdateJobRequest{
		Title:    &title,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.False(t, updated.IsActive)
	assert.Equal(t, job.Description, updated.Description, "unset fields untouched")
}

func TestUpdateJobPartialLocationRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newJobService(db, cache.NewMemoryCache())
	owner := seedUser(t, db, "owner@example.com", models.UserRoleEmployer)

	job := seedJob(t, db, owner.ID, "Located", true)

	country := "France"
	_, err := svc.UpdateJob(context.Background(), models.UserRoleEmployer, owner.ID, job.ID, &dto.UpdateJobRequest{
		LocationCountry: &country,
	})
	assert.ErrorIs(t, err, appErrors.ErrIncompleteLocation)
}

func TestDeleteJobRemovesApplications(t *testing.T) {
	db := setupTestDB(t)
	svc := newJobService(db, cache.NewMemoryCache())
	owner := seedUser(t, db, "owner@example.com", models.UserRoleEmployer)
	seeker := seedUser(t, db, "seeker@example.com", models.UserRoleJobSeeker)

	job := seedJob(t, db, owner.ID, "Doomed", true)
	require.NoError(t, db.Create(&models.JobApplication{
		JobID:       job.ID,
		JobSeekerID: seeker.ID,
		Status:      models.ApplicationStatusSubmitted,
	}).Error)

	require.NoError(t, svc.DeleteJob(context.Background(), models.UserRoleEmployer, owner.ID, job.ID))

	var jobCount, appCount int64
	db.Model(&models.JobPosting{}).Count(&jobCount)
	db.Model(&models.JobApplication{}).Count(&appCount)
	assert.Zero(t, jobCount)
	assert.Zero(t, appCount)
}

func TestDeleteJobDeniedForSeeker(t *testing.T) {
	db := setupTestDB(t)
	svc := newJobService(db, cache.NewMemoryCache())
	owner := seedUser(t, db, "owner@example.com", models.UserRoleEmployer)
	seeker := seedUser(t, db, "seeker@example.com", models.UserRoleJobSeeker)

	job := seedJob(t, db, owner.ID, "Safe", true)

	err := svc.DeleteJob(context.Background(), models.UserRoleJobSeeker, seeker.ID, job.ID)
	assert.ErrorIs(t, err, appErrors.ErrJobNotFound)
}
