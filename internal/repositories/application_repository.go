package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and seeker")
)

type ApplicationRepository interface {
	// Create inserts the application. A second insert for the same (job,
	// seeker) pair fails against the unique index and is reported as
	// ErrDuplicateApplication, closing the check-then-insert race.
	Create(app *models.JobApplication) error
	FindByID(id string) (*models.JobApplication, error)
	ExistsForJobAndSeeker(jobID, seekerID string) (bool, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	ListBySeeker(seekerID string) ([]models.JobApplication, error)
	ListByEmployer(employerID string) ([]models.JobApplication, error)
	ListByJob(jobID string) ([]models.JobApplication, error)
	ListAll() ([]models.JobApplication, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.JobApplication) error {
	if err := r.db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.Preload("Job").Preload("Job.Employer").Preload("Job.Location").Preload("JobSeeker").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ExistsForJobAndSeeker(jobID, seekerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Where("job_id = ? AND job_seeker_id = ?", jobID, seekerID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.JobApplication{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) ListBySeeker(seekerID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.baseQuery().Where("job_applications.job_seeker_id = ?", seekerID).
		Order("job_applications.applied_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListByEmployer(employerID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.baseQuery().
		Joins("JOIN job_postings ON job_postings.id = job_applications.job_id").
		Where("job_postings.employer_id = ?", employerID).
		Order("job_applications.applied_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.baseQuery().Where("job_applications.job_id = ?", jobID).
		Order("job_applications.applied_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListAll() ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.baseQuery().Order("job_applications.applied_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) baseQuery() *gorm.DB {
	return r.db.Model(&models.JobApplication{}).
		Preload("Job").Preload("Job.Employer").Preload("JobSeeker")
}
