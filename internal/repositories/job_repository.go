package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job posting not found")

// JobFilter narrows job listings. Zero values mean "no constraint".
type JobFilter struct {
	Title       string
	Description string
	Category    models.JobCategory
	Country     string
	City        string
	SalaryMin   float64
}

type JobRepository interface {
	Create(job *models.JobPosting) error
	FindByID(id string) (*models.JobPosting, error)
	Update(job *models.JobPosting) error
	Delete(id string) error
	ListByEmployer(employerID string, filter JobFilter) ([]models.JobPosting, error)
	ListActive(filter JobFilter) ([]models.JobPosting, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.JobPosting) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.Preload("Employer").Preload("Location").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.JobPosting) error {
	result := r.db.Model(&models.JobPosting{}).Where("id = ?", job.ID).Updates(map[string]interface{}{
		"title":       job.Title,
		"description": job.Description,
		"category":    job.Category,
		"job_type":    job.JobType,
		"salary":      job.Salary,
		"location_id": job.LocationID,
		"is_active":   job.IsActive,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Delete removes the posting and all of its applications.
func (r *JobRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.JobPosting{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

func (r *JobRepositoryImpl) ListByEmployer(employerID string, filter JobFilter) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	query := r.applyFilter(r.baseQuery().Where("job_postings.employer_id = ?", employerID), filter)
	err := query.Order("job_postings.created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) ListActive(filter JobFilter) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	query := r.applyFilter(r.baseQuery().Where("job_postings.is_active = ?", true), filter)
	err := query.Order("job_postings.created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) baseQuery() *gorm.DB {
	return r.db.Model(&models.JobPosting{}).Preload("Employer").Preload("Location")
}

func (r *JobRepositoryImpl) applyFilter(query *gorm.DB, filter JobFilter) *gorm.DB {
	if filter.Title != "" {
		query = query.Where("job_postings.title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.Description != "" {
		query = query.Where("job_postings.description LIKE ?", "%"+filter.Description+"%")
	}
	if filter.Category != "" {
		query = query.Where("job_postings.category = ?", filter.Category)
	}
	if filter.Country != "" || filter.City != "" {
		query = query.Joins("LEFT JOIN locations ON locations.id = job_postings.location_id")
		if filter.Country != "" {
			query = query.Where("locations.country = ?", filter.Country)
		}
		if filter.City != "" {
			query = query.Where("locations.city = ?", filter.City)
		}
	}
	if filter.SalaryMin > 0 {
		query = query.Where("job_postings.salary >= ?", filter.SalaryMin)
	}
	return query
}
