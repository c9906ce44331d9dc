package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// CreateJobRequest uses flat location fields; all three are required and the
// service resolves them to a deduplicated Location row.
type CreateJobRequest struct {
	Title           string             `json:"title" binding:"required,max=100"`
	Description     string             `json:"description" binding:"required"`
	Category        models.JobCategory `json:"category" binding:"required"`
	JobType         models.JobType     `json:"job_type" binding:"required"`
	Salary          float64            `json:"salary" binding:"gte=0"`
	LocationCountry string             `json:"location_country"`
	LocationCity    string             `json:"location_city"`
	LocationAddress string             `json:"location_address"`
}

// UpdateJobRequest is a partial update. Nil fields are left untouched; the
// three location fields must be present together or not at all.
type UpdateJobRequest struct {
	Title           *string             `json:"title,omitempty"`
	Description     *string             `json:"description,omitempty"`
	Category        *models.JobCategory `json:"category,omitempty"`
	JobType         *models.JobType     `json:"job_type,omitempty"`
	Salary          *float64            `json:"salary,omitempty"`
	IsActive        *bool               `json:"is_active,omitempty"`
	LocationCountry *string             `json:"location_country,omitempty"`
	LocationCity    *string             `json:"location_city,omitempty"`
	LocationAddress *string             `json:"location_address,omitempty"`
}

type LocationDTO struct {
	ID      string `json:"id"`
	Country string `json:"country"`
	City    string `json:"city"`
	Address string `json:"address"`
}

type JobDTO struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    models.JobCategory `json:"category"`
	JobType     models.JobType     `json:"job_type"`
	Salary      float64            `json:"salary"`
	Employer    *UserDTO           `json:"employer,omitempty"`
	Location    *LocationDTO       `json:"location,omitempty"`
	IsActive    bool               `json:"is_active"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func JobToDTO(job *models.JobPosting) JobDTO {
	out := JobDTO{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Category:    job.Category,
		JobType:     job.JobType,
		Salary:      job.Salary,
		IsActive:    job.IsActive,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
	if job.Employer != nil {
		employer := UserToDTO(job.Employer)
		out.Employer = &employer
	}
	if job.Location != nil {
		out.Location = &LocationDTO{
			ID:      job.Location.ID,
			Country: job.Location.Country,
			City:    job.Location.City,
			Address: job.Location.Address,
		}
	}
	return out
}

func JobsToDTO(jobs []models.JobPosting) []JobDTO {
	out := make([]JobDTO, 0, len(jobs))
	for i := range jobs {
		out = append(out, JobToDTO(&jobs[i]))
	}
	return out
}
