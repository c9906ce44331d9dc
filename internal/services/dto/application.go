package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type SubmitApplicationRequest struct {
	JobID string `json:"job_id" binding:"required"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}

type ApplicationDTO struct {
	ID        string                   `json:"id"`
	Job       *JobDTO                  `json:"job,omitempty"`
	JobSeeker *UserDTO                 `json:"job_seeker,omitempty"`
	Status    models.ApplicationStatus `json:"status"`
	AppliedAt time.Time                `json:"applied_at"`
}

func ApplicationToDTO(app *models.JobApplication) ApplicationDTO {
	out := ApplicationDTO{
		ID:        app.ID,
		Status:    app.Status,
		AppliedAt: app.AppliedAt,
	}
	if app.Job != nil {
		job := JobToDTO(app.Job)
		out.Job = &job
	}
	if app.JobSeeker != nil {
		seeker := UserToDTO(app.JobSeeker)
		out.JobSeeker = &seeker
	}
	return out
}

func ApplicationsToDTO(apps []models.JobApplication) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, ApplicationToDTO(&apps[i]))
	}
	return out
}
