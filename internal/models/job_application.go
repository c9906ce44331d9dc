package models

import "time"

// JobApplication links one job seeker to one job posting. The (job_id,
// job_seeker_id) pair is unique at the database level so two concurrent
// submissions cannot both succeed.
type JobApplication struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_seeker" json:"job_id"`
	JobSeekerID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_seeker" json:"job_seeker_id"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'submitted'" json:"status"`
	AppliedAt   time.Time         `gorm:"autoCreateTime" json:"applied_at"`

	Job       *JobPosting `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
	JobSeeker *User       `gorm:"foreignKey:JobSeekerID;constraint:OnDelete:CASCADE" json:"job_seeker,omitempty"`
}
