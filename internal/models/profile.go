package models

import "gorm.io/datatypes"

// JobSeekerProfile exists for users with the job_seeker role. A user owns at
// most one of JobSeekerProfile / EmployerProfile, decided by role at registration.
type JobSeekerProfile struct {
	BaseModel
	UserID     string         `gorm:"type:uuid;uniqueIndex;not null" json:"-"`
	Skills     datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Resume     string         `json:"resume,omitempty"`
	Experience int            `gorm:"default:0" json:"experience"`
}

type EmployerProfile struct {
	BaseModel
	UserID      string `gorm:"type:uuid;uniqueIndex;not null" json:"-"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website,omitempty"`
	Bio         string `json:"bio,omitempty"`
}
