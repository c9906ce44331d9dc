package models

type JobPosting struct {
	BaseModel
	Title       string      `gorm:"size:100;not null" json:"title"`
	Description string      `gorm:"type:text;not null" json:"description"`
	Category    JobCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	JobType     JobType     `gorm:"type:varchar(20);not null" json:"job_type"`
	Salary      float64     `gorm:"type:decimal(10,2)" json:"salary"`
	EmployerID  string      `gorm:"type:uuid;not null;index" json:"employer_id"`
	LocationID  *string     `gorm:"type:uuid" json:"-"`
	IsActive    bool        `gorm:"default:true;index" json:"is_active"`

	Employer     *User            `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE" json:"employer,omitempty"`
	Location     *Location        `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL" json:"location,omitempty"`
	Applications []JobApplication `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}
