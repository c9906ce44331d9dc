package models

type UserRole string
type JobCategory string
type JobType string
type ApplicationStatus string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleEmployer  UserRole = "employer"
	UserRoleJobSeeker UserRole = "job_seeker"

	JobCategoryTech       JobCategory = "tech"
	JobCategoryHealthcare JobCategory = "healthcare"
	JobCategoryFinance    JobCategory = "finance"
	JobCategoryEducation  JobCategory = "education"
	JobCategoryOther      JobCategory = "other"

	JobTypeFullTime JobType = "full_time"
	JobTypePartTime JobType = "part_time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"

	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleEmployer, UserRoleJobSeeker:
		return true
	}
	return false
}

func (c JobCategory) IsValid() bool {
	switch c {
	case JobCategoryTech, JobCategoryHealthcare, JobCategoryFinance, JobCategoryEducation, JobCategoryOther:
		return true
	}
	return false
}

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote:
		return true
	}
	return false
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}
