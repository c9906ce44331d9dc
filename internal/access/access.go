// Package access holds the pure authorization predicates consulted by the job
// and application services before they touch persisted state. Every decision
// takes the actor's role and identity plus the target entity; nothing in here
// reads the database.
//
// Two denial policies apply downstream: job postings deny as not-found so that
// restricted postings do not leak their existence, while applications deny as
// forbidden with a role-specific message.
package access

import "jobboard_backend/internal/models"

// ListScope describes which postings a role may see when listing.
type ListScope int

const (
	// ScopeOwned limits the listing to postings owned by the actor.
	ScopeOwned ListScope = iota
	// ScopeActive limits the listing to postings with is_active = true.
	ScopeActive
)

// JobListScope returns the listing scope for a role. Every role may list;
// only the scope differs.
func JobListScope(role models.UserRole) ListScope {
	switch role {
	case models.UserRoleEmployer:
		return ScopeOwned
	case models.UserRoleAdmin, models.UserRoleJobSeeker:
		return ScopeActive
	}
	return ScopeActive
}

// CanCreateJob reports whether the role may create job postings.
func CanCreateJob(role models.UserRole) bool {
	return role == models.UserRoleEmployer
}

// CanMutateJob reports whether the actor may update or delete the posting:
// admins always, employers only for their own postings.
func CanMutateJob(role models.UserRole, actorID string, job *models.JobPosting) bool {
	switch role {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleEmployer:
		return actorID == job.EmployerID
	case models.UserRoleJobSeeker:
		return false
	}
	return false
}

// CanViewJob reports whether the actor may see the posting. Inactive postings
// are visible only to their owner and to admins.
func CanViewJob(role models.UserRole, actorID string, job *models.JobPosting) bool {
	if job.IsActive {
		return true
	}
	switch role {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleEmployer:
		return actorID == job.EmployerID
	case models.UserRoleJobSeeker:
		return false
	}
	return false
}

// CanApply reports whether the actor may submit an application for the job.
// hasApplied is the caller's existence check for a prior (job, actor)
// application; the database unique index backstops it under concurrency.
func CanApply(role models.UserRole, actorID string, job *models.JobPosting, hasApplied bool) bool {
	if role != models.UserRoleJobSeeker {
		return false
	}
	if actorID == job.EmployerID {
		return false
	}
	return !hasApplied
}

// CanViewApplication reports whether the actor may read the application:
// the applicant themselves, the employer owning the job, or an admin.
func CanViewApplication(role models.UserRole, actorID string, app *models.JobApplication) bool {
	switch role {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleEmployer:
		return app.Job != nil && actorID == app.Job.EmployerID
	case models.UserRoleJobSeeker:
		return actorID == app.JobSeekerID
	}
	return false
}

// CanMutateApplicationStatus reports whether the actor may change the
// application's status: the employer owning the job, or an admin.
func CanMutateApplicationStatus(role models.UserRole, actorID string, app *models.JobApplication) bool {
	switch role {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleEmployer:
		return app.Job != nil && actorID == app.Job.EmployerID
	case models.UserRoleJobSeeker:
		return false
	}
	return false
}
