package services

import (
	"fmt"
	"sync"
	"testing"

	"jobboard_backend/internal/cache"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.JobSeekerProfile{},
		&models.EmployerProfile{},
		&models.Location{},
		&models.JobPosting{},
		&models.JobApplication{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// sentMail records one delivered notification.
type sentMail struct {
	Kind     email.TemplateKind
	To       string
	Token    string
	JobTitle string
}

// fakeProvider captures notifications instead of sending them.
type fakeProvider struct {
	mu   sync.Mutex
	sent []sentMail
}

func (p *fakeProvider) SendVerification(to, token string) error {
	return p.record(sentMail{Kind: email.TemplateEmailVerification, To: to, Token: token})
}

func (p *fakeProvider) SendPasswordReset(to, token string) error {
	return p.record(sentMail{Kind: email.TemplatePasswordReset, To: to, Token: token})
}

func (p *fakeProvider) SendApplicationSubmitted(to, jobTitle string) error {
	return p.record(sentMail{Kind: email.TemplateApplicationSubmitted, To: to, JobTitle: jobTitle})
}

func (p *fakeProvider) SendApplicationAccepted(to, jobTitle string) error {
	return p.record(sentMail{Kind: email.TemplateApplicationAccepted, To: to, JobTitle: jobTitle})
}

func (p *fakeProvider) Close() error { return nil }

func (p *fakeProvider) record(m sentMail) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, m)
	return nil
}

func (p *fakeProvider) byKind(kind email.TemplateKind) []sentMail {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []sentMail
	for _, m := range p.sent {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

func newTestMailer() (*email.Dispatcher, *fakeProvider) {
	provider := &fakeProvider{}
	return email.NewDispatcher(provider), provider
}

func seedUser(t *testing.T, db *gorm.DB, emailAddr string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Email:        emailAddr,
		PasswordHash: "x",
		Role:         role,
		FirstName:    "Test",
		LastName:     "User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", emailAddr, err)
	}
	return user
}

func seedJob(t *testing.T, db *gorm.DB, employerID, title string, active bool) *models.JobPosting {
	t.Helper()
	job := &models.JobPosting{
		Title:       title,
		Description: "desc",
		Category:    models.JobCategoryTech,
		JobType:     models.JobTypeFullTime,
		Salary:      1000,
		EmployerID:  employerID,
		IsActive:    active,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("seed job %s: %v", title, err)
	}
	if !active {
		// gorm skips false on create because of the default:true tag.
		if err := db.Model(job).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate job %s: %v", title, err)
		}
		job.IsActive = false
	}
	return job
}

func newJobService(db *gorm.DB, c cache.Cache) JobService {
	return NewJobService(repositories.NewJobRepository(db), repositories.NewLocationRepository(db), c)
}
