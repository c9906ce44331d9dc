package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// TemplateManager renders the built-in notification templates.
type TemplateManager struct {
	templates map[TemplateKind]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[TemplateKind]*template.Template),
	}

	for kind, body := range defaultTemplates {
		if err := tm.AddTemplate(kind, body); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

// Render renders the named template with data.
func (tm *TemplateManager) Render(kind TemplateKind, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[kind]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", kind)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate parses and registers a template body under kind.
func (tm *TemplateManager) AddTemplate(kind TemplateKind, body string) error {
	tpl, err := template.New(string(kind)).Parse(body)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", kind, err)
	}

	tm.mutex.Lock()
	tm.templates[kind] = tpl
	tm.mutex.Unlock()

	return nil
}

var defaultTemplates = map[TemplateKind]string{
	TemplateEmailVerification: `
<h2>Verify your email</h2>
<p>Welcome to Job Board. Please confirm your email address to activate your account.</p>
<p><a href="{{.ActionURL}}">{{.ActionText}}</a></p>
<p>If you did not create an account, you can ignore this message.</p>`,

	TemplatePasswordReset: `
<h2>Password reset</h2>
<p>We received a request to reset your password. The link below is valid for 24 hours.</p>
<p><a href="{{.ActionURL}}">{{.ActionText}}</a></p>
<p>If you did not request a reset, you can ignore this message.</p>`,

	TemplateApplicationSubmitted: `
<h2>Application submitted</h2>
<p>Dear Applicant,</p>
<p>Your application for the position "{{.JobTitle}}" has been successfully submitted.
We will notify you once the employer reviews your application.</p>
<p>Best regards,<br>Job Board Team</p>`,

	TemplateApplicationAccepted: `
<h2>Congratulations! Your application has been accepted</h2>
<p>Dear Applicant,</p>
<p>We are pleased to inform you that your application for the position "{{.JobTitle}}"
has been accepted by the employer. Please check your account for next steps.</p>
<p>Congratulations and best of luck!<br>Job Board Team</p>`,
}
