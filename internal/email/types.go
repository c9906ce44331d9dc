package email

// TemplateKind names the notification templates the system can dispatch.
type TemplateKind string

const (
	TemplateApplicationSubmitted TemplateKind = "application_submitted"
	TemplateApplicationAccepted  TemplateKind = "application_accepted"
	TemplateEmailVerification    TemplateKind = "email_verification"
	TemplatePasswordReset        TemplateKind = "password_reset"
)

// TemplateData carries the fields templates may reference.
type TemplateData struct {
	Subject    string
	UserName   string
	JobTitle   string
	ActionURL  string
	ActionText string
	Message    string
}

// Provider sends mail. Implementations are synchronous; asynchronous
// fire-and-forget delivery is layered on by Dispatcher.
type Provider interface {
	SendVerification(to, token string) error
	SendPasswordReset(to, token string) error
	SendApplicationSubmitted(to, jobTitle string) error
	SendApplicationAccepted(to, jobTitle string) error
	Close() error
}
