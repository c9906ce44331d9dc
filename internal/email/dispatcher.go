package email

import (
	"sync"

	"jobboard_backend/internal/logger"
)

// Dispatcher delivers notifications asynchronously. The triggering request
// returns before delivery is confirmed; failures are logged and never
// surfaced to the caller or rolled back.
type Dispatcher struct {
	provider Provider
	wg       sync.WaitGroup
}

func NewDispatcher(provider Provider) *Dispatcher {
	return &Dispatcher{provider: provider}
}

func (d *Dispatcher) DispatchVerification(to, token string) {
	d.dispatch(TemplateEmailVerification, to, func() error {
		return d.provider.SendVerification(to, token)
	})
}

func (d *Dispatcher) DispatchPasswordReset(to, token string) {
	d.dispatch(TemplatePasswordReset, to, func() error {
		return d.provider.SendPasswordReset(to, token)
	})
}

func (d *Dispatcher) DispatchApplicationSubmitted(to, jobTitle string) {
	d.dispatch(TemplateApplicationSubmitted, to, func() error {
		return d.provider.SendApplicationSubmitted(to, jobTitle)
	})
}

func (d *Dispatcher) DispatchApplicationAccepted(to, jobTitle string) {
	d.dispatch(TemplateApplicationAccepted, to, func() error {
		return d.provider.SendApplicationAccepted(to, jobTitle)
	})
}

// Wait blocks until all in-flight dispatches finish. Used on shutdown and in
// tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) dispatch(kind TemplateKind, to string, send func() error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		err := send()
		logger.MailLog(string(kind), to, err)
	}()
}
