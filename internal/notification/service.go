package notification

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Notifier sends transactional account emails. Callers dispatch these
// fire-and-forget: no delivery guarantee exists and failures are only logged.
type Notifier interface {
	SendWelcomeEmail(email, name string) error
	SendAccountRemovalEmail(email, name string) error
}

// Service implements Notifier on top of SendGrid.
type Service struct {
	client *sendgrid.Client
	from   *mail.Email
}

// NewService creates a SendGrid-backed Notifier.
func NewService(apiKey, fromAddress string) *Service {
	return &Service{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail("TaskHive", fromAddress),
	}
}

func (s *Service) SendWelcomeEmail(email, name string) error {
	subject := "Welcome to TaskHive"
	body := fmt.Sprintf("Welcome to TaskHive, %s. Let us know how you get along with the app.", name)
	return s.send(email, name, subject, body)
}

func (s *Service) SendAccountRemovalEmail(email, name string) error {
	subject := "We've deleted your account"
	body := fmt.Sprintf("Hello %s. We've deleted your account.", name)
	return s.send(email, name, subject, body)
}

func (s *Service) send(email, name, subject, body string) error {
	to := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(s.from, subject, to, body, body)

	resp, err := s.client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
