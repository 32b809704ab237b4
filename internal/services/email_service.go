package services

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/poofware/tenancy-service/internal/models"
)

const outcomeEmailHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 500px; margin: auto; border: 1px solid #e9ecef; border-radius: 8px; padding: 30px; }
</style>
</head>
<body>
  <div class="container">
    <p>Hello,</p>
    <p>Your request to join <strong>%s</strong> has been <strong>%s</strong>.</p>
    <p>Log in to your tenant portal for details.</p>
  </div>
</body>
</html>`

/*
EmailService sends the optional email copy of a join-request outcome. The
stored tenant notification is the system of record; email delivery is
best-effort and its failures are logged and swallowed by the caller.
*/
type EmailService struct {
	enabled   bool
	fromEmail string
	client    *sendgrid.Client
}

func NewEmailService(apiKey, fromEmail string, enabled bool) *EmailService {
	return &EmailService{
		enabled:   enabled && apiKey != "" && fromEmail != "",
		fromEmail: fromEmail,
		client:    sendgrid.NewSendClient(apiKey),
	}
}

func (s *EmailService) Enabled() bool {
	return s.enabled
}

func (s *EmailService) SendJoinOutcome(tenantEmail, propertyName, status string) error {
	from := mail.NewEmail("Tenancy Updates", s.fromEmail)
	to := mail.NewEmail("", tenantEmail)

	verb := "accepted"
	if status == models.OutcomeRejected {
		verb = "rejected"
	}

	subject := fmt.Sprintf("Your join request for %s was %s", propertyName, verb)
	plainTextContent := fmt.Sprintf("Your request to join %s has been %s.", propertyName, verb)
	htmlContent := fmt.Sprintf(outcomeEmailHTML, propertyName, verb)

	msg := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	_, err := s.client.Send(msg)
	return err
}
