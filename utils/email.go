// utils/email.go
package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService handles sending emails using SendGrid
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance.
// When no API key is configured, mail is disabled and sends become no-ops.
func NewEmailService() *EmailService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY is not set. Outgoing mail is disabled.")
		return &EmailService{}
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toName, toEmail, subject, htmlContent string) error {
	if es.client == nil {
		return nil
	}

	from := mail.NewEmail("Empress", es.sender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	response, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("email rejected with status %d", response.StatusCode)
	}
	return nil
}

// SendWelcomeEmail sends a welcome email to a newly signed-up customer
func (es *EmailService) SendWelcomeEmail(toName, toEmail string) error {
	subject := "Welcome to Empress"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Welcome to Empress! Your account has been created and you can start shopping right away.",
		toName,
	)
	return es.SendEmail(toName, toEmail, subject, htmlContent)
}
