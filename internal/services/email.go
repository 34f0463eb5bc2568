package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/EsmaelAwad/fastapi-social-media-app/internal/config"
)

// EmailService sends best-effort notification mail. When SMTP is not
// configured every send is a logged no-op; account creation never
// fails because of mail.
type EmailService struct {
	config  *config.EmailConfig
	baseURL string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config:  &cfg.Email,
		baseURL: cfg.Server.BaseURL,
	}
}

func (s *EmailService) Enabled() bool {
	return s.config.FromEmail != "" && s.config.SMTPPassword != ""
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	if !s.Enabled() {
		log.Printf("smtp not configured, skipping mail to %s", to)
		return nil
	}

	message := []byte(fmt.Sprintf("To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-version: 1.0;\r\n"+
		"Content-Type: text/html; charset=\"UTF-8\";\r\n\r\n"+
		"%s\r\n", to, subject, body))

	auth := smtp.PlainAuth("", s.config.FromEmail, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(s.config.SMTPHost+":"+s.config.SMTPPort, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		log.Printf("mail send failed: %v", err)
		return err
	}

	log.Printf("mail sent to %s", to)
	return nil
}

// SendWelcome greets a freshly created account.
func (s *EmailService) SendWelcome(to string) error {
	body := fmt.Sprintf("<p>Welcome to %s!</p><p>Your account is ready: log in at %s/login.</p>",
		s.config.FromName, s.baseURL)
	return s.SendEmail(to, "Welcome to "+s.config.FromName, body)
}
