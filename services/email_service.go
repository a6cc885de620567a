package services

import (
	"fmt"
	"strconv"

	"nannyhub/config"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService returns an error when SMTP is not configured; callers
// treat that as "run without notifications".
func NewEmailService(cfg *config.Config) (*EmailService, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	return &EmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}, nil
}

func (s *EmailService) SendContactRequestEmail(toEmail, familyEmail, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "New contact request on NannyHub")

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>You have a new contact request</h2>
    <p>A family (%s) would like to get in touch:</p>
    <blockquote style="border-left: 3px solid #f97316; padding-left: 12px; color: #555;">%s</blockquote>
    <p>Log in to NannyHub to reply.</p>
    <p style="color: #666; font-size: 12px;">This is an automated email. Please do not reply.</p>
</body>
</html>
	`, familyEmail, message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
