package services

import (
	"fmt"
	"log"

	"github.com/Nitin6404/sryzen-backend/configs"

	"gopkg.in/gomail.v2"
)

// Mailer sends account mail. AuthService only needs these two methods,
// so tests stub it instead of talking SMTP.
type Mailer interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
}

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(cfg *configs.Config) *EmailService {
	if cfg.SMTPHost == "" {
		return &EmailService{from: cfg.MailFrom}
	}
	return &EmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
	}
}

func (s *EmailService) SendVerificationEmail(to, token string) error {
	if s.dialer == nil {
		log.Println("smtp not configured, skipping verification email for", to)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Verify your Sryzen account")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Welcome to Sryzen!</p><p>Your verification token is <b>%s</b>.</p>", token))

	return s.dialer.DialAndSend(m)
}

func (s *EmailService) SendPasswordResetEmail(to, token string) error {
	if s.dialer == nil {
		log.Println("smtp not configured, skipping password reset email for", to)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Reset your Sryzen password")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>A password reset was requested for your account.</p>"+
			"<p>Your reset token is <b>%s</b>. It expires in one hour.</p>"+
			"<p>If you didn't request this, you can ignore this email.</p>", token))

	return s.dialer.DialAndSend(m)
}
