package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Service sends transactional email to students and trainers.
type Service interface {
	SendStudentInvite(to, studentName, trainerName, portalURL string) error
	SendWelcomeEmail(to, trainerName string) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (s *SMTPEmailService) SendStudentInvite(to, studentName, trainerName, portalURL string) error {
	subject := fmt.Sprintf("%s invited you to their training portal", trainerName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hi %s,</h2>
			<p>%s has set up a training portal for you. View your workouts here:</p>
			<p><a href="%s">Open your portal</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
		</body>
		</html>
	`, studentName, trainerName, portalURL, portalURL)

	plainBody := fmt.Sprintf(`
Hi %s,

%s has set up a training portal for you. View your workouts here:
%s
	`, studentName, trainerName, portalURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendWelcomeEmail(to, trainerName string) error {
	subject := "Welcome to CoachDesk"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>Your CoachDesk account is ready. Add your first student to get started.</p>
		</body>
		</html>
	`, trainerName)

	plainBody := fmt.Sprintf(`
Welcome, %s!

Your CoachDesk account is ready. Add your first student to get started.
	`, trainerName)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

// NoopEmailService discards email. Used in development and tests.
type NoopEmailService struct{}

func (NoopEmailService) SendStudentInvite(to, studentName, trainerName, portalURL string) error {
	return nil
}

func (NoopEmailService) SendWelcomeEmail(to, trainerName string) error {
	return nil
}
