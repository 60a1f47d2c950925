package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) ticketURL(ticketID uint) string {
	return fmt.Sprintf("%s/tickets/%d", s.config.BaseURL, ticketID)
}

func (s *SMTPEmailService) SendTicketCreatedEmail(to string, ticketID uint, title, priority string) error {
	url := s.ticketURL(ticketID)

	subject := fmt.Sprintf("[Ticket #%d] Received: %s", ticketID, title)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>We received your ticket</h2>
			<p><strong>#%d %s</strong> (priority: %s)</p>
			<p>Our support team will get back to you as soon as possible.</p>
			<p><a href="%s">View ticket</a></p>
		</body>
		</html>
	`, ticketID, title, priority, url)

	plainBody := fmt.Sprintf(`
We received your ticket.

#%d %s (priority: %s)

Our support team will get back to you as soon as possible.

View it here: %s
	`, ticketID, title, priority, url)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketAssignedEmail(to string, ticketID uint, title, assigneeName string) error {
	url := s.ticketURL(ticketID)

	subject := fmt.Sprintf("[Ticket #%d] Assigned to %s", ticketID, assigneeName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your ticket has been assigned</h2>
			<p><strong>#%d %s</strong> is now being handled by %s.</p>
			<p><a href="%s">View ticket</a></p>
		</body>
		</html>
	`, ticketID, title, assigneeName, url)

	plainBody := fmt.Sprintf(`
Your ticket has been assigned.

#%d %s is now being handled by %s.

View it here: %s
	`, ticketID, title, assigneeName, url)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketStatusChangedEmail(to string, ticketID uint, title, oldStatus, newStatus string) error {
	url := s.ticketURL(ticketID)

	subject := fmt.Sprintf("[Ticket #%d] Status changed to %s", ticketID, newStatus)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket status update</h2>
			<p><strong>#%d %s</strong> moved from %s to %s.</p>
			<p><a href="%s">View ticket</a></p>
		</body>
		</html>
	`, ticketID, title, oldStatus, newStatus, url)

	plainBody := fmt.Sprintf(`
Ticket status update.

#%d %s moved from %s to %s.

View it here: %s
	`, ticketID, title, oldStatus, newStatus, url)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
