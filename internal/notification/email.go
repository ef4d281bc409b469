// internal/notification/email.go

package notifications

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"sync"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailMessage is one outbound email, already rendered.
type EmailMessage struct {
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

// EmailSender delivers rendered emails.
type EmailSender interface {
	SendEmail(ctx context.Context, msg *EmailMessage) error
}

// SMTPEmailSender implements EmailSender over plain SMTP.
type SMTPEmailSender struct {
	host     string
	port     string
	username string
	password string
	from     string
	fromName string
}

func NewSMTPEmailSender(host, port, username, password, from, fromName string) EmailSender {
	return &SMTPEmailSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

func (s *SMTPEmailSender) SendEmail(ctx context.Context, msg *EmailMessage) error {
	body := msg.HTML
	contentType := "text/html"
	if body == "" {
		body = msg.PlainText
		contentType = "text/plain"
	}

	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", msg.To)
	message += fmt.Sprintf("Subject: %s\r\n", msg.Subject)
	message += "MIME-version: 1.0;\r\n"
	message += fmt.Sprintf("Content-Type: %s; charset=\"UTF-8\";\r\n", contentType)
	message += "\r\n"
	message += body

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.from, []string{msg.To}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendGridEmailSender implements EmailSender using the SendGrid API.
type SendGridEmailSender struct {
	apiKey   string
	from     string
	fromName string
}

func NewSendGridEmailSender(apiKey, from, fromName string) EmailSender {
	return &SendGridEmailSender{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *SendGridEmailSender) SendEmail(ctx context.Context, msg *EmailMessage) error {
	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail(msg.ToName, msg.To)

	message := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainText, msg.HTML)
	client := sendgrid.NewSendClient(s.apiKey)

	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid returned error status: %d", response.StatusCode)
	}
	return nil
}

// MockEmailSender records emails for tests and development.
type MockEmailSender struct {
	mu         sync.Mutex
	SentEmails []EmailMessage
}

func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{SentEmails: make([]EmailMessage, 0)}
}

func (m *MockEmailSender) SendEmail(ctx context.Context, msg *EmailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentEmails = append(m.SentEmails, *msg)
	log.Printf("Mock email to %s: %s", msg.To, msg.Subject)
	return nil
}

func (m *MockEmailSender) Sent() []EmailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EmailMessage, len(m.SentEmails))
	copy(out, m.SentEmails)
	return out
}
