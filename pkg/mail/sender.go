package mail

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/mail.v2"
)

//go:generate mockgen -source=sender.go -destination=sender_mock.go -package=mail

var ErrNoRecipients = errors.New("mail has no recipients")

type Attachment struct {
	Name    string
	Content io.Reader
}

type Message struct {
	To          []string
	Subject     string
	HTMLBody    string
	TextBody    string
	Attachments []Attachment
}

type Sender interface {
	Send(msg Message) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type Config struct {
	Host     string
	Port     int
	Email    string
	Password string
}

type sender struct {
	email  string
	dialer Dialer
}

func (s *sender) Send(msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	m := mail.NewMessage()

	m.SetHeader("From", s.email)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBody("text/html", msg.HTMLBody)
	default:
		m.SetBody("text/plain", msg.TextBody)
	}

	for _, attachment := range msg.Attachments {
		if attachment.Content == nil || attachment.Name == "" {
			continue
		}
		content := attachment.Content
		m.Attach(attachment.Name, mail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, content)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("Sender.Send: %w", err)
	}
	return nil
}

func NewMailSender(cfg Config) Sender {
	return &sender{
		email:  cfg.Email,
		dialer: mail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password),
	}
}
