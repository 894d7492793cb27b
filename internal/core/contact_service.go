package core

import (
	"context"
	"fmt"

	"github.com/example/fitplanner-backend/internal/config"
	"github.com/example/fitplanner-backend/internal/models"
	"github.com/example/fitplanner-backend/pkg/mailer"
)

// SendMailFunc matches mailer.SendEmail; injectable for tests.
type SendMailFunc func(smtpHost, smtpPort, recipient, sender, subject, body, smtpUser, smtpPass string) error

// contactService relays contact-form submissions to the configured inbox.
type contactService struct {
	cfg      *config.Config
	sendMail SendMailFunc
}

// NewContactService creates a new ContactService instance.
func NewContactService(cfg *config.Config) ContactService {
	return &contactService{cfg: cfg, sendMail: mailer.SendEmail}
}

// Send formats the submission and delivers it by SMTP. The visitor's address
// goes in the body, not the envelope, so the relay only ever sends from the
// configured sender.
func (s *contactService) Send(ctx context.Context, req models.ContactRequest) error {
	body := fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message)
	subject := "Contact form: " + req.Subject

	if err := s.sendMail(
		s.cfg.SMTPHost,
		s.cfg.SMTPPort,
		s.cfg.ContactRecipient,
		s.cfg.ContactSender,
		subject,
		body,
		s.cfg.SMTPUser,
		s.cfg.SMTPPass,
	); err != nil {
		return fmt.Errorf("failed to relay contact message from '%s': %w", req.Email, err)
	}
	return nil
}
