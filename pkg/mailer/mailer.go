// Package mailer sends email over SMTP. The defaults in config point at
// Mailtrap (smtp.mailtrap.io), which is convenient for development; any
// SMTP relay works by overriding SMTP_HOST/SMTP_PORT.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SendEmail sends a single message through the given SMTP relay.
//
// The Content-Type is inferred from the body: plain text unless it contains
// basic HTML tags. Returns an error when any required parameter is empty,
// or when connecting, authenticating or sending fails.
func SendEmail(smtpHost, smtpPort, recipient, sender, subject, body, smtpUser, smtpPass string) error {
	if smtpHost == "" || smtpPort == "" {
		return fmt.Errorf("SMTP host and port must be provided")
	}
	if recipient == "" {
		return fmt.Errorf("recipient email address cannot be empty")
	}
	if sender == "" {
		return fmt.Errorf("sender email address cannot be empty")
	}
	if subject == "" {
		return fmt.Errorf("email subject cannot be empty")
	}
	if smtpUser == "" || smtpPass == "" {
		return fmt.Errorf("SMTP username and password must be provided")
	}

	contentType := "text/plain; charset=UTF-8"
	if strings.Contains(strings.ToLower(body), "<html>") || strings.Contains(strings.ToLower(body), "<p>") {
		contentType = "text/html; charset=UTF-8"
	}

	message := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: %s\r\n"+
		"\r\n"+
		"%s\r\n", recipient, sender, subject, contentType, body))

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, sender, []string{recipient}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
