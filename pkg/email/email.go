package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/mail"
	"strings"
	"unicode"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

// DeliveryError wraps a failure to hand a message to the delivery channel.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver to %s: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Portfolio Message</title>
</head>
<body>
    <h1>New message from your portfolio</h1>
    <p><strong>From:</strong> {{.SenderName}} ({{.SenderEmail}})</p>
    <div style="border-left: 4px solid #0066cc; padding: 12px;">{{.Message}}</div>
    <p style="color: #888; font-size: 12px;">Reply to: {{.SenderEmail}}</p>
</body>
</html>`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

// ComposeContactEmail renders the subject and HTML body for a contact message.
// The submitter's values are HTML-escaped by the template, and control
// characters are stripped from the name before it goes into the subject.
func ComposeContactEmail(data ContactEmailData) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return fmt.Sprintf("Portfolio contact: %s", headerSafe(data.SenderName)), buf.String(), nil
}

// headerSafe drops control characters (CR and LF included) so the value
// cannot start a new header line.
func headerSafe(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s))
}

// LogSender records messages in the log instead of delivering them.
// It stands in for a real mail or queue provider.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, recipient, subject, body string) error {
	if _, err := mail.ParseAddress(recipient); err != nil {
		return &DeliveryError{Recipient: recipient, Err: err}
	}
	s.logger.InfoContext(ctx, "contact message accepted for delivery",
		"recipient", recipient,
		"subject", subject,
		"body_bytes", len(body),
	)
	return nil
}
