package domain

import (
	"context"
	"strings"
)

// ContactSubmission is a contact form message. It is never stored.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// MissingFieldsError reports that at least one required field was absent.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing fields"
}

// Detail lists the absent fields, for logs only.
func (e *MissingFieldsError) Detail() string {
	return strings.Join(e.Fields, ",")
}

// MessageSender delivers a composed notification to a recipient.
type MessageSender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit validates the raw record and hands valid submissions to the sender.
	Submit(ctx context.Context, input map[string]any) (*ContactSubmission, error)
}
