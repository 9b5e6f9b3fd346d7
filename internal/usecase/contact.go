package usecase

import (
	"context"
	"errors"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

var contactValidator = validation.New()

// ValidateSubmission checks that name, email and message are all present.
// A field counts as present only when it is a non-empty string; nil, missing
// and non-string values are treated as absent, so a nil input reports all
// three fields missing.
func ValidateSubmission(input map[string]any) (*domain.ContactSubmission, error) {
	sub := &domain.ContactSubmission{
		Name:    stringField(input, "name"),
		Email:   stringField(input, "email"),
		Message: stringField(input, "message"),
	}

	if err := contactValidator.Struct(sub); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, err
		}
		return nil, &domain.MissingFieldsError{Fields: validation.MissingFields(err)}
	}
	return sub, nil
}

func stringField(input map[string]any, key string) string {
	s, _ := input[key].(string)
	return s
}

type contactUsecase struct {
	sender    domain.MessageSender
	recipient string
}

// NewContactUsecase creates a new contact usecase. sender may be nil, in which
// case valid submissions are acknowledged without any dispatch.
func NewContactUsecase(sender domain.MessageSender, recipient string) domain.ContactUsecase {
	return &contactUsecase{
		sender:    sender,
		recipient: recipient,
	}
}

// Submit validates the record and hands valid submissions to the sender.
// Delivery failures are logged and do not fail the submission.
func (uc *contactUsecase) Submit(ctx context.Context, input map[string]any) (*domain.ContactSubmission, error) {
	sub, err := ValidateSubmission(input)
	if err != nil {
		return nil, err
	}

	if uc.sender == nil {
		return sub, nil
	}

	subject, body, err := email.ComposeContactEmail(email.ContactEmailData{
		SenderName:  sub.Name,
		SenderEmail: sub.Email,
		Message:     sub.Message,
	})
	if err != nil {
		logger.Log.WarnContext(ctx, "contact email compose failed", "error", err)
		return sub, nil
	}

	if err := uc.sender.Send(ctx, uc.recipient, subject, body); err != nil {
		logger.Log.WarnContext(ctx, "contact email delivery failed", "error", err)
	}
	return sub, nil
}
