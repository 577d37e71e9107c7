package usecase

import (
	"context"
	"fmt"
	"html"

	"go-contact-form/internal/domain"

	"github.com/microcosm-cc/bluemonday"
)

type contactUsecase struct {
	sender   domain.ContactSender
	sanitize *bluemonday.Policy
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender domain.ContactSender) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		sanitize: bluemonday.StrictPolicy(),
	}
}

// SendContactMessage validates the contact message and relays it
func (uc *contactUsecase) SendContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	clean := msg.Trimmed()

	// Validate the trimmed input (the HTTP edge already enforces the same
	// bounds via binding tags, but direct callers go through here unchecked)
	if errs := clean.Validate(); !errs.Valid() {
		return &domain.ValidationError{Fields: errs}
	}

	if !uc.sender.IsConfigured() {
		return domain.ErrSenderNotConfigured
	}

	// Strip any markup before the payload leaves the process
	clean.Name = uc.stripHTML(clean.Name)
	clean.Subject = uc.stripHTML(clean.Subject)
	clean.Message = uc.stripHTML(clean.Message)

	if err := uc.sender.Send(ctx, clean); err != nil {
		return fmt.Errorf("failed to send contact message: %w", err)
	}

	return nil
}

// stripHTML removes tags and restores entities, keeping plain text intact
// (bluemonday escapes characters like apostrophes after stripping).
func (uc *contactUsecase) stripHTML(s string) string {
	return html.UnescapeString(uc.sanitize.Sanitize(s))
}
