package domain

import (
	"context"
	"errors"
	"strings"

	"go-contact-form/pkg/validation"
)

// ContactMessage represents a contact form submission. An instance is only
// handed to a sender after all four fields pass validation; there is no
// partial submission and no persistence beyond the single request.
type ContactMessage struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Subject string `json:"subject" binding:"required,min=3,max=200"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (m ContactMessage) Trimmed() ContactMessage {
	return ContactMessage{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Subject: strings.TrimSpace(m.Subject),
		Message: strings.TrimSpace(m.Message),
	}
}

// Validate runs the per-field rules and collects the failure messages.
func (m ContactMessage) Validate() validation.FieldErrors {
	return validation.Contact(m.Name, m.Email, m.Subject, m.Message)
}

// ValidationError carries the per-field messages for a rejected submission.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	return "contact message failed validation"
}

// ErrSenderNotConfigured is returned when the outbound endpoint URL or its
// bearer token is missing from the environment.
var ErrSenderNotConfigured = errors.New("contact sender is not configured")

// ContactSender delivers a validated contact message to its destination.
type ContactSender interface {
	Send(ctx context.Context, msg ContactMessage) error
	IsConfigured() bool
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage trims, validates and relays a contact form message
	SendContactMessage(ctx context.Context, msg *ContactMessage) error
}
