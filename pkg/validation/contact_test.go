package validation_test

import (
	"strings"
	"testing"

	"go-contact-form/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		message string
	}{
		{"empty", "", false, "Name is required"},
		{"whitespace only", "   ", false, "Name is required"},
		{"single character", "A", false, "Name must be at least 2 characters"},
		{"minimum length", "Jo", true, ""},
		{"padded valid", "  Jane Doe  ", true, ""},
		{"too long", strings.Repeat("a", 101), false, "Name must be less than 100 characters"},
		{"max length", strings.Repeat("a", 100), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := validation.ValidateName(tt.input)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		message string
	}{
		{"empty", "", false, "Email is required"},
		{"not an email", "not-an-email", false, "Please enter a valid email address"},
		{"missing domain", "jane@", false, "Please enter a valid email address"},
		{"valid", "jane@example.com", true, ""},
		{"padded valid", "  jane@example.com  ", true, ""},
		{"too long", strings.Repeat("a", 250) + "@example.com", false, "Email must be less than 255 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := validation.ValidateEmail(tt.input)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestValidateSubject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		message string
	}{
		{"empty", "", false, "Subject is required"},
		{"too short", "Hi", false, "Subject must be at least 3 characters"},
		{"minimum length", "Hey", true, ""},
		{"too long", strings.Repeat("s", 201), false, "Subject must be less than 200 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := validation.ValidateSubject(tt.input)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestValidateMessage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		message string
	}{
		{"empty", "", false, "Message is required"},
		{"five characters", "Hello", false, "Message must be at least 10 characters"},
		{"minimum length", "Hello you!", true, ""},
		{"too long", strings.Repeat("m", 2001), false, "Message must be less than 2000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := validation.ValidateMessage(tt.input)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestContact(t *testing.T) {
	t.Run("all fields empty collects every message", func(t *testing.T) {
		errs := validation.Contact("", "", "", "")
		assert.False(t, errs.Valid())
		assert.Len(t, errs, 4)
		assert.Equal(t, "Name is required", errs[validation.FieldName])
		assert.Equal(t, "Email is required", errs[validation.FieldEmail])
		assert.Equal(t, "Subject is required", errs[validation.FieldSubject])
		assert.Equal(t, "Message is required", errs[validation.FieldMessage])
	})

	t.Run("valid input passes", func(t *testing.T) {
		errs := validation.Contact("Jane Doe", "jane@example.com", "Hello there", "A long enough message.")
		assert.True(t, errs.Valid())
	})

	t.Run("single invalid field is the only entry", func(t *testing.T) {
		errs := validation.Contact("Jane Doe", "not-an-email", "Hello there", "A long enough message.")
		assert.Len(t, errs, 1)
		assert.Equal(t, "Please enter a valid email address", errs[validation.FieldEmail])
	})
}

func TestValidateField(t *testing.T) {
	ok, msg := validation.ValidateField(validation.FieldEmail, "not-an-email")
	assert.False(t, ok)
	assert.Equal(t, "Please enter a valid email address", msg)

	ok, msg = validation.ValidateField("unknown", "")
	assert.True(t, ok)
	assert.Empty(t, msg)
}
