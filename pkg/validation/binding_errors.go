package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps bound struct field names to form field names and display
// labels.
var fieldLabels = map[string][2]string{
	"Name":    {FieldName, "Name"},
	"Email":   {FieldEmail, "Email"},
	"Subject": {FieldSubject, "Subject"},
	"Message": {FieldMessage, "Message"},
}

// FormatBindingErrors converts validator.ValidationErrors produced by gin
// binding into the same per-field messages the predicates produce, so the
// HTTP edge and the form controller speak with one voice.
func FormatBindingErrors(err error) FieldErrors {
	out := FieldErrors{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error (e.g. malformed JSON)
		out["form"] = "Invalid request body"
		return out
	}

	for _, e := range validationErrors {
		labels, known := fieldLabels[e.StructField()]
		if !known {
			continue
		}
		out[labels[0]] = formatSingleError(labels[1], e)
	}
	if len(out) == 0 {
		out["form"] = "Invalid request body"
	}
	return out
}

// formatSingleError formats a single binding error to a user-friendly message
func formatSingleError(label string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return "Please enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", label, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
