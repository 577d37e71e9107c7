package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field length bounds for the contact form. The HTTP layer enforces the same
// bounds through gin binding tags; these predicates are the single source of
// the user-facing messages.
const (
	NameMin    = 2
	NameMax    = 100
	EmailMax   = 255
	SubjectMin = 3
	SubjectMax = 200
	MessageMin = 10
	MessageMax = 2000
)

// Canonical field names, shared by the form controller and the HTTP layer.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// validate is only used for the email-shape rule; everything else is a plain
// length check after trimming.
var validate = validator.New()

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

// Valid reports whether no field failed validation.
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// ValidateName checks the name field and returns a verdict plus message.
func ValidateName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return false, "Name is required"
	case utf8.RuneCountInString(name) < NameMin:
		return false, fmt.Sprintf("Name must be at least %d characters", NameMin)
	case utf8.RuneCountInString(name) > NameMax:
		return false, fmt.Sprintf("Name must be less than %d characters", NameMax)
	}
	return true, ""
}

// ValidateEmail checks the email field and returns a verdict plus message.
func ValidateEmail(email string) (bool, string) {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return false, "Email is required"
	case utf8.RuneCountInString(email) > EmailMax:
		return false, fmt.Sprintf("Email must be less than %d characters", EmailMax)
	case validate.Var(email, "email") != nil:
		return false, "Please enter a valid email address"
	}
	return true, ""
}

// ValidateSubject checks the subject field and returns a verdict plus message.
func ValidateSubject(subject string) (bool, string) {
	subject = strings.TrimSpace(subject)
	switch {
	case subject == "":
		return false, "Subject is required"
	case utf8.RuneCountInString(subject) < SubjectMin:
		return false, fmt.Sprintf("Subject must be at least %d characters", SubjectMin)
	case utf8.RuneCountInString(subject) > SubjectMax:
		return false, fmt.Sprintf("Subject must be less than %d characters", SubjectMax)
	}
	return true, ""
}

// ValidateMessage checks the message field and returns a verdict plus message.
func ValidateMessage(message string) (bool, string) {
	message = strings.TrimSpace(message)
	switch {
	case message == "":
		return false, "Message is required"
	case utf8.RuneCountInString(message) < MessageMin:
		return false, fmt.Sprintf("Message must be at least %d characters", MessageMin)
	case utf8.RuneCountInString(message) > MessageMax:
		return false, fmt.Sprintf("Message must be less than %d characters", MessageMax)
	}
	return true, ""
}

// fieldPredicates drives per-field re-validation as the user edits.
var fieldPredicates = map[string]func(string) (bool, string){
	FieldName:    ValidateName,
	FieldEmail:   ValidateEmail,
	FieldSubject: ValidateSubject,
	FieldMessage: ValidateMessage,
}

// ValidateField runs the predicate for a single named field.
// Unknown fields are treated as valid.
func ValidateField(field, value string) (bool, string) {
	if pred, ok := fieldPredicates[field]; ok {
		return pred(value)
	}
	return true, ""
}

// Contact validates all four contact form fields and collects the failures.
func Contact(name, email, subject, message string) FieldErrors {
	errs := FieldErrors{}
	if ok, msg := ValidateName(name); !ok {
		errs[FieldName] = msg
	}
	if ok, msg := ValidateEmail(email); !ok {
		errs[FieldEmail] = msg
	}
	if ok, msg := ValidateSubject(subject); !ok {
		errs[FieldSubject] = msg
	}
	if ok, msg := ValidateMessage(message); !ok {
		errs[FieldMessage] = msg
	}
	return errs
}
