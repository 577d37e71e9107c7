package form

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-contact-form/internal/domain"
	"go-contact-form/pkg/logger"
	"go-contact-form/pkg/validation"
)

// State is the presentation state of a contact form instance.
//
// idle -> submitting -> success -> idle (after the reset delay)
//                    -> idle            (on failure, fields retained)
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	default:
		return "idle"
	}
}

// DefaultResetDelay is how long the success screen stays before the form
// reverts to its idle, cleared state.
const DefaultResetDelay = 3 * time.Second

// User-facing notification texts. Error details never reach the user; they
// go to the log.
const (
	SuccessNotice = "Your message has been sent successfully!"
	FailureNotice = "Failed to send message. Please try again later."
)

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission has not finished. The caller must not issue a second request.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// ErrValidationFailed is returned when submit was blocked by field errors.
var ErrValidationFailed = errors.New("submission blocked by validation errors")

// Notifier receives transient user-facing notifications (the toast analog).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Controller holds the field values of one contact form, runs validation on
// submit, exposes per-field error messages and drives the submission state.
// It is safe for concurrent use; at most one submission is in flight.
type Controller struct {
	uc         domain.ContactUsecase
	notifier   Notifier
	resetDelay time.Duration

	mu         sync.Mutex
	state      State
	values     domain.ContactMessage
	fieldErrs  validation.FieldErrors
	submitted  bool // a submit was attempted; edits now re-validate per field
	resetTimer *time.Timer
}

// NewController creates a form controller. A non-positive resetDelay falls
// back to DefaultResetDelay.
func NewController(uc domain.ContactUsecase, notifier Notifier, resetDelay time.Duration) *Controller {
	if resetDelay <= 0 {
		resetDelay = DefaultResetDelay
	}
	return &Controller{
		uc:         uc,
		notifier:   notifier,
		resetDelay: resetDelay,
		fieldErrs:  validation.FieldErrors{},
	}
}

// State returns the current presentation state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Values returns a copy of the current field values.
func (c *Controller) Values() domain.ContactMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values
}

// FieldError returns the validation message for a field, or "" when valid.
func (c *Controller) FieldError(field string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fieldErrs[field]
}

// SetField updates one field value. After the first submit attempt, the
// field is re-validated on every edit so its error clears as soon as the
// input becomes valid.
func (c *Controller) SetField(field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch field {
	case validation.FieldName:
		c.values.Name = value
	case validation.FieldEmail:
		c.values.Email = value
	case validation.FieldSubject:
		c.values.Subject = value
	case validation.FieldMessage:
		c.values.Message = value
	default:
		return
	}

	if !c.submitted {
		return
	}
	if ok, msg := validation.ValidateField(field, value); ok {
		delete(c.fieldErrs, field)
	} else {
		c.fieldErrs[field] = msg
	}
}

// Submit validates the current values and, when they pass, relays the message.
// On success the fields are cleared and the form reverts to idle after the
// reset delay. On failure the fields are retained so the user can resubmit
// without retyping.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}
	c.submitted = true

	msg := c.values.Trimmed()
	if errs := msg.Validate(); !errs.Valid() {
		c.fieldErrs = errs
		c.mu.Unlock()
		return ErrValidationFailed
	}
	c.fieldErrs = validation.FieldErrors{}
	c.state = StateSubmitting
	c.mu.Unlock()

	err := c.uc.SendContactMessage(ctx, &msg)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = StateIdle

		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			// The usecase re-checks; surface its verdict inline, no toast.
			c.fieldErrs = vErr.Fields
			return ErrValidationFailed
		}

		logger.Log.Error("Contact form submission failed", "error", err)
		c.notifier.Error(FailureNotice)
		return err
	}

	c.values = domain.ContactMessage{}
	c.state = StateSuccess
	c.notifier.Success(SuccessNotice)
	c.resetTimer = time.AfterFunc(c.resetDelay, c.revert)
	return nil
}

// revert flips success back to idle once the confirmation has been shown.
func (c *Controller) revert() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSuccess {
		c.state = StateIdle
	}
}
