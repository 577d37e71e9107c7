package form_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"go-contact-form/internal/domain"
	"go-contact-form/internal/form"
	"go-contact-form/pkg/logger"
	"go-contact-form/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// stubUsecase counts calls and can be made to block or fail.
type stubUsecase struct {
	mu    sync.Mutex
	calls int
	last  domain.ContactMessage
	err   error
	block chan struct{}
}

func (s *stubUsecase) SendContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	s.mu.Lock()
	s.calls++
	s.last = *msg
	block := s.block
	err := s.err
	s.mu.Unlock()
	if block != nil {
		<-block
	}
	return err
}

func (s *stubUsecase) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubUsecase) lastMessage() domain.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// fakeNotifier records toasts.
type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *fakeNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *fakeNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, msg)
}

func fillValid(c *form.Controller) {
	c.SetField(validation.FieldName, "Jane Doe")
	c.SetField(validation.FieldEmail, "jane@example.com")
	c.SetField(validation.FieldSubject, "Hello there")
	c.SetField(validation.FieldMessage, "A long enough message body.")
}

func TestSubmitBlockedByValidation(t *testing.T) {
	uc := &stubUsecase{}
	notifier := &fakeNotifier{}
	c := form.NewController(uc, notifier, 10*time.Millisecond)

	fillValid(c)
	c.SetField(validation.FieldName, "A")

	err := c.Submit(context.Background())

	assert.ErrorIs(t, err, form.ErrValidationFailed)
	assert.Equal(t, "Name must be at least 2 characters", c.FieldError(validation.FieldName))
	assert.Empty(t, c.FieldError(validation.FieldEmail))
	assert.Equal(t, 0, uc.callCount())
	assert.Equal(t, form.StateIdle, c.State())
	assert.Empty(t, notifier.failures) // validation errors are inline, not toasts
}

func TestSubmitSuccessClearsAndReverts(t *testing.T) {
	uc := &stubUsecase{}
	notifier := &fakeNotifier{}
	c := form.NewController(uc, notifier, 20*time.Millisecond)

	fillValid(c)
	err := c.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, form.StateSuccess, c.State())
	assert.Equal(t, domain.ContactMessage{}, c.Values())
	assert.Equal(t, []string{form.SuccessNotice}, notifier.successes)
	assert.Equal(t, 1, uc.callCount())

	// The success screen reverts to idle on its own after the reset delay
	assert.Eventually(t, func() bool {
		return c.State() == form.StateIdle
	}, time.Second, 5*time.Millisecond)
}

func TestSubmitSendsTrimmedValues(t *testing.T) {
	uc := &stubUsecase{}
	c := form.NewController(uc, &fakeNotifier{}, 10*time.Millisecond)

	c.SetField(validation.FieldName, "  Jane Doe  ")
	c.SetField(validation.FieldEmail, " jane@example.com ")
	c.SetField(validation.FieldSubject, "Hello there")
	c.SetField(validation.FieldMessage, " A long enough message body. ")

	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, domain.ContactMessage{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello there",
		Message: "A long enough message body.",
	}, uc.lastMessage())
}

func TestSubmitFailureRetainsFields(t *testing.T) {
	uc := &stubUsecase{err: errors.New("endpoint unreachable")}
	notifier := &fakeNotifier{}
	c := form.NewController(uc, notifier, 10*time.Millisecond)

	fillValid(c)
	err := c.Submit(context.Background())

	assert.Error(t, err)
	assert.Equal(t, form.StateIdle, c.State())
	// Fields stay so the user can retry without retyping
	assert.Equal(t, "Jane Doe", c.Values().Name)
	assert.Equal(t, "A long enough message body.", c.Values().Message)
	assert.Equal(t, []string{form.FailureNotice}, notifier.failures)

	// A manual retry works once the usecase recovers
	uc.mu.Lock()
	uc.err = nil
	uc.mu.Unlock()
	assert.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, 2, uc.callCount())
}

func TestSubmitWhileInFlight(t *testing.T) {
	uc := &stubUsecase{block: make(chan struct{})}
	c := form.NewController(uc, &fakeNotifier{}, 10*time.Millisecond)

	fillValid(c)

	done := make(chan error, 1)
	go func() {
		done <- c.Submit(context.Background())
	}()

	require.Eventually(t, func() bool {
		return c.State() == form.StateSubmitting
	}, time.Second, time.Millisecond)

	// The submit control is busy; a second attempt must not issue a request
	err := c.Submit(context.Background())
	assert.ErrorIs(t, err, form.ErrSubmissionInFlight)

	close(uc.block)
	assert.NoError(t, <-done)
	assert.Equal(t, 1, uc.callCount())
}

func TestFieldRevalidationAfterFirstSubmit(t *testing.T) {
	uc := &stubUsecase{}
	c := form.NewController(uc, &fakeNotifier{}, 10*time.Millisecond)

	// Before any submit attempt, edits do not surface errors
	c.SetField(validation.FieldEmail, "not-an-email")
	assert.Empty(t, c.FieldError(validation.FieldEmail))

	fillValid(c)
	c.SetField(validation.FieldEmail, "not-an-email")
	require.ErrorIs(t, c.Submit(context.Background()), form.ErrValidationFailed)
	assert.Equal(t, "Please enter a valid email address", c.FieldError(validation.FieldEmail))

	// Fixing the field clears its error immediately
	c.SetField(validation.FieldEmail, "jane@example.com")
	assert.Empty(t, c.FieldError(validation.FieldEmail))

	// Breaking it again brings the message back
	c.SetField(validation.FieldEmail, "jane@")
	assert.Equal(t, "Please enter a valid email address", c.FieldError(validation.FieldEmail))
}
