package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-contact-form/internal/domain"
	"go-contact-form/internal/usecase"
	"go-contact-form/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockSender) IsConfigured() bool {
	return m.Called().Bool(0)
}

func TestSendContactMessage(t *testing.T) {
	t.Run("Should trim fields before sending", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("IsConfigured").Return(true)
		sender.On("Send", mock.Anything, domain.ContactMessage{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Subject: "Hello there",
			Message: "A long enough message body.",
		}).Return(nil)

		uc := usecase.NewContactUsecase(sender)
		err := uc.SendContactMessage(context.Background(), &domain.ContactMessage{
			Name:    "  Jane Doe  ",
			Email:   " jane@example.com ",
			Subject: "\tHello there\n",
			Message: "  A long enough message body.  ",
		})

		assert.NoError(t, err)
		sender.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Should block invalid input without sending", func(t *testing.T) {
		sender := new(MockSender)
		uc := usecase.NewContactUsecase(sender)

		err := uc.SendContactMessage(context.Background(), &domain.ContactMessage{
			Name:    "A",
			Email:   "not-an-email",
			Subject: "Hello there",
			Message: "Hello",
		})

		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Name must be at least 2 characters", vErr.Fields[validation.FieldName])
		assert.Equal(t, "Please enter a valid email address", vErr.Fields[validation.FieldEmail])
		assert.Equal(t, "Message must be at least 10 characters", vErr.Fields[validation.FieldMessage])
		sender.AssertNotCalled(t, "Send")
	})

	t.Run("Should fail when sender is not configured", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("IsConfigured").Return(false)

		uc := usecase.NewContactUsecase(sender)
		err := uc.SendContactMessage(context.Background(), &domain.ContactMessage{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Subject: "Hello there",
			Message: "A long enough message body.",
		})

		assert.ErrorIs(t, err, domain.ErrSenderNotConfigured)
		sender.AssertNotCalled(t, "Send")
	})

	t.Run("Should wrap sender failure", func(t *testing.T) {
		sendErr := errors.New("endpoint unreachable")
		sender := new(MockSender)
		sender.On("IsConfigured").Return(true)
		sender.On("Send", mock.Anything, mock.Anything).Return(sendErr)

		uc := usecase.NewContactUsecase(sender)
		err := uc.SendContactMessage(context.Background(), &domain.ContactMessage{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Subject: "Hello there",
			Message: "A long enough message body.",
		})

		assert.ErrorIs(t, err, sendErr)
	})

	t.Run("Should strip markup but keep plain text intact", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("IsConfigured").Return(true)
		sender.On("Send", mock.Anything, mock.AnythingOfType("domain.ContactMessage")).Return(nil).Run(func(args mock.Arguments) {
			sent := args.Get(1).(domain.ContactMessage)
			assert.Equal(t, "Tom & Jerry", sent.Name)
			assert.Equal(t, "Hello there friend", sent.Subject)
			assert.Equal(t, "We'd love to hear more about this.", sent.Message)
		})

		uc := usecase.NewContactUsecase(sender)
		err := uc.SendContactMessage(context.Background(), &domain.ContactMessage{
			Name:    "Tom & Jerry",
			Email:   "tom@example.com",
			Subject: "<b>Hello there friend</b>",
			Message: "We'd love to hear <i>more</i> about this.",
		})

		assert.NoError(t, err)
	})
}
