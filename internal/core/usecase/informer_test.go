package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chatting/chatting/internal/core/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSender is a mock implementation of the Sender interface.
type MockSender struct {
	t                  *testing.T
	called             bool
	UserEventAssertion func(t *testing.T, userEvent model.UserEvent)
	SendError          error
}

func (m *MockSender) Send(ctx context.Context, userEvent model.UserEvent) error {
	m.called = true
	if m.UserEventAssertion != nil {
		m.UserEventAssertion(m.t, userEvent)
	}
	return m.SendError
}

func TestInformer_Handle(t *testing.T) {
	sendingError := errors.New("sending error")
	id := uuid.MustParse("018e0a4c-5b9e-7c4a-9d2f-3b3e9e2a13d5")
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name               string
		userEvent          model.UserEvent
		userEventAssertion func(t *testing.T, userEvent model.UserEvent)
		sendError          error
		callsSendMethod    bool
		expectedError      func(t *testing.T, err error)
	}{
		{
			name: "rename",
			userEvent: model.UserEvent{
				ID:     "1",
				Before: &model.User{ID: id, Name: "name1", CreatedAt: created},
				After:  &model.User{ID: id, Name: "name2", CreatedAt: created},
			},
			userEventAssertion: func(t *testing.T, userEvent model.UserEvent) {
				require.NotNil(t, userEvent.Before)
				require.NotNil(t, userEvent.After)
				require.Equal(t, "1", userEvent.ID)
				require.Equal(t, "name1", userEvent.Before.Name)
				require.Equal(t, "name2", userEvent.After.Name)
			},
			callsSendMethod: true,
		},
		{
			name: "user creation",
			userEvent: model.UserEvent{
				ID:    "1",
				After: &model.User{ID: id, Name: "name2"},
			},
			userEventAssertion: func(t *testing.T, userEvent model.UserEvent) {
				require.Nil(t, userEvent.Before)
				require.NotNil(t, userEvent.After)
				require.Equal(t, "create", userEvent.Op())
			},
			callsSendMethod: true,
		},
		{
			name: "user deletion",
			userEvent: model.UserEvent{
				ID:     "1",
				Before: &model.User{ID: id, Name: "name1"},
			},
			userEventAssertion: func(t *testing.T, userEvent model.UserEvent) {
				require.Nil(t, userEvent.After)
				require.NotNil(t, userEvent.Before)
				require.Equal(t, "delete", userEvent.Op())
			},
			callsSendMethod: true,
		},
		{
			name: "rename to the same name should not send event",
			userEvent: model.UserEvent{
				ID:     "1",
				Before: &model.User{ID: id, Name: "name1", CreatedAt: created, UpdatedAt: created},
				After:  &model.User{ID: id, Name: "name1", CreatedAt: created, UpdatedAt: created.Add(time.Second)},
			},
			callsSendMethod: false,
		},
		{
			name:      "error in sending event triggers error in handler",
			userEvent: model.UserEvent{ID: "1", Before: &model.User{Name: "name1"}, After: &model.User{Name: "name2"}},
			sendError: sendingError,
			expectedError: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, sendingError)
			},
			callsSendMethod: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sender := &MockSender{
				t:                  t,
				UserEventAssertion: test.userEventAssertion,
				SendError:          test.sendError,
			}
			informer := NewInformer(sender)
			err := informer.Handle(context.Background(), test.userEvent)
			if test.expectedError != nil {
				test.expectedError(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, test.callsSendMethod, sender.called)
		})
	}
}
