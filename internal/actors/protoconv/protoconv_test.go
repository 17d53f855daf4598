package protoconv

import (
	"testing"
	"time"

	"github.com/chatting/chatting/internal/core/model"
	pb "github.com/chatting/chatting/pkg/sdk/v1"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestUserToProto(t *testing.T) {
	id := uuid.MustParse("018e0a4c-5b9e-7c4a-9d2f-3b3e9e2a13d5")
	created := time.Date(2024, 3, 1, 12, 0, 0, 123456000, time.UTC)
	user := &model.User{ID: id, Name: "Alice", CreatedAt: created, UpdatedAt: created.Add(time.Second)}

	got := UserToProto(user)
	assert.Equal(t, "018e0a4c-5b9e-7c4a-9d2f-3b3e9e2a13d5", got.GetId().GetId())
	assert.Equal(t, "Alice", got.GetName())
	assert.Equal(t, created.Unix(), got.GetCreatedAt().GetSeconds())
	assert.EqualValues(t, 123456000, got.GetCreatedAt().GetNanos())
	assert.Equal(t, created.Add(time.Second).Unix(), got.GetUpdatedAt().GetSeconds())

	assert.Nil(t, UserToProto(nil))
}

func TestUserFromProto(t *testing.T) {
	now := timestamppb.New(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name        string
		input       *pb.User
		expectedErr assert.ErrorAssertionFunc
	}{
		{
			name:  "valid",
			input: &pb.User{Id: &pb.UserId{Id: "018e0a4c-5b9e-7c4a-9d2f-3b3e9e2a13d5"}, Name: "A", CreatedAt: now, UpdatedAt: now},
		},
		{
			name:        "missing id",
			input:       &pb.User{Name: "A", CreatedAt: now, UpdatedAt: now},
			expectedErr: assert.Error,
		},
		{
			name:        "bad id",
			input:       &pb.User{Id: &pb.UserId{Id: "nope"}, CreatedAt: now, UpdatedAt: now},
			expectedErr: assert.Error,
		},
		{
			name:        "missing timestamp",
			input:       &pb.User{Id: &pb.UserId{Id: "018e0a4c-5b9e-7c4a-9d2f-3b3e9e2a13d5"}, UpdatedAt: now},
			expectedErr: assert.Error,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := UserFromProto(test.input)
			if test.expectedErr != nil {
				test.expectedErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.input.GetName(), got.Name)
			assert.Equal(t, now.AsTime(), got.CreatedAt)
		})
	}
}

func TestEventRoundTrip(t *testing.T) {
	id := uuid.MustParse("018e0a4c-5b9e-7c4a-9d2f-3b3e9e2a13d5")
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	event := model.UserEvent{ID: "ev", Before: &model.User{ID: id, Name: "a", CreatedAt: at, UpdatedAt: at}}

	got, err := EventFromProto("ev", EventToProto(event))
	require.NoError(t, err)
	assert.Equal(t, event, *got)
	assert.Equal(t, "delete", got.Op())
}
