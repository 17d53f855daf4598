// Package protoconv converts between domain values and their wire messages.
package protoconv

import (
	"errors"
	"fmt"

	"github.com/chatting/chatting/internal/core/model"
	pb "github.com/chatting/chatting/pkg/sdk/v1"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// UserToProto encodes a user. A nil user encodes to nil.
func UserToProto(user *model.User) *pb.User {
	if user == nil {
		return nil
	}
	return &pb.User{
		Id:        &pb.UserId{Id: user.ID.String()},
		Name:      user.Name,
		CreatedAt: timestamppb.New(user.CreatedAt),
		UpdatedAt: timestamppb.New(user.UpdatedAt),
	}
}

// UserFromProto decodes a user. A nil message decodes to nil.
func UserFromProto(user *pb.User) (*model.User, error) {
	if user == nil {
		return nil, nil
	}
	if user.GetId() == nil {
		return nil, errors.New("user without id")
	}
	id, err := uuid.Parse(user.GetId().GetId())
	if err != nil {
		return nil, fmt.Errorf("error parsing user id: %w", err)
	}
	if err := user.GetCreatedAt().CheckValid(); err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}
	if err := user.GetUpdatedAt().CheckValid(); err != nil {
		return nil, fmt.Errorf("invalid updated_at: %w", err)
	}
	return &model.User{
		ID:        id,
		Name:      user.GetName(),
		CreatedAt: user.GetCreatedAt().AsTime(),
		UpdatedAt: user.GetUpdatedAt().AsTime(),
	}, nil
}

// EventToProto encodes a user event.
func EventToProto(event model.UserEvent) *pb.UserEvent {
	return &pb.UserEvent{
		Before: UserToProto(event.Before),
		After:  UserToProto(event.After),
	}
}

// EventFromProto decodes a user event identified by id.
func EventFromProto(id string, event *pb.UserEvent) (*model.UserEvent, error) {
	before, err := UserFromProto(event.GetBefore())
	if err != nil {
		return nil, fmt.Errorf("before: %w", err)
	}
	after, err := UserFromProto(event.GetAfter())
	if err != nil {
		return nil, fmt.Errorf("after: %w", err)
	}
	return &model.UserEvent{ID: id, Before: before, After: after}, nil
}
