package grpc

import (
	"context"

	"github.com/chatting/chatting/internal/actors/protoconv"
	"github.com/chatting/chatting/internal/core/model"
	"github.com/chatting/chatting/internal/core/ports"
	pb "github.com/chatting/chatting/pkg/sdk/v1"
	"github.com/google/uuid"
)

// UserServiceArgs are the mandatory args to instantiate the UserService.
type UserServiceArgs struct {
	// Provider serves the user operations.
	Provider ports.UserProvider
}

// NewUserService creates a new UserService
func NewUserService(args UserServiceArgs) *UserService {
	return &UserService{provider: ports.Shared(args.Provider)}
}

// UserService implements the User service gRPC methods. It only checks the shape
// of requests; every outcome of the provider is translated by toStatus.
type UserService struct {
	pb.UnimplementedUserServiceServer
	provider ports.UserProvider
}

// GetUser returns a user.
func (u *UserService) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {
	id, err := userID(req.GetId(), req)
	if err != nil {
		return nil, toStatus(ctx, methodGetUser, err)
	}

	user, err := u.provider.GetUser(ctx, model.GetUserArgs{ID: id})
	if err != nil {
		return nil, toStatus(ctx, methodGetUser, err)
	}
	return &pb.GetUserResponse{User: protoconv.UserToProto(user)}, nil
}

// CreateUser creates a user.
func (u *UserService) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.CreateUserResponse, error) {
	if err := validate(req); err != nil {
		return nil, toStatus(ctx, methodCreateUser, err)
	}

	user, err := u.provider.CreateUser(ctx, model.CreateUserArgs{Name: req.GetName()})
	if err != nil {
		return nil, toStatus(ctx, methodCreateUser, err)
	}
	return &pb.CreateUserResponse{User: protoconv.UserToProto(user)}, nil
}

// UpdateUser updates a user.
func (u *UserService) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.UpdateUserResponse, error) {
	id, err := userID(req.GetId(), req)
	if err != nil {
		return nil, toStatus(ctx, methodUpdateUser, err)
	}

	user, err := u.provider.UpdateUser(ctx, model.UpdateUserArgs{ID: id, Name: req.GetName()})
	if err != nil {
		return nil, toStatus(ctx, methodUpdateUser, err)
	}
	return &pb.UpdateUserResponse{User: protoconv.UserToProto(user)}, nil
}

// DeleteUser deletes a user and returns it as it was before the deletion.
func (u *UserService) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteUserResponse, error) {
	id, err := userID(req.GetId(), req)
	if err != nil {
		return nil, toStatus(ctx, methodDeleteUser, err)
	}

	user, err := u.provider.DeleteUser(ctx, model.DeleteUserArgs{ID: id})
	if err != nil {
		return nil, toStatus(ctx, methodDeleteUser, err)
	}
	return &pb.DeleteUserResponse{User: protoconv.UserToProto(user)}, nil
}

type validator interface {
	Validate() error
}

// userID extracts the id of req. Absent ids, unparsable ids and ids not in
// canonical form are bad requests.
func userID(id *pb.UserId, req validator) (uuid.UUID, error) {
	if id == nil {
		return uuid.Nil, model.RejectBadRequest("unspecified user id")
	}
	parsed, err := uuid.Parse(id.GetId())
	if err != nil {
		return uuid.Nil, model.RejectBadRequest("invalid user id: " + err.Error())
	}
	if err := validate(req); err != nil {
		return uuid.Nil, err
	}
	return parsed, nil
}

func validate(req validator) error {
	if err := req.Validate(); err != nil {
		return model.RejectBadRequest(err.Error())
	}
	return nil
}
