package ports

import (
	"context"

	"github.com/chatting/chatting/internal/core/model"
)

// UserService is the business contract for the user resource. E is the execution
// environment an implementation needs, for instance something able to hand out a
// database handle. Implementations return *model.Rejection or *model.InternalFailure.
type UserService[E any] interface {
	// GetUser returns the user with the given id, or a NotFound rejection.
	GetUser(ctx context.Context, env E, args model.GetUserArgs) (*model.User, error)

	// CreateUser assigns a fresh id and timestamps and durably saves the user.
	CreateUser(ctx context.Context, env E, args model.CreateUserArgs) (*model.User, error)

	// UpdateUser renames the user and returns its state after the update.
	UpdateUser(ctx context.Context, env E, args model.UpdateUserArgs) (*model.User, error)

	// UpdateUserTracked is UpdateUser that also returns the state the update replaced,
	// read within the same atomic operation as the write.
	UpdateUserTracked(ctx context.Context, env E, args model.UpdateUserArgs) (before *model.User, after *model.User, err error)

	// DeleteUser removes the user and returns its state prior to the deletion.
	DeleteUser(ctx context.Context, env E, args model.DeleteUserArgs) (*model.User, error)
}
