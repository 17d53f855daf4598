package model

import "github.com/google/uuid"

// GetUserArgs contain the arguments of the GetUser method.
type GetUserArgs struct {
	// ID is the id of the user to be fetched.
	ID uuid.UUID
}

// CreateUserArgs contain the arguments of the CreateUser method.
type CreateUserArgs struct {
	// Name is the user display name. Any string is accepted.
	Name string
}

// UpdateUserArgs contain the arguments of the UpdateUser method.
type UpdateUserArgs struct {
	// ID is the id of the user to be updated.
	ID uuid.UUID

	// Name is the new user display name.
	Name string
}

// DeleteUserArgs contains the arguments for deleting a user.
type DeleteUserArgs struct {
	// ID is the id of the user to be deleted.
	ID uuid.UUID
}
