package memory

import (
	"context"
	"sync"
	"time"

	"github.com/chatting/chatting/internal/core/model"
	"github.com/google/uuid"
)

// Env is the execution environment of the in-memory UserService.
type Env interface {
	// MemoryStore returns the store holding the users.
	MemoryStore() *Store
}

// Store is a process-local user table. The zero value is not usable, see NewStore.
type Store struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{users: make(map[uuid.UUID]model.User)}
}

// MemoryStore lets a *Store be used directly as an Env.
func (s *Store) MemoryStore() *Store {
	return s
}

// Len returns the number of stored users.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// UserService is an in-memory implementation of ports.UserService.
type UserService struct {
	nowFunc func() time.Time
	idFunc  func() (uuid.UUID, error)
}

// UserServiceOptArgs are the optional arguments for building a UserService
type UserServiceOptArgs = func(*UserService)

// WithNowFunc can be used to override the nowFunc. Useful for testing.
func WithNowFunc(nowFunc func() time.Time) UserServiceOptArgs {
	return func(s *UserService) {
		s.nowFunc = nowFunc
	}
}

// WithIDFunc overrides how fresh user ids are generated.
func WithIDFunc(idFunc func() (uuid.UUID, error)) UserServiceOptArgs {
	return func(s *UserService) {
		s.idFunc = idFunc
	}
}

// NewUserService creates a new in-memory UserService.
func NewUserService(optArgs ...UserServiceOptArgs) *UserService {
	s := &UserService{nowFunc: func() time.Time { return time.Now().UTC() }, idFunc: model.NewUserID}
	for _, opt := range optArgs {
		opt(s)
	}
	return s
}

// GetUser returns the user with the given id.
func (s *UserService) GetUser(ctx context.Context, env Env, args model.GetUserArgs) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.Internal(err, "get user")
	}
	store := env.MemoryStore()
	store.mu.Lock()
	defer store.mu.Unlock()

	user, ok := store.users[args.ID]
	if !ok {
		return nil, model.RejectNotFound("user not found")
	}
	return &user, nil
}

// CreateUser stores a new user with a fresh id.
func (s *UserService) CreateUser(ctx context.Context, env Env, args model.CreateUserArgs) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.Internal(err, "create user")
	}
	id, err := s.idFunc()
	if err != nil {
		return nil, model.Internal(err, "create user")
	}
	now := model.Timestamp(s.nowFunc())
	user := model.User{ID: id, Name: args.Name, CreatedAt: now, UpdatedAt: now}

	store := env.MemoryStore()
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, exists := store.users[id]; exists {
		return nil, model.Internal(errDuplicateID(id), "create user")
	}
	store.users[id] = user
	return &user, nil
}

// UpdateUser renames the user with the given id.
func (s *UserService) UpdateUser(ctx context.Context, env Env, args model.UpdateUserArgs) (*model.User, error) {
	_, updated, err := s.UpdateUserTracked(ctx, env, args)
	return updated, err
}

// UpdateUserTracked renames the user and returns both states, under the store lock.
func (s *UserService) UpdateUserTracked(ctx context.Context, env Env, args model.UpdateUserArgs) (*model.User, *model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, model.Internal(err, "update user")
	}
	store := env.MemoryStore()
	store.mu.Lock()
	defer store.mu.Unlock()

	before, ok := store.users[args.ID]
	if !ok {
		return nil, nil, model.RejectNotFound("user not found")
	}
	after := before
	after.Name = args.Name
	after.UpdatedAt = model.NextUpdatedAt(before.UpdatedAt, s.nowFunc())
	store.users[args.ID] = after
	return &before, &after, nil
}

// DeleteUser removes the user with the given id and returns it.
func (s *UserService) DeleteUser(ctx context.Context, env Env, args model.DeleteUserArgs) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.Internal(err, "delete user")
	}
	store := env.MemoryStore()
	store.mu.Lock()
	defer store.mu.Unlock()

	user, ok := store.users[args.ID]
	if !ok {
		return nil, model.RejectNotFound("user not found")
	}
	delete(store.users, args.ID)
	return &user, nil
}

type errDuplicateID uuid.UUID

func (e errDuplicateID) Error() string {
	return "duplicate user id " + uuid.UUID(e).String()
}
