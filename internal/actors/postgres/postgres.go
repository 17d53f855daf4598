package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chatting/chatting/internal/core/model"
	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// Env is the execution environment of the postgres UserService.
type Env interface {
	// PostgresDB returns the database handle (connection pool) to run statements on.
	PostgresDB() *pg.DB
}

// Conn is an Env backed by a go-pg handle.
type Conn struct {
	// DB is a postgres database handle
	DB *pg.DB
}

// PostgresDB returns the wrapped handle.
func (c Conn) PostgresDB() *pg.DB {
	return c.DB
}

// UserService is a postgres implementation of ports.UserService.
// Multi-statement operations run in one transaction holding the row lock.
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

// NewUserService creates a new postgres UserService.
func NewUserService(optArgs ...UserServiceOptArgs) *UserService {
	s := &UserService{nowFunc: func() time.Time { return time.Now().UTC() }, idFunc: model.NewUserID}
	for _, opt := range optArgs {
		opt(s)
	}
	return s
}

// GetUser returns the user with the given id.
func (s *UserService) GetUser(ctx context.Context, env Env, args model.GetUserArgs) (*model.User, error) {
	row := &userDB{ID: args.ID}
	if err := env.PostgresDB().ModelContext(ctx, row).WherePK().Select(); err != nil {
		return nil, selectErr(err, "get user")
	}
	return translateDBToModel(row), nil
}

// CreateUser inserts a user with a fresh id and reads back the persisted row.
func (s *UserService) CreateUser(ctx context.Context, env Env, args model.CreateUserArgs) (*model.User, error) {
	id, err := s.idFunc()
	if err != nil {
		return nil, model.Internal(err, "create user")
	}
	now := model.Timestamp(s.nowFunc())

	var created *model.User
	err = inTx(ctx, env.PostgresDB(), func(tx *pg.Tx) error {
		row := &userDB{ID: id, Name: args.Name, CreatedAt: now, UpdatedAt: now}
		if _, err := tx.ModelContext(ctx, row).Insert(); err != nil {
			return model.Internal(fmt.Errorf("error inserting user: %w", err), "create user")
		}
		persisted := &userDB{ID: id}
		if err := tx.ModelContext(ctx, persisted).WherePK().Select(); err != nil {
			return model.Internal(fmt.Errorf("error reading back created user: %w", err), "create user")
		}
		created = translateDBToModel(persisted)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateUser renames the user. The row is locked for the duration of the transaction.
func (s *UserService) UpdateUser(ctx context.Context, env Env, args model.UpdateUserArgs) (*model.User, error) {
	_, updated, err := s.UpdateUserTracked(ctx, env, args)
	return updated, err
}

// UpdateUserTracked renames the user and also returns the row read under the lock.
func (s *UserService) UpdateUserTracked(ctx context.Context, env Env, args model.UpdateUserArgs) (*model.User, *model.User, error) {
	var previous, updated *model.User
	err := inTx(ctx, env.PostgresDB(), func(tx *pg.Tx) error {
		existing := &userDB{ID: args.ID}
		if err := tx.ModelContext(ctx, existing).WherePK().For("UPDATE").Select(); err != nil {
			return selectErr(err, "update user")
		}
		previous = translateDBToModel(existing)

		updatedAt := model.NextUpdatedAt(existing.UpdatedAt, s.nowFunc())
		if _, err := tx.ModelContext(ctx, existing).
			Set("name = ?", args.Name).
			Set("updated_at = ?", updatedAt).
			WherePK().
			Update(); err != nil {
			return model.Internal(fmt.Errorf("error updating user: %w", err), "update user")
		}

		refreshed := &userDB{ID: args.ID}
		if err := tx.ModelContext(ctx, refreshed).WherePK().Select(); err != nil {
			return selectErr(err, "update user")
		}
		updated = translateDBToModel(refreshed)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return previous, updated, nil
}

// DeleteUser removes the user and returns the row as it was before the deletion.
func (s *UserService) DeleteUser(ctx context.Context, env Env, args model.DeleteUserArgs) (*model.User, error) {
	var deleted *model.User
	err := inTx(ctx, env.PostgresDB(), func(tx *pg.Tx) error {
		existing := &userDB{ID: args.ID}
		if err := tx.ModelContext(ctx, existing).WherePK().For("UPDATE").Select(); err != nil {
			return selectErr(err, "delete user")
		}
		if _, err := tx.ModelContext(ctx, &userDB{ID: args.ID}).WherePK().Delete(); err != nil {
			return model.Internal(fmt.Errorf("error deleting user: %w", err), "delete user")
		}
		deleted = translateDBToModel(existing)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// inTx runs fn in a transaction that is committed only if fn succeeds. Close rolls back otherwise.
func inTx(ctx context.Context, db *pg.DB, fn func(tx *pg.Tx) error) error {
	tx, err := db.BeginContext(ctx)
	if err != nil {
		return model.Internal(fmt.Errorf("error starting transaction: %w", err), "begin")
	}
	defer tx.Close()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.CommitContext(ctx); err != nil {
		return model.Internal(fmt.Errorf("error committing transaction: %w", err), "commit")
	}
	return nil
}

func selectErr(err error, op string) error {
	if errors.Is(err, pg.ErrNoRows) {
		return model.RejectNotFound("user not found")
	}
	return model.Internal(fmt.Errorf("error selecting user: %w", err), op)
}

func translateDBToModel(row *userDB) *model.User {
	return &model.User{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: model.Timestamp(row.CreatedAt),
		UpdatedAt: model.Timestamp(row.UpdatedAt),
	}
}

type userDB struct {
	tableName struct{} `pg:"chatting.users"`

	// ID unique identifier of the user.
	ID uuid.UUID `pg:"id,pk,type:uuid"`

	// Name is the user display name. Empty names are stored as such, not as NULL.
	Name string `pg:"name,use_zero"`

	// CreatedAt is the time at which the user was created in the system.
	CreatedAt time.Time `pg:"created_at"`

	// UpdatedAt is the time at which the user was last updated
	UpdatedAt time.Time `pg:"updated_at"`
}
