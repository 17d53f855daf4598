package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/chatting/chatting/internal/core/model"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// Env is the execution environment of the mysql UserService.
type Env interface {
	// MySQLDB returns the connection pool to run statements on.
	MySQLDB() *sql.DB
}

// Conn is an Env backed by a database/sql pool using the mysql driver.
type Conn struct {
	// DB is a mysql connection pool.
	DB *sql.DB
}

// MySQLDB returns the wrapped pool.
func (c Conn) MySQLDB() *sql.DB {
	return c.DB
}

// ConnectArgs are the connection parameters of a mysql server.
type ConnectArgs struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// DSN renders the driver data source name. Times are exchanged in UTC.
func (a ConnectArgs) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = a.User
	cfg.Passwd = a.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", a.Host, a.Port)
	cfg.DBName = a.Database
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN()
}

// Connect opens a pool and checks the server is reachable.
func Connect(ctx context.Context, args ConnectArgs) (*sql.DB, error) {
	db, err := sql.Open("mysql", args.DSN())
	if err != nil {
		return nil, fmt.Errorf("error opening mysql pool: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error pinging mysql: %w", err)
	}
	return db, nil
}

const (
	selectUserSQL       = "SELECT id, name, created_at, updated_at FROM users WHERE id = ?"
	selectUserLockedSQL = selectUserSQL + " FOR UPDATE"
	insertUserSQL       = "INSERT INTO users (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)"
	updateUserSQL       = "UPDATE users SET name = ?, updated_at = ? WHERE id = ?"
	deleteUserSQL       = "DELETE FROM users WHERE id = ?"
)

// UserService is a mysql implementation of ports.UserService.
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

// NewUserService creates a new mysql UserService.
func NewUserService(optArgs ...UserServiceOptArgs) *UserService {
	s := &UserService{nowFunc: func() time.Time { return time.Now().UTC() }, idFunc: model.NewUserID}
	for _, opt := range optArgs {
		opt(s)
	}
	return s
}

// GetUser returns the user with the given id.
func (s *UserService) GetUser(ctx context.Context, env Env, args model.GetUserArgs) (*model.User, error) {
	return selectUser(ctx, env.MySQLDB(), selectUserSQL, args.ID, "get user")
}

// CreateUser inserts a user with a fresh id and reads back the persisted row.
func (s *UserService) CreateUser(ctx context.Context, env Env, args model.CreateUserArgs) (*model.User, error) {
	id, err := s.idFunc()
	if err != nil {
		return nil, model.Internal(err, "create user")
	}
	now := model.Timestamp(s.nowFunc())

	var created *model.User
	err = withTx(ctx, env.MySQLDB(), func(ctx context.Context, tx dbtx) error {
		if _, err := tx.ExecContext(ctx, insertUserSQL, id[:], args.Name, now, now); err != nil {
			return model.Internal(fmt.Errorf("error inserting user: %w", err), "create user")
		}
		created, err = selectUser(ctx, tx, selectUserSQL, id, "create user")
		return err
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
	var existing, updated *model.User
	err := withTx(ctx, env.MySQLDB(), func(ctx context.Context, tx dbtx) error {
		var err error
		existing, err = selectUser(ctx, tx, selectUserLockedSQL, args.ID, "update user")
		if err != nil {
			return err
		}
		updatedAt := model.NextUpdatedAt(existing.UpdatedAt, s.nowFunc())
		if _, err := tx.ExecContext(ctx, updateUserSQL, args.Name, updatedAt, args.ID[:]); err != nil {
			return model.Internal(fmt.Errorf("error updating user: %w", err), "update user")
		}
		updated, err = selectUser(ctx, tx, selectUserSQL, args.ID, "update user")
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return existing, updated, nil
}

// DeleteUser removes the user and returns the row as it was before the deletion.
func (s *UserService) DeleteUser(ctx context.Context, env Env, args model.DeleteUserArgs) (*model.User, error) {
	var deleted *model.User
	err := withTx(ctx, env.MySQLDB(), func(ctx context.Context, tx dbtx) error {
		existing, err := selectUser(ctx, tx, selectUserLockedSQL, args.ID, "delete user")
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, deleteUserSQL, args.ID[:]); err != nil {
			return model.Internal(fmt.Errorf("error deleting user: %w", err), "delete user")
		}
		deleted = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// dbtx is implemented by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx commits when fn succeeds and rolls back on error or panic.
func withTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbtx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return model.Internal(fmt.Errorf("error starting transaction: %w", err), "begin")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = model.Internal(fmt.Errorf("error committing transaction: %w", cerr), "commit")
		}
	}()

	err = fn(ctx, tx)
	return err
}

func selectUser(ctx context.Context, q dbtx, query string, id uuid.UUID, op string) (*model.User, error) {
	var (
		rawID []byte
		user  model.User
	)
	err := q.QueryRowContext(ctx, query, id[:]).Scan(&rawID, &user.Name, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.RejectNotFound("user not found")
	}
	if err != nil {
		return nil, model.Internal(fmt.Errorf("error selecting user: %w", err), op)
	}
	if user.ID, err = uuid.FromBytes(rawID); err != nil {
		return nil, model.Internal(fmt.Errorf("error decoding stored user id: %w", err), op)
	}
	user.CreatedAt = model.Timestamp(user.CreatedAt)
	user.UpdatedAt = model.Timestamp(user.UpdatedAt)
	return &user, nil
}
