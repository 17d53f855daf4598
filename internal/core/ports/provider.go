package ports

import (
	"context"

	"github.com/chatting/chatting/internal/core/model"
)

// UserProvider offers the user operations with the execution environment already bound.
// Transports depend on this interface only.
type UserProvider interface {
	// GetUser returns the user with the given id.
	GetUser(ctx context.Context, args model.GetUserArgs) (*model.User, error)

	// CreateUser creates a user.
	CreateUser(ctx context.Context, args model.CreateUserArgs) (*model.User, error)

	// UpdateUser updates a user.
	UpdateUser(ctx context.Context, args model.UpdateUserArgs) (*model.User, error)

	// DeleteUser deletes a user.
	DeleteUser(ctx context.Context, args model.DeleteUserArgs) (*model.User, error)
}

// ChangeTrackingProvider is a UserProvider that can report the prior state of an update.
type ChangeTrackingProvider interface {
	UserProvider

	// UpdateUserTracked updates a user and returns its state before and after the update.
	UpdateUserTracked(ctx context.Context, args model.UpdateUserArgs) (*model.User, *model.User, error)
}

// Provider binds a UserService to the environment it runs in.
type Provider[E any] struct {
	service UserService[E]
	env     E
}

// Bind creates a provider threading env through every call to svc.
func Bind[E any](svc UserService[E], env E) *Provider[E] {
	return &Provider[E]{service: svc, env: env}
}

func (p *Provider[E]) GetUser(ctx context.Context, args model.GetUserArgs) (*model.User, error) {
	return p.service.GetUser(ctx, p.env, args)
}

func (p *Provider[E]) CreateUser(ctx context.Context, args model.CreateUserArgs) (*model.User, error) {
	return p.service.CreateUser(ctx, p.env, args)
}

func (p *Provider[E]) UpdateUser(ctx context.Context, args model.UpdateUserArgs) (*model.User, error) {
	return p.service.UpdateUser(ctx, p.env, args)
}

func (p *Provider[E]) UpdateUserTracked(ctx context.Context, args model.UpdateUserArgs) (*model.User, *model.User, error) {
	return p.service.UpdateUserTracked(ctx, p.env, args)
}

func (p *Provider[E]) DeleteUser(ctx context.Context, args model.DeleteUserArgs) (*model.User, error) {
	return p.service.DeleteUser(ctx, p.env, args)
}

// Shared returns a handle on p that concurrent requests can hold at the same time.
// Every call is forwarded to p unchanged.
func Shared(p UserProvider) UserProvider {
	if s, ok := p.(*SharedProvider); ok {
		return s
	}
	return &SharedProvider{inner: p}
}

// SharedProvider is a pure delegating handle on a UserProvider.
type SharedProvider struct {
	inner UserProvider
}

func (s *SharedProvider) GetUser(ctx context.Context, args model.GetUserArgs) (*model.User, error) {
	return s.inner.GetUser(ctx, args)
}

func (s *SharedProvider) CreateUser(ctx context.Context, args model.CreateUserArgs) (*model.User, error) {
	return s.inner.CreateUser(ctx, args)
}

func (s *SharedProvider) UpdateUser(ctx context.Context, args model.UpdateUserArgs) (*model.User, error) {
	return s.inner.UpdateUser(ctx, args)
}

func (s *SharedProvider) DeleteUser(ctx context.Context, args model.DeleteUserArgs) (*model.User, error) {
	return s.inner.DeleteUser(ctx, args)
}
