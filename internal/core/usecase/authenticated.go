package usecase

import (
	"context"

	"github.com/chatting/chatting/internal/core/model"
	"github.com/chatting/chatting/internal/core/ports"
	log "github.com/sirupsen/logrus"
)

// AuthenticatedArgs contains the mandatory arguments for the Authenticated provider.
type AuthenticatedArgs struct {
	// Next is the provider invoked once the caller is authenticated.
	Next ports.UserProvider

	// Verifier checks the bearer token found in the request context.
	Verifier ports.TokenVerifier
}

// NewAuthenticated creates a provider that only lets authenticated callers through.
func NewAuthenticated(args AuthenticatedArgs) *Authenticated {
	return &Authenticated{next: args.Next, verifier: args.Verifier}
}

// Authenticated rejects calls that do not carry a valid access token.
// On success the verified model.Caller is available from the context passed to Next.
type Authenticated struct {
	next     ports.UserProvider
	verifier ports.TokenVerifier
}

// GetUser returns a user to an authenticated caller.
func (a *Authenticated) GetUser(ctx context.Context, args model.GetUserArgs) (*model.User, error) {
	ctx, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return a.next.GetUser(ctx, args)
}

// CreateUser creates a user on behalf of an authenticated caller.
func (a *Authenticated) CreateUser(ctx context.Context, args model.CreateUserArgs) (*model.User, error) {
	ctx, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return a.next.CreateUser(ctx, args)
}

// UpdateUser updates a user on behalf of an authenticated caller.
func (a *Authenticated) UpdateUser(ctx context.Context, args model.UpdateUserArgs) (*model.User, error) {
	ctx, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return a.next.UpdateUser(ctx, args)
}

// DeleteUser deletes a user on behalf of an authenticated caller.
func (a *Authenticated) DeleteUser(ctx context.Context, args model.DeleteUserArgs) (*model.User, error) {
	ctx, err := a.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return a.next.DeleteUser(ctx, args)
}

func (a *Authenticated) authenticate(ctx context.Context) (context.Context, error) {
	token, ok := model.AccessTokenFrom(ctx)
	if !ok {
		return ctx, model.RejectUnauthenticated("missing access token")
	}
	caller, err := a.verifier.Verify(ctx, token)
	if err != nil {
		log.WithError(err).Debug("access token rejected")
		return ctx, model.RejectUnauthenticated("invalid access token")
	}
	return model.WithCaller(ctx, caller), nil
}
