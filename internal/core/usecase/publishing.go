package usecase

import (
	"context"

	"github.com/chatting/chatting/internal/core/model"
	"github.com/chatting/chatting/internal/core/ports"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// PublishingArgs contains the mandatory arguments for the Publishing provider.
type PublishingArgs struct {
	// Next is the provider performing the mutations. It reports the state an
	// update replaced, so events never pair a new state with a stale one.
	Next ports.ChangeTrackingProvider

	// Handler receives an event for every committed mutation.
	Handler ports.UserEventHandler
}

// NewPublishing creates a provider announcing every successful mutation.
func NewPublishing(args PublishingArgs) *Publishing {
	return &Publishing{next: args.Next, handler: args.Handler, idFunc: uuid.NewV7}
}

// Publishing emits a model.UserEvent after each successful create, update and delete.
// The mutation is already committed when the event is emitted, so a failed
// publication is logged and does not fail the request.
type Publishing struct {
	next    ports.ChangeTrackingProvider
	handler ports.UserEventHandler
	idFunc  func() (uuid.UUID, error)
}

// GetUser is forwarded unchanged.
func (p *Publishing) GetUser(ctx context.Context, args model.GetUserArgs) (*model.User, error) {
	return p.next.GetUser(ctx, args)
}

// CreateUser creates the user and publishes its initial state.
func (p *Publishing) CreateUser(ctx context.Context, args model.CreateUserArgs) (*model.User, error) {
	user, err := p.next.CreateUser(ctx, args)
	if err != nil {
		return nil, err
	}
	p.publish(ctx, nil, user)
	return user, nil
}

// UpdateUser updates the user and publishes the replaced and the new state.
func (p *Publishing) UpdateUser(ctx context.Context, args model.UpdateUserArgs) (*model.User, error) {
	before, after, err := p.next.UpdateUserTracked(ctx, args)
	if err != nil {
		return nil, err
	}
	p.publish(ctx, before, after)
	return after, nil
}

// DeleteUser deletes the user and publishes its last state.
func (p *Publishing) DeleteUser(ctx context.Context, args model.DeleteUserArgs) (*model.User, error) {
	user, err := p.next.DeleteUser(ctx, args)
	if err != nil {
		return nil, err
	}
	p.publish(ctx, user, nil)
	return user, nil
}

func (p *Publishing) publish(ctx context.Context, before, after *model.User) {
	event := model.UserEvent{Before: copyUser(before), After: copyUser(after)}
	logger := log.WithField("op", event.Op())
	if caller, ok := model.CallerFrom(ctx); ok {
		logger = logger.WithField("subject", caller.Subject)
	}

	id, err := p.idFunc()
	if err != nil {
		logger.WithError(err).Warn("error generating user event id, event not published")
		return
	}
	event.ID = id.String()
	logger = logger.WithField("event_id", event.ID)

	// the request may be done by the time the broker answers
	if err := p.handler.Handle(context.WithoutCancel(ctx), event); err != nil {
		logger.WithError(err).Warn("error publishing user event")
		return
	}
	logger.Debug("user event published")
}

func copyUser(u *model.User) *model.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
