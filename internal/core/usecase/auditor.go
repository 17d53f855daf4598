package usecase

import (
	"context"

	"github.com/chatting/chatting/internal/core/model"
	log "github.com/sirupsen/logrus"
)

// AuditorOptArgs are the optional arguments for building an Auditor
type AuditorOptArgs = func(*Auditor)

// WithLogger overrides the logger audit lines are written to.
func WithLogger(logger log.FieldLogger) AuditorOptArgs {
	return func(a *Auditor) {
		a.logger = logger
	}
}

// NewAuditor builds a new auditor.
func NewAuditor(optArgs ...AuditorOptArgs) *Auditor {
	a := &Auditor{logger: log.StandardLogger()}
	for _, opt := range optArgs {
		opt(a)
	}
	return a
}

// Auditor records every user event it receives in the structured log.
type Auditor struct {
	logger log.FieldLogger
}

// Handle writes one audit line per event. Malformed events are dropped, not redelivered.
func (a *Auditor) Handle(_ context.Context, userEvent model.UserEvent) error {
	fields := log.Fields{
		"event_id": userEvent.ID,
		"op":       userEvent.Op(),
	}
	subject := userEvent.After
	if subject == nil {
		subject = userEvent.Before
	}
	if subject == nil {
		a.logger.WithFields(fields).Warn("dropping user event without user state")
		return nil
	}
	fields["user_id"] = subject.ID.String()
	if userEvent.Before != nil {
		fields["name_before"] = userEvent.Before.Name
	}
	if userEvent.After != nil {
		fields["name_after"] = userEvent.After.Name
		fields["updated_at"] = userEvent.After.UpdatedAt
	}
	a.logger.WithFields(fields).Info("user event")
	return nil
}
