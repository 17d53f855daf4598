package usecase

import (
	"context"
	"fmt"

	"github.com/chatting/chatting/internal/core/model"
	"github.com/chatting/chatting/internal/core/ports"
)

// NewInformer builds a new informer.
func NewInformer(sender ports.Sender) *Informer {
	return &Informer{sender: sender}
}

// Informer forwards user changes worth telling consumers about to a Sender.
type Informer struct {
	sender ports.Sender
}

// Handle sends the event unless it carries no consumer-visible change.
func (i *Informer) Handle(ctx context.Context, userEvent model.UserEvent) error {
	// renaming a user to its current name only moves updated_at
	if sameVisibleState(userEvent.Before, userEvent.After) {
		return nil
	}

	if err := i.sender.Send(ctx, userEvent); err != nil {
		return fmt.Errorf("error sending user event ID [%s]: %w", userEvent.ID, err)
	}

	return nil
}

func sameVisibleState(before *model.User, after *model.User) bool {
	if before == nil && after == nil {
		return true
	}
	if before == nil || after == nil {
		return false
	}
	return before.ID == after.ID && before.Name == after.Name && before.CreatedAt.Equal(after.CreatedAt)
}
