package ports

import (
	"context"

	"github.com/chatting/chatting/internal/core/model"
)

// UserEventHandler reacts to user mutations.
type UserEventHandler interface {
	// Handle processes one event. A non-nil error asks the caller to redeliver it.
	Handle(ctx context.Context, userEvent model.UserEvent) error
}
